package usecase

import (
	"context"
	"testing"

	"medicare-plus/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerUsecase_ListOpenings(t *testing.T) {
	u := NewCareerUsecase(newTestLogger())

	list, err := u.ListOpenings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(list.Openings), list.Total)
	assert.NotZero(t, list.Total)
}

func TestCareerUsecase_Apply(t *testing.T) {
	u := NewCareerUsecase(newTestLogger())
	req := &dto.JobApplicationRequest{
		FullName:        "Mary Atieno",
		Email:           "mary@example.com",
		Phone:           "+254711000111",
		OpeningID:       "physio",
		YearsExperience: 4,
	}

	resp, err := u.Apply(context.Background(), req)
	require.NoError(t, err)
	assert.Regexp(t, `^APP-[0-9A-F]{10}$`, resp.Reference)
	assert.Equal(t, "Physiotherapist", resp.Title)

	req.OpeningID = "surgeon"
	_, err = u.Apply(context.Background(), req)
	assert.ErrorIs(t, err, ErrOpeningNotFound)
}
