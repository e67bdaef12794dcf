package service

import (
	"context"
	"testing"
	"time"

	"medicare-plus/internal/domain/entity"
	"medicare-plus/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSweeper_Sweep(t *testing.T) {
	repo := repository.NewMemoryBookingSessionRepository(time.Minute)
	ctx := context.Background()

	session := entity.NewBookingSession("client-1", time.Now())
	require.NoError(t, repo.Save(ctx, session))

	sweeper := NewSessionSweeper(repo, newTestLogger())

	assert.Equal(t, 0, sweeper.Sweep(time.Now()))
	assert.Equal(t, 1, sweeper.Sweep(time.Now().Add(2*time.Minute)))

	found, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionSweeper_StartRejectsBadSchedule(t *testing.T) {
	sweeper := NewSessionSweeper(repository.NewMemoryBookingSessionRepository(time.Minute), newTestLogger())
	assert.Error(t, sweeper.Start("not a schedule"))

	require.NoError(t, sweeper.Start("@every 1h"))
	sweeper.Stop()
}
