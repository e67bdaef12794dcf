package usecase

import (
	"context"
	"testing"
	"time"

	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(now time.Time) *catalogUsecase {
	u := NewCatalogUsecase(newTestLogger(), time.UTC, 0.16).(*catalogUsecase)
	u.now = func() time.Time { return now }
	return u
}

func TestCatalogUsecase_Departments(t *testing.T) {
	u := newTestCatalog(testNow)
	ctx := context.Background()

	list, err := u.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, list.Total)

	detail, err := u.GetDepartment(ctx, "neurology")
	require.NoError(t, err)
	assert.Equal(t, "1800", detail.Rates.Standard.String())
	assert.Len(t, detail.Doctors, len(entity.DoctorsByDepartment(entity.DepartmentNeurology)))

	_, err = u.GetDepartment(ctx, "dentistry")
	assert.ErrorIs(t, err, ErrDepartmentNotFound)

	doctors, err := u.DoctorsByDepartment(ctx, "pediatrics")
	require.NoError(t, err)
	for _, d := range doctors.Doctors {
		assert.Equal(t, "pediatrics", d.Department)
	}

	_, err = u.DoctorsByDepartment(ctx, "")
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

func TestCatalogUsecase_GetSlots(t *testing.T) {
	u := newTestCatalog(time.Date(2026, 3, 10, 15, 10, 0, 0, time.UTC))
	ctx := context.Background()

	today, err := u.GetSlots(ctx, &dto.SlotsQuery{Date: "2026-03-10"})
	require.NoError(t, err)
	require.Len(t, today.Slots, 8)
	for _, slot := range today.Slots {
		assert.Equal(t, slot.Hour <= 15, slot.Disabled, slot.Token)
	}

	company, err := u.GetSlots(ctx, &dto.SlotsQuery{Date: "2026-03-11", Company: true})
	require.NoError(t, err)
	assert.Len(t, company.Slots, 14)

	_, err = u.GetSlots(ctx, &dto.SlotsQuery{Date: "2026-03-09"})
	assert.ErrorIs(t, err, ErrDateInPast)

	_, err = u.GetSlots(ctx, &dto.SlotsQuery{Date: "10/03/2026"})
	var fieldErrs FieldErrors
	assert.ErrorAs(t, err, &fieldErrs)
}

func TestCatalogUsecase_Quote(t *testing.T) {
	u := newTestCatalog(testNow)
	ctx := context.Background()

	group, err := u.Quote(ctx, &dto.QuoteRequest{Department: "neurology", GroupBooking: true, NumberOfAttendees: 4})
	require.NoError(t, err)
	assert.Equal(t, "1800", group.BaseRate.String())
	assert.Equal(t, 4, group.Attendees)
	assert.Equal(t, "7200", group.Total.String())
	assert.Equal(t, "standard", group.Tier)
	assert.True(t, group.PreVAT.Add(group.VAT).Equal(group.Total))

	corporate, err := u.Quote(ctx, &dto.QuoteRequest{Department: "cardiology", IsCompany: true, Priority: true})
	require.NoError(t, err)
	assert.Equal(t, "corporate", corporate.Tier)
	assert.Equal(t, "2000", corporate.Total.String())
	assert.Equal(t, 1, corporate.Attendees)

	_, err = u.Quote(ctx, &dto.QuoteRequest{Department: "dentistry"})
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}
