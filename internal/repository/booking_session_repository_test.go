package repository

import (
	"context"
	"testing"
	"time"

	"medicare-plus/internal/domain/entity"
	domainRepo "medicare-plus/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func sampleSession() *entity.BookingSession {
	s := entity.NewBookingSession("client-1", time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	s.EnterPayment(entity.AppointmentRequest{
		PatientName: "Jane Doe",
		Department:  entity.DepartmentNeurology,
		DoctorID:    "neuro-1",
	}, decimal.NewFromInt(1800))
	s.Payment = &entity.PaymentAttempt{
		Method: entity.PaymentMethodCard,
		Status: entity.PaymentStatusProcessing,
		Input:  entity.PaymentInput{CardNumber: "4111111111111111", CardCVV: "123"},
	}
	return s
}

func assertRoundTrip(t *testing.T, repo domainRepo.BookingSessionRepository) {
	ctx := context.Background()
	session := sampleSession()

	require.NoError(t, repo.Save(ctx, session))

	found, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, session.ID, found.ID)
	assert.Equal(t, entity.BookingStepPayment, found.Step)
	assert.Equal(t, "neuro-1", found.Appointment.DoctorID)
	assert.True(t, session.Amount.Equal(found.Amount))
	require.NotNil(t, found.Payment)
	assert.Equal(t, entity.PaymentStatusProcessing, found.Payment.Status)
	// card details are never stored
	assert.Empty(t, found.Payment.Input.CardNumber)
	assert.Empty(t, found.Payment.Input.CardCVV)

	missing, err := repo.FindByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Delete(ctx, session.ID))
	gone, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRedisBookingSessionRepository_RoundTrip(t *testing.T) {
	_, client := newTestRedis(t)
	assertRoundTrip(t, NewRedisBookingSessionRepository(client, time.Hour))
}

func TestRedisBookingSessionRepository_Expires(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewRedisBookingSessionRepository(client, time.Minute)
	ctx := context.Background()
	session := sampleSession()

	require.NoError(t, repo.Save(ctx, session))
	assert.True(t, mr.Exists(RedisSessionKeyPrefix+session.ID.String()))

	mr.FastForward(2 * time.Minute)

	found, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemoryBookingSessionRepository_RoundTrip(t *testing.T) {
	assertRoundTrip(t, NewMemoryBookingSessionRepository(time.Hour))
}

func TestMemoryBookingSessionRepository_DeleteExpired(t *testing.T) {
	repo := NewMemoryBookingSessionRepository(time.Minute)
	mem := repo.(*memoryBookingSessionRepository)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	mem.now = func() time.Time { return start }

	ctx := context.Background()
	old := sampleSession()
	require.NoError(t, repo.Save(ctx, old))

	mem.now = func() time.Time { return start.Add(50 * time.Second) }
	fresh := sampleSession()
	require.NoError(t, repo.Save(ctx, fresh))

	removed, err := repo.DeleteExpired(ctx, start.Add(90*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	found, err := repo.FindByID(ctx, fresh.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}
