package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"medicare-plus/internal/domain/entity"
	domainRepo "medicare-plus/internal/domain/repository"

	"github.com/google/uuid"
)

type memorySession struct {
	payload   []byte
	expiresAt time.Time
}

type memoryBookingSessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]memorySession
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryBookingSessionRepository keeps sessions in process memory. Sessions
// are stored serialized so callers never share pointers with the store.
func NewMemoryBookingSessionRepository(ttl time.Duration) domainRepo.ExpiringSessionRepository {
	return &memoryBookingSessionRepository{
		sessions: make(map[uuid.UUID]memorySession),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *memoryBookingSessionRepository) Save(ctx context.Context, session *entity.BookingSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = memorySession{
		payload:   payload,
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

func (r *memoryBookingSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingSession, error) {
	r.mu.RLock()
	stored, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok || !r.now().Before(stored.expiresAt) {
		return nil, nil
	}

	var session entity.BookingSession
	if err := json.Unmarshal(stored.payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *memoryBookingSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// DeleteExpired drops every session whose TTL passed before now
func (r *memoryBookingSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, stored := range r.sessions {
		if !now.Before(stored.expiresAt) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}
