package repository

import (
	"context"
	"time"

	"medicare-plus/internal/domain/entity"

	"github.com/google/uuid"
)

type BookingSessionRepository interface {
	Save(ctx context.Context, session *entity.BookingSession) error
	// FindByID returns nil, nil when the session does not exist or expired
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpiringSessionRepository is implemented by stores that need an explicit
// sweep to drop expired sessions
type ExpiringSessionRepository interface {
	BookingSessionRepository
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
