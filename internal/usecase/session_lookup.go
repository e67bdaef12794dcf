package usecase

import (
	"context"

	"medicare-plus/internal/delivery/http/middleware"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// findOwnedSession loads a session and checks it belongs to the calling client
func findOwnedSession(ctx context.Context, repo repository.BookingSessionRepository, log *logrus.Logger, id uuid.UUID) (*entity.BookingSession, error) {
	clientID, ok := middleware.GetClientIDFromContext(ctx)
	if !ok {
		return nil, ErrClientNotFound
	}

	session, err := repo.FindByID(ctx, id)
	if err != nil {
		log.Warnf("Failed to find booking session %s: %+v", id, err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if !session.IsOwnedBy(clientID) {
		return nil, ErrSessionNotOwned
	}

	return session, nil
}
