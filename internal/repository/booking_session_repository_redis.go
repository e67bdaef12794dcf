package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medicare-plus/internal/domain/entity"
	domainRepo "medicare-plus/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const RedisSessionKeyPrefix = "booking:session:"

type redisBookingSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisBookingSessionRepository(client *redis.Client, ttl time.Duration) domainRepo.BookingSessionRepository {
	return &redisBookingSessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id uuid.UUID) string {
	return RedisSessionKeyPrefix + id.String()
}

// Save overwrites the session and refreshes its TTL
func (r *redisBookingSessionRepository) Save(ctx context.Context, session *entity.BookingSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", session.ID, err)
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (r *redisBookingSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookingSession, error) {
	payload, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}

	var session entity.BookingSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", id, err)
	}
	return &session, nil
}

func (r *redisBookingSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
