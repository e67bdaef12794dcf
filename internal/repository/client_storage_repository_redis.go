package repository

import (
	"context"
	"errors"
	"fmt"

	domainRepo "medicare-plus/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const RedisStorageKeyPrefix = "storage:"

// getOrSetScript returns the current value of KEYS[1], storing ARGV[1] first
// when the key does not exist yet
var getOrSetScript = redis.NewScript(`
	local current = redis.call('GET', KEYS[1])
	if current then
		return current
	end
	redis.call('SET', KEYS[1], ARGV[1])
	return ARGV[1]
`)

type redisClientStorage struct {
	client *redis.Client
}

func NewRedisClientStorage(client *redis.Client) domainRepo.ClientStorage {
	return &redisClientStorage{client: client}
}

func storageKey(clientID, key string) string {
	return fmt.Sprintf("%s%s:%s", RedisStorageKeyPrefix, clientID, key)
}

func (s *redisClientStorage) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, storageKey(clientID, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %s for client %s: %w", key, clientID, err)
	}
	return value, true, nil
}

// Set stores the value without expiry
func (s *redisClientStorage) Set(ctx context.Context, clientID, key, value string) error {
	if err := s.client.Set(ctx, storageKey(clientID, key), value, 0).Err(); err != nil {
		return fmt.Errorf("set %s for client %s: %w", key, clientID, err)
	}
	return nil
}

func (s *redisClientStorage) SetIfAbsent(ctx context.Context, clientID, key, value string) (string, error) {
	stored, err := getOrSetScript.Run(ctx, s.client, []string{storageKey(clientID, key)}, value).Text()
	if err != nil {
		return "", fmt.Errorf("lua get_or_set %s for client %s: %w", key, clientID, err)
	}
	return stored, nil
}

func (s *redisClientStorage) Delete(ctx context.Context, clientID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	redisKeys := make([]string, len(keys))
	for i, key := range keys {
		redisKeys[i] = storageKey(clientID, key)
	}
	if err := s.client.Del(ctx, redisKeys...).Err(); err != nil {
		return fmt.Errorf("delete keys for client %s: %w", clientID, err)
	}
	return nil
}
