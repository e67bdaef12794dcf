package repository

import (
	"context"
	"sync"

	domainRepo "medicare-plus/internal/domain/repository"
)

type memoryClientStorage struct {
	mu     sync.RWMutex
	values map[string]map[string]string
}

func NewMemoryClientStorage() domainRepo.ClientStorage {
	return &memoryClientStorage{values: make(map[string]map[string]string)}
}

func (s *memoryClientStorage) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[clientID][key]
	return value, ok, nil
}

func (s *memoryClientStorage) Set(ctx context.Context, clientID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values[clientID] == nil {
		s.values[clientID] = make(map[string]string)
	}
	s.values[clientID][key] = value
	return nil
}

func (s *memoryClientStorage) SetIfAbsent(ctx context.Context, clientID, key, value string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.values[clientID][key]; ok {
		return current, nil
	}
	if s.values[clientID] == nil {
		s.values[clientID] = make(map[string]string)
	}
	s.values[clientID][key] = value
	return value, nil
}

func (s *memoryClientStorage) Delete(ctx context.Context, clientID string, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values[clientID], key)
	}
	return nil
}
