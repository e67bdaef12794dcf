package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// Interval for cleaning up stale mutexes
	mutexCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	mutexStaleThreshold = 10 * time.Minute
)

// SessionLockService serializes state changes per booking session.
//
// Sessions are read-modify-written against the store, so two requests on the
// same session must not interleave. Payment submission uses TryLock so a
// second submit while one is processing is rejected instead of queued.
type SessionLockService struct {
	log *logrus.Logger

	sessionMu sync.Map // map[uuid.UUID]*mutexWithTimestamp

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

// NewSessionLockService starts the background mutex cleanup.
// Call Stop() during graceful shutdown.
func NewSessionLockService(log *logrus.Logger) *SessionLockService {
	svc := &SessionLockService{
		log:      log,
		stopChan: make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupMutexMapLoop()

	return svc
}

// Stop gracefully shuts down the service.
// Safe to call multiple times.
func (s *SessionLockService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("SessionLockService stopped")
	}
}

// Lock blocks until the session mutex is held and returns its unlock func
func (s *SessionLockService) Lock(sessionID uuid.UUID) func() {
	for {
		mt := s.getSessionMutex(sessionID)
		mt.mu.Lock()
		if s.isCurrent(sessionID, mt) {
			return mt.mu.Unlock
		}
		// Cleanup dropped this mutex between lookup and lock
		mt.mu.Unlock()
	}
}

// TryLock acquires the session mutex only if it is free
func (s *SessionLockService) TryLock(sessionID uuid.UUID) (func(), bool) {
	for {
		mt := s.getSessionMutex(sessionID)
		if !mt.mu.TryLock() {
			if s.isCurrent(sessionID, mt) {
				return nil, false
			}
			continue
		}
		if s.isCurrent(sessionID, mt) {
			return mt.mu.Unlock, true
		}
		mt.mu.Unlock()
	}
}

// isCurrent reports whether mt is still the mutex registered for the session
func (s *SessionLockService) isCurrent(sessionID uuid.UUID, mt *mutexWithTimestamp) bool {
	current, ok := s.sessionMu.Load(sessionID)
	return ok && current.(*mutexWithTimestamp) == mt
}

// getSessionMutex returns mutex for a specific session ID
func (s *SessionLockService) getSessionMutex(sessionID uuid.UUID) *mutexWithTimestamp {
	mt, _ := s.sessionMu.LoadOrStore(sessionID, &mutexWithTimestamp{})
	result := mt.(*mutexWithTimestamp)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

// cleanupMutexMapLoop runs in background to clean stale mutexes
func (s *SessionLockService) cleanupMutexMapLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(mutexCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Mutex cleanup goroutine stopping")
			return
		case <-ticker.C:
			s.cleanupStaleMutexes(time.Now().Add(-mutexStaleThreshold))
		}
	}
}

// cleanupStaleMutexes removes mutexes unused since cutoff. An entry is only
// deleted while its mutex is held; a caller that looked it up just before
// the delete notices in isCurrent and retries with a fresh mutex.
func (s *SessionLockService) cleanupStaleMutexes(cutoff time.Time) int {
	cutoffTime := cutoff.Unix()
	var cleaned int

	s.sessionMu.Range(func(key, value any) bool {
		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		// TryLock first - if we can't get lock, someone is using it
		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoffTime {
				s.sessionMu.Delete(key)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		s.log.Debugf("Cleaned up %d stale session mutexes", cleaned)
	}
	return cleaned
}
