package service

import (
	"context"
	"time"

	"medicare-plus/internal/domain/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// SessionSweeper periodically drops expired sessions from stores that do not
// expire keys on their own
type SessionSweeper struct {
	repo repository.ExpiringSessionRepository
	cron *cron.Cron
	log  *logrus.Logger
}

func NewSessionSweeper(repo repository.ExpiringSessionRepository, log *logrus.Logger) *SessionSweeper {
	return &SessionSweeper{
		repo: repo,
		cron: cron.New(),
		log:  log,
	}
}

// Start schedules the sweep, e.g. "@every 5m"
func (s *SessionSweeper) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() { s.Sweep(time.Now()) }); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Infof("Session sweeper scheduled: %s", spec)
	return nil
}

// Sweep removes sessions expired at now and returns how many were dropped
func (s *SessionSweeper) Sweep(now time.Time) int {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.repo.DeleteExpired(ctx, now)
	if err != nil {
		s.log.Warnf("Failed to sweep expired sessions: %+v", err)
		return 0
	}
	if removed > 0 {
		s.log.Infof("Swept %d expired booking sessions", removed)
	}
	return removed
}

// Stop waits for a running sweep to finish
func (s *SessionSweeper) Stop() {
	<-s.cron.Stop().Done()
}
