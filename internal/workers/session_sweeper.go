// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/MKhiriev/go-member-gate/internal/store"
)

// SessionSweeper periodically removes expired sessions from storage.
//
// Expired sessions are already rejected at resolution time, so the sweeper
// is purely a housekeeping measure that keeps the sessions table from
// growing without bound. It runs on a fixed interval until [Stop] is called.
type SessionSweeper struct {
	sessions store.SessionRepository
	interval time.Duration
	logger   *logger.Logger

	done chan struct{}
	wg   sync.WaitGroup
}

func NewSessionSweeper(sessions store.SessionRepository, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Run starts the sweep loop in a background goroutine and returns.
func (s *SessionSweeper) Run() {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.done:
				s.logger.Info().Msg("session sweeper stopped")
				return
			}
		}
	}()
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *SessionSweeper) Stop() {
	close(s.done)
	s.wg.Wait()
}

func (s *SessionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	deleted, err := s.sessions.DeleteExpiredSessions(ctx, time.Now())
	if err != nil {
		s.logger.Err(err).Str("func", "SessionSweeper.sweep").Msg("error deleting expired sessions")
		return
	}

	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Msg("swept expired sessions")
	}
}
