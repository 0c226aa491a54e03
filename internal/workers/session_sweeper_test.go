package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/MKhiriev/go-member-gate/models"
)

// stubSessionRepository implements store.SessionRepository; only the sweep
// method matters here, the rest are inert.
type stubSessionRepository struct {
	deleteExpiredFn func(ctx context.Context, now time.Time) (int64, error)
}

func (s *stubSessionRepository) CreateSession(_ context.Context, session models.Session) (models.Session, error) {
	return session, nil
}

func (s *stubSessionRepository) FindSessionByTokenHash(_ context.Context, _ string) (models.Session, error) {
	return models.Session{}, nil
}

func (s *stubSessionRepository) UpdateLastSeen(_ context.Context, _ string, _ time.Time) error {
	return nil
}

func (s *stubSessionRepository) DeleteSessionByTokenHash(_ context.Context, _ string) error {
	return nil
}

func (s *stubSessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	return s.deleteExpiredFn(ctx, now)
}

func TestSessionSweeper_SweepsOnInterval(t *testing.T) {
	swept := make(chan struct{}, 8)
	repo := &stubSessionRepository{
		deleteExpiredFn: func(_ context.Context, _ time.Time) (int64, error) {
			swept <- struct{}{}
			return 2, nil
		},
	}

	sweeper := NewSessionSweeper(repo, 5*time.Millisecond, logger.Nop())
	sweeper.Run()
	defer sweeper.Stop()

	// at least two ticks must arrive
	for i := 0; i < 2; i++ {
		select {
		case <-swept:
		case <-time.After(2 * time.Second):
			t.Fatalf("sweep %d never happened", i+1)
		}
	}
}

func TestSessionSweeper_StopTerminatesLoop(t *testing.T) {
	repo := &stubSessionRepository{
		deleteExpiredFn: func(_ context.Context, _ time.Time) (int64, error) {
			return 0, nil
		},
	}

	sweeper := NewSessionSweeper(repo, time.Millisecond, logger.Nop())
	sweeper.Run()

	done := make(chan struct{})
	go func() {
		sweeper.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestSessionSweeper_KeepsRunningAfterSweepError(t *testing.T) {
	calls := make(chan struct{}, 8)
	repo := &stubSessionRepository{
		deleteExpiredFn: func(_ context.Context, _ time.Time) (int64, error) {
			calls <- struct{}{}
			return 0, errors.New("db is down")
		},
	}

	sweeper := NewSessionSweeper(repo, 5*time.Millisecond, logger.Nop())
	sweeper.Run()
	defer sweeper.Stop()

	// a failed sweep must not kill the loop
	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("sweep %d never happened", i+1)
		}
	}
}
