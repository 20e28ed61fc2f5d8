package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/walkingguide-web/internal/repository"
)

// janitorService is the concrete implementation of JanitorService
type janitorService struct {
	sessions repository.SessionRepository
	states   StateEvicter
	interval time.Duration
	idleTTL  time.Duration
	log      zerolog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func newJanitorService(sessions repository.SessionRepository, states StateEvicter, interval, idleTTL time.Duration, log zerolog.Logger) *janitorService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &janitorService{
		sessions: sessions,
		states:   states,
		interval: interval,
		idleTTL:  idleTTL,
		log:      log.With().Str("service", "janitor").Logger(),
	}
}

// Start runs cleanup on every tick until ctx is cancelled or Stop is called.
// It blocks; run it in its own goroutine.
func (s *janitorService) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	defer close(done)

	s.log.Info().Dur("interval", s.interval).Msg("Janitor started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("Janitor stopping")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// Stop cancels the loop and waits for the current run to finish
func (s *janitorService) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	done := s.done
	s.running = false
	s.mu.Unlock()

	<-done
	s.log.Info().Msg("Janitor stopped")
}

// RunOnce removes expired sessions and evicts idle UI state
func (s *janitorService) RunOnce(ctx context.Context) (int64, int) {
	removed, err := s.sessions.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to delete expired sessions")
	}

	evicted := 0
	if s.states != nil && s.idleTTL > 0 {
		evicted = s.states.EvictIdle(s.idleTTL)
	}

	if removed > 0 || evicted > 0 {
		s.log.Info().
			Int64("sessions_removed", removed).
			Int("states_evicted", evicted).
			Msg("Cleanup completed")
	}
	return removed, evicted
}
