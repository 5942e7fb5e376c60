package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"daybook/internal/domain"
)

// Scanner periodically lists events and logs a notification for each one
// entering its lead-time window. Each event is reported at most once per
// process lifetime.
type Scanner struct {
	service  domain.EventService
	logger   *slog.Logger
	cron     *cron.Cron
	interval time.Duration

	mu       sync.Mutex
	reported map[string]struct{}
}

// NewScanner builds a scanner that checks every interval.
func NewScanner(service domain.EventService, logger *slog.Logger, interval time.Duration) *Scanner {
	return &Scanner{
		service:  service,
		logger:   logger,
		cron:     cron.New(),
		interval: interval,
		reported: make(map[string]struct{}),
	}
}

// Start registers the periodic check and starts the cron engine.
func (s *Scanner) Start() error {
	if _, err := s.cron.AddFunc("@every "+s.interval.String(), s.check); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits for a running check to finish.
func (s *Scanner) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scanner) check() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	events, err := s.service.ListEvents(ctx)
	if err != nil {
		s.logger.Error("notification scan failed", "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range Upcoming(events, time.Now().UTC(), s.reported) {
		s.logger.Info("event notification", "event_id", e.ID, "message", Message(e))
		s.reported[e.ID] = struct{}{}
	}
}
