package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
)

// Resyncer performs one full resynchronization.
type Resyncer interface {
	Resync(ctx context.Context) (model.Snapshot, error)
}

// SyncScheduler runs resyncs at startup, on a fixed interval and on demand after a delay.
// Runs may overlap; the last one to finish publishes its snapshot last.
type SyncScheduler struct {
	resyncer Resyncer
	interval time.Duration
	logger   *slog.Logger

	cron *cron.Cron

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	timers  map[*time.Timer]struct{}
	started bool
	stopped bool
	wg      sync.WaitGroup
}

// NewSyncScheduler constructs a scheduler.
func NewSyncScheduler(resyncer Resyncer, interval time.Duration, logger *slog.Logger) *SyncScheduler {
	if interval < time.Second {
		interval = time.Second
	}
	return &SyncScheduler{
		resyncer: resyncer,
		interval: interval,
		logger:   logger,
		cron:     cron.New(),
		timers:   make(map[*time.Timer]struct{}),
	}
}

// Start runs the initial resync in the background and begins periodic runs.
func (s *SyncScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	s.ctx, s.cancel = context.WithCancel(ctx)
	runCtx := s.ctx

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(runCtx, "startup")
	}()

	s.cron.Schedule(cron.Every(s.interval), cron.FuncJob(func() {
		s.run(runCtx, "interval")
	}))
	s.cron.Start()
}

// Schedule requests a resync after delay. Calls before Start or after Stop are ignored.
func (s *SyncScheduler) Schedule(delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started || s.stopped {
		s.logger.Debug("delayed resync ignored, scheduler not running", slog.Duration("delay", delay))
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if s.stopped {
			s.mu.Unlock()
			return
		}
		delete(s.timers, timer)
		runCtx := s.ctx
		s.wg.Add(1)
		s.mu.Unlock()

		defer s.wg.Done()
		s.run(runCtx, "delayed")
	})
	s.timers[timer] = struct{}{}
}

// Stop cancels pending delayed resyncs and waits for running ones.
func (s *SyncScheduler) Stop() {
	s.mu.Lock()
	if s.stopped || !s.started {
		s.stopped = true
		s.mu.Unlock()
		return
	}
	s.stopped = true
	for timer := range s.timers {
		timer.Stop()
	}
	s.timers = make(map[*time.Timer]struct{})
	s.cancel()
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	s.wg.Wait()
}

// Pending reports the number of delayed resyncs not yet fired.
func (s *SyncScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *SyncScheduler) run(ctx context.Context, trigger string) {
	if ctx.Err() != nil {
		return
	}
	if _, err := s.resyncer.Resync(ctx); err != nil {
		s.logger.Error("resync failed", slog.String("trigger", trigger), slog.String("error", err.Error()))
		return
	}
	s.logger.Debug("resync finished", slog.String("trigger", trigger))
}
