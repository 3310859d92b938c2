package queue

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultUpdateInterval is how often the queue is refreshed unless
// configured otherwise.
const DefaultUpdateInterval = time.Minute

// Scheduler periodically refreshes the cache and broadcasts the new
// snapshot to all live targets. Ticks never overlap: if a cycle takes
// longer than the interval, the next tick is delayed until it finishes.
type Scheduler struct {
	cache    *Cache
	registry *Registry
	interval time.Duration

	ctx    context.Context
	runner *cron.Cron
}

// NewScheduler creates a scheduler for the given cache and registry.
// A non-positive interval falls back to DefaultUpdateInterval.
func NewScheduler(cache *Cache, registry *Registry, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultUpdateInterval
	}
	return &Scheduler{
		cache:    cache,
		registry: registry,
		interval: interval,
	}
}

// Start begins the periodic refresh. The given context is the lifetime of
// the process; in-flight requests are cancelled when it is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx = ctx
	s.runner = cron.New(cron.WithChain(cron.DelayIfStillRunning(cron.DefaultLogger)))

	if _, err := s.runner.AddFunc(fmt.Sprintf("@every %s", s.interval), s.runCycle); err != nil {
		return fmt.Errorf("failed to schedule queue refresh: %w", err)
	}

	s.runner.Start()
	return nil
}

// Stop halts the periodic refresh and waits for a running cycle to finish.
func (s *Scheduler) Stop() {
	if s.runner == nil {
		return
	}
	<-s.runner.Stop().Done()
}

// runCycle performs one tick: refresh, then broadcast. A failed refresh is
// logged and skips the broadcast for this tick only; the previous snapshot
// stays committed and the scheduler keeps running.
//
// A cycle is deliberately not bounded by its own timeout: a slow refresh
// may take longer than the interval, in which case the cron chain delays
// the next tick. Only process shutdown cancels a cycle mid-flight.
func (s *Scheduler) runCycle() {
	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	if err := s.cache.Refresh(ctx); err != nil {
		log.Printf("Error refreshing queue cache: %v", err)
		return
	}

	s.registry.Broadcast(s.cache.Current())
}
