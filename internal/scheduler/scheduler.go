package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StockScope/internal/gateway"
)

// Scheduler runs the periodic maintenance tasks: sweeping expired cache
// entries and refreshing the index membership so the first interactive
// request after a quiet period stays warm.
type Scheduler struct {
	Cron    *cron.Cron
	Gateway *gateway.Gateway
}

// NewScheduler creates a new Scheduler.
func NewScheduler(gw *gateway.Gateway) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Gateway: gw,
	}
}

// RegisterAll registers the cache-sweep and membership-refresh tasks.
func (s *Scheduler) RegisterAll(sweepCron, membershipCron string) error {
	if _, err := s.Cron.AddFunc(sweepCron, s.sweepTask); err != nil {
		return fmt.Errorf("register cache sweep: %w", err)
	}
	if _, err := s.Cron.AddFunc(membershipCron, s.membershipTask); err != nil {
		return fmt.Errorf("register membership refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) sweepTask() {
	removed := s.Gateway.SweepCache()
	if removed > 0 {
		log.Printf("[INFO] cache sweep removed %d expired entries", removed)
	}
}

func (s *Scheduler) membershipTask() {
	tickers, err := s.Gateway.FetchIndexMembership()
	if err != nil {
		log.Printf("[WARN] membership refresh failed: %v", err)
		return
	}
	log.Printf("[INFO] membership refreshed: %d tickers", len(tickers))
}
