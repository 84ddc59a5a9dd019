package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pulsemed/worklist/internal/domain"
)

// Sweeper runs the expiry pass on a fixed cadence until its context is
// cancelled. Polling keeps the design simple; the staleness bound on a
// reclaimed lease equals the sweep interval, which the configuration
// validates as at most a third of the lease duration.
type Sweeper struct {
	expire   *ExpireLeases
	logger   domain.Logger
	interval time.Duration
}

// NewSweeper creates a new Sweeper.
func NewSweeper(expire *ExpireLeases, logger domain.Logger, interval time.Duration) *Sweeper {
	return &Sweeper{expire: expire, logger: logger, interval: interval}
}

// Run blocks, sweeping every interval, until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("", "sweep", "sweeper stopped")
			return
		case <-ticker.C:
			if _, err := s.expire.Execute(ctx, ExpireLeasesInput{}); err != nil {
				// Nothing to retry here; the next tick rescans everything.
				s.logger.Error("", "sweep", fmt.Sprintf("expiry pass failed: %v", err))
			}
		}
	}
}
