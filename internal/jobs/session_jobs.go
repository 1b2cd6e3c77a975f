package jobs

import (
	"context"
	"time"

	"moto-rentals-backend/internal/logger"
)

// EvictIdleSessions discards sessions that have been idle longer than the
// configured session idle window.
func (jr *JobRunner) EvictIdleSessions() {
	jr.runWithRecovery("EvictIdleSessions", func() {
		ctx := context.Background()
		idle := time.Duration(jr.config.Session.IdleMinutes) * time.Minute

		evicted, err := jr.sessions.EvictIdle(ctx, idle)
		if err != nil {
			logger.Error("Failed to evict idle sessions", "error", err)
			return
		}

		remaining, err := jr.sessionRepo.Count(ctx)
		if err != nil {
			logger.Warn("Failed to count sessions", "error", err)
		}
		logger.Info("Idle sessions evicted", "evicted", evicted, "remaining", remaining, "idle_window", idle)
	})
}
