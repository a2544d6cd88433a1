// Package janitor periodically expires stale pending bookings and purges expired sessions.
package janitor

import (
	"context"
	"log/slog"
	"musaferBox/internal/lib/logger/sl"
	"time"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Cleaner
type Cleaner interface {
	ExpirePendingBookings(ttl time.Duration) (int64, error)
	DeleteExpiredSessions() (int64, error)
}

type Janitor struct {
	log        *slog.Logger
	cleaner    Cleaner
	interval   time.Duration
	pendingTTL time.Duration
}

func New(log *slog.Logger, cleaner Cleaner, interval, pendingTTL time.Duration) *Janitor {
	return &Janitor{
		log:        log.With(slog.String("component", "janitor")),
		cleaner:    cleaner,
		interval:   interval,
		pendingTTL: pendingTTL,
	}
}

// Run sweeps every interval until ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.Sweep()
		case <-ctx.Done():
			j.log.Info("janitor stopped")
			return
		}
	}
}

// Sweep runs one cleanup pass. Errors are logged, the next pass retries.
func (j *Janitor) Sweep() {
	expired, err := j.cleaner.ExpirePendingBookings(j.pendingTTL)
	if err != nil {
		j.log.Error("failed to expire pending bookings", sl.Err(err))
	} else if expired > 0 {
		j.log.Info("expired pending bookings", slog.Int64("count", expired))
	}

	purged, err := j.cleaner.DeleteExpiredSessions()
	if err != nil {
		j.log.Error("failed to delete expired sessions", sl.Err(err))
	} else if purged > 0 {
		j.log.Debug("deleted expired sessions", slog.Int64("count", purged))
	}
}
