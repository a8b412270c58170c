package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ToeMom/GroupUp-Final/services"
)

// ExpiryWorker periodically removes events whose date has passed.
type ExpiryWorker struct {
	sweeper  *services.SweeperService
	interval time.Duration
}

func NewExpiryWorker(sweeper *services.SweeperService, interval time.Duration) *ExpiryWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ExpiryWorker{sweeper: sweeper, interval: interval}
}

// Run blocks until ctx is cancelled. One sweep runs immediately on start.
func (w *ExpiryWorker) Run(ctx context.Context) {
	logrus.WithField("interval", w.interval).Info("expiry worker started")

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logrus.Info("expiry worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) {
	result, err := w.sweeper.Sweep(ctx)
	if err != nil {
		logrus.WithError(err).Error("expiry sweep failed")
		return
	}
	if result.Count > 0 {
		logrus.WithFields(logrus.Fields{
			"count": result.Count,
			"ids":   result.DeletedIDs,
		}).Info("expired events removed")
	}
}
