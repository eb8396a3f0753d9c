package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campushub/studenthub/internal/service"
)

// ReconcileWorker periodically rebuilds owner indexes from a full ticket
// scan, repairing tickets orphaned by a partial write.
type ReconcileWorker struct {
	feedback *service.FeedbackService
	interval time.Duration
	logger   *zap.Logger
}

// NewReconcileWorker constructs the worker.
func NewReconcileWorker(feedback *service.FeedbackService, interval time.Duration, logger *zap.Logger) *ReconcileWorker {
	return &ReconcileWorker{feedback: feedback, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled, reconciling once per interval.
func (w *ReconcileWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rebuilt, err := w.feedback.RebuildOwnerIndexes(ctx)
			if err != nil {
				w.logger.Error("owner index reconciliation failed", zap.Error(err))
				continue
			}
			w.logger.Info("owner indexes reconciled", zap.Int("owners", rebuilt))
		}
	}
}
