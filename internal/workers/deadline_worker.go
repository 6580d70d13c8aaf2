package workers

import (
	"context"
	"time"

	"placement_backend/internal/logger"
	"placement_backend/internal/repositories"
)

// DeadlineWorker deactivates postings whose application deadline has
// passed so they drop out of the open listing and matching.
type DeadlineWorker struct {
	jobRepo  repositories.JobRepository
	interval time.Duration
}

func NewDeadlineWorker(jobRepo repositories.JobRepository) *DeadlineWorker {
	return &DeadlineWorker{
		jobRepo:  jobRepo,
		interval: time.Hour,
	}
}

// Start runs the worker until ctx is cancelled. One pass runs immediately
// so a restart does not leave stale postings open for an hour.
func (w *DeadlineWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *DeadlineWorker) run(ctx context.Context) {
	w.closeExpired()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("deadline worker stopped")
			return
		case <-ticker.C:
			w.closeExpired()
		}
	}
}

func (w *DeadlineWorker) closeExpired() {
	closed, err := w.jobRepo.CloseExpired(time.Now())
	if err != nil {
		logger.WorkerLog("deadline", "close expired postings", err)
		return
	}
	if closed > 0 {
		logger.Info("closed expired postings", "worker", "deadline", "count", closed)
	}
}
