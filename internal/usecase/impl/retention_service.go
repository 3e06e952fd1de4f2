package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pavilion/config"
	"pavilion/internal/domain/repository"
	"pavilion/internal/usecase"
)

type retentionService struct {
	logger      *slog.Logger
	queueRepo   repository.QueueRepository
	failureRepo repository.FailureRepository
	maxAge      time.Duration
	now         func() time.Time
}

// NewRetentionService creates a new retention service instance
func NewRetentionService(
	logger *slog.Logger,
	cfg *config.Config,
	queueRepo repository.QueueRepository,
	failureRepo repository.FailureRepository,
) usecase.RetentionUsecase {
	maxAge := config.DefaultRetentionWindow
	if cfg.Retention != nil && cfg.Retention.MaxAge > 0 {
		maxAge = cfg.Retention.MaxAge
	}

	return &retentionService{
		logger:      logger,
		queueRepo:   queueRepo,
		failureRepo: failureRepo,
		maxAge:      maxAge,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Sweep deletes both stores' expired rows concurrently
func (s *retentionService) Sweep(ctx context.Context) *usecase.SweepReport {
	report := &usecase.SweepReport{Cutoff: s.now().Add(-s.maxAge)}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		report.Queue = s.sweepStore(ctx, "queue", report.Cutoff, s.queueRepo.DeleteOlderThan)
	}()
	go func() {
		defer wg.Done()
		report.Failures = s.sweepStore(ctx, "failures", report.Cutoff, s.failureRepo.DeleteOlderThan)
	}()
	wg.Wait()

	return report
}

func (s *retentionService) sweepStore(
	ctx context.Context,
	store string,
	cutoff time.Time,
	deleteOlderThan func(context.Context, time.Time) (int64, error),
) usecase.StoreSweepResult {
	deleted, err := deleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("[Sweeper] Store sweep failed",
			slog.String("store", store),
			slog.Time("cutoff", cutoff),
			slog.Any("error", err),
		)

		return usecase.StoreSweepResult{Err: err}
	}

	if deleted > 0 {
		s.logger.Info("[Sweeper] Expired rows deleted",
			slog.String("store", store),
			slog.Time("cutoff", cutoff),
			slog.Int64("deleted", deleted),
		)
	} else {
		s.logger.Debug("[Sweeper] Nothing to delete", slog.String("store", store))
	}

	return usecase.StoreSweepResult{Deleted: deleted}
}
