// Package scheduler runs the retention sweep on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pavilion/config"
	"pavilion/internal/delivery"
	"pavilion/internal/domain/lifecycle"
	"pavilion/internal/errors"
	"pavilion/internal/usecase"

	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the sweeper, injected by Fx.
type SweeperParams struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	Logger      *slog.Logger
	RetentionUC usecase.RetentionUsecase
}

type sweeper struct {
	interval    time.Duration
	runOnStart  bool
	logger      *slog.Logger
	retentionUC usecase.RetentionUsecase

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// NewSweeper creates the periodic retention delivery
func NewSweeper(params SweeperParams) delivery.Delivery {
	interval := config.DefaultRetentionWindow
	runOnStart := false
	if params.Config.Retention != nil {
		if params.Config.Retention.Interval > 0 {
			interval = params.Config.Retention.Interval
		}
		runOnStart = params.Config.Retention.RunOnStart
	}

	s := newSweeper(interval, runOnStart, params.Logger, params.RetentionUC)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

func newSweeper(interval time.Duration, runOnStart bool, logger *slog.Logger, retentionUC usecase.RetentionUsecase) *sweeper {
	return &sweeper{
		interval:    interval,
		runOnStart:  runOnStart,
		logger:      logger,
		retentionUC: retentionUC,
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Serve sweeps once per interval until stopped
func (s *sweeper) Serve(ctx context.Context) error {
	defer close(s.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	s.logger.Info("Starting retention sweeper", slog.Duration("interval", s.interval))

	if s.runOnStart {
		s.RunOnce(ctx)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs one sweep and logs its report
func (s *sweeper) RunOnce(ctx context.Context) *usecase.SweepReport {
	report := s.retentionUC.Sweep(ctx)

	level := slog.LevelInfo
	if report.Queue.Err != nil || report.Failures.Err != nil {
		level = slog.LevelWarn
	}

	s.logger.Log(ctx, level, "[Sweeper] Retention run finished",
		slog.Time("cutoff", report.Cutoff),
		slog.Int64("queue_deleted", report.Queue.Deleted),
		slog.Int64("failures_deleted", report.Failures.Deleted),
		slog.Bool("queue_ok", report.Queue.Err == nil),
		slog.Bool("failures_ok", report.Failures.Err == nil),
	)

	return report
}

func (s *sweeper) stop(ctx context.Context) error {
	s.logger.Info("Shutting down retention sweeper")
	s.stopOnce.Do(func() { close(s.stopCh) })

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
