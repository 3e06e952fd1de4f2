package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"pavilion/config"
	"pavilion/internal/delivery"
	"pavilion/internal/delivery/scheduler"
	logs "pavilion/internal/infra/log"
	"pavilion/internal/infra/persistence/postgres"
	"pavilion/internal/usecase"
	"pavilion/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	once := flag.Bool("once", false, "run a single retention sweep and exit")
	flag.Parse()

	options := []fx.Option{
		injectInfra(),
		injectRepo(),
		injectUsecase(),
	}

	if *once {
		options = append(options, fx.Invoke(sweepOnce))
	} else {
		options = append(options,
			injectDelivery(),
			fx.Invoke(startServer),
		)
	}

	fx.New(options...).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewQueueRepository,
			postgres.NewFailureRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRetentionService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				scheduler.NewSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// sweepOnce runs one sweep after the database is reachable, then stops the app
func sweepOnce(lc fx.Lifecycle, shutdowner fx.Shutdowner, logger *slog.Logger, retentionUC usecase.RetentionUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				report := retentionUC.Sweep(context.Background())

				exitCode := 0
				if report.Queue.Err != nil || report.Failures.Err != nil {
					exitCode = 1
				}
				logger.Info("[Sweeper] One-off sweep finished",
					slog.Int64("queue_deleted", report.Queue.Deleted),
					slog.Int64("failures_deleted", report.Failures.Deleted),
					slog.Int("exit_code", exitCode),
				)

				if err := shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
					logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
					os.Exit(1)
				}
			}()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
