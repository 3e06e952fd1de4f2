package main

import (
	"context"
	"log/slog"
	"os"

	"pavilion/config"
	"pavilion/internal/delivery"
	"pavilion/internal/delivery/stream"
	"pavilion/internal/delivery/worker"
	"pavilion/internal/delivery/worker/handler"
	"pavilion/internal/domain/constants"
	logs "pavilion/internal/infra/log"
	"pavilion/internal/infra/notification"
	"pavilion/internal/infra/persistence/postgres"
	"pavilion/internal/infra/pubsub"
	"pavilion/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(cfg),
		fx.Invoke(
			postgres.RegisterMigration,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
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

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFirebaseService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFailureRecorder,
			impl.NewDispatchService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

// injectDelivery always serves the push endpoint and adds the stream consumer for the redis transport
func injectDelivery(cfg *config.Config) fx.Option {
	options := []fx.Option{
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	}

	if cfg.PubSub != nil && cfg.PubSub.Provider == constants.PubSubProviderRedis {
		options = append(options, fx.Provide(
			newRedisClient,
			fx.Annotate(
				stream.NewConsumer,
				fx.ResultTags(`group:"deliveries"`),
			),
		))
	}

	return fx.Options(options...)
}

func newRedisClient(ctx context.Context, lc fx.Lifecycle, cfg *config.Config) (*redis.Client, error) {
	client, err := pubsub.NewRedisClient(ctx, cfg.PubSub.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
