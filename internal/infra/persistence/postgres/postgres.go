package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"pavilion/config"
	"pavilion/internal/domain/constants"
	"pavilion/internal/domain/lifecycle"
	"pavilion/internal/errors"
	"pavilion/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client and ties its lifetime to the application
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every write here is a single statement; no implicit transaction needed.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the tables backing the three stores.
// Production schemas are managed by the SQL files under migrations/.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return errors.Wrap(
		db.WithContext(ctx).AutoMigrate(
			&model.QueueEntryModel{},
			&model.FailureRecordModel{},
			&model.DeviceTokenModel{},
		),
		"failed to migrate schema",
	)
}

// MigrateParams defines the dependencies of RegisterMigration
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// RegisterMigration auto-migrates the schema on start in the develop environment
func RegisterMigration(params MigrateParams) {
	if params.Config.Env.Env != constants.EnvDevelop {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Logger.Info("Auto-migrating database schema")

			return Migrate(ctx, params.DB)
		},
	})
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waitDelta <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waitDurationDelta >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}

			logger.LogAttrs(ctx, level, "Postgres pool wait",
				slog.Int64("wait_count_delta", waitDelta),
				slog.Duration("wait_duration_delta", waitDurationDelta),
				slog.Duration("avg_wait", waitDurationDelta/time.Duration(waitDelta)),
				slog.Int("max_open_conns", cur.MaxOpenConnections),
				slog.Int("open_conns", cur.OpenConnections),
				slog.Int("in_use_conns", cur.InUse),
				slog.Int("idle_conns", cur.Idle),
			)
		}
	}
}
