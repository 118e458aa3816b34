// Package postgres implements the user and pharmacy repositories on PostgreSQL
// with PostGIS, through GORM.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/Bilal-EZ-ZAIM/devopes/config"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/lifecycle"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/errors"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module provides the PostgreSQL-backed repositories.
var Module = fx.Options(
	fx.Provide(
		New,
		NewUserRepository,
		NewPharmacyRepository,
	),
)

const (
	poolStatsInterval      = 5 * time.Second
	poolWaitWarnThreshold  = 50 * time.Millisecond
	enablePostGISStatement = "CREATE EXTENSION IF NOT EXISTS postgis"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the master (and replica) pool. The connection is checked, the
// schema optionally migrated and pool contention watched once fx starts.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Every repository call is a single statement.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watchCtx, stopWatching := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Storage.AutoMigrate {
				if err := migrate(db.WithContext(ctx)); err != nil {
					return err
				}
				params.Logger.Info("Postgres schema migrated")
			}

			go watchPool(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatching()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// migrate enables PostGIS and creates the users and pharmacies tables with
// their unique email indexes.
func migrate(db *gorm.DB) error {
	if err := db.Exec(enablePostGISStatement).Error; err != nil {
		return errors.Wrap(err, "failed to enable postgis")
	}

	if err := db.AutoMigrate(&model.UserModel{}, &model.PharmacyModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate PostgreSQL schema")
	}

	return nil
}

func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if level, attrs, waited := poolWaitReport(prev, cur); waited {
				logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWaitReport describes connection waits between two pool snapshots.
// It reports false when no caller had to wait for a connection.
func poolWaitReport(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return slog.LevelDebug, nil, false
	}

	waited := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	if waited >= poolWaitWarnThreshold {
		return slog.LevelWarn, attrs, true
	}

	return slog.LevelDebug, attrs, true
}
