// Package mongodb contains the MongoDB implementation of the persistence layer.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"github.com/Bilal-EZ-ZAIM/devopes/config"
	deliverycontext "github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/context"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/lifecycle"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	usersCollection      = "users"
	pharmaciesCollection = "pharmacies"

	defaultConnectTimeout = 10 * time.Second
	defaultMongoDatabase  = "pharmacy"
)

// Module provides the MongoDB-backed repositories.
var Module = fx.Options(
	fx.Provide(
		New,
		NewDatabase,
		NewUserRepository,
		NewPharmacyRepository,
	),
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and ties its connection to the fx lifecycle.
func New(params Params) (*mongo.Client, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo configuration is missing")
	}

	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout).
		SetMonitor(newCommandMonitor(params.Logger, params.Config.Env.Debug, params.Config.Storage.SlowThreshold()))
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			return ensureIndexes(ctx, client.Database(databaseName(params.Config)))
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return client.Disconnect(ctx)
		},
	})

	return client, nil
}

// NewDatabase returns the configured database handle.
func NewDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(databaseName(cfg))
}

func databaseName(cfg *config.Config) string {
	if cfg.Mongo != nil && cfg.Mongo.Database != "" {
		return cfg.Mongo.Database
	}

	return defaultMongoDatabase
}

// ensureIndexes creates the unique email indexes and the 2dsphere index used by $geoNear.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
	}); err != nil {
		return errors.Wrap(err, "failed to create users email index")
	}

	if _, err := db.Collection(pharmaciesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_pharmacies_email"),
		},
		{
			Keys:    bson.D{{Key: "location", Value: "2dsphere"}},
			Options: options.Index().SetName("geo_pharmacies_location"),
		},
		{
			Keys:    bson.D{{Key: "isOnGard", Value: 1}},
			Options: options.Index().SetName("idx_pharmacies_on_gard"),
		},
	}); err != nil {
		return errors.Wrap(err, "failed to create pharmacies indexes")
	}

	return nil
}

// newCommandMonitor routes driver command events to the request-scoped logger.
// Failures are always logged, slow commands at warn, and every success at debug when enabled.
func newCommandMonitor(logger *slog.Logger, debug bool, slowThreshold time.Duration) *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			if logger == nil {
				return
			}

			attrs := commandAttrs(&evt.CommandFinishedEvent)
			switch {
			case slowThreshold > 0 && evt.Duration >= slowThreshold:
				deliverycontext.GetLoggerOrDefault(ctx, logger).LogAttrs(ctx, slog.LevelWarn, "Mongo slow command", attrs...)
			case debug:
				deliverycontext.GetLoggerOrDefault(ctx, logger).LogAttrs(ctx, slog.LevelDebug, "Mongo command", attrs...)
			}
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			if logger == nil {
				return
			}

			attrs := commandAttrs(&evt.CommandFinishedEvent)
			attrs = append(attrs, slog.String("error", evt.Failure))
			deliverycontext.GetLoggerOrDefault(ctx, logger).LogAttrs(ctx, slog.LevelError, "Mongo command failed", attrs...)
		},
	}
}

func commandAttrs(evt *event.CommandFinishedEvent) []slog.Attr {
	return []slog.Attr{
		slog.String("command", evt.CommandName),
		slog.String("database", evt.DatabaseName),
		slog.Int64("requestId", evt.RequestID),
		slog.Duration("elapsed", evt.Duration),
	}
}
