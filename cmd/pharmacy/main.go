package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Bilal-EZ-ZAIM/devopes/config"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/delivery"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/api"
	apimiddleware "github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/api/middleware"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/delivery/api/router/handler"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/infra/auth"
	logs "github.com/Bilal-EZ-ZAIM/devopes/internal/infra/log"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/infra/persistence/mongodb"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/infra/persistence/postgres"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/infra/pubsub"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/infra/qrcode"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
		injectRepo(cfg),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

// injectRepo selects the store backing the repositories.
func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Storage != nil && cfg.Storage.Driver == config.DriverPostgres {
		return postgres.Module
	}

	return mongodb.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPharmacyService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPharmacyHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
