package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/OtooCodes/ecommerce-api/config"
	"github.com/OtooCodes/ecommerce-api/internal/delivery"
	"github.com/OtooCodes/ecommerce-api/internal/delivery/http"
	"github.com/OtooCodes/ecommerce-api/internal/delivery/http/middleware"
	"github.com/OtooCodes/ecommerce-api/internal/delivery/http/router/handler"
	"github.com/OtooCodes/ecommerce-api/internal/infra/auth"
	logs "github.com/OtooCodes/ecommerce-api/internal/infra/log"
	"github.com/OtooCodes/ecommerce-api/internal/infra/persistence/mongodb"
	"github.com/OtooCodes/ecommerce-api/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			mongodb.RegisterCatalogSeed,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewProductRepository,
			mongodb.NewUserRepository,
			mongodb.NewCartRepository,
			mongodb.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewUserService,
			impl.NewCartService,
			impl.NewCheckoutService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewUserHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
