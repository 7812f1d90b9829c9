// Package mongodb contains the concrete implementation of the persistence
// layer using the official MongoDB driver. The client is opened at service
// start and closed at shutdown; no other part of the service touches the
// store directly.
package mongodb

import (
	"context"
	"log/slog"

	"github.com/OtooCodes/ecommerce-api/config"
	"github.com/OtooCodes/ecommerce-api/internal/domain/lifecycle"
	"github.com/OtooCodes/ecommerce-api/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle with managed lifecycle.
func New(params Params) (*mongo.Database, error) {
	if params.Config.Mongo == nil {
		return nil, errors.New("mongo configuration is missing")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}
