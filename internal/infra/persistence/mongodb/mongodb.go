// Package mongodb contains the concrete implementation of the persistence layer using the MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"videotube/config"
	"videotube/internal/domain/lifecycle"
	"videotube/internal/errors"
	"videotube/internal/util"

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

// New creates the MongoDB client. The client is the only handle to the store;
// it is passed explicitly to every repository through the database returned by NewDatabase.
func New(params Params) (*mongo.Client, error) {
	if params.Config.Mongo.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}

	clientOpts := options.Client().
		ApplyURI(params.Config.Mongo.URI).
		SetConnectTimeout(params.Config.Mongo.ConnectTimeout).
		SetMonitor(newCommandLogger(params.Logger, params.Config).Monitor())

	connectCtx, cancel := context.WithTimeout(context.Background(), params.Config.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			start := time.Now()
			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, client.Database(params.Config.Mongo.Database)); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database),
				slog.String("elapsed", util.FormatDuration(time.Since(start))),
			)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect MongoDB")
		},
	})

	return client, nil
}

// NewDatabase returns the application database handle.
func NewDatabase(client *mongo.Client, cfg *config.Config) (*mongo.Database, error) {
	if cfg.Mongo.Database == "" {
		return nil, errors.New("mongo database name must be provided")
	}

	return client.Database(cfg.Mongo.Database), nil
}
