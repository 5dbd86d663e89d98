// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package backend constructs the shared service clients: the MongoDB
// database handle, the Valkey session client, and the optional blob
// storage client. Construction is lazy — no connection is attempted until
// the first remote call, so a misconfigured service surfaces as an error
// on first use rather than at startup.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kalemci/internal/config"
	"kalemci/internal/storage"
)

// Clients bundles the service handles the application works against.
// Blob is nil when object storage is not configured.
type Clients struct {
	client   *mongo.Client
	DB       *mongo.Database
	Sessions *redis.Client
	Blob     *storage.Client
}

// Connect builds the service clients from configuration. Only client
// construction can fail here; reachability is checked by the first
// operation that actually talks to the service.
func Connect(cfg *config.Config) (*Clients, error) {
	mongoClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo client: %w", err)
	}

	valkey := redis.NewClient(&redis.Options{
		Addr:     cfg.ValkeyAddr(),
		Password: cfg.ValkeyPassword,
	})

	blob, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}
	if blob == nil {
		slog.Warn("object storage not configured, image uploads disabled")
	}

	return &Clients{
		client:   mongoClient,
		DB:       mongoClient.Database(cfg.MongoDB),
		Sessions: valkey,
		Blob:     blob,
	}, nil
}

// Close releases the underlying connections. Errors are logged, not
// returned; there is nothing a caller can do about them at shutdown.
func (c *Clients) Close(ctx context.Context) {
	if err := c.client.Disconnect(ctx); err != nil {
		slog.Error("failed to disconnect mongo client", "error", err)
	}
	if err := c.Sessions.Close(); err != nil {
		slog.Error("failed to close valkey client", "error", err)
	}
}
