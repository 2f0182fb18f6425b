package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"vetbridge/internal/config"
)

// Connect establishes the MongoDB connection with retry and returns a handle
// to the configured database.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	var (
		client *mongo.Client
		err    error
	)

	for i := 0; i < cfg.MongoRetryAttempts; i++ {
		client, err = mongo.Connect(
			options.Client().
				ApplyURI(cfg.MongoURL).
				SetConnectTimeout(cfg.MongoConnectTimeout),
		)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, cfg.MongoConnectTimeout)
			err = client.Ping(pingCtx, nil)
			cancel()
			if err == nil {
				log.Println("MongoDB connection established")
				return client.Database(cfg.MongoDatabase), nil
			}
		}
		log.Printf("MongoDB connection attempt %d failed: %v", i+1, err)
		if i < cfg.MongoRetryAttempts-1 {
			log.Printf("Retrying in %v...", cfg.MongoRetryInterval)
			time.Sleep(cfg.MongoRetryInterval)
		}
	}

	return nil, fmt.Errorf("failed to connect to MongoDB after %d attempts: %w", cfg.MongoRetryAttempts, err)
}

// Healthcheck reports whether the server behind db is still reachable.
func Healthcheck(ctx context.Context, db *mongo.Database) error {
	if err := db.Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo healthcheck failed: %w", err)
	}
	return nil
}
