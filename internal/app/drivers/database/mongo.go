package database

import (
	"context"
	"fmt"
	"net/url"

	"cpn-service/internal/app/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoDB connects and pings the audit database. The caller owns the
// returned client and disconnects it on shutdown.
func NewMongoDB(ctx context.Context, cfg config.MongoDB) (*mongo.Client, error) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%s",
		url.QueryEscape(cfg.Username),
		url.QueryEscape(cfg.Password),
		cfg.Host,
		cfg.Port,
	)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}
