package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dbName = "solo-db"

// Collections bundles the handles the stores are built on. It is
// constructed once in main and injected, never held as a package
// global.
type Collections struct {
	Jobs *mongo.Collection
	Bids *mongo.Collection
}

func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

func NewCollections(client *mongo.Client) *Collections {
	database := client.Database(dbName)
	return &Collections{
		Jobs: database.Collection("jobs"),
		Bids: database.Collection("bids"),
	}
}

// EnsureIndexes creates the unique (email, jobId) index that backs the
// one-bid-per-job invariant.
func EnsureIndexes(ctx context.Context, c *Collections) error {
	_, err := c.Bids.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "jobId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create bids index: %w", err)
	}
	return nil
}
