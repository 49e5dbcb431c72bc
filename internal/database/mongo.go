package database

import (
	"context"
	"fmt"

	"realestate_backend/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo holds the long-lived client and collection handles. It is created
// once at startup and shared by all requests; the driver's client is safe
// for concurrent use.
type Mongo struct {
	Client   *mongo.Client
	Database *mongo.Database

	Properties     *mongo.Collection
	Owners         *mongo.Collection
	PropertyImages *mongo.Collection
	PropertyTraces *mongo.Collection
}

// Connect opens the client, verifies the server is reachable and resolves
// the collection handles.
func Connect(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(cfg.Mongo.Database)
	return &Mongo{
		Client:         client,
		Database:       db,
		Properties:     db.Collection(cfg.Mongo.Collections.Properties),
		Owners:         db.Collection(cfg.Mongo.Collections.Owners),
		PropertyImages: db.Collection(cfg.Mongo.Collections.PropertyImages),
		PropertyTraces: db.Collection(cfg.Mongo.Collections.PropertyTraces),
	}, nil
}

// Ping reports whether the store is reachable. Used by the readiness
// endpoint.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the client.
func (m *Mongo) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the query paths rely on:
// a unique key on CodeInternal, range indexes on Price and CreatedAt,
// and the compound (IdProperty, Enabled) key the image lookup uses.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.Properties.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "CodeInternal", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "Price", Value: 1}}},
		{Keys: bson.D{{Key: "CreatedAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("create property indexes: %w", err)
	}

	_, err = m.PropertyImages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "IdProperty", Value: 1}, {Key: "Enabled", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create property image index: %w", err)
	}

	_, err = m.PropertyTraces.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "IdProperty", Value: 1}, {Key: "DateSale", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create property trace index: %w", err)
	}

	return nil
}
