package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/travelingtastebuds/ttb-api/schema"
)

const defaultTimeout = 5 * time.Second

// MongoStore is the full set of document operations the API composes.
type MongoStore interface {
	Spot
	Testimonial
	Package
	Settings

	Ping() error
	SetupIndexes() error
	Close() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore wraps a connected mongo client.
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.client.Ping(ctx, readpref.Primary())
}

func (m *mongoDB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.client.Disconnect(ctx)
}

// SetupIndexes creates the indexes every collection relies on. It runs at
// startup and is idempotent on an already indexed database.
func (m *mongoDB) SetupIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := m.client.Database(m.database)

	if _, err := db.Collection(schema.SpotCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"name": 1}},
		{Keys: bson.M{"tags": 1}},
	}); err != nil {
		return err
	}

	if _, err := db.Collection(schema.TestimonialCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}); err != nil {
		return err
	}

	if _, err := db.Collection(schema.SettingsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"key": 1},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if _, err := db.Collection(schema.PackageCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.M{"sortOrder": 1},
	}); err != nil {
		return err
	}

	log.WithField("prefix", "mongo").Info("indexes ensured")
	return nil
}
