package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/travelingtastebuds/ttb-api/schema"
)

var (
	ErrSettingNotFound = fmt.Errorf("setting not found")
)

type Settings interface {
	GetTrustStats() (*schema.TrustStatsSettings, error)
	UpsertTrustStats(stats []schema.TrustStat) error
}

func (m *mongoDB) GetTrustStats() (*schema.TrustStatsSettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SettingsCollection)

	var doc schema.TrustStatsSettings
	if err := c.FindOne(ctx, bson.M{"key": schema.TrustStatsKey}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSettingNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// UpsertTrustStats replaces the singleton trust-stats document. The
// unique index on "key" keeps concurrent upserts from multiplying it.
func (m *mongoDB) UpsertTrustStats(stats []schema.TrustStat) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SettingsCollection)
	_, err := c.UpdateOne(ctx,
		bson.M{"key": schema.TrustStatsKey},
		bson.M{"$set": bson.M{
			"key":       schema.TrustStatsKey,
			"stats":     stats,
			"updatedAt": time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
