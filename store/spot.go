package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/travelingtastebuds/ttb-api/schema"
)

var (
	ErrSpotNotFound = fmt.Errorf("spot not found")
)

type Spot interface {
	CreateSpot(spot schema.Spot) (*schema.Spot, error)
	ListSpots() ([]schema.Spot, error)
	ListSpotRefs() ([]schema.SpotRef, error)
	GetSpot(id primitive.ObjectID) (*schema.Spot, error)
	ReplaceSpot(id primitive.ObjectID, spot schema.Spot) (*schema.Spot, error)
	DeleteSpot(id primitive.ObjectID) error
	CountSpots() (int64, error)
	SeedSpots(spots []schema.Spot) (int, error)
}

func (m *mongoDB) CreateSpot(spot schema.Spot) (*schema.Spot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	spot.ID = primitive.NilObjectID
	spot.CreatedAt = now
	spot.UpdatedAt = now

	c := m.client.Database(m.database).Collection(schema.SpotCollection)
	r, err := c.InsertOne(ctx, &spot)
	if err != nil {
		return nil, err
	}

	id, ok := r.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("incorrect inserted id")
	}
	spot.ID = id
	return &spot, nil
}

func (m *mongoDB) ListSpots() ([]schema.Spot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SpotCollection)
	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}

	spots := []schema.Spot{}
	if err := cursor.All(ctx, &spots); err != nil {
		return nil, err
	}
	return spots, nil
}

// ListSpotRefs fetches the projection used for the testimonial join.
func (m *mongoDB) ListSpotRefs() ([]schema.SpotRef, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SpotCollection)
	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{
		"name":        1,
		"logoImage":   1,
		"logoBgColor": 1,
		"location":    1,
		"tiktokId":    1,
	}))
	if err != nil {
		return nil, err
	}

	refs := []schema.SpotRef{}
	if err := cursor.All(ctx, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

func (m *mongoDB) GetSpot(id primitive.ObjectID) (*schema.Spot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SpotCollection)

	var spot schema.Spot
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&spot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}
	return &spot, nil
}

// ReplaceSpot overwrites every content field of a spot, keeping its
// identity and createdAt. Last writer wins.
func (m *mongoDB) ReplaceSpot(id primitive.ObjectID, spot schema.Spot) (*schema.Spot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	spot.ID = primitive.NilObjectID
	spot.CreatedAt = time.Time{}
	spot.UpdatedAt = time.Now().UTC()

	c := m.client.Database(m.database).Collection(schema.SpotCollection)

	var updated schema.Spot
	err := c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": &spot},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSpotNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (m *mongoDB) DeleteSpot(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SpotCollection)

	var deleted schema.Spot
	if err := c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrSpotNotFound
		}
		return err
	}
	return nil
}

func (m *mongoDB) CountSpots() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SpotCollection)
	return c.CountDocuments(ctx, bson.M{})
}

// SeedSpots bulk-inserts documents. The emptiness guard lives in the API
// layer; the store just inserts what it is given.
func (m *mongoDB) SeedSpots(spots []schema.Spot) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(spots))
	for i := range spots {
		spots[i].ID = primitive.NilObjectID
		spots[i].CreatedAt = now
		spots[i].UpdatedAt = now
		docs = append(docs, &spots[i])
	}

	c := m.client.Database(m.database).Collection(schema.SpotCollection)
	r, err := c.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(r.InsertedIDs), nil
}
