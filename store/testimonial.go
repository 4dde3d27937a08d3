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
	ErrTestimonialNotFound = fmt.Errorf("testimonial not found")
)

type Testimonial interface {
	CreateTestimonial(t schema.Testimonial) (*schema.Testimonial, error)
	ListTestimonials() ([]schema.Testimonial, error)
	ReplaceTestimonial(id primitive.ObjectID, t schema.Testimonial) (*schema.Testimonial, error)
	DeleteTestimonial(id primitive.ObjectID) error
}

func (m *mongoDB) CreateTestimonial(t schema.Testimonial) (*schema.Testimonial, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	t.ID = primitive.NilObjectID
	t.CreatedAt = now
	t.UpdatedAt = now

	c := m.client.Database(m.database).Collection(schema.TestimonialCollection)
	r, err := c.InsertOne(ctx, &t)
	if err != nil {
		return nil, err
	}

	id, ok := r.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("incorrect inserted id")
	}
	t.ID = id
	return &t, nil
}

// ListTestimonials returns testimonials newest first. Spot enrichment is
// layered on by the API, not here.
func (m *mongoDB) ListTestimonials() ([]schema.Testimonial, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.TestimonialCollection)
	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}

	testimonials := []schema.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (m *mongoDB) ReplaceTestimonial(id primitive.ObjectID, t schema.Testimonial) (*schema.Testimonial, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	t.ID = primitive.NilObjectID
	t.CreatedAt = time.Time{}
	t.UpdatedAt = time.Now().UTC()

	c := m.client.Database(m.database).Collection(schema.TestimonialCollection)

	var updated schema.Testimonial
	err := c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": &t},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (m *mongoDB) DeleteTestimonial(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.TestimonialCollection)

	var deleted schema.Testimonial
	if err := c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrTestimonialNotFound
		}
		return err
	}
	return nil
}
