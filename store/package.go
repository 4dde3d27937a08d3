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
	ErrPackageNotFound = fmt.Errorf("package not found")
)

type Package interface {
	CreatePackage(pkg schema.Package) (*schema.Package, error)
	ListPackages() ([]schema.Package, error)
	ReplacePackage(id primitive.ObjectID, pkg schema.Package) (*schema.Package, error)
	DeletePackage(id primitive.ObjectID) error
}

func (m *mongoDB) CreatePackage(pkg schema.Package) (*schema.Package, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	pkg.ID = primitive.NilObjectID
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	c := m.client.Database(m.database).Collection(schema.PackageCollection)
	r, err := c.InsertOne(ctx, &pkg)
	if err != nil {
		return nil, err
	}

	id, ok := r.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("incorrect inserted id")
	}
	pkg.ID = id
	return &pkg, nil
}

// ListPackages returns packages in display order: sortOrder ascending,
// then insertion order for ties.
func (m *mongoDB) ListPackages() ([]schema.Package, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PackageCollection)
	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{
		{Key: "sortOrder", Value: 1},
		{Key: "createdAt", Value: 1},
	}))
	if err != nil {
		return nil, err
	}

	packages := []schema.Package{}
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (m *mongoDB) ReplacePackage(id primitive.ObjectID, pkg schema.Package) (*schema.Package, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pkg.ID = primitive.NilObjectID
	pkg.CreatedAt = time.Time{}
	pkg.UpdatedAt = time.Now().UTC()

	c := m.client.Database(m.database).Collection(schema.PackageCollection)

	var updated schema.Package
	err := c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": &pkg},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (m *mongoDB) DeletePackage(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PackageCollection)

	var deleted schema.Package
	if err := c.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPackageNotFound
		}
		return err
	}
	return nil
}
