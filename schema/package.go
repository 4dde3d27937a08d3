package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PackageCollection = "packages"
)

type PackageFeature struct {
	Icon string `bson:"icon" json:"icon"`
	Text string `bson:"text" json:"text"`
}

// Package is a pricing tier. Inactive packages stay in the store and are
// filtered out by consumers, not by the API.
type Package struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Price        string             `bson:"price" json:"price"`
	PriceNote    string             `bson:"priceNote" json:"priceNote"`
	Description  string             `bson:"description" json:"description"`
	Features     []PackageFeature   `bson:"features" json:"features"`
	ButtonText   string             `bson:"buttonText" json:"buttonText"`
	ButtonLink   string             `bson:"buttonLink" json:"buttonLink"`
	Highlighted  bool               `bson:"highlighted" json:"highlighted"`
	HeaderEmojis string             `bson:"headerEmojis" json:"headerEmojis"`
	Footnote     string             `bson:"footnote" json:"footnote"`
	SortOrder    int                `bson:"sortOrder" json:"sortOrder"`
	Active       bool               `bson:"active" json:"active"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
