package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SpotCollection = "spots"
)

// Spot is one reviewed restaurant. Documents are replaced whole on
// update; only CreatedAt survives from the previous revision.
type Spot struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	TikTokID    string             `bson:"tiktokId" json:"tiktokId"`
	Lat         float64            `bson:"lat" json:"lat"`
	Lng         float64            `bson:"lng" json:"lng"`
	Location    string             `bson:"location" json:"location"`
	Discount    string             `bson:"discount" json:"discount"`
	LogoImage   string             `bson:"logoImage" json:"logoImage"`
	FoodImage   string             `bson:"foodImage" json:"foodImage"`
	LogoBgColor string             `bson:"logoBgColor" json:"logoBgColor"`
	Tags        []string           `bson:"tags" json:"tags"`
	Rating      float64            `bson:"rating" json:"rating"`
	Snippet     string             `bson:"snippet" json:"snippet"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SpotRef is the projection used when enriching testimonials. It carries
// just enough of a spot to render a card next to a quote.
type SpotRef struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	LogoImage   string             `bson:"logoImage" json:"logoImage"`
	LogoBgColor string             `bson:"logoBgColor" json:"logoBgColor"`
	Location    string             `bson:"location" json:"location"`
	TikTokID    string             `bson:"tiktokId" json:"tiktokId"`
}
