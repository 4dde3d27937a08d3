package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TestimonialCollection = "testimonials"
)

// Testimonial links to a Spot through SpotID, a soft reference kept as a
// hex string. The spot is resolved at read time and may be gone.
type Testimonial struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Quote          string             `bson:"quote" json:"quote"`
	AuthorName     string             `bson:"authorName" json:"authorName"`
	RestaurantName string             `bson:"restaurantName" json:"restaurantName"`
	Location       string             `bson:"location" json:"location"`
	Date           string             `bson:"date" json:"date"`
	Rating         int                `bson:"rating" json:"rating"`
	Result         string             `bson:"result" json:"result"`
	ResultIcon     string             `bson:"resultIcon" json:"resultIcon"`
	TikTokURL      string             `bson:"tiktokUrl" json:"tiktokUrl"`
	Featured       bool               `bson:"featured" json:"featured"`
	SpotID         string             `bson:"spotId" json:"spotId"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EnrichedTestimonial is a client response only structure: a testimonial
// plus the best-effort resolved spot, null when nothing matches.
type EnrichedTestimonial struct {
	Testimonial `bson:",inline"`
	Spot        *SpotRef `json:"spot"`
}
