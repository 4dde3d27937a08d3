package validate

import (
	"math"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/travelingtastebuds/ttb-api/schema"
)

// TestimonialErrors validates an untrusted testimonial body.
func TestimonialErrors(body map[string]interface{}) []string {
	var errs []string

	if _, ok := stringVal(body["quote"]); !ok {
		errs = append(errs, "Quote is required")
	}
	if _, ok := stringVal(body["authorName"]); !ok {
		errs = append(errs, "Author name is required")
	}
	if _, ok := stringVal(body["location"]); !ok {
		errs = append(errs, "Location is required")
	}
	if v, present := body["rating"]; present && v != nil {
		if r, ok := floatVal(v); !ok || r < 1 || r > 5 {
			errs = append(errs, "Rating must be between 1 and 5")
		}
	}
	if url, ok := stringVal(body["tiktokUrl"]); ok && !strings.Contains(url, "tiktok.com") {
		errs = append(errs, "TikTok URL must be a valid TikTok link")
	}

	return errs
}

// BuildTestimonial normalizes a validated body into a storable document.
// SpotID is only kept when it is a well-formed object id; whether the
// spot exists is checked at read time, not here.
func BuildTestimonial(body map[string]interface{}) schema.Testimonial {
	rating := 5
	if v, present := body["rating"]; present && v != nil {
		if r, ok := floatVal(v); ok {
			rating = int(math.Min(5, math.Max(1, math.Round(r))))
		}
	}

	var spotID string
	if s, ok := body["spotId"].(string); ok && s != "" {
		if _, err := primitive.ObjectIDFromHex(s); err == nil {
			spotID = s
		}
	}

	featured := true
	if b, ok := body["featured"].(bool); ok && !b {
		featured = false
	}

	return schema.Testimonial{
		Quote:          SanitizeString(body["quote"], 500),
		AuthorName:     SanitizeString(body["authorName"], 100),
		RestaurantName: SanitizeString(body["restaurantName"], 100),
		Location:       SanitizeString(body["location"], 100),
		Date:           SanitizeString(body["date"], 50),
		Rating:         rating,
		Result:         SanitizeString(body["result"], 150),
		ResultIcon:     SanitizeString(orDefault(body["resultIcon"], "fas fa-chart-line"), 50),
		TikTokURL:      SanitizeString(body["tiktokUrl"], 300),
		Featured:       featured,
		SpotID:         spotID,
	}
}
