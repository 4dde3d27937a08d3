package validate

import (
	"github.com/travelingtastebuds/ttb-api/schema"
)

// SpotErrors validates an untrusted spot body and returns human-readable
// validation errors, empty when the body is acceptable.
func SpotErrors(body map[string]interface{}) []string {
	var errs []string

	if _, ok := stringVal(body["name"]); !ok {
		errs = append(errs, "Name is required")
	}
	if id, ok := stringVal(body["tiktokId"]); !ok {
		errs = append(errs, "TikTok Video ID is required")
	} else if !tiktokIDPattern.MatchString(id) {
		errs = append(errs, "TikTok Video ID must be a numeric string (5-25 digits)")
	}
	if lat, ok := floatVal(body["lat"]); !ok || lat < -90 || lat > 90 {
		errs = append(errs, "Valid latitude is required (-90 to 90)")
	}
	if lng, ok := floatVal(body["lng"]); !ok || lng < -180 || lng > 180 {
		errs = append(errs, "Valid longitude is required (-180 to 180)")
	}
	if _, ok := stringVal(body["location"]); !ok {
		errs = append(errs, "Location (city, state) is required")
	}
	if v, present := body["rating"]; present && v != nil {
		if r, ok := floatVal(v); !ok || r < 0 || r > 10 {
			errs = append(errs, "Rating must be between 0 and 10")
		}
	}
	if v := body["tags"]; truthy(v) {
		if _, ok := v.([]interface{}); !ok {
			errs = append(errs, "Tags must be an array")
		}
	}
	if v := body["foodImage"]; truthy(v) {
		if s, ok := v.(string); !ok || !ValidImageURL(s) {
			errs = append(errs, "Food image URL must start with / or https://")
		}
	}

	return errs
}

// BuildSpot normalizes a validated body into a storable document.
// A malformed logoImage is silently dropped; foodImage is the one image
// field the validator rejects loudly.
func BuildSpot(body map[string]interface{}) schema.Spot {
	logoImage := SanitizeString(body["logoImage"], 500)
	if !ValidImageURL(logoImage) {
		logoImage = ""
	}
	foodImage := SanitizeString(body["foodImage"], 500)
	if !ValidImageURL(foodImage) {
		foodImage = ""
	}

	var rating float64
	if v, present := body["rating"]; present && v != nil {
		if r, ok := floatVal(v); ok {
			rating = RoundRating(r)
		}
	}

	var logoBgColor string
	if s, ok := body["logoBgColor"].(string); ok {
		if trimmed := SanitizeString(s, 20); ValidHexColor(trimmed) {
			logoBgColor = trimmed
		}
	}

	lat, _ := floatVal(body["lat"])
	lng, _ := floatVal(body["lng"])

	return schema.Spot{
		Name:        SanitizeString(body["name"], 100),
		TikTokID:    NormalizeTikTokID(body["tiktokId"]),
		Lat:         lat,
		Lng:         lng,
		Location:    SanitizeString(body["location"], 200),
		Discount:    SanitizeString(body["discount"], 100),
		LogoImage:   logoImage,
		FoodImage:   foodImage,
		Tags:        NormalizeTags(body["tags"]),
		Rating:      rating,
		Snippet:     SanitizeString(body["snippet"], 300),
		LogoBgColor: logoBgColor,
	}
}
