package validate

import (
	"math"

	"github.com/travelingtastebuds/ttb-api/schema"
)

// PackageErrors validates an untrusted package body.
func PackageErrors(body map[string]interface{}) []string {
	var errs []string

	if _, ok := stringVal(body["name"]); !ok {
		errs = append(errs, "Package name is required")
	}
	if _, ok := stringVal(body["price"]); !ok {
		errs = append(errs, "Price is required")
	}
	if features, ok := body["features"].([]interface{}); !ok || len(features) == 0 {
		errs = append(errs, "At least one feature is required")
	}
	if v, present := body["sortOrder"]; present && v != nil {
		if _, ok := floatVal(v); !ok {
			errs = append(errs, "Sort order must be a number")
		}
	}

	return errs
}

// BuildPackage normalizes a validated body into a storable document.
// Features with no text after sanitization are dropped, capped at 15.
func BuildPackage(body map[string]interface{}) schema.Package {
	features := []schema.PackageFeature{}
	if arr, ok := body["features"].([]interface{}); ok {
		for _, v := range arr {
			f, ok := v.(map[string]interface{})
			if !ok {
				continue
			}
			text := SanitizeString(f["text"], 200)
			if text == "" {
				continue
			}
			features = append(features, schema.PackageFeature{
				Icon: SanitizeString(orDefault(f["icon"], "fas fa-check"), 60),
				Text: text,
			})
			if len(features) == 15 {
				break
			}
		}
	}

	sortOrder := 0
	if n, ok := floatVal(body["sortOrder"]); ok {
		sortOrder = int(math.Round(n))
	}

	active := true
	if b, ok := body["active"].(bool); ok && !b {
		active = false
	}

	return schema.Package{
		Name:         SanitizeString(body["name"], 100),
		Price:        SanitizeString(body["price"], 50),
		PriceNote:    SanitizeString(body["priceNote"], 10),
		Description:  SanitizeString(body["description"], 300),
		Features:     features,
		ButtonText:   SanitizeString(orDefault(body["buttonText"], "Get Started"), 50),
		ButtonLink:   SanitizeString(orDefault(body["buttonLink"], "/contact"), 300),
		Highlighted:  truthy(body["highlighted"]),
		HeaderEmojis: SanitizeString(body["headerEmojis"], 50),
		Footnote:     SanitizeString(body["footnote"], 200),
		SortOrder:    sortOrder,
		Active:       active,
	}
}
