// Package validate cleans and validates untrusted request bodies before
// they are turned into storable documents. Validation and normalization
// are independent: callers are expected to gate every Build* call behind
// the matching *Errors call.
package validate

import (
	"math"
	"regexp"
	"strings"
)

var (
	tiktokIDPattern = regexp.MustCompile(`^\d{5,25}$`)
	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	nonDigits       = regexp.MustCompile(`\D`)
)

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// SanitizeString trims, strips angle brackets and truncates to max runes.
// Anything that is not a string sanitizes to the empty string.
func SanitizeString(v interface{}, max int) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = angleBrackets.Replace(strings.TrimSpace(s))
	if r := []rune(s); len(r) > max {
		return string(r[:max])
	}
	return s
}

// ValidImageURL accepts empty values, root-relative paths and https URLs.
func ValidImageURL(url string) bool {
	if url == "" {
		return true
	}
	return strings.HasPrefix(url, "/") || strings.HasPrefix(url, "https://")
}

// ValidHexColor reports whether s is "#" followed by 3 to 8 hex digits.
func ValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// NormalizeTikTokID strips every non-digit character and caps the result
// at 25 digits. Gated behind SpotErrors the result is always 5-25 digits.
func NormalizeTikTokID(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = nonDigits.ReplaceAllString(strings.TrimSpace(s), "")
	if len(s) > 25 {
		return s[:25]
	}
	return s
}

// RoundRating clamps r to [0,10] and rounds to the nearest half step.
func RoundRating(r float64) float64 {
	return math.Round(math.Min(10, math.Max(0, r))*2) / 2
}

// NormalizeTags lowercases, sanitizes and de-duplicates a tag list,
// keeping first-occurrence order and at most 20 entries.
func NormalizeTags(v interface{}) []string {
	arr, ok := v.([]interface{})
	if !ok {
		return []string{}
	}
	tags := make([]string, 0, len(arr))
	seen := map[string]struct{}{}
	for _, t := range arr {
		tag := strings.ToLower(SanitizeString(t, 50))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
		if len(tags) == 20 {
			break
		}
	}
	return tags
}

// stringVal returns the trimmed string value of a field, and whether the
// field held a non-blank string at all.
func stringVal(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}

func floatVal(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

// truthy mirrors loose boolean coercion: nil, false, empty string and
// zero are false, everything else is true.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

// orDefault substitutes def for falsy values before sanitization, so a
// blank icon still falls back while "  " sanitizes to empty.
func orDefault(v interface{}, def string) interface{} {
	if truthy(v) {
		return v
	}
	return def
}
