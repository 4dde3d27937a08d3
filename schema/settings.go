package schema

import "time"

const (
	SettingsCollection = "settings"

	// TrustStatsKey is the well-known key of the singleton trust-stats
	// settings document.
	TrustStatsKey = "trustStats"
)

type TrustStat struct {
	Icon   string `bson:"icon" json:"icon"`
	Number string `bson:"number" json:"number"`
	Label  string `bson:"label" json:"label"`
}

// TrustStatsSettings is upserted by key, never inserted twice. A unique
// index on "key" backs that up.
type TrustStatsSettings struct {
	Key       string      `bson:"key" json:"key"`
	Stats     []TrustStat `bson:"stats" json:"stats"`
	UpdatedAt time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// DefaultTrustStats is served when no trust-stats document has been
// saved yet.
func DefaultTrustStats() []TrustStat {
	return []TrustStat{
		{Icon: "fas fa-utensils", Number: "50+", Label: "Restaurants Featured"},
		{Icon: "fas fa-star", Number: "5.0", Label: "Average Rating"},
		{Icon: "fas fa-eye", Number: "10M+", Label: "Total Views"},
		{Icon: "fas fa-handshake", Number: "100%", Label: "Satisfaction"},
	}
}
