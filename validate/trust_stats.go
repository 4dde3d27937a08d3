package validate

import (
	"github.com/travelingtastebuds/ttb-api/schema"
)

// TrustStatsErrors validates the stats payload of a trust-stats update.
func TrustStatsErrors(body map[string]interface{}) []string {
	if stats, ok := body["stats"].([]interface{}); !ok || len(stats) == 0 || len(stats) > 6 {
		return []string{"Provide a stats array (1-6 items)"}
	}
	return nil
}

// BuildTrustStats normalizes a validated stats payload.
func BuildTrustStats(body map[string]interface{}) []schema.TrustStat {
	arr, _ := body["stats"].([]interface{})
	stats := make([]schema.TrustStat, 0, len(arr))
	for _, v := range arr {
		s, _ := v.(map[string]interface{})
		stats = append(stats, schema.TrustStat{
			Icon:   SanitizeString(orDefault(s["icon"], "fas fa-star"), 50),
			Number: SanitizeString(orDefault(s["number"], "0"), 20),
			Label:  SanitizeString(orDefault(s["label"], "Stat"), 50),
		})
	}
	return stats
}
