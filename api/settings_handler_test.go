package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelingtastebuds/ttb-api/schema"
)

func TestGetTrustStatsDefaults(t *testing.T) {
	s, _ := newTestServer(&fakeStore{})

	w := doJSON(s, http.MethodGet, "/api/settings/trustStats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats := decodeResponse(t, w)["stats"].([]interface{})
	require.Len(t, stats, len(schema.DefaultTrustStats()))

	first := stats[0].(map[string]interface{})
	assert.Equal(t, schema.DefaultTrustStats()[0].Number, first["number"])
}

func TestUpdateTrustStats(t *testing.T) {
	mongoStore := &fakeStore{}
	s, _ := newTestServer(mongoStore)
	token := adminToken(t, s)

	w := doJSON(s, http.MethodPut, "/api/settings/trustStats", token, map[string]interface{}{
		"stats": []map[string]interface{}{},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Provide a stats array (1-6 items)", decodeResponse(t, w)["error"])
	assert.Nil(t, mongoStore.trustStats)

	w = doJSON(s, http.MethodPut, "/api/settings/trustStats", token, map[string]interface{}{
		"stats": []map[string]interface{}{
			{"icon": "fas fa-eye", "number": "1M+", "label": "Views"},
			{"number": "50+", "label": "Partners"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Trust stats updated", decodeResponse(t, w)["message"])

	require.NotNil(t, mongoStore.trustStats)
	require.Len(t, mongoStore.trustStats.Stats, 2)
	assert.Equal(t, "fas fa-star", mongoStore.trustStats.Stats[1].Icon)

	// Subsequent reads surface the stored stats, not the defaults.
	w = doJSON(s, http.MethodGet, "/api/settings/trustStats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeResponse(t, w)["stats"].([]interface{})
	require.Len(t, stats, 2)
	assert.Equal(t, "1M+", stats[0].(map[string]interface{})["number"])
}

func TestUpdateTrustStatsRequiresAuth(t *testing.T) {
	s, _ := newTestServer(&fakeStore{})

	w := doJSON(s, http.MethodPut, "/api/settings/trustStats", "", map[string]interface{}{
		"stats": []map[string]interface{}{{"number": "1", "label": "x"}},
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
