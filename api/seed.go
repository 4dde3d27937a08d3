package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/travelingtastebuds/ttb-api/schema"
	"github.com/travelingtastebuds/ttb-api/validate"
)

// seedSpots bulk-loads spots into an empty collection. It refuses to run
// twice: once any spot exists the endpoint answers with a conflict.
func (s *Server) seedSpots(c *gin.Context) {
	count, err := s.mongoStore.CountSpots()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to seed database", err)
		return
	}
	if count > 0 {
		abortWithError(c, http.StatusBadRequest, "Database already has data. Delete all spots first if you want to re-seed.")
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	items, ok := body["spots"].([]interface{})
	if !ok || len(items) == 0 {
		abortWithError(c, http.StatusBadRequest, `Provide a "spots" array in the request body`)
		return
	}

	docs := make([]schema.Spot, 0, len(items))
	for _, item := range items {
		raw, _ := item.(map[string]interface{})
		docs = append(docs, validate.BuildSpot(raw))
	}

	inserted, err := s.mongoStore.SeedSpots(docs)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to seed database", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Successfully seeded %d spots", inserted),
		"count":   inserted,
	})
}
