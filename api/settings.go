package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/travelingtastebuds/ttb-api/schema"
	"github.com/travelingtastebuds/ttb-api/store"
	"github.com/travelingtastebuds/ttb-api/validate"
)

func (s *Server) getTrustStats(c *gin.Context) {
	doc, err := s.mongoStore.GetTrustStats()
	if err != nil {
		if errors.Is(err, store.ErrSettingNotFound) {
			c.JSON(http.StatusOK, gin.H{"stats": schema.DefaultTrustStats()})
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load trust stats", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": doc.Stats})
}

func (s *Server) updateTrustStats(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := validate.TrustStatsErrors(body); len(errs) > 0 {
		abortWithError(c, http.StatusBadRequest, strings.Join(errs, ". "))
		return
	}

	stats := validate.BuildTrustStats(body)
	if err := s.mongoStore.UpsertTrustStats(stats); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to update trust stats", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Trust stats updated",
		"stats":   stats,
	})
}
