package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/travelingtastebuds/ttb-api/store"
	"github.com/travelingtastebuds/ttb-api/validate"
)

func (s *Server) listSpots(c *gin.Context) {
	spots, err := s.mongoStore.ListSpots()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load spots. Please try again.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"spots": spots,
		"count": len(spots),
	})
}

func (s *Server) getSpot(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid spot ID")
		return
	}

	spot, err := s.mongoStore.GetSpot(id)
	if err != nil {
		if errors.Is(err, store.ErrSpotNotFound) {
			abortWithError(c, http.StatusNotFound, "Spot not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load spot", err)
		return
	}

	c.JSON(http.StatusOK, spot)
}

func (s *Server) createSpot(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := validate.SpotErrors(body); len(errs) > 0 {
		abortWithError(c, http.StatusBadRequest, strings.Join(errs, ". "))
		return
	}

	created, err := s.mongoStore.CreateSpot(validate.BuildSpot(body))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create spot. Please try again.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Spot created successfully",
		"spot":    created,
	})
}

func (s *Server) updateSpot(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid spot ID")
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := validate.SpotErrors(body); len(errs) > 0 {
		abortWithError(c, http.StatusBadRequest, strings.Join(errs, ". "))
		return
	}

	updated, err := s.mongoStore.ReplaceSpot(id, validate.BuildSpot(body))
	if err != nil {
		if errors.Is(err, store.ErrSpotNotFound) {
			abortWithError(c, http.StatusNotFound, "Spot not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update spot. Please try again.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Spot updated successfully",
		"spot":    updated,
	})
}

func (s *Server) deleteSpot(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid spot ID")
		return
	}

	if err := s.mongoStore.DeleteSpot(id); err != nil {
		if errors.Is(err, store.ErrSpotNotFound) {
			abortWithError(c, http.StatusNotFound, "Spot not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete spot. Please try again.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Spot deleted successfully",
	})
}
