package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/travelingtastebuds/ttb-api/schema"
	"github.com/travelingtastebuds/ttb-api/store"
	"github.com/travelingtastebuds/ttb-api/validate"
)

// enrichTestimonials resolves each testimonial's spot best-effort: exact
// id match first, then case-insensitive restaurant name, else nil. A
// renamed or deleted spot silently drops the enrichment.
func enrichTestimonials(testimonials []schema.Testimonial, spots []schema.SpotRef) []schema.EnrichedTestimonial {
	byID := make(map[string]*schema.SpotRef, len(spots))
	byName := make(map[string]*schema.SpotRef, len(spots))
	for i := range spots {
		ref := &spots[i]
		byID[ref.ID.Hex()] = ref
		if ref.Name != "" {
			byName[strings.ToLower(strings.TrimSpace(ref.Name))] = ref
		}
	}

	enriched := make([]schema.EnrichedTestimonial, len(testimonials))
	for i, t := range testimonials {
		var spot *schema.SpotRef
		if t.SpotID != "" {
			spot = byID[t.SpotID]
		}
		if spot == nil && t.RestaurantName != "" {
			spot = byName[strings.ToLower(strings.TrimSpace(t.RestaurantName))]
		}
		enriched[i] = schema.EnrichedTestimonial{Testimonial: t, Spot: spot}
	}
	return enriched
}

func (s *Server) listTestimonials(c *gin.Context) {
	testimonials, err := s.mongoStore.ListTestimonials()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load testimonials", err)
		return
	}

	refs, err := s.mongoStore.ListSpotRefs()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load testimonials", err)
		return
	}

	enriched := enrichTestimonials(testimonials, refs)
	c.JSON(http.StatusOK, gin.H{
		"testimonials": enriched,
		"count":        len(enriched),
	})
}

func (s *Server) createTestimonial(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := validate.TestimonialErrors(body); len(errs) > 0 {
		abortWithError(c, http.StatusBadRequest, strings.Join(errs, ". "))
		return
	}

	created, err := s.mongoStore.CreateTestimonial(validate.BuildTestimonial(body))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create testimonial", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Testimonial created",
		"testimonial": created,
	})
}

func (s *Server) updateTestimonial(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid testimonial ID")
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := validate.TestimonialErrors(body); len(errs) > 0 {
		abortWithError(c, http.StatusBadRequest, strings.Join(errs, ". "))
		return
	}

	updated, err := s.mongoStore.ReplaceTestimonial(id, validate.BuildTestimonial(body))
	if err != nil {
		if errors.Is(err, store.ErrTestimonialNotFound) {
			abortWithError(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update testimonial", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Testimonial updated",
		"testimonial": updated,
	})
}

func (s *Server) deleteTestimonial(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid testimonial ID")
		return
	}

	if err := s.mongoStore.DeleteTestimonial(id); err != nil {
		if errors.Is(err, store.ErrTestimonialNotFound) {
			abortWithError(c, http.StatusNotFound, "Testimonial not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete testimonial", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Testimonial deleted",
	})
}
