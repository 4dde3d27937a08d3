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

func (s *Server) listPackages(c *gin.Context) {
	packages, err := s.mongoStore.ListPackages()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to load packages", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"packages": packages,
		"count":    len(packages),
	})
}

func (s *Server) createPackage(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := validate.PackageErrors(body); len(errs) > 0 {
		abortWithError(c, http.StatusBadRequest, strings.Join(errs, ". "))
		return
	}

	created, err := s.mongoStore.CreatePackage(validate.BuildPackage(body))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create package", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Package created",
		"package": created,
	})
}

func (s *Server) updatePackage(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid package ID")
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if errs := validate.PackageErrors(body); len(errs) > 0 {
		abortWithError(c, http.StatusBadRequest, strings.Join(errs, ". "))
		return
	}

	updated, err := s.mongoStore.ReplacePackage(id, validate.BuildPackage(body))
	if err != nil {
		if errors.Is(err, store.ErrPackageNotFound) {
			abortWithError(c, http.StatusNotFound, "Package not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to update package", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Package updated",
		"package": updated,
	})
}

func (s *Server) deletePackage(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid package ID")
		return
	}

	if err := s.mongoStore.DeletePackage(id); err != nil {
		if errors.Is(err, store.ErrPackageNotFound) {
			abortWithError(c, http.StatusNotFound, "Package not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to delete package", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Package deleted",
	})
}
