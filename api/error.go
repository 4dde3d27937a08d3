package api

import (
	log "github.com/sirupsen/logrus"

	"github.com/gin-gonic/gin"
)

// Auth failures use uniform messages on purpose: callers cannot tell
// which check failed.
const (
	errorAuthRequired = "Authentication required"
	errorInvalidToken = "Invalid or expired token. Please log in again."
)

// abortWithError logs the underlying error, when given, and answers with
// the public message only.
func abortWithError(c *gin.Context, status int, message string, errs ...error) {
	if len(errs) > 0 && errs[0] != nil {
		log.WithFields(log.Fields{
			"prefix": "api",
			"status": status,
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).WithError(errs[0]).Error(message)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
