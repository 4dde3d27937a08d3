package api

import (
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// requireAuth gates mutating routes behind a valid bearer token and
// stores the decoded role on the context.
func (s *Server) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		abortWithError(c, http.StatusUnauthorized, errorAuthRequired)
		return
	}

	role, err := s.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, errorInvalidToken)
		return
	}

	c.Set("role", role)
	c.Next()
}

func (s *Server) securityHeaders(c *gin.Context) {
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Frame-Options", "DENY")
	c.Header("X-XSS-Protection", "0")
	c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
	c.Next()
}

func (s *Server) limitBodySize(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	c.Next()
}

// dumpRequest logs incoming http requests if trace mode is enabled.
func (s *Server) dumpRequest(c *gin.Context) {
	if s.traceMode {
		dump, err := httputil.DumpRequest(c.Request, false)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix": "gin",
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).WithError(err).Error("fail to dump request")
		}

		log.WithFields(log.Fields{
			"prefix": "gin",
			"req":    string(dump),
		}).Debug("incoming request")
	}

	c.Next()
}
