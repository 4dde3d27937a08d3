package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginParams struct {
	Password string `json:"password"`
}

func (s *Server) login(c *gin.Context) {
	var params loginParams
	if err := c.ShouldBindJSON(&params); err != nil || params.Password == "" {
		abortWithError(c, http.StatusBadRequest, "Password is required")
		return
	}

	if !s.passwords.Check(params.Password) {
		abortWithError(c, http.StatusUnauthorized, "Incorrect password")
		return
	}

	token, err := s.tokens.Issue()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Login failed. Please try again.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Logged in successfully",
		"token":     token,
		"expiresIn": "24h",
	})
}

func (s *Server) verifyToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"role":  c.GetString("role"),
	})
}
