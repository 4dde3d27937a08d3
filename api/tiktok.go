package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/travelingtastebuds/ttb-api/external/tiktok"
)

type oembedParams struct {
	URL string `json:"url"`
}

type oembedBatchParams struct {
	URLs []string `json:"urls"`
}

func (s *Server) fetchOEmbed(c *gin.Context) {
	var params oembedParams
	if err := c.ShouldBindJSON(&params); err != nil || params.URL == "" {
		abortWithError(c, http.StatusBadRequest, "TikTok URL is required")
		return
	}

	if !tiktok.IsVideoURL(params.URL) {
		abortWithError(c, http.StatusBadRequest, "Not a valid TikTok URL")
		return
	}

	data, err := s.tiktok.Fetch(c.Request.Context(), params.URL)
	if err != nil {
		var se *tiktok.StatusError
		if errors.As(err, &se) {
			abortWithError(c, se.StatusCode, se.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch TikTok data: "+err.Error(), err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// fetchOEmbedBatch settles every URL and reports per-item status; the
// response is a success even when individual items failed.
func (s *Server) fetchOEmbedBatch(c *gin.Context) {
	var params oembedBatchParams
	if err := c.ShouldBindJSON(&params); err != nil || len(params.URLs) == 0 {
		abortWithError(c, http.StatusBadRequest, `Provide a "urls" array`)
		return
	}
	if len(params.URLs) > tiktok.MaxBatchSize {
		abortWithError(c, http.StatusBadRequest, "Maximum 50 URLs per batch")
		return
	}

	results := s.tiktok.FetchBatch(c.Request.Context(), params.URLs)
	c.JSON(http.StatusOK, gin.H{"results": results})
}
