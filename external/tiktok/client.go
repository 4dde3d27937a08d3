// Package tiktok proxies the public TikTok oEmbed endpoint. Responses
// are passed through untouched so admin tooling sees exactly what the
// upstream returns.
package tiktok

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultEndpoint is the public oEmbed endpoint.
const DefaultEndpoint = "https://www.tiktok.com/oembed"

// MaxBatchSize caps how many URLs one batch request may carry.
const MaxBatchSize = 50

// StatusError is a non-200 answer from the oEmbed endpoint. The upstream
// status is forwarded to the caller on single fetches.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("TikTok oEmbed request failed (status %d)", e.StatusCode)
}

// IsVideoURL reports whether u plausibly points at TikTok.
func IsVideoURL(u string) bool {
	return strings.Contains(u, "tiktok.com/")
}

type Client struct {
	endpoint string
	client   *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Fetch returns the raw oEmbed metadata for one video URL.
func (c *Client) Fetch(ctx context.Context, videoURL string) (map[string]interface{}, error) {
	reqURL := c.endpoint + "?" + url.Values{"url": []string{videoURL}}.Encode()
	log.WithField("prefix", "tiktok").WithField("req", reqURL).Debug("request to oembed")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("prefix", "tiktok").WithField("status", resp.StatusCode).Error("error response from oembed")
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

// FetchBatch fetches metadata for every URL concurrently and never fails
// as a whole: each result carries either the merged metadata or an
// "error" entry, in input order.
func (c *Client) FetchBatch(ctx context.Context, urls []string) []map[string]interface{} {
	results := make([]map[string]interface{}, len(urls))

	var wg sync.WaitGroup
	for i, u := range urls {
		if !IsVideoURL(u) {
			results[i] = map[string]interface{}{"url": u, "error": "Invalid TikTok URL"}
			continue
		}

		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()

			data, err := c.Fetch(ctx, u)
			if err != nil {
				msg := err.Error()
				if se, ok := err.(*StatusError); ok {
					msg = fmt.Sprintf("Status %d", se.StatusCode)
				}
				results[i] = map[string]interface{}{"url": u, "error": msg}
				return
			}
			merged := map[string]interface{}{"url": u}
			for k, v := range data {
				merged[k] = v
			}
			results[i] = merged
		}(i, u)
	}
	wg.Wait()

	return results
}
