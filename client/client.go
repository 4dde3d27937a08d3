package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/travelingtastebuds/ttb-api/schema"
)

// DefaultTTL bounds how long a cached read is served without hitting
// the API again.
const DefaultTTL = 5 * time.Minute

const (
	keySpots        = "spots"
	keyTestimonials = "testimonials"
	keyPackages     = "packages"
	keyTrustStats   = "trustStats"
)

// APIError carries the server's error envelope for a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// TokenStore persists the bearer token across sessions. IsLoggedIn is a
// presence check only; whether the token is still accepted is learned
// from Verify.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
	IsLoggedIn() bool
}

type cacheEntry struct {
	data      interface{}
	fetchedAt time.Time
	ttl       time.Duration
}

// Client is the authenticated data facade used by admin tooling. Reads
// are cached per resource; a successful mutation evicts exactly the
// mutated resource, a failed one leaves the cache untouched.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenStore

	mu    sync.Mutex
	cache map[string]cacheEntry
	ttl   time.Duration
	now   func() time.Time
}

func New(baseURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		cache:   make(map[string]cacheEntry),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
}

func (c *Client) cached(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[key]
	if !ok || c.now().Sub(entry.fetchedAt) >= entry.ttl {
		return nil, false
	}
	return entry.data, true
}

func (c *Client) store(key string, data interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{data: data, fetchedAt: c.now(), ttl: c.ttl}
}

func (c *Client) invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, key)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, authed bool, out interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		token, err := c.tokens.Load()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		if envelope.Error == "" {
			envelope.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login exchanges the admin password for a bearer token and persists it.
func (c *Client) Login(ctx context.Context, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{"password": password}, false, &resp)
	if err != nil {
		return err
	}
	return c.tokens.Save(resp.Token)
}

// Verify asks the server whether the stored token is still accepted.
func (c *Client) Verify(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/verify", nil, true, nil)
}

// Logout drops the stored token and every cached read.
func (c *Client) Logout() error {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry)
	c.mu.Unlock()
	return c.tokens.Clear()
}

func (c *Client) IsLoggedIn() bool {
	return c.tokens.IsLoggedIn()
}

// Spots returns the spot list, served from cache within the TTL unless
// force is set.
func (c *Client) Spots(ctx context.Context, force bool) ([]schema.Spot, error) {
	if !force {
		if data, ok := c.cached(keySpots); ok {
			return data.([]schema.Spot), nil
		}
	}

	var resp struct {
		Spots []schema.Spot `json:"spots"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/spots", nil, false, &resp); err != nil {
		return nil, err
	}
	c.store(keySpots, resp.Spots)
	return resp.Spots, nil
}

func (c *Client) Testimonials(ctx context.Context, force bool) ([]schema.EnrichedTestimonial, error) {
	if !force {
		if data, ok := c.cached(keyTestimonials); ok {
			return data.([]schema.EnrichedTestimonial), nil
		}
	}

	var resp struct {
		Testimonials []schema.EnrichedTestimonial `json:"testimonials"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/testimonials", nil, false, &resp); err != nil {
		return nil, err
	}
	c.store(keyTestimonials, resp.Testimonials)
	return resp.Testimonials, nil
}

func (c *Client) Packages(ctx context.Context, force bool) ([]schema.Package, error) {
	if !force {
		if data, ok := c.cached(keyPackages); ok {
			return data.([]schema.Package), nil
		}
	}

	var resp struct {
		Packages []schema.Package `json:"packages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/packages", nil, false, &resp); err != nil {
		return nil, err
	}
	c.store(keyPackages, resp.Packages)
	return resp.Packages, nil
}

func (c *Client) TrustStats(ctx context.Context, force bool) ([]schema.TrustStat, error) {
	if !force {
		if data, ok := c.cached(keyTrustStats); ok {
			return data.([]schema.TrustStat), nil
		}
	}

	var resp struct {
		Stats []schema.TrustStat `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/settings/trustStats", nil, false, &resp); err != nil {
		return nil, err
	}
	c.store(keyTrustStats, resp.Stats)
	return resp.Stats, nil
}

// CreateSpot posts an untyped body the way the admin forms do; the
// server owns validation.
func (c *Client) CreateSpot(ctx context.Context, body map[string]interface{}) (*schema.Spot, error) {
	var resp struct {
		Spot *schema.Spot `json:"spot"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/spots", body, true, &resp); err != nil {
		return nil, err
	}
	c.invalidate(keySpots)
	return resp.Spot, nil
}

func (c *Client) UpdateSpot(ctx context.Context, id string, body map[string]interface{}) (*schema.Spot, error) {
	var resp struct {
		Spot *schema.Spot `json:"spot"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/spots/"+id, body, true, &resp); err != nil {
		return nil, err
	}
	c.invalidate(keySpots)
	return resp.Spot, nil
}

func (c *Client) DeleteSpot(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/spots/"+id, nil, true, nil); err != nil {
		return err
	}
	c.invalidate(keySpots)
	return nil
}

func (c *Client) CreateTestimonial(ctx context.Context, body map[string]interface{}) (*schema.Testimonial, error) {
	var resp struct {
		Testimonial *schema.Testimonial `json:"testimonial"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/testimonials", body, true, &resp); err != nil {
		return nil, err
	}
	c.invalidate(keyTestimonials)
	return resp.Testimonial, nil
}

func (c *Client) UpdateTestimonial(ctx context.Context, id string, body map[string]interface{}) (*schema.Testimonial, error) {
	var resp struct {
		Testimonial *schema.Testimonial `json:"testimonial"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/testimonials/"+id, body, true, &resp); err != nil {
		return nil, err
	}
	c.invalidate(keyTestimonials)
	return resp.Testimonial, nil
}

func (c *Client) DeleteTestimonial(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/testimonials/"+id, nil, true, nil); err != nil {
		return err
	}
	c.invalidate(keyTestimonials)
	return nil
}

func (c *Client) CreatePackage(ctx context.Context, body map[string]interface{}) (*schema.Package, error) {
	var resp struct {
		Package *schema.Package `json:"package"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/packages", body, true, &resp); err != nil {
		return nil, err
	}
	c.invalidate(keyPackages)
	return resp.Package, nil
}

func (c *Client) UpdatePackage(ctx context.Context, id string, body map[string]interface{}) (*schema.Package, error) {
	var resp struct {
		Package *schema.Package `json:"package"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/packages/"+id, body, true, &resp); err != nil {
		return nil, err
	}
	c.invalidate(keyPackages)
	return resp.Package, nil
}

func (c *Client) DeletePackage(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/packages/"+id, nil, true, nil); err != nil {
		return err
	}
	c.invalidate(keyPackages)
	return nil
}

func (c *Client) UpdateTrustStats(ctx context.Context, stats []map[string]interface{}) ([]schema.TrustStat, error) {
	var resp struct {
		Stats []schema.TrustStat `json:"stats"`
	}
	body := map[string]interface{}{"stats": stats}
	if err := c.do(ctx, http.MethodPut, "/api/settings/trustStats", body, true, &resp); err != nil {
		return nil, err
	}
	c.invalidate(keyTrustStats)
	return resp.Stats, nil
}
