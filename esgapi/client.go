// Package esgapi provides an HTTP client for the ESG analysis backend: the
// company lookup endpoint and the hosted keyword resources.
package esgapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sustainlab/esgview"
	"go.uber.org/zap"
)

const (
	lookupPath = "/api/query_company"

	// DefaultCacheTTL bounds how long completed lookups and keyword
	// resources are served from memory.
	DefaultCacheTTL = 10 * time.Minute

	// maxBodySize caps response reads; backend payloads are small.
	maxBodySize = 8 * 1024 * 1024
)

// Doer executes HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Compile-time interface verification.
var (
	_ esgview.LookupService = (*Client)(nil)
	_ esgview.KeywordSource = (*Client)(nil)
)

// Client talks to the analysis backend. Completed lookups and keyword
// resources are cached in memory; every other outcome is re-queried so that
// a later retry observes backend progress.
type Client struct {
	baseURL    string
	httpClient Doer
	cacheTTL   time.Duration
	cache      *gocache.Cache
	logger     *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(d Doer) ClientOption {
	return func(c *Client) {
		c.httpClient = d
	}
}

// WithLogger sets the logger for degradation events.
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithCacheTTL overrides the cache time-to-live.
func WithCacheTTL(ttl time.Duration) ClientOption {
	return func(c *Client) {
		c.cacheTTL = ttl
	}
}

// NewClient creates a Client for the backend at baseURL (no trailing slash).
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		cacheTTL:   DefaultCacheTTL,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = gocache.New(c.cacheTTL, 2*c.cacheTTL)
	return c
}

// Lookup queries the backend for one company-year record. A response that
// cannot be decoded is reported as esgview.ErrMalformedResponse; the raw
// payload is logged, never returned.
func (c *Client) Lookup(ctx context.Context, req esgview.LookupRequest) (*esgview.LookupResponse, error) {
	if req.Year == 0 || req.CompanyCode == "" {
		return nil, fmt.Errorf("lookup: year and company code are required")
	}

	cacheKey := fmt.Sprintf("lookup:%d:%s", req.Year, req.CompanyCode)
	// AutoFetch requests bypass the cache: the user just asked the backend
	// to do new work.
	if !req.AutoFetch {
		if cached, ok := c.cache.Get(cacheKey); ok {
			return cached.(*esgview.LookupResponse), nil
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", req.CompanyCode, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+lookupPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", req.CompanyCode, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", req.CompanyCode, err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", req.CompanyCode, err)
	}

	// The backend encodes outcomes in the JSON status field and may pair
	// them with non-2xx codes (not_found arrives as a 404), so the body is
	// decoded regardless of the HTTP status.
	var resp esgview.LookupResponse
	if err := json.Unmarshal(data, &resp); err != nil || resp.Status == "" {
		c.logger.Warn("lookup response not decodable",
			zap.String("company_code", req.CompanyCode),
			zap.Int("year", req.Year),
			zap.Int("http_status", httpResp.StatusCode),
		)
		return nil, fmt.Errorf("lookup %s: %w", req.CompanyCode, esgview.ErrMalformedResponse)
	}

	if resp.Status == esgview.LookupCompleted {
		c.cache.Set(cacheKey, &resp, c.cacheTTL)
	}
	return &resp, nil
}
