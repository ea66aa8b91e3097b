package esgapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sustainlab/esgview"
	"go.uber.org/zap"
)

// Keywords fetches the hosted keyword resource for one company report. A
// missing resource is esgview.ErrNotFound so the keyword panel can show its
// distinct unavailable state.
func (c *Client) Keywords(ctx context.Context, stockID string, year int) ([]esgview.Keyword, error) {
	cacheKey := fmt.Sprintf("wc:%s:%d", stockID, year)
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]esgview.Keyword), nil
	}

	url := fmt.Sprintf("%s/wordcloud/%s_%d_wc.json", c.baseURL, stockID, year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("keywords %s_%d: %w", stockID, year, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("keywords %s_%d: %w", stockID, year, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("keywords %s_%d: %w", stockID, year, esgview.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("keywords %s_%d: unexpected status %d", stockID, year, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("keywords %s_%d: %w", stockID, year, err)
	}

	var words []esgview.Keyword
	if err := json.Unmarshal(data, &words); err != nil {
		c.logger.Warn("keyword resource not decodable",
			zap.String("stock_id", stockID),
			zap.Int("year", year),
		)
		return nil, fmt.Errorf("keywords %s_%d: %w", stockID, year, esgview.ErrMalformedResponse)
	}

	c.cache.Set(cacheKey, words, c.cacheTTL)
	return words, nil
}
