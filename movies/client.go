package movies

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mealmax/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "http://www.omdbapi.com/"
	cacheTTL       = time.Hour
)

// Client forwards queries to the OMDb API and caches successful
// responses in Redis. With a nil Redis client it just proxies.
type Client struct {
	BaseURL string

	apiKey string
	http   *http.Client
	rdb    *redis.Client
	logger *zap.Logger
}

func NewClient(apiKey string, rdb *redis.Client, logger *zap.Logger) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 5 * time.Second},
		rdb:     rdb,
		logger:  logger,
	}
}

// Fetch performs one OMDb query and returns the raw JSON payload.
// The cache key is the query string without the API key.
func (c *Client) Fetch(ctx context.Context, params url.Values) (json.RawMessage, error) {
	cacheKey := "omdb:" + params.Encode()
	if c.rdb != nil {
		if cached, err := c.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			c.logger.Info("omdb cache hit", zap.String("key", cacheKey))
			return cached, nil
		}
	}

	params.Set("apikey", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("omdb request failed", zap.Error(err))
		return nil, fmt.Errorf("omdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("omdb returned non-200", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("omdb returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// Cache only successful lookups. OMDb reports misses with
	// 200 + {"Response":"False"}, which are relayed but not cached.
	var status models.OMDBStatus
	if c.rdb != nil && json.Unmarshal(body, &status) == nil && status.Response == "True" {
		if err := c.rdb.Set(ctx, cacheKey, body, cacheTTL).Err(); err != nil {
			c.logger.Warn("failed to cache omdb response", zap.Error(err))
		}
	}
	return body, nil
}

func (c *Client) SearchByTitle(ctx context.Context, title string) (json.RawMessage, error) {
	return c.Fetch(ctx, url.Values{"s": {title}})
}

func (c *Client) GetByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Fetch(ctx, url.Values{"i": {id}})
}

func (c *Client) GetByTitle(ctx context.Context, title string) (json.RawMessage, error) {
	return c.Fetch(ctx, url.Values{"t": {title}})
}

func (c *Client) SearchByYear(ctx context.Context, title, year string) (json.RawMessage, error) {
	return c.Fetch(ctx, url.Values{"s": {title}, "y": {year}})
}

func (c *Client) SearchByType(ctx context.Context, title, mediaType string) (json.RawMessage, error) {
	return c.Fetch(ctx, url.Values{"s": {title}, "type": {mediaType}})
}
