package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/logger"

	"lekded/internal/models"
)

// DrawClient fetches published draw results from the external lottery
// API. The engine only consumes the response shape; the API and its
// backing store are owned elsewhere.
type DrawClient struct {
	baseURL string
	client  *http.Client
}

func NewDrawClient(baseURL string, timeout time.Duration) *DrawClient {
	return &DrawClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// LatestDraw retrieves the most recently published draw result.
func (c *DrawClient) LatestDraw(ctx context.Context) (*models.DrawResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/draws/latest", nil)
	if err != nil {
		return nil, fmt.Errorf("build draw request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest draw: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("draw API returned status %d", resp.StatusCode)
	}

	var draw models.DrawResult
	if err := json.NewDecoder(resp.Body).Decode(&draw); err != nil {
		return nil, fmt.Errorf("decode draw result: %w", err)
	}
	return &draw, nil
}

// DrawCache keeps the latest draw for a bounded time so every ticket
// check does not hit the draw API. It is an explicit collaborator passed
// by reference, with invalidation under the caller's control.
type DrawCache struct {
	mu        sync.RWMutex
	client    *DrawClient
	ttl       time.Duration
	draw      *models.DrawResult
	fetchedAt time.Time
}

func NewDrawCache(client *DrawClient, ttl time.Duration) *DrawCache {
	return &DrawCache{client: client, ttl: ttl}
}

// Latest returns the cached draw, refreshing it through the client once
// the TTL has lapsed. A stale value is never served after Invalidate.
func (c *DrawCache) Latest(ctx context.Context) (*models.DrawResult, error) {
	c.mu.RLock()
	if c.draw != nil && time.Since(c.fetchedAt) < c.ttl {
		draw := c.draw
		c.mu.RUnlock()
		return draw, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another goroutine may have refreshed while we waited for the lock.
	if c.draw != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.draw, nil
	}

	draw, err := c.client.LatestDraw(ctx)
	if err != nil {
		return nil, err
	}
	c.draw = draw
	c.fetchedAt = time.Now()
	logger.Infof("refreshed draw cache: %s (%s)", draw.ID, draw.Date)
	return draw, nil
}

// Invalidate drops the cached draw so the next Latest call refetches.
func (c *DrawCache) Invalidate() {
	c.mu.Lock()
	c.draw = nil
	c.mu.Unlock()
}
