package offline

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/tawseela/tawseela/internal/pkg/kvstore"
	"github.com/tawseela/tawseela/internal/pkg/logger"
	"github.com/tawseela/tawseela/internal/pkg/models"
)

// ErrOffline is returned for reads attempted without connectivity and
// without a usable cache entry. Writes never hit it; they queue instead.
var ErrOffline = errors.New("offline: no connectivity and no cached response")

// Backend executes a single backend HTTP call. Implemented by the tabular
// client.
type Backend interface {
	DoJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error
}

// Client is the connectivity-aware front for backend operations. Reads fall
// back to a local cache, writes made while offline are queued and replayed
// by Drain.
type Client struct {
	backend Backend
	probe   Probe
	queue   *Queue
	cache   kvstore.Store
}

// WriteResult annotates the outcome of a write attempt
type WriteResult struct {
	// Offline is true when the write was queued rather than applied; the
	// caller received a promise, not a result.
	Offline bool
	Action  *models.OfflineAction
}

// NewClient creates a connectivity-aware client
func NewClient(backend Backend, probe Probe, queue *Queue, cache kvstore.Store) *Client {
	return &Client{
		backend: backend,
		probe:   probe,
		queue:   queue,
		cache:   cache,
	}
}

// Queue exposes the underlying action queue
func (c *Client) Queue() *Queue {
	return c.queue
}

// Fetch runs a read through fetch, which must populate out. On success the
// result is cached under cacheKey. On failure, or while offline, a cached
// value is decoded into out instead and fromCache is true. Offline with no
// cache entry fails with ErrOffline.
func (c *Client) Fetch(ctx context.Context, cacheKey string, out interface{}, fetch func(ctx context.Context) error) (fromCache bool, err error) {
	if c.probe.Online(ctx) {
		if err := fetch(ctx); err == nil {
			c.storeCache(ctx, cacheKey, out)
			return false, nil
		} else if c.loadCache(ctx, cacheKey, out) {
			logger.Warn("Backend read failed, serving stale cache",
				logger.String("cache_key", cacheKey),
				logger.Err(err))
			return true, nil
		} else {
			return false, err
		}
	}

	if c.loadCache(ctx, cacheKey, out) {
		return true, nil
	}
	return false, ErrOffline
}

// Write applies a backend write immediately when online. While offline the
// action is queued and a synthetic success is reported through
// WriteResult.Offline; out is left untouched in that case.
func (c *Client) Write(ctx context.Context, actionType, method, path string, body, out interface{}) (WriteResult, error) {
	if c.probe.Online(ctx) {
		if err := c.backend.DoJSON(ctx, method, path, nil, body, out); err != nil {
			return WriteResult{}, err
		}
		return WriteResult{}, nil
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return WriteResult{}, err
	}
	action, err := c.queue.Enqueue(ctx, actionType, method, path, raw)
	if err != nil {
		return WriteResult{}, err
	}
	return WriteResult{Offline: true, Action: &action}, nil
}

// Drain replays all queued actions against the backend. Caller-triggered:
// connectivity restoration is detected by whoever calls this, not by the
// client itself.
func (c *Client) Drain(ctx context.Context) (DrainResult, error) {
	return c.queue.Drain(ctx, func(ctx context.Context, action models.OfflineAction) error {
		var body interface{}
		if len(action.Body) > 0 {
			body = json.RawMessage(action.Body)
		}
		return c.backend.DoJSON(ctx, action.Method, action.Path, nil, body, nil)
	})
}

func (c *Client) storeCache(ctx context.Context, cacheKey string, out interface{}) {
	data, err := json.Marshal(out)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKey, string(data)); err != nil {
		logger.Warn("Failed to cache backend response",
			logger.String("cache_key", cacheKey),
			logger.Err(err))
	}
}

func (c *Client) loadCache(ctx context.Context, cacheKey string, out interface{}) bool {
	raw, ok, err := c.cache.Get(ctx, cacheKey)
	if err != nil || !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		// corrupt cache entry, treat as absent
		_ = c.cache.Remove(ctx, cacheKey)
		return false
	}
	return true
}
