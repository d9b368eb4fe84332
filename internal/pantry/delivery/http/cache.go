package http

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eh112358/home-inventory-dashboard/pkg/logger"
)

const cacheKeyPrefix = "pantry:cache:"

// ResponseCache caches derived GET responses (dashboard, stats) in Redis.
// A nil client disables caching entirely; every mutation flushes it, since
// both views derive from the whole ledger.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache. Pass a nil client to disable.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Middleware serves cached responses for GET requests and stores fresh 200s
func (c *ResponseCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c.client == nil || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := cacheKey(r)
		ctx := r.Context()

		if cached, err := c.client.Get(ctx, key).Bytes(); err == nil && len(cached) > 0 {
			logger.Debug(ctx).Str("path", r.URL.Path).Msg("Cache hit")
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.Write(cached)
			return
		}

		rec := &recordingWriter{ResponseWriter: w, status: http.StatusOK}
		rec.Header().Set("X-Cache", "MISS")
		next.ServeHTTP(rec, r)

		if rec.status == http.StatusOK {
			if err := c.client.Set(ctx, key, rec.body.Bytes(), c.ttl).Err(); err != nil {
				logger.Warn(ctx).Err(err).Str("path", r.URL.Path).Msg("Failed to cache response")
			}
		}
	})
}

// Flush drops all cached responses
func (c *ResponseCache) Flush(ctx context.Context) {
	if c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, cacheKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to drop cache key")
		}
	}
	if err := iter.Err(); err != nil {
		logger.Warn(ctx).Err(err).Msg("Cache flush scan failed")
	}
}

func cacheKey(r *http.Request) string {
	sum := sha256.Sum256([]byte(r.URL.Path + "?" + r.URL.RawQuery))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// recordingWriter tees the response body so it can be cached
type recordingWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *recordingWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.body.Write(p)
	return w.ResponseWriter.Write(p)
}
