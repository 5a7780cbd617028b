package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/parkeasy/parkeasy-api/internal/config"
)

// bodyCapture tees the response body into a buffer, up to limit bytes,
// while still writing through to the client.
type bodyCapture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (w *bodyCapture) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	if w.buf.Len() < w.limit {
		n := w.limit - w.buf.Len()
		if n > len(b) {
			n = len(b)
		}
		w.buf.Write(b[:n])
	}
	return w.ResponseWriter.Write(b)
}

// NewResponseCache caches successful GET responses in Redis for the routes
// it wraps. Only 200 responses that fit within MaxBodyBytes are stored;
// cached bodies are replayed as JSON with an X-Cache header so clients and
// tests can tell hits from misses. Occupancy-sensitive listings rely on
// the short TTL to stay close to the store's truth.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return passthrough
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 15 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			key := cacheKey(cfg.Prefix, c)
			ctx := c.Request().Context()

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil && len(body) > 0 {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			cap := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cap
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cap.status == http.StatusOK && cap.buf.Len() < cfg.MaxBodyBytes {
				// Detached context: the request may already be done.
				_ = rdb.SetEx(context.Background(), key, cap.buf.Bytes(), ttl).Err()
			}
			return nil
		}
	}
}

func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum)
}

func passthrough(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error { return next(c) }
}
