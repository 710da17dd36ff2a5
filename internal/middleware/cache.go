package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/jewelpark/attraction-cart/internal/config"
)

// bodyWriter captures the response body while forwarding it to the client.
type bodyWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int64
	limit  int64
}

func (bw *bodyWriter) WriteHeader(code int) {
	bw.status = code
	bw.ResponseWriter.WriteHeader(code)
}

func (bw *bodyWriter) Write(b []byte) (int, error) {
	if bw.limit <= 0 || bw.size < bw.limit {
		remain := bw.limit - bw.size
		if bw.limit <= 0 || int64(len(b)) <= remain {
			bw.buf.Write(b)
		} else {
			bw.buf.Write(b[:remain])
		}
	}
	bw.size += int64(len(b))
	return bw.ResponseWriter.Write(b)
}

// cacheKey builds a stable key from the route and query under the
// configured prefix.
func cacheKey(cfg config.CacheConfig, c echo.Context) string {
	tail := c.Path() + "?" + c.Request().URL.RawQuery
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// NewRedisCache caches successful JSON response bodies in Redis.  It is
// applied to the catalog routes, whose payloads are static between deploys.
// Only configured methods are cached and only 200 responses are stored.
// When caching is disabled or the client is nil, the middleware is a
// pass-through.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cacheKey(cfg, c)

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
				c.Response().Header().Set("X-Cache", "HIT")
				c.Response().WriteHeader(http.StatusOK)
				_, _ = c.Response().Write(body)
				return nil
			}

			bw := &bodyWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: int64(cfg.MaxBodyBytes)}
			c.Response().Writer = bw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if bw.status == http.StatusOK && (bw.limit <= 0 || bw.size <= bw.limit) {
				_ = rdb.SetEx(context.Background(), key, bw.buf.Bytes(), cfg.TTL).Err()
			}
			return nil
		}
	}
}
