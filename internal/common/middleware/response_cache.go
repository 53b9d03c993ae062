package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"creon-backend/internal/common/logger"
	"creon-backend/internal/platform/redis"
)

const responseCachePrefix = "httpcache:"

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache caches successful GET responses for ttl, keyed by the full
// request URI. A nil client disables caching.
func ResponseCache(rdb redis.RedisClient, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := responseCachePrefix + c.Request.Method + ":" + c.Request.URL.RequestURI()

		if bs, err := rdb.Get(c.Request.Context(), key).Bytes(); err == nil && len(bs) > 0 {
			var entry cachedResponse
			if json.Unmarshal(bs, &entry) == nil {
				c.Header("X-Cache", "HIT")
				c.Data(entry.Status, entry.ContentType, entry.Body)
				c.Abort()
				return
			}
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Header("X-Cache", "MISS")
		c.Next()

		// Errors are rendered by ErrorHandler after this returns, so a failed
		// handler leaves the writer untouched at gin's default 200.
		if len(c.Errors) > 0 || !rec.Written() {
			return
		}
		status := rec.Status()
		if status < 200 || status >= 300 {
			return
		}
		entry := cachedResponse{
			Status:      status,
			ContentType: rec.Header().Get("Content-Type"),
			Body:        rec.body.Bytes(),
		}
		payload, err := json.Marshal(entry)
		if err != nil {
			return
		}
		if err := rdb.Set(context.Background(), key, string(payload), ttl).Err(); err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("Failed to store cached response")
		}
	}
}

// ResponseCachePattern matches every cached GET response whose path starts
// with pathPrefix.
func ResponseCachePattern(pathPrefix string) string {
	return responseCachePrefix + http.MethodGet + ":" + pathPrefix + "*"
}
