package middleware

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creon-backend/internal/common/errors"
	"creon-backend/internal/domain"
	"creon-backend/internal/platform/redis/redistest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Recovery(), ErrorHandler())
	r.GET("/thing", handler)
	return r
}

func perform(r http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestErrorHandlerMapsDomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   errors.ErrorCode
	}{
		{name: "validation", err: domain.NewValidationError("amount", "must be positive"), status: http.StatusBadRequest, code: errors.ErrCodeValidation},
		{name: "unique", err: fmt.Errorf("create user: %w", &domain.UniqueViolationError{Field: "email"}), status: http.StatusConflict, code: errors.ErrCodeConflict},
		{name: "reference", err: &domain.ReferenceError{Field: "toUserId", ID: 42}, status: http.StatusBadRequest, code: errors.ErrCodeValidation},
		{name: "not found", err: errors.NewNotFoundError("grant", 3), status: http.StatusNotFound, code: errors.ErrCodeNotFound},
		{name: "invalid wallet", err: errors.NewInvalidWalletError("metamask", "must be a 20-byte hex address"), status: http.StatusBadRequest, code: errors.ErrCodeInvalidWallet},
		{name: "cache", err: errors.NewCacheError("get", stderrors.New("dial tcp 10.0.0.1:6379: i/o timeout")), status: http.StatusServiceUnavailable, code: errors.ErrCodeCacheError},
		{name: "storage", err: stderrors.New("dial tcp 10.0.0.1:5432: connection refused"), status: http.StatusInternalServerError, code: errors.ErrCodeDatabaseError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(func(c *gin.Context) { _ = c.Error(tt.err) })
			rec := perform(r, http.MethodGet, "/thing")

			require.Equal(t, tt.status, rec.Code)
			var body struct {
				Success bool `json:"success"`
				Error   struct {
					Code    errors.ErrorCode `json:"code"`
					Message string           `json:"message"`
					Stack   interface{}      `json:"stack"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Nil(t, body.Error.Stack)
			assert.NotContains(t, rec.Body.String(), "10.0.0.1")
		})
	}
}

func TestBindingErrorsReturnList(t *testing.T) {
	type payload struct {
		Name string `json:"name" binding:"required"`
	}
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.POST("/thing", func(c *gin.Context) {
		var p payload
		if err := c.ShouldBindJSON(&p); err != nil {
			_ = c.Error(BindingError(err))
			return
		}
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/thing", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "name", body.Errors[0].Details["field"])
}

func TestRecoveryHidesPanic(t *testing.T) {
	r := newEngine(func(c *gin.Context) { panic("secret internals") })
	rec := perform(r, http.MethodGet, "/thing")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret internals")
}

func TestRequestIDPropagates(t *testing.T) {
	r := newEngine(func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/thing", nil)
	req.Header.Set("X-Request-ID", "req-1")
	r.ServeHTTP(rec, req)
	assert.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "req-1", rec.Body.String())

	rec = perform(r, http.MethodGet, "/thing")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	r := gin.New()
	r.Use(RequestID(), rl.Handler())
	r.GET("/thing", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/thing").Code)
	assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/thing").Code)
	assert.Equal(t, http.StatusTooManyRequests, perform(r, http.MethodGet, "/thing").Code)
}

func TestResponseCache(t *testing.T) {
	rdb := redistest.New()
	calls := 0
	r := gin.New()
	r.Use(ResponseCache(rdb, time.Minute))
	r.GET("/api/token-gated-content", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})

	first := perform(r, http.MethodGet, "/api/token-gated-content")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := perform(r, http.MethodGet, "/api/token-gated-content")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, calls)
	assert.True(t, rdb.Has("httpcache:GET:/api/token-gated-content"))
	assert.Equal(t, "httpcache:GET:/api/token-gated-content*", ResponseCachePattern("/api/token-gated-content"))
}

func TestResponseCacheSkipsFailedRequests(t *testing.T) {
	rdb := redistest.New()
	fail := true
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/api/token-gated-content", ResponseCache(rdb, time.Minute), func(c *gin.Context) {
		if fail {
			_ = c.Error(stderrors.New("connection refused"))
			return
		}
		c.JSON(http.StatusOK, []int{1, 2})
	})

	first := perform(r, http.MethodGet, "/api/token-gated-content")
	require.Equal(t, http.StatusInternalServerError, first.Code)
	assert.False(t, rdb.Has("httpcache:GET:/api/token-gated-content"))

	fail = false
	second := perform(r, http.MethodGet, "/api/token-gated-content")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "MISS", second.Header().Get("X-Cache"))
	assert.JSONEq(t, `[1,2]`, second.Body.String())

	third := perform(r, http.MethodGet, "/api/token-gated-content")
	require.Equal(t, http.StatusOK, third.Code)
	assert.Equal(t, "HIT", third.Header().Get("X-Cache"))
	assert.JSONEq(t, `[1,2]`, third.Body.String())
}
