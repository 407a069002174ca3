package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocatalog/internal/domain"
	"gocatalog/internal/pkg/kvstore"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/pkg/middleware"
	"gocatalog/internal/pkg/token"
)

func quietLogger() logger.Logger {
	return logger.New("error", io.Discard)
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

// --- Auth ---

func protected(tokens *token.Service, roles ...domain.Role) http.Handler {
	return middleware.NewAuthMiddleware(tokens)(middleware.PermissionMiddleware(roles...)(okHandler))
}

func TestAuth_Success(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	signed, err := tokens.GenerateToken("ops", "editor")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/products", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()

	protected(tokens, domain.RoleAdmin, domain.RoleEditor).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestAuth_Fail_MissingHeader(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	rr := httptest.NewRecorder()

	protected(tokens, domain.RoleAdmin).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "UNAUTHORIZED", body.Category)
}

func TestAuth_Fail_InvalidToken(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr := httptest.NewRecorder()

	protected(tokens, domain.RoleAdmin).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestPermission_Fail_WrongRole(t *testing.T) {
	tokens := token.NewService("secret", time.Hour)
	signed, _ := tokens.GenerateToken("reader", "viewer")
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()

	protected(tokens, domain.RoleAdmin, domain.RoleEditor).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestPermission_Fail_WithoutAuth(t *testing.T) {
	rr := httptest.NewRecorder()

	middleware.PermissionMiddleware(domain.RoleAdmin)(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// --- Rate limit ---

type fakeCounters struct {
	mu      sync.Mutex
	values  map[string]int
	failGet bool
}

func newFakeCounters() *fakeCounters {
	return &fakeCounters{values: map[string]int{}}
}

func (f *fakeCounters) Get(ctx context.Context, key string) (string, error) {
	n, err := f.GetInt(ctx, key)
	return strconv.Itoa(n), err
}

func (f *fakeCounters) GetInt(_ context.Context, key string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return 0, errors.New("connection refused")
	}
	n, ok := f.values[key]
	if !ok {
		return 0, kvstore.ErrMiss
	}
	return n, nil
}

func (f *fakeCounters) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value.(int)
	return nil
}

func (f *fakeCounters) Incr(_ context.Context, key string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key]++
	return int64(f.values[key]), nil
}

func (f *fakeCounters) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeCounters) Close() error { return nil }

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	handler := middleware.RateLimiter(newFakeCounters(), 2, time.Minute, quietLogger())(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_CountsPerIP(t *testing.T) {
	handler := middleware.RateLimiter(newFakeCounters(), 1, time.Minute, quietLogger())(okHandler)

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	counters := newFakeCounters()
	counters.failGet = true
	handler := middleware.RateLimiter(counters, 1, time.Minute, quietLogger())(okHandler)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

// --- Request logging ---

func TestRequestLogger_PropagatesRequestID(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetRequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()

	middleware.RequestLogger(quietLogger())(inner).ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	rr := httptest.NewRecorder()

	middleware.RequestLogger(quietLogger())(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, rr.Header().Get("X-Request-ID"), 36)
}
