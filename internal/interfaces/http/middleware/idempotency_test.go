package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redispkg "justice-airdrop.backend/pkg/redis"
)

func startMiniRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable in this environment: %v", err)
	}
	t.Cleanup(srv.Close)

	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	redispkg.SetClient(cli)
	t.Cleanup(func() { _ = cli.Close() })
	return srv
}

func newIdempotentRouter(calls *int, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdempotencyMiddleware())
	r.POST("/wallet/request", func(c *gin.Context) {
		*calls++
		c.JSON(status, gin.H{"ok": status < 300, "call": *calls})
	})
	return r
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/wallet/request", nil)
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotencyMiddleware_NoHeaderPassthrough(t *testing.T) {
	calls := 0
	r := newIdempotentRouter(&calls, http.StatusOK)
	postWithKey(r, "")
	postWithKey(r, "")
	assert.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_ReplaysStoredResponse(t *testing.T) {
	startMiniRedis(t)
	calls := 0
	r := newIdempotentRouter(&calls, http.StatusCreated)

	first := postWithKey(r, "k1")
	require.Equal(t, http.StatusCreated, first.Code)

	second := postWithKey(r, "k1")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Hit"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, calls)
}

func TestIdempotencyMiddleware_FailureReleasesKey(t *testing.T) {
	srv := startMiniRedis(t)
	calls := 0
	r := newIdempotentRouter(&calls, http.StatusBadRequest)

	postWithKey(r, "k2")
	postWithKey(r, "k2")
	assert.Equal(t, 2, calls)
	assert.Empty(t, srv.Keys())
}

func TestIdempotencyMiddleware_ProcessingConflict(t *testing.T) {
	srv := startMiniRedis(t)
	calls := 0
	r := newIdempotentRouter(&calls, http.StatusOK)

	require.NoError(t, srv.Set("idempotency:ip:192.0.2.1:/wallet/request:k3", processingMarker))
	w := postWithKey(r, "k3")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "IDEMPOTENCY_CONFLICT")
	assert.Equal(t, 0, calls)
}

func TestIdempotencyMiddleware_RedisErrorPassthrough(t *testing.T) {
	origGet := redisGet
	t.Cleanup(func() { redisGet = origGet })
	redisGet = func(context.Context, string) (string, error) { return "", errors.New("connection refused") }

	calls := 0
	r := newIdempotentRouter(&calls, http.StatusAccepted)
	w := postWithKey(r, "k4")
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, 1, calls)
}

func TestIdempotencyMiddleware_LockLost(t *testing.T) {
	startMiniRedis(t)
	origSetNX := redisSetNX
	t.Cleanup(func() { redisSetNX = origSetNX })
	redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) { return false, nil }

	calls := 0
	r := newIdempotentRouter(&calls, http.StatusOK)
	assert.Equal(t, http.StatusConflict, postWithKey(r, "k5").Code)
	assert.Equal(t, 0, calls)
}

func TestIdempotencyMiddleware_LockErrorPassthrough(t *testing.T) {
	startMiniRedis(t)
	origSetNX := redisSetNX
	t.Cleanup(func() { redisSetNX = origSetNX })
	redisSetNX = func(context.Context, string, interface{}, time.Duration) (bool, error) {
		return false, errors.New("connection reset")
	}

	calls := 0
	r := newIdempotentRouter(&calls, http.StatusCreated)
	w := postWithKey(r, "k6")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("X-Idempotency-Hit"))
	assert.Equal(t, 1, calls)
}
