package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/trip_go_server/config"
)

func setupRateLimitRouter(t *testing.T, cfg config.RateLimitConfig) (*gin.Engine, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	router := gin.New()
	router.Use(RateLimit(client, cfg))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	cleanup := func() {
		client.Close()
		mr.Close()
	}
	return router, mr, cleanup
}

func TestRateLimit_UnderLimit(t *testing.T) {
	router, _, cleanup := setupRateLimitRouter(t, config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 5,
	})
	defer cleanup()

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("GET", "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimit_OverLimit(t *testing.T) {
	router, _, cleanup := setupRateLimitRouter(t, config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 2,
	})
	defer cleanup()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRateLimit_Disabled(t *testing.T) {
	router, _, cleanup := setupRateLimitRouter(t, config.RateLimitConfig{
		Enabled:           false,
		RequestsPerMinute: 1,
	})
	defer cleanup()

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest("GET", "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

// Redis 不可用时放行
func TestRateLimit_FailOpen(t *testing.T) {
	router, mr, cleanup := setupRateLimitRouter(t, config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 1,
	})
	defer cleanup()

	mr.Close()

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
