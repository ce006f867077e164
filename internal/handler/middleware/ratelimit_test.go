//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gaming-zone-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 2})
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.POST("/bookings", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		req.RemoteAddr = ip + ":40000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, do("10.0.0.1").Code)
	assert.Equal(t, http.StatusCreated, do("10.0.0.1").Code)

	limited := do("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "1", limited.Header().Get("Retry-After"))

	// other clients have their own bucket
	assert.Equal(t, http.StatusCreated, do("10.0.0.2").Code)

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusCreated, do("10.0.0.1").Code)
}

func TestRateLimiterSweepsIdleClients(t *testing.T) {
	now := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1})
	rl.now = func() time.Time { return now }

	rl.allow("a")
	rl.allow("b")
	assert.Len(t, rl.clients, 2)

	now = now.Add(limiterIdleTTL + time.Minute)
	rl.allow("c")

	assert.Len(t, rl.clients, 1)
	assert.Contains(t, rl.clients, "c")
}
