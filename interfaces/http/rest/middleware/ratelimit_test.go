package middleware_test

import (
	"testing"

	"fartgen-backend/interfaces/http/rest/middleware"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiterAllow(t *testing.T) {
	l := middleware.NewIPRateLimiter(2)
	defer l.Stop()

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// A different client has its own bucket.
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestIPRateLimiterStop(t *testing.T) {
	l := middleware.NewIPRateLimiter(5)
	l.Stop()

	// Stopping only ends the cleanup goroutine; the limiter keeps working.
	assert.True(t, l.Allow("10.0.0.1"))
}
