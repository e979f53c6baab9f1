package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := start
	l := NewRateLimiter(1, 1)
	l.now = func() time.Time { return clock }
	l.lastSweep = start

	first := l.visitor("10.0.0.1")
	l.visitor("10.0.0.2")
	assert.Same(t, first, l.visitor("10.0.0.1"))
	assert.Len(t, l.visitors, 2)

	clock = start.Add(5 * time.Minute)
	l.visitor("10.0.0.2")

	clock = start.Add(visitorIdleTimeout + time.Minute)
	l.visitor("10.0.0.3")

	assert.Len(t, l.visitors, 2)
	assert.NotContains(t, l.visitors, "10.0.0.1")
	assert.Contains(t, l.visitors, "10.0.0.2")
	assert.Contains(t, l.visitors, "10.0.0.3")
}
