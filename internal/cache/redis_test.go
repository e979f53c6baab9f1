package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xwasu/airline-project/config"
	"github.com/xwasu/airline-project/internal/domain"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "cache:flights", flightsKey())
	assert.Equal(t, "cache:flights:version", flightsVersionKey())
	assert.Equal(t, "session:abc", sessionKey("abc"))
}

func TestSaveSessionRejectsExpired(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "127.0.0.1:1"}, time.Second)
	defer c.Close()

	err := c.SaveSession(context.Background(), domain.Session{Token: "t", ExpiresAt: time.Now().Add(-time.Minute)})
	assert.EqualError(t, err, "session already expired")
}
