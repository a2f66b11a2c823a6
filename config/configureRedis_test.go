package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisOptionsReadCredentialsFromEnv(t *testing.T) {
	t.Setenv("REDIS_ADDRESS", "redis.internal:6380")
	t.Setenv("REDIS_PASSWORD", "s3cret")

	opts := redisOptions()

	assert.Equal(t, "redis.internal:6380", opts.Addr)
	assert.Equal(t, "s3cret", opts.Password)
	assert.Equal(t, 0, opts.DB)
}

func TestRedisOptionsDefaultToEmptyPassword(t *testing.T) {
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("REDIS_PASSWORD", "")

	opts := redisOptions()

	assert.Empty(t, opts.Password)
}
