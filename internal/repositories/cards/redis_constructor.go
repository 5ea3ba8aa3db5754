package cards

import (
	"github.com/redis/go-redis/v9"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client *redis.Client

	// TimeProvider defaults to the wall clock
	TimeProvider TimeProvider
}

// NewRedis creates a new Redis-backed card repository with default configuration
func NewRedis(client *redis.Client) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client: client,
	})
}
