package playstats

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
	forgeerr "github.com/KirkDiggler/card-forge/internal/errors"
)

const (
	// Key patterns
	fightKeyFormat = "playstats:fight:%s"
	lifeKeyFormat  = "playstats:life:%s"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client *redis.Client
}

type redisRepo struct {
	client *redis.Client
}

// NewRedisRepository creates a new Redis-backed play statistics repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

// NewRedis creates a new Redis-backed play statistics repository with
// default configuration
func NewRedis(client *redis.Client) Repository {
	return NewRedisRepository(&RedisRepoConfig{
		Client: client,
	})
}

func scopeKey(instanceID string, scope card.UpgradeScope) string {
	if scope == card.ScopeLifetime {
		return fmt.Sprintf(lifeKeyFormat, instanceID)
	}
	return fmt.Sprintf(fightKeyFormat, instanceID)
}

// Increment bumps a counter in both windows
func (r *redisRepo) Increment(ctx context.Context, instanceID string, kind card.UpgradeKind, delta int) error {
	if instanceID == "" {
		return forgeerr.InvalidArgument("instance id cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.HIncrBy(ctx, fmt.Sprintf(fightKeyFormat, instanceID), string(kind), int64(delta))
	pipe.HIncrBy(ctx, fmt.Sprintf(lifeKeyFormat, instanceID), string(kind), int64(delta))
	if _, err := pipe.Exec(ctx); err != nil {
		return forgeerr.Wrap(err, "failed to increment play statistic")
	}

	return nil
}

// Get reads one counter. Missing counters read 0.
func (r *redisRepo) Get(ctx context.Context, instanceID string, kind card.UpgradeKind, scope card.UpgradeScope) (int, error) {
	value, err := r.client.HGet(ctx, scopeKey(instanceID, scope), string(kind)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, forgeerr.Wrap(err, "failed to get play statistic")
	}

	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, forgeerr.Wrapf(err, "malformed counter %q", value)
	}

	return count, nil
}

// SetMax raises a counter to value when value is higher
func (r *redisRepo) SetMax(ctx context.Context, instanceID string, kind card.UpgradeKind, value int) error {
	if instanceID == "" {
		return forgeerr.InvalidArgument("instance id cannot be empty")
	}

	for _, scope := range []card.UpgradeScope{card.ScopeFight, card.ScopeLifetime} {
		current, err := r.Get(ctx, instanceID, kind, scope)
		if err != nil {
			return err
		}
		if value <= current {
			continue
		}
		if err := r.client.HSet(ctx, scopeKey(instanceID, scope), string(kind), value).Err(); err != nil {
			return forgeerr.Wrap(err, "failed to set play statistic high-water")
		}
	}

	return nil
}

// Snapshot reads every counter for an instance in the given scope
func (r *redisRepo) Snapshot(ctx context.Context, instanceID string, scope card.UpgradeScope) (map[card.UpgradeKind]int, error) {
	values, err := r.client.HGetAll(ctx, scopeKey(instanceID, scope)).Result()
	if err != nil {
		return nil, forgeerr.Wrap(err, "failed to snapshot play statistics")
	}

	counters := make(map[card.UpgradeKind]int, len(values))
	for field, value := range values {
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, forgeerr.Wrapf(err, "malformed counter %q for %s", value, field)
		}
		counters[card.UpgradeKind(field)] = count
	}

	return counters, nil
}

// ResetFight clears the fight window for an instance
func (r *redisRepo) ResetFight(ctx context.Context, instanceID string) error {
	if err := r.client.Del(ctx, fmt.Sprintf(fightKeyFormat, instanceID)).Err(); err != nil {
		return forgeerr.Wrap(err, "failed to reset fight statistics")
	}
	return nil
}

// ResetCounter clears one fight-window counter
func (r *redisRepo) ResetCounter(ctx context.Context, instanceID string, kind card.UpgradeKind) error {
	if err := r.client.HDel(ctx, fmt.Sprintf(fightKeyFormat, instanceID), string(kind)).Err(); err != nil {
		return forgeerr.Wrap(err, "failed to reset play statistic")
	}
	return nil
}
