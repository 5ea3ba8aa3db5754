package cards

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
	forgeerr "github.com/KirkDiggler/card-forge/internal/errors"
)

const (
	// Key patterns
	cardKeyFormat  = "card:%d"
	rarityIndexKey = "cards:rarity:%s"
	allCardsKey    = "cards:all"
	nextIDKey      = "cards:next_id"
)

type redisRepo struct {
	client       *redis.Client
	timeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed card repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = realTimeProvider{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
	}
}

// NextID allocates the next definition id
func (r *redisRepo) NextID(ctx context.Context) (int, error) {
	id, err := r.client.Incr(ctx, nextIDKey).Result()
	if err != nil {
		return 0, forgeerr.Wrap(err, "failed to allocate card id")
	}
	return int(id), nil
}

// Create stores a new definition and indexes it by rarity
func (r *redisRepo) Create(ctx context.Context, definition *card.Definition) error {
	if definition == nil {
		return forgeerr.InvalidArgument("definition cannot be nil")
	}
	if definition.ID <= 0 {
		return forgeerr.InvalidArgumentf("definition id must be positive, got %d", definition.ID)
	}

	now := r.timeProvider.Now()
	definition.CreatedAt = now
	definition.UpdatedAt = now

	jsonData, err := json.Marshal(toData(definition))
	if err != nil {
		return forgeerr.Wrap(err, "failed to marshal card data")
	}

	created, err := r.client.SetNX(ctx, fmt.Sprintf(cardKeyFormat, definition.ID), string(jsonData), 0).Result()
	if err != nil {
		return forgeerr.Wrap(err, "failed to store card in Redis")
	}
	if !created {
		return forgeerr.AlreadyExistsf("card %d already exists", definition.ID)
	}

	pipe := r.client.Pipeline()
	pipe.SAdd(ctx, fmt.Sprintf(rarityIndexKey, definition.Rarity), definition.ID)
	pipe.SAdd(ctx, allCardsKey, definition.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return forgeerr.Wrap(err, "failed to index card in Redis")
	}

	return nil
}

// Get retrieves a definition by id
func (r *redisRepo) Get(ctx context.Context, id int) (*card.Definition, error) {
	jsonData, err := r.client.Get(ctx, fmt.Sprintf(cardKeyFormat, id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, forgeerr.NotFoundf("card %d not found", id).WithMeta("card_id", id)
		}
		return nil, forgeerr.Wrap(err, "failed to get card from Redis")
	}

	var data cardData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, forgeerr.Wrap(err, "failed to unmarshal card data")
	}

	return toDefinition(&data), nil
}

// GetBatch retrieves several definitions concurrently
func (r *redisRepo) GetBatch(ctx context.Context, ids []int) ([]*card.Definition, error) {
	definitions := make([]*card.Definition, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			definition, err := r.Get(ctx, id)
			if err != nil {
				return forgeerr.Wrapf(err, "failed to get card %d", id)
			}
			definitions[i] = definition
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return definitions, nil
}

// Update rewrites an existing definition and keeps the rarity index current
func (r *redisRepo) Update(ctx context.Context, definition *card.Definition) error {
	if definition == nil {
		return forgeerr.InvalidArgument("definition cannot be nil")
	}
	if definition.ID <= 0 {
		return forgeerr.InvalidArgumentf("definition id must be positive, got %d", definition.ID)
	}

	existing, err := r.Get(ctx, definition.ID)
	if err != nil {
		return err
	}

	definition.CreatedAt = existing.CreatedAt
	definition.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(toData(definition))
	if err != nil {
		return forgeerr.Wrap(err, "failed to marshal card data")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, fmt.Sprintf(cardKeyFormat, definition.ID), string(jsonData), 0)
	if existing.Rarity != definition.Rarity {
		pipe.SRem(ctx, fmt.Sprintf(rarityIndexKey, existing.Rarity), definition.ID)
		pipe.SAdd(ctx, fmt.Sprintf(rarityIndexKey, definition.Rarity), definition.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return forgeerr.Wrap(err, "failed to update card in Redis")
	}

	return nil
}

// Delete removes a definition and its index entries
func (r *redisRepo) Delete(ctx context.Context, id int) error {
	definition, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf(cardKeyFormat, id))
	pipe.SRem(ctx, fmt.Sprintf(rarityIndexKey, definition.Rarity), id)
	pipe.SRem(ctx, allCardsKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return forgeerr.Wrap(err, "failed to delete card from Redis")
	}

	return nil
}

// ListByRarity retrieves every definition in the rarity tier
func (r *redisRepo) ListByRarity(ctx context.Context, rarity card.Rarity) ([]*card.Definition, error) {
	members, err := r.client.SMembers(ctx, fmt.Sprintf(rarityIndexKey, rarity)).Result()
	if err != nil {
		return nil, forgeerr.Wrap(err, "failed to list cards by rarity")
	}

	ids := make([]int, len(members))
	for i, member := range members {
		id, err := strconv.Atoi(member)
		if err != nil {
			return nil, forgeerr.Wrapf(err, "malformed id %q in rarity index", member)
		}
		ids[i] = id
	}

	return r.GetBatch(ctx, ids)
}
