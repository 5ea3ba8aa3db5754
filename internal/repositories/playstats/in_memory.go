package playstats

import (
	"context"
	"sync"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
	forgeerr "github.com/KirkDiggler/card-forge/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu    sync.RWMutex
	fight map[string]map[card.UpgradeKind]int
	life  map[string]map[card.UpgradeKind]int
}

// NewInMemoryRepository creates a new in-memory play statistics repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		fight: make(map[string]map[card.UpgradeKind]int),
		life:  make(map[string]map[card.UpgradeKind]int),
	}
}

func (r *inMemoryRepository) window(scope card.UpgradeScope) map[string]map[card.UpgradeKind]int {
	if scope == card.ScopeLifetime {
		return r.life
	}
	return r.fight
}

func bump(window map[string]map[card.UpgradeKind]int, instanceID string, kind card.UpgradeKind, delta int) {
	counters, ok := window[instanceID]
	if !ok {
		counters = make(map[card.UpgradeKind]int)
		window[instanceID] = counters
	}
	counters[kind] += delta
}

// Increment bumps a counter in both windows
func (r *inMemoryRepository) Increment(ctx context.Context, instanceID string, kind card.UpgradeKind, delta int) error {
	if instanceID == "" {
		return forgeerr.InvalidArgument("instance id cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bump(r.fight, instanceID, kind, delta)
	bump(r.life, instanceID, kind, delta)
	return nil
}

// Get reads one counter. Missing counters read 0.
func (r *inMemoryRepository) Get(ctx context.Context, instanceID string, kind card.UpgradeKind, scope card.UpgradeScope) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.window(scope)[instanceID][kind], nil
}

// SetMax raises a counter to value when value is higher
func (r *inMemoryRepository) SetMax(ctx context.Context, instanceID string, kind card.UpgradeKind, value int) error {
	if instanceID == "" {
		return forgeerr.InvalidArgument("instance id cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, window := range []map[string]map[card.UpgradeKind]int{r.fight, r.life} {
		counters, ok := window[instanceID]
		if !ok {
			counters = make(map[card.UpgradeKind]int)
			window[instanceID] = counters
		}
		if value > counters[kind] {
			counters[kind] = value
		}
	}

	return nil
}

// Snapshot reads every counter for an instance in the given scope
func (r *inMemoryRepository) Snapshot(ctx context.Context, instanceID string, scope card.UpgradeScope) (map[card.UpgradeKind]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counters := make(map[card.UpgradeKind]int)
	for kind, count := range r.window(scope)[instanceID] {
		counters[kind] = count
	}

	return counters, nil
}

// ResetFight clears the fight window for an instance
func (r *inMemoryRepository) ResetFight(ctx context.Context, instanceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.fight, instanceID)
	return nil
}

// ResetCounter clears one fight-window counter
func (r *inMemoryRepository) ResetCounter(ctx context.Context, instanceID string, kind card.UpgradeKind) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if counters, ok := r.fight[instanceID]; ok {
		delete(counters, kind)
	}
	return nil
}
