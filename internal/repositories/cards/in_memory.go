package cards

import (
	"context"
	"sync"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
	forgeerr "github.com/KirkDiggler/card-forge/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu     sync.RWMutex
	cards  map[int]*card.Definition
	nextID int
}

// NewInMemoryRepository creates a new in-memory card repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		cards: make(map[int]*card.Definition),
	}
}

// NextID allocates the next definition id
func (r *inMemoryRepository) NextID(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	return r.nextID, nil
}

// Create stores a new definition
func (r *inMemoryRepository) Create(ctx context.Context, definition *card.Definition) error {
	if definition == nil {
		return forgeerr.InvalidArgument("definition cannot be nil")
	}
	if definition.ID <= 0 {
		return forgeerr.InvalidArgumentf("definition id must be positive, got %d", definition.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cards[definition.ID]; exists {
		return forgeerr.AlreadyExistsf("card %d already exists", definition.ID)
	}

	// Store a copy to avoid external modifications
	r.cards[definition.ID] = copyDefinition(definition)

	return nil
}

// Get retrieves a definition by id
func (r *inMemoryRepository) Get(ctx context.Context, id int) (*card.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	definition, exists := r.cards[id]
	if !exists {
		return nil, forgeerr.NotFoundf("card %d not found", id).WithMeta("card_id", id)
	}

	// Return a copy to avoid external modifications
	return copyDefinition(definition), nil
}

// GetBatch retrieves several definitions
func (r *inMemoryRepository) GetBatch(ctx context.Context, ids []int) ([]*card.Definition, error) {
	definitions := make([]*card.Definition, len(ids))
	for i, id := range ids {
		definition, err := r.Get(ctx, id)
		if err != nil {
			return nil, forgeerr.Wrapf(err, "failed to get card %d", id)
		}
		definitions[i] = definition
	}
	return definitions, nil
}

// Update rewrites an existing definition
func (r *inMemoryRepository) Update(ctx context.Context, definition *card.Definition) error {
	if definition == nil {
		return forgeerr.InvalidArgument("definition cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.cards[definition.ID]
	if !exists {
		return forgeerr.NotFoundf("card %d not found", definition.ID)
	}

	updated := copyDefinition(definition)
	updated.CreatedAt = existing.CreatedAt
	r.cards[definition.ID] = updated

	return nil
}

// Delete removes a definition
func (r *inMemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cards[id]; !exists {
		return forgeerr.NotFoundf("card %d not found", id)
	}

	delete(r.cards, id)
	return nil
}

// ListByRarity retrieves every definition in the rarity tier
func (r *inMemoryRepository) ListByRarity(ctx context.Context, rarity card.Rarity) ([]*card.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	definitions := make([]*card.Definition, 0)
	for _, definition := range r.cards {
		if definition.Rarity == rarity {
			definitions = append(definitions, copyDefinition(definition))
		}
	}

	return definitions, nil
}

// copyDefinition deep-copies a definition so callers cannot mutate stored
// state through shared slices or pointers
func copyDefinition(definition *card.Definition) *card.Definition {
	copied := *definition

	copied.Effects = copyEffects(definition.Effects)
	copied.PersistentEffects = copyEffects(definition.PersistentEffects)

	if definition.StanceChange != nil {
		stanceChange := *definition.StanceChange
		copied.StanceChange = &stanceChange
	}

	if definition.Upgrade != nil {
		upgrade := *definition.Upgrade
		copied.Upgrade = &upgrade
	}

	return &copied
}

// copyEffects clones an effect slice along with any condition pointers
func copyEffects(effects []card.Effect) []card.Effect {
	if effects == nil {
		return nil
	}

	copied := make([]card.Effect, len(effects))
	for i, effect := range effects {
		copied[i] = effect
		if effect.Condition != nil {
			condition := *effect.Condition
			copied[i].Condition = &condition
		}
	}
	return copied
}
