package cards

import (
	"context"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcards -source=interface.go

// Repository is the card definition arena. Definitions are keyed by
// numeric id; upgrade links store ids and resolve through Get at use
// time, so a link may point at a definition created later.
type Repository interface {
	// NextID allocates the next definition id
	NextID(ctx context.Context) (int, error)

	Create(ctx context.Context, definition *card.Definition) error
	Get(ctx context.Context, id int) (*card.Definition, error)
	GetBatch(ctx context.Context, ids []int) ([]*card.Definition, error)
	Update(ctx context.Context, definition *card.Definition) error
	Delete(ctx context.Context, id int) error
	ListByRarity(ctx context.Context, rarity card.Rarity) ([]*card.Definition, error)
}
