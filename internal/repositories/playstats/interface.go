package playstats

import (
	"context"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mockplaystats -source=interface.go

// Repository stores accumulated play statistics per card instance. The
// play tracker owns all writes and serializes them per (instance,
// statistic) pair; readers see a consistent snapshot, nothing here
// coordinates concurrent writers to the same counter.
type Repository interface {
	// Increment bumps a counter in both the fight and lifetime windows
	Increment(ctx context.Context, instanceID string, kind card.UpgradeKind, delta int) error

	// Get reads one counter in the given scope. Missing counters read 0.
	Get(ctx context.Context, instanceID string, kind card.UpgradeKind, scope card.UpgradeScope) (int, error)

	// SetMax raises a counter to value when value is higher, in both
	// windows. Used for high-water statistics like combo reached.
	SetMax(ctx context.Context, instanceID string, kind card.UpgradeKind, value int) error

	// Snapshot reads every counter for an instance in the given scope
	Snapshot(ctx context.Context, instanceID string, scope card.UpgradeScope) (map[card.UpgradeKind]int, error)

	// ResetFight clears the fight window for an instance
	ResetFight(ctx context.Context, instanceID string) error

	// ResetCounter clears one fight-window counter. Used by single-turn
	// conditions at end of turn.
	ResetCounter(ctx context.Context, instanceID string, kind card.UpgradeKind) error
}
