package playstats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("increment bumps both windows", func(t *testing.T) {
		repo := NewInMemoryRepository()

		require.NoError(t, repo.Increment(ctx, "inst-1", card.UpgradeTimesPlayed, 1))
		require.NoError(t, repo.Increment(ctx, "inst-1", card.UpgradeTimesPlayed, 2))

		fight, err := repo.Get(ctx, "inst-1", card.UpgradeTimesPlayed, card.ScopeFight)
		require.NoError(t, err)
		life, err := repo.Get(ctx, "inst-1", card.UpgradeTimesPlayed, card.ScopeLifetime)
		require.NoError(t, err)

		assert.Equal(t, 3, fight)
		assert.Equal(t, 3, life)
	})

	t.Run("missing counters read zero", func(t *testing.T) {
		repo := NewInMemoryRepository()

		count, err := repo.Get(ctx, "ghost", card.UpgradeDamageDealt, card.ScopeFight)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("set max only raises", func(t *testing.T) {
		repo := NewInMemoryRepository()

		require.NoError(t, repo.SetMax(ctx, "inst-1", card.UpgradeComboReached, 4))
		require.NoError(t, repo.SetMax(ctx, "inst-1", card.UpgradeComboReached, 2))

		count, err := repo.Get(ctx, "inst-1", card.UpgradeComboReached, card.ScopeFight)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("snapshot copies the window", func(t *testing.T) {
		repo := NewInMemoryRepository()
		require.NoError(t, repo.Increment(ctx, "inst-1", card.UpgradeTimesPlayed, 3))
		require.NoError(t, repo.Increment(ctx, "inst-1", card.UpgradeDamageDealt, 12))

		counters, err := repo.Snapshot(ctx, "inst-1", card.ScopeFight)
		require.NoError(t, err)
		assert.Equal(t, 3, counters[card.UpgradeTimesPlayed])
		assert.Equal(t, 12, counters[card.UpgradeDamageDealt])

		// mutating the snapshot leaves the stored window alone
		counters[card.UpgradeTimesPlayed] = 100
		count, err := repo.Get(ctx, "inst-1", card.UpgradeTimesPlayed, card.ScopeFight)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("reset fight clears the fight window only", func(t *testing.T) {
		repo := NewInMemoryRepository()
		require.NoError(t, repo.Increment(ctx, "inst-1", card.UpgradeTimesPlayed, 5))

		require.NoError(t, repo.ResetFight(ctx, "inst-1"))

		fight, err := repo.Get(ctx, "inst-1", card.UpgradeTimesPlayed, card.ScopeFight)
		require.NoError(t, err)
		life, err := repo.Get(ctx, "inst-1", card.UpgradeTimesPlayed, card.ScopeLifetime)
		require.NoError(t, err)

		assert.Zero(t, fight)
		assert.Equal(t, 5, life)
	})

	t.Run("reset counter clears one fight counter", func(t *testing.T) {
		repo := NewInMemoryRepository()
		require.NoError(t, repo.Increment(ctx, "inst-1", card.UpgradeZeroCostPlays, 2))
		require.NoError(t, repo.Increment(ctx, "inst-1", card.UpgradeTimesPlayed, 2))

		require.NoError(t, repo.ResetCounter(ctx, "inst-1", card.UpgradeZeroCostPlays))

		zeroCost, err := repo.Get(ctx, "inst-1", card.UpgradeZeroCostPlays, card.ScopeFight)
		require.NoError(t, err)
		played, err := repo.Get(ctx, "inst-1", card.UpgradeTimesPlayed, card.ScopeFight)
		require.NoError(t, err)

		assert.Zero(t, zeroCost)
		assert.Equal(t, 2, played)
	})

	t.Run("instances do not share counters", func(t *testing.T) {
		repo := NewInMemoryRepository()
		require.NoError(t, repo.Increment(ctx, "inst-1", card.UpgradeTimesPlayed, 1))

		count, err := repo.Get(ctx, "inst-2", card.UpgradeTimesPlayed, card.ScopeFight)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
