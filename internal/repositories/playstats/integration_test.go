package playstats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
	"github.com/KirkDiggler/card-forge/internal/testutils"
	"github.com/KirkDiggler/card-forge/internal/uuid"
)

// Runs against a real Redis on test DB 15, skipped when none is
// listening
func TestRedisRepositoryIntegration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := NewRedis(client)
	ctx := context.Background()

	fightDeck := testutils.CreateTestDeck(uuid.NewGoogleUUIDGenerator(), 1, 1)
	instanceID := fightDeck.Instances()[0].ID

	require.NoError(t, repo.Increment(ctx, instanceID, card.UpgradeTimesPlayed, 2))
	require.NoError(t, repo.Increment(ctx, instanceID, card.UpgradeTimesPlayed, 1))

	fight, err := repo.Get(ctx, instanceID, card.UpgradeTimesPlayed, card.ScopeFight)
	require.NoError(t, err)
	assert.Equal(t, 3, fight)

	require.NoError(t, repo.SetMax(ctx, instanceID, card.UpgradeComboReached, 5))
	require.NoError(t, repo.SetMax(ctx, instanceID, card.UpgradeComboReached, 2))

	combo, err := repo.Get(ctx, instanceID, card.UpgradeComboReached, card.ScopeFight)
	require.NoError(t, err)
	assert.Equal(t, 5, combo)

	// The fight window clears, the lifetime window keeps counting
	require.NoError(t, repo.ResetFight(ctx, instanceID))

	fight, err = repo.Get(ctx, instanceID, card.UpgradeTimesPlayed, card.ScopeFight)
	require.NoError(t, err)
	assert.Zero(t, fight)

	lifetime, err := repo.Get(ctx, instanceID, card.UpgradeTimesPlayed, card.ScopeLifetime)
	require.NoError(t, err)
	assert.Equal(t, 3, lifetime)
}
