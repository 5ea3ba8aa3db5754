package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/card-forge/internal/config"
	"github.com/KirkDiggler/card-forge/internal/domain/card"
	"github.com/KirkDiggler/card-forge/internal/random"
	mockrandom "github.com/KirkDiggler/card-forge/internal/random/mock"
	"github.com/KirkDiggler/card-forge/internal/repositories/cards"
)

func newTestService(t *testing.T, source random.Source, balance *config.Balance) *service {
	t.Helper()

	svc, ok := NewService(&ServiceConfig{
		Repository: cards.NewInMemoryRepository(),
		Balance:    balance,
		Random:     source,
	}).(*service)
	require.True(t, ok)

	return svc
}

func tunedBalance() *config.Balance {
	return &config.Balance{
		Budget: config.BudgetBalance{
			PointsPerEnergy: 4.0,
			Tiers: map[string]config.TierBudget{
				"common":    {Total: 20, EnergyMin: 1, EnergyMax: 3},
				"uncommon":  {Total: 30, EnergyMin: 1, EnergyMax: 3},
				"rare":      {Total: 45, EnergyMin: 2, EnergyMax: 4},
				"epic":      {Total: 65, EnergyMin: 2, EnergyMax: 5},
				"legendary": {Total: 90, EnergyMin: 3, EnergyMax: 6},
			},
		},
	}
}

func TestComputeBudget(t *testing.T) {
	t.Run("splits the common budget around the energy slice", func(t *testing.T) {
		source := mockrandom.NewScriptedSource()
		source.QueueInts(2) // energy roll lands on 1+2

		svc := newTestService(t, source, tunedBalance())

		breakdown := svc.ComputeBudget(card.RarityCommon)

		assert.Equal(t, card.RarityCommon, breakdown.Rarity)
		assert.Equal(t, 20, breakdown.TotalBudget)
		assert.Equal(t, 3, breakdown.EnergyCost)
		assert.InDelta(t, 12.0, breakdown.EnergyPoints, 0.0001)
		assert.InDelta(t, 8.0, breakdown.EffectBudget, 0.0001)
		assert.False(t, breakdown.UsedFallback)
	})

	t.Run("energy stays inside the tier range", func(t *testing.T) {
		svc := newTestService(t, random.NewSeededSource(7), tunedBalance())

		for i := 0; i < 100; i++ {
			breakdown := svc.ComputeBudget(card.RarityRare)
			assert.GreaterOrEqual(t, breakdown.EnergyCost, 2)
			assert.LessOrEqual(t, breakdown.EnergyCost, 4)
		}
	})

	t.Run("effect budget and energy points add up to the total", func(t *testing.T) {
		svc := newTestService(t, random.NewSeededSource(11), tunedBalance())

		for _, rarity := range card.AllRarities() {
			breakdown := svc.ComputeBudget(rarity)
			assert.InDelta(t, float64(breakdown.TotalBudget), breakdown.EffectBudget+breakdown.EnergyPoints, 0.0001)
		}
	})

	t.Run("budgets grow with rarity", func(t *testing.T) {
		svc := newTestService(t, random.NewSeededSource(3), tunedBalance())

		previous := 0
		for _, rarity := range card.AllRarities() {
			breakdown := svc.ComputeBudget(rarity)
			assert.Greater(t, breakdown.TotalBudget, previous, "rarity %s", rarity)
			previous = breakdown.TotalBudget
		}
	})

	t.Run("unknown rarity falls back to the common tier", func(t *testing.T) {
		source := mockrandom.NewScriptedSource()
		source.QueueInts(0)

		svc := newTestService(t, source, tunedBalance())

		breakdown := svc.ComputeBudget(card.Rarity("mythic"))

		assert.Equal(t, 20, breakdown.TotalBudget)
		assert.True(t, breakdown.UsedFallback)
	})

	t.Run("missing tier keeps the built-in budget and flags it", func(t *testing.T) {
		partial := tunedBalance()
		delete(partial.Budget.Tiers, "rare")

		source := mockrandom.NewScriptedSource()
		source.QueueInts(0, 0)

		svc := newTestService(t, source, partial)

		rare := svc.ComputeBudget(card.RarityRare)
		assert.Equal(t, 45, rare.TotalBudget)
		assert.True(t, rare.UsedFallback)

		common := svc.ComputeBudget(card.RarityCommon)
		assert.False(t, common.UsedFallback)
	})

	t.Run("no balance bundle flags every tier", func(t *testing.T) {
		source := mockrandom.NewScriptedSource()
		source.QueueInts(0)

		svc := newTestService(t, source, nil)

		breakdown := svc.ComputeBudget(card.RarityCommon)
		assert.True(t, breakdown.UsedFallback)
	})
}

func TestApplyUpgradeTax(t *testing.T) {
	t.Run("taxes the upgrade price off the effect budget", func(t *testing.T) {
		source := mockrandom.NewScriptedSource()
		source.QueueInts(2)

		svc := newTestService(t, source, tunedBalance())

		breakdown := svc.ComputeBudget(card.RarityCommon)
		require.InDelta(t, 8.0, breakdown.EffectBudget, 0.0001)

		taxed := svc.ApplyUpgradeTax(breakdown, card.UpgradeTimesPlayed, 4)

		assert.InDelta(t, 3.0, taxed.UpgradeTax, 0.0001)
		assert.InDelta(t, 5.0, taxed.FinalEffectBudget(), 0.0001)

		// The input breakdown is left alone
		assert.Zero(t, breakdown.UpgradeTax)
	})

	t.Run("taxes accumulate", func(t *testing.T) {
		svc := newTestService(t, random.NewSeededSource(1), tunedBalance())

		breakdown := svc.ComputeBudget(card.RarityCommon)
		taxed := svc.ApplyUpgradeTax(breakdown, card.UpgradeTimesPlayed, 4)
		taxed = svc.ApplyUpgradeTax(taxed, card.UpgradeTimesPlayed, 4)

		assert.InDelta(t, 6.0, taxed.UpgradeTax, 0.0001)
	})

	t.Run("a crushing tax still leaves one point", func(t *testing.T) {
		svc := newTestService(t, random.NewSeededSource(1), tunedBalance())

		breakdown := svc.ComputeBudget(card.RarityCommon)
		taxed := svc.ApplyUpgradeTax(breakdown, card.UpgradeFightsWon, 9999)

		assert.InDelta(t, 1.0, taxed.FinalEffectBudget(), 0.0001)
	})
}
