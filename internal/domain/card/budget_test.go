package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetBreakdown_FinalEffectBudget(t *testing.T) {
	t.Run("subtracts the upgrade tax", func(t *testing.T) {
		breakdown := &BudgetBreakdown{
			Rarity:       RarityCommon,
			TotalBudget:  20,
			EnergyCost:   3,
			EnergyPoints: 12,
			EffectBudget: 8,
			UpgradeTax:   3,
		}

		assert.Equal(t, 5.0, breakdown.FinalEffectBudget())
	})

	t.Run("no tax leaves the effect budget untouched", func(t *testing.T) {
		breakdown := &BudgetBreakdown{EffectBudget: 8}

		assert.Equal(t, 8.0, breakdown.FinalEffectBudget())
	})

	t.Run("tax can never push the budget below one", func(t *testing.T) {
		breakdown := &BudgetBreakdown{EffectBudget: 5, UpgradeTax: 9999}

		assert.Equal(t, 1.0, breakdown.FinalEffectBudget())
	})

	t.Run("tax exactly consuming the budget still leaves one point", func(t *testing.T) {
		breakdown := &BudgetBreakdown{EffectBudget: 6, UpgradeTax: 6}

		assert.Equal(t, 1.0, breakdown.FinalEffectBudget())
	})
}
