package generation

import (
	"log"

	"github.com/KirkDiggler/card-forge/internal/config"
	"github.com/KirkDiggler/card-forge/internal/domain/card"
)

const (
	defaultPointsPerEnergy = 4.0

	defaultMinEffects      = 1
	defaultMaxEffects      = 3
	defaultConditionChance = 0.3
	defaultElementChance   = 0.4
)

// tierBudget is the tuning row for one rarity tier
type tierBudget struct {
	total     int
	energyMin int
	energyMax int
}

// defaultTierBudgets keeps budgets strictly increasing with rarity
var defaultTierBudgets = map[card.Rarity]tierBudget{
	card.RarityCommon:    {total: 20, energyMin: 1, energyMax: 3},
	card.RarityUncommon:  {total: 30, energyMin: 1, energyMax: 3},
	card.RarityRare:      {total: 45, energyMin: 2, energyMax: 4},
	card.RarityEpic:      {total: 65, energyMin: 2, energyMax: 5},
	card.RarityLegendary: {total: 90, energyMin: 3, energyMax: 6},
}

// resolveTierBudgets merges the balance bundle's tier rows over the
// built-in table. Tiers the bundle is missing keep the built-in row and
// are flagged so breakdowns can surface the fallback.
func resolveTierBudgets(balance *config.Balance) (map[card.Rarity]tierBudget, map[card.Rarity]bool) {
	budgets := make(map[card.Rarity]tierBudget, len(defaultTierBudgets))
	fallback := make(map[card.Rarity]bool, len(defaultTierBudgets))

	for rarity, tier := range defaultTierBudgets {
		budgets[rarity] = tier
		fallback[rarity] = balance == nil
	}

	if balance == nil {
		return budgets, fallback
	}

	for _, rarity := range card.AllRarities() {
		row, ok := balance.Budget.Tiers[string(rarity)]
		if !ok || row.Total <= 0 || row.EnergyMin < 0 || row.EnergyMax < row.EnergyMin {
			log.Printf("Warning: balance bundle has no usable %s tier, using built-in budget", rarity)
			fallback[rarity] = true
			continue
		}

		budgets[rarity] = tierBudget{
			total:     row.Total,
			energyMin: row.EnergyMin,
			energyMax: row.EnergyMax,
		}
	}

	return budgets, fallback
}

// ComputeBudget derives the point budget split for a rarity tier
func (s *service) ComputeBudget(rarity card.Rarity) *card.BudgetBreakdown {
	tier, ok := s.budgets[rarity]
	usedFallback := s.fallbackTiers[rarity]
	if !ok {
		log.Printf("Warning: no budget tier for rarity %q, using the common tier", rarity)
		tier = defaultTierBudgets[card.RarityCommon]
		usedFallback = true
	}

	spread := tier.energyMax - tier.energyMin
	energyCost := tier.energyMin + s.random.Intn(spread+1)
	energyPoints := float64(energyCost) * s.pointsPerEnergy

	return &card.BudgetBreakdown{
		Rarity:       rarity,
		TotalBudget:  tier.total,
		EnergyCost:   energyCost,
		EnergyPoints: energyPoints,
		EffectBudget: float64(tier.total) - energyPoints,
		UsedFallback: usedFallback,
	}
}

// ApplyUpgradeTax returns a new breakdown with the upgrade condition's
// price added to the tax. The floor on what the tax can consume lives
// in BudgetBreakdown.FinalEffectBudget.
func (s *service) ApplyUpgradeTax(breakdown *card.BudgetBreakdown, kind card.UpgradeKind, threshold int) *card.BudgetBreakdown {
	taxed := *breakdown
	taxed.UpgradeTax += s.upgradeTable.Price(kind, threshold)
	return &taxed
}
