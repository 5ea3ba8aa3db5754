package pricing

import (
	"github.com/KirkDiggler/card-forge/internal/config"
	"github.com/KirkDiggler/card-forge/internal/domain/card"
)

// unknownUpgradeCost prices upgrade kinds with no table entry. Flat and
// non-zero so an unmapped kind still taxes the budget instead of
// aborting generation.
const unknownUpgradeCost = 1.0

// upgradeRate prices one upgrade kind: base + perUnit * threshold
type upgradeRate struct {
	base    float64
	perUnit float64
}

// UpgradeTable prices the tax an attached upgrade condition levies on a
// card's effect budget
type UpgradeTable struct {
	rates map[card.UpgradeKind]upgradeRate
}

// NewUpgradeTable creates an upgrade table with the built-in tuning
func NewUpgradeTable() *UpgradeTable {
	return &UpgradeTable{
		rates: map[card.UpgradeKind]upgradeRate{
			card.UpgradeTimesPlayed:   {base: 1.0, perUnit: 0.5},
			card.UpgradeDamageDealt:   {base: 1.0, perUnit: 0.05},
			card.UpgradeHealingDone:   {base: 1.0, perUnit: 0.08},
			card.UpgradeComboReached:  {base: 2.0, perUnit: 0.5},
			card.UpgradeLowHealthPlay: {base: 2.0, perUnit: 1.0},
			card.UpgradeZeroCostPlays: {base: 1.0, perUnit: 0.75},
			card.UpgradeFightsWon:     {base: 2.0, perUnit: 1.5},
			card.UpgradePerfectFights: {base: 3.0, perUnit: 2.0},
		},
	}
}

// NewUpgradeTableFromBalance creates an upgrade table with the built-in
// tuning overlaid by whatever the balance bundle provides
func NewUpgradeTableFromBalance(balance *config.Balance) *UpgradeTable {
	table := NewUpgradeTable()
	if balance == nil {
		return table
	}

	for kind, row := range balance.Upgrades {
		if row.Base < 0 || row.PerUnit < 0 {
			continue
		}
		table.rates[card.UpgradeKind(kind)] = upgradeRate{
			base:    row.Base,
			perUnit: row.PerUnit,
		}
	}

	return table
}

// Price returns the budget tax for attaching the condition
func (t *UpgradeTable) Price(kind card.UpgradeKind, threshold int) float64 {
	rate, ok := t.rates[kind]
	if !ok {
		return unknownUpgradeCost
	}
	return rate.base + rate.perUnit*float64(threshold)
}
