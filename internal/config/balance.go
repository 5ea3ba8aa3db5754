package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	forgeerr "github.com/KirkDiggler/card-forge/internal/errors"
)

// Balance is the tuning bundle for card generation. Every section is
// optional; the pricing and budget code fall back to built-in defaults
// for anything left out.
type Balance struct {
	Budget     BudgetBalance         `toml:"budget"`
	Effects    EffectsBalance        `toml:"effects"`
	Conditions ConditionsBalance     `toml:"conditions"`
	Upgrades   map[string]UpgradeRow `toml:"upgrades"`
	Assembler  AssemblerBalance      `toml:"assembler"`
}

// BudgetBalance tunes the per-rarity point budgets
type BudgetBalance struct {
	PointsPerEnergy float64               `toml:"points_per_energy"`
	Tiers           map[string]TierBudget `toml:"tiers"`
}

// TierBudget is one rarity's budget and energy cost range
type TierBudget struct {
	Total     int `toml:"total"`
	EnergyMin int `toml:"energy_min"`
	EnergyMax int `toml:"energy_max"`
}

// EffectsBalance tunes effect prices. Keys are effect kinds.
type EffectsBalance struct {
	UnitRates map[string]float64 `toml:"unit_rates"`
	FlatCosts map[string]float64 `toml:"flat_costs"`
}

// ConditionsBalance tunes condition difficulty. Easy and Hard list
// condition kinds; anything unlisted counts as medium.
type ConditionsBalance struct {
	Easy        []string           `toml:"easy"`
	Hard        []string           `toml:"hard"`
	Multipliers map[string]float64 `toml:"multipliers"`
}

// UpgradeRow prices one upgrade kind: base + per_unit * threshold
type UpgradeRow struct {
	Base    float64 `toml:"base"`
	PerUnit float64 `toml:"per_unit"`
}

// AssemblerBalance tunes how many effects a card rolls and the attach chances
type AssemblerBalance struct {
	MinEffects      int     `toml:"min_effects"`
	MaxEffects      int     `toml:"max_effects"`
	ConditionChance float64 `toml:"condition_chance"`
	ElementChance   float64 `toml:"element_chance"`
}

// LoadBalance reads a tuning bundle from a TOML file
func LoadBalance(path string) (*Balance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, forgeerr.WrapWithCode(err, forgeerr.CodeConfigMissing, "failed to open balance bundle")
	}
	defer func() {
		_ = file.Close()
	}()

	var balance Balance
	if err := toml.NewDecoder(file).Decode(&balance); err != nil {
		return nil, forgeerr.Wrap(err, "failed to decode balance bundle")
	}

	return &balance, nil
}
