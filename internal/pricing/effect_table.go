package pricing

import (
	"github.com/KirkDiggler/card-forge/internal/config"
	"github.com/KirkDiggler/card-forge/internal/domain/card"
)

// fallbackUnitRate prices effect kinds with no table entry. It is never
// zero: a free effect would let the assembler loop spend nothing forever.
const fallbackUnitRate = 1.0

// EffectTable prices effects in budget points. Linear kinds cost
// magnitude times a per-unit rate; flat kinds cost the same no matter
// the magnitude. Attached conditions discount the price by difficulty.
type EffectTable struct {
	unitRates   map[card.EffectKind]float64
	flatCosts   map[card.EffectKind]float64
	multipliers map[Difficulty]float64
	difficulty  map[card.ConditionKind]Difficulty
}

// NewEffectTable creates an effect table with the built-in tuning
func NewEffectTable() *EffectTable {
	table := &EffectTable{
		unitRates: map[card.EffectKind]float64{
			card.EffectDamage:         0.4,
			card.EffectHeal:           0.5,
			card.EffectDraw:           1.5,
			card.EffectDiscard:        0.8,
			card.EffectShield:         0.45,
			card.EffectThorns:         0.6,
			card.EffectStrength:       1.2,
			card.EffectSalve:          0.7,
			card.EffectCriticalChance: 0.35,
			card.EffectLimitBreak:     1.4,
		},
		flatCosts: map[card.EffectKind]float64{
			card.EffectWeak:            2.0,
			card.EffectBreak:           2.5,
			card.EffectBurn:            2.0,
			card.EffectStun:            4.0,
			card.EffectCurse:           3.0,
			card.EffectElementalStatus: 2.5,
			card.EffectStanceEnter:     2.0,
			card.EffectStanceExit:      1.0,
		},
		multipliers: map[Difficulty]float64{
			DifficultyEasy:   0.9,
			DifficultyMedium: 0.75,
			DifficultyHard:   0.6,
		},
		difficulty: make(map[card.ConditionKind]Difficulty),
	}

	for kind, tier := range conditionDifficulty {
		table.difficulty[kind] = tier
	}

	return table
}

// NewEffectTableFromBalance creates an effect table with the built-in
// tuning overlaid by whatever the balance bundle provides
func NewEffectTableFromBalance(balance *config.Balance) *EffectTable {
	table := NewEffectTable()
	if balance == nil {
		return table
	}

	for kind, rate := range balance.Effects.UnitRates {
		if rate > 0 {
			table.unitRates[card.EffectKind(kind)] = rate
		}
	}
	for kind, cost := range balance.Effects.FlatCosts {
		if cost > 0 {
			table.flatCosts[card.EffectKind(kind)] = cost
		}
	}

	for _, kind := range balance.Conditions.Easy {
		table.difficulty[card.ConditionKind(kind)] = DifficultyEasy
	}
	for _, kind := range balance.Conditions.Hard {
		table.difficulty[card.ConditionKind(kind)] = DifficultyHard
	}

	// Multipliers outside (0, 1] would turn the discount into a markup
	// or price conditional effects at zero, so they are ignored
	for tier, multiplier := range balance.Conditions.Multipliers {
		if multiplier > 0 && multiplier <= 1 {
			table.multipliers[Difficulty(tier)] = multiplier
		}
	}

	return table
}

// IsFlat reports whether the kind is priced independent of magnitude
func (t *EffectTable) IsFlat(kind card.EffectKind) bool {
	_, ok := t.flatCosts[kind]
	return ok
}

// UnitPrice returns the cost of one unit of the kind. For flat kinds
// this is the full price of the effect.
func (t *EffectTable) UnitPrice(kind card.EffectKind) float64 {
	if cost, ok := t.flatCosts[kind]; ok {
		return cost
	}
	if rate, ok := t.unitRates[kind]; ok {
		return rate
	}
	return fallbackUnitRate
}

// Price returns the unconditioned cost of an effect kind at a magnitude
func (t *EffectTable) Price(kind card.EffectKind, magnitude int) float64 {
	if cost, ok := t.flatCosts[kind]; ok {
		return cost
	}
	if rate, ok := t.unitRates[kind]; ok {
		return float64(magnitude) * rate
	}
	return float64(magnitude) * fallbackUnitRate
}

// ConditionMultiplier returns the discount for attaching the condition
func (t *EffectTable) ConditionMultiplier(kind card.ConditionKind) float64 {
	tier, ok := t.difficulty[kind]
	if !ok {
		tier = DifficultyMedium
	}
	if multiplier, ok := t.multipliers[tier]; ok {
		return multiplier
	}
	return t.multipliers[DifficultyMedium]
}

// PriceEffect returns the full cost of an effect, condition discount
// included
func (t *EffectTable) PriceEffect(e *card.Effect) float64 {
	price := t.Price(e.Kind, e.Magnitude)
	if e.Condition != nil {
		price *= t.ConditionMultiplier(e.Condition.Kind)
	}
	return price
}
