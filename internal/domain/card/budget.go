package card

// BudgetBreakdown records how a rarity's point budget was split while
// generating a card. The split is stochastic per card: the energy slice
// depends on the rolled energy cost.
type BudgetBreakdown struct {
	Rarity      Rarity
	TotalBudget int

	// EnergyCost is the rolled energy cost the card will be played for
	EnergyCost int

	// EnergyPoints is the budget slice consumed by the energy cost
	EnergyPoints float64

	// EffectBudget is what remains for effects before any upgrade tax
	EffectBudget float64

	// UpgradeTax is the price of the attached upgrade condition, 0 when
	// the card has none
	UpgradeTax float64

	// UsedFallback is set when tuning data was missing and built-in
	// defaults were used instead
	UsedFallback bool
}

// FinalEffectBudget is the spend ceiling for the card's effects. A card
// always keeps at least one point to spend, no matter how heavy the
// upgrade tax.
func (b *BudgetBreakdown) FinalEffectBudget() float64 {
	remaining := b.EffectBudget - b.UpgradeTax
	if remaining < 1 {
		return 1
	}
	return remaining
}
