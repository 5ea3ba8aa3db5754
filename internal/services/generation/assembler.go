package generation

import (
	"github.com/KirkDiggler/card-forge/internal/domain/card"
)

// assembleEffects fills the effect budget with rolled effects. The
// returned slice never prices above the budget it was given.
func (s *service) assembleEffects(budget float64) []card.Effect {
	count := s.minEffects + s.random.Intn(s.maxEffects-s.minEffects+1)

	effects := make([]card.Effect, 0, count)
	remaining := budget

	for i := 0; i < count; i++ {
		proposal := s.proposeEffect(remaining)
		if proposal == nil {
			break
		}

		// The proposer bounds magnitude against the unconditioned
		// price; the final price includes the condition discount.
		price := s.effectTable.PriceEffect(proposal)
		if price > remaining {
			continue
		}

		effects = append(effects, *proposal)
		remaining -= price
	}

	return effects
}
