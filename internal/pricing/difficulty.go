package pricing

import (
	"github.com/KirkDiggler/card-forge/internal/domain/card"
)

// Difficulty tiers how hard an effect condition is to satisfy in play.
// Harder conditions discount the effect more.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// conditionDifficulty lists only the kinds that deviate from medium.
// Unlisted kinds, including kinds added later, land in the medium tier.
var conditionDifficulty = map[card.ConditionKind]Difficulty{
	card.ConditionCardsInHand:       DifficultyEasy,
	card.ConditionEnergyRemaining:   DifficultyEasy,
	card.ConditionCardsInDeck:       DifficultyEasy,
	card.ConditionComboCount:        DifficultyHard,
	card.ConditionZeroCostThisFight: DifficultyHard,
	card.ConditionPerfectionStreak:  DifficultyHard,
}
