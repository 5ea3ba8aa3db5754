package progression

import (
	"github.com/KirkDiggler/card-forge/internal/domain/card"
)

// Satisfied reports whether an accumulated counter meets its
// requirement under the given comparator. Unknown comparators never
// satisfy.
func Satisfied(accumulated, required int, comparator card.Comparator) bool {
	switch comparator {
	case card.CompareGreaterOrEqual:
		return accumulated >= required
	case card.CompareEqual:
		return accumulated == required
	case card.CompareGreater:
		return accumulated > required
	case card.CompareLessOrEqual:
		return accumulated <= required
	case card.CompareLess:
		return accumulated < required
	default:
		return false
	}
}

// TickContext carries the fight state a tick happened under
type TickContext struct {
	Stance        string
	HealthPercent int
}

// GuardsAllow reports whether a tick may count toward a condition.
// Unguarded conditions always allow. Guarded conditions need a tick
// context that clears every guard they carry.
func GuardsAllow(condition *card.UpgradeCondition, tick *TickContext) bool {
	if condition.RequiredStance == "" && !condition.HasHealthWindow() {
		return true
	}

	if tick == nil {
		return false
	}

	if condition.RequiredStance != "" && tick.Stance != condition.RequiredStance {
		return false
	}

	if condition.HasHealthWindow() {
		if tick.HealthPercent < condition.HealthPercentMin || tick.HealthPercent > condition.HealthPercentMax {
			return false
		}
	}

	return true
}
