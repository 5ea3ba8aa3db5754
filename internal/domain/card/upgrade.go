package card

import (
	forgeerr "github.com/KirkDiggler/card-forge/internal/errors"
)

// UpgradeCondition describes when a card instance transforms into a
// stronger definition. The condition watches one accumulated statistic;
// optional guards restrict which plays count toward it.
type UpgradeCondition struct {
	Kind       UpgradeKind
	Threshold  int
	Comparator Comparator
	Scope      UpgradeScope

	// AllCopies upgrades every copy in the deck instead of just the
	// instance that crossed the threshold
	AllCopies bool

	// UpgradedID is the definition the instance transforms into
	UpgradedID int

	// RequiredStance gates progress to plays made in the named stance.
	// Empty means no stance guard.
	RequiredStance string

	// HealthPercentMin and HealthPercentMax gate progress to plays made
	// while the owner's health percentage sits inside the window. A zero
	// Max disables the window.
	HealthPercentMin int
	HealthPercentMax int

	// SingleTurn resets the counter at end of turn, so the threshold must
	// be reached within one turn
	SingleTurn bool
}

// HasHealthWindow reports whether the health guard is active
func (u *UpgradeCondition) HasHealthWindow() bool {
	return u.HealthPercentMax > 0
}

// Validate checks that the condition is fully specified
func (u *UpgradeCondition) Validate() error {
	if u.Kind == "" {
		return forgeerr.Validation("upgrade kind is required")
	}

	if u.Threshold < 1 {
		return forgeerr.Validationf("upgrade threshold must be at least 1, got %d", u.Threshold)
	}

	switch u.Comparator {
	case CompareGreaterOrEqual, CompareEqual, CompareGreater, CompareLessOrEqual, CompareLess:
	default:
		return forgeerr.Validationf("unknown comparator %q", u.Comparator)
	}

	switch u.Scope {
	case ScopeFight, ScopeLifetime:
	default:
		return forgeerr.Validationf("unknown upgrade scope %q", u.Scope)
	}

	if u.UpgradedID <= 0 {
		return forgeerr.Validationf("upgraded card id must be positive, got %d", u.UpgradedID)
	}

	if u.HasHealthWindow() {
		if u.HealthPercentMin < 0 || u.HealthPercentMin > 100 {
			return forgeerr.Validationf("health window min must be within [0, 100], got %d", u.HealthPercentMin)
		}
		if u.HealthPercentMax > 100 {
			return forgeerr.Validationf("health window max must be within (0, 100], got %d", u.HealthPercentMax)
		}
		if u.HealthPercentMin > u.HealthPercentMax {
			return forgeerr.Validationf("health window min %d exceeds max %d", u.HealthPercentMin, u.HealthPercentMax)
		}
	}

	return nil
}
