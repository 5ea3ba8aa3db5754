package card

import (
	forgeerr "github.com/KirkDiggler/card-forge/internal/errors"
)

// Effect is one mechanical action a card performs when played
type Effect struct {
	Kind      EffectKind
	Magnitude int
	Target    TargetKind

	// Duration is the number of turns the effect persists, 0 for instant
	Duration int

	// Element is only meaningful for kinds that support an elemental tag
	Element Element

	// Condition upgrades the effect when a play-time statistic crosses a
	// threshold. Nil means the effect is unconditional.
	Condition *EffectCondition
}

// AltEffect is the alternative arm of a conditional effect
type AltEffect struct {
	Kind      EffectKind
	Magnitude int
}

// EffectCondition describes when and how a conditional effect changes
type EffectCondition struct {
	Kind       ConditionKind
	Threshold  int
	Comparator Comparator
	Policy     CombinationPolicy
	Alternative AltEffect
}

// Validate checks the effect's internal consistency
func (e *Effect) Validate() error {
	if e.Kind == "" {
		return forgeerr.Validation("effect kind is required")
	}

	if e.Magnitude < 1 {
		return forgeerr.Validationf("effect magnitude must be at least 1, got %d", e.Magnitude)
	}

	if e.Duration < 0 {
		return forgeerr.Validationf("effect duration cannot be negative, got %d", e.Duration)
	}

	if e.Element != "" && e.Element != ElementNone && !e.Kind.SupportsElement() {
		return forgeerr.Validationf("effect kind %s cannot carry element %s", e.Kind, e.Element)
	}

	if e.Condition != nil {
		if err := e.Condition.Validate(); err != nil {
			return forgeerr.Wrap(err, "invalid effect condition")
		}
	}

	return nil
}

// Validate checks that the condition is fully specified
func (c *EffectCondition) Validate() error {
	if c.Kind == "" {
		return forgeerr.Validation("condition kind is required")
	}

	if c.Threshold < 0 {
		return forgeerr.Validationf("condition threshold cannot be negative, got %d", c.Threshold)
	}

	switch c.Comparator {
	case CompareGreaterOrEqual, CompareEqual, CompareGreater, CompareLessOrEqual, CompareLess:
	default:
		return forgeerr.Validationf("unknown comparator %q", c.Comparator)
	}

	switch c.Policy {
	case PolicyReplace, PolicyAdditional:
	default:
		return forgeerr.Validationf("unknown combination policy %q", c.Policy)
	}

	if c.Alternative.Kind == "" {
		return forgeerr.Validation("condition alternative kind is required")
	}

	if c.Alternative.Magnitude < 1 {
		return forgeerr.Validationf("condition alternative magnitude must be at least 1, got %d", c.Alternative.Magnitude)
	}

	return nil
}

// IsConditional reports whether the effect carries a condition
func (e *Effect) IsConditional() bool {
	return e.Condition != nil
}
