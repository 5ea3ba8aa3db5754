package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffect_Validate(t *testing.T) {
	t.Run("accepts a plain effect", func(t *testing.T) {
		effect := &Effect{Kind: EffectHeal, Magnitude: 4, Target: TargetSelf}
		require.NoError(t, effect.Validate())
	})

	t.Run("rejects missing kind", func(t *testing.T) {
		effect := &Effect{Magnitude: 4, Target: TargetSelf}
		require.Error(t, effect.Validate())
	})

	t.Run("rejects magnitude below one", func(t *testing.T) {
		effect := &Effect{Kind: EffectDamage, Magnitude: 0, Target: TargetOpponent}
		require.Error(t, effect.Validate())
	})

	t.Run("rejects negative duration", func(t *testing.T) {
		effect := &Effect{Kind: EffectStun, Magnitude: 1, Target: TargetOpponent, Duration: -1}
		require.Error(t, effect.Validate())
	})

	t.Run("element is only allowed on elemental kinds", func(t *testing.T) {
		effect := &Effect{Kind: EffectDraw, Magnitude: 2, Target: TargetSelf, Element: ElementIce}
		require.Error(t, effect.Validate())
	})

	t.Run("damage carries an element", func(t *testing.T) {
		effect := &Effect{Kind: EffectDamage, Magnitude: 5, Target: TargetOpponent, Element: ElementLightning}
		require.NoError(t, effect.Validate())
	})

	t.Run("conditional effect needs a complete condition", func(t *testing.T) {
		effect := &Effect{
			Kind:      EffectDamage,
			Magnitude: 5,
			Target:    TargetOpponent,
			Condition: &EffectCondition{
				Kind:      ConditionComboCount,
				Threshold: 3,
				Policy:    PolicyReplace,
			},
		}

		err := effect.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid effect condition")
	})

	t.Run("accepts a complete condition", func(t *testing.T) {
		effect := &Effect{
			Kind:      EffectDamage,
			Magnitude: 5,
			Target:    TargetOpponent,
			Condition: &EffectCondition{
				Kind:        ConditionComboCount,
				Threshold:   3,
				Comparator:  CompareGreaterOrEqual,
				Policy:      PolicyReplace,
				Alternative: AltEffect{Kind: EffectDamage, Magnitude: 9},
			},
		}

		require.NoError(t, effect.Validate())
		assert.True(t, effect.IsConditional())
	})

	t.Run("alternative needs a positive magnitude", func(t *testing.T) {
		cond := &EffectCondition{
			Kind:        ConditionCardsInHand,
			Threshold:   2,
			Comparator:  CompareLessOrEqual,
			Policy:      PolicyAdditional,
			Alternative: AltEffect{Kind: EffectDraw, Magnitude: 0},
		}

		require.Error(t, cond.Validate())
	})

	t.Run("unknown combination policy is rejected", func(t *testing.T) {
		cond := &EffectCondition{
			Kind:        ConditionCardsInHand,
			Threshold:   2,
			Comparator:  CompareLessOrEqual,
			Policy:      "stack",
			Alternative: AltEffect{Kind: EffectDraw, Magnitude: 1},
		}

		require.Error(t, cond.Validate())
	})
}

func TestEffectKind_Traits(t *testing.T) {
	t.Run("element support", func(t *testing.T) {
		assert.True(t, EffectDamage.SupportsElement())
		assert.True(t, EffectElementalStatus.SupportsElement())
		assert.False(t, EffectHeal.SupportsElement())
		assert.False(t, EffectStun.SupportsElement())
	})

	t.Run("duration support", func(t *testing.T) {
		assert.True(t, EffectElementalStatus.HasDuration())
		assert.True(t, EffectStun.HasDuration())
		assert.True(t, EffectStanceEnter.HasDuration())
		assert.True(t, EffectLimitBreak.HasDuration())
		assert.False(t, EffectDamage.HasDuration())
		assert.False(t, EffectDraw.HasDuration())
	})

	t.Run("all effect kinds are distinct", func(t *testing.T) {
		seen := make(map[EffectKind]bool)
		for _, kind := range AllEffectKinds() {
			assert.False(t, seen[kind], "duplicate kind %s", kind)
			seen[kind] = true
		}
		assert.Len(t, seen, 18)
	})
}
