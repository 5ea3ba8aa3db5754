package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forgeerr "github.com/KirkDiggler/card-forge/internal/errors"
)

func validDefinition() *Definition {
	return &Definition{
		ID:         1,
		Name:       "Ember Slash",
		Rarity:     RarityCommon,
		Category:   CategoryAttack,
		Type:       TypeStandard,
		EnergyCost: 1,
		Effects: []Effect{
			{
				Kind:      EffectDamage,
				Magnitude: 6,
				Target:    TargetOpponent,
				Element:   ElementFire,
			},
		},
	}
}

func TestDefinition_Validate(t *testing.T) {
	t.Run("accepts a well-formed card", func(t *testing.T) {
		def := validDefinition()
		require.NoError(t, def.Validate())
	})

	t.Run("rejects non-positive id", func(t *testing.T) {
		def := validDefinition()
		def.ID = 0

		err := def.Validate()
		require.Error(t, err)
		assert.True(t, forgeerr.IsValidation(err))
	})

	t.Run("rejects missing name", func(t *testing.T) {
		def := validDefinition()
		def.Name = ""

		err := def.Validate()
		require.Error(t, err)
		assert.True(t, forgeerr.IsValidation(err))
	})

	t.Run("rejects negative energy cost", func(t *testing.T) {
		def := validDefinition()
		def.EnergyCost = -1

		require.Error(t, def.Validate())
	})

	t.Run("rejects nil effects", func(t *testing.T) {
		def := validDefinition()
		def.Effects = nil

		require.Error(t, def.Validate())
	})

	t.Run("allows an empty effect list", func(t *testing.T) {
		def := validDefinition()
		def.Effects = []Effect{}

		require.NoError(t, def.Validate())
	})

	t.Run("wraps the failing effect index", func(t *testing.T) {
		def := validDefinition()
		def.Effects = append(def.Effects, Effect{Kind: EffectHeal, Magnitude: 0, Target: TargetSelf})

		err := def.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "effect 1")
	})

	t.Run("accepts persistent effects", func(t *testing.T) {
		def := validDefinition()
		def.PersistentEffects = []Effect{
			{Kind: EffectThorns, Magnitude: 3, Target: TargetSelf},
		}

		require.NoError(t, def.Validate())
	})

	t.Run("validates persistent effects", func(t *testing.T) {
		def := validDefinition()
		def.PersistentEffects = []Effect{
			{Kind: EffectThorns, Magnitude: 0, Target: TargetSelf},
		}

		err := def.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "persistent effect 0")
	})

	t.Run("combo gate needs a positive amount", func(t *testing.T) {
		def := validDefinition()
		def.RequiresCombo = true
		def.RequiredComboAmount = 0

		require.Error(t, def.Validate())
	})

	t.Run("upgradable card needs a condition", func(t *testing.T) {
		def := validDefinition()
		def.CanUpgrade = true
		def.Upgrade = nil

		require.Error(t, def.Validate())
	})

	t.Run("condition without the upgradable flag is rejected", func(t *testing.T) {
		def := validDefinition()
		def.CanUpgrade = false
		def.Upgrade = &UpgradeCondition{
			Kind:       UpgradeTimesPlayed,
			Threshold:  4,
			Comparator: CompareGreaterOrEqual,
			Scope:      ScopeFight,
			UpgradedID: 2,
		}

		require.Error(t, def.Validate())
	})

	t.Run("accepts a valid upgrade condition", func(t *testing.T) {
		def := validDefinition()
		def.CanUpgrade = true
		def.Upgrade = &UpgradeCondition{
			Kind:       UpgradeTimesPlayed,
			Threshold:  4,
			Comparator: CompareGreaterOrEqual,
			Scope:      ScopeFight,
			UpgradedID: 2,
		}

		require.NoError(t, def.Validate())
	})
}

func TestUpgradeCondition_Validate(t *testing.T) {
	valid := func() *UpgradeCondition {
		return &UpgradeCondition{
			Kind:       UpgradeDamageDealt,
			Threshold:  30,
			Comparator: CompareGreaterOrEqual,
			Scope:      ScopeLifetime,
			UpgradedID: 7,
		}
	}

	t.Run("accepts a well-formed condition", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("rejects unknown comparator", func(t *testing.T) {
		cond := valid()
		cond.Comparator = "!="

		require.Error(t, cond.Validate())
	})

	t.Run("rejects unknown scope", func(t *testing.T) {
		cond := valid()
		cond.Scope = "season"

		require.Error(t, cond.Validate())
	})

	t.Run("rejects non-positive upgraded id", func(t *testing.T) {
		cond := valid()
		cond.UpgradedID = 0

		require.Error(t, cond.Validate())
	})

	t.Run("rejects threshold below one", func(t *testing.T) {
		cond := valid()
		cond.Threshold = 0

		require.Error(t, cond.Validate())
	})

	t.Run("health window bounds are checked", func(t *testing.T) {
		cond := valid()
		cond.HealthPercentMin = 60
		cond.HealthPercentMax = 30

		require.Error(t, cond.Validate())
	})

	t.Run("zero max disables the health window", func(t *testing.T) {
		cond := valid()
		cond.HealthPercentMin = 60
		cond.HealthPercentMax = 0

		assert.False(t, cond.HasHealthWindow())
		require.NoError(t, cond.Validate())
	})

	t.Run("valid health window is accepted", func(t *testing.T) {
		cond := valid()
		cond.HealthPercentMin = 0
		cond.HealthPercentMax = 25

		assert.True(t, cond.HasHealthWindow())
		require.NoError(t, cond.Validate())
	})
}
