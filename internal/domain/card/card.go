package card

import (
	"time"

	forgeerr "github.com/KirkDiggler/card-forge/internal/errors"
)

// StanceChange marks a card that moves its owner into or out of a stance
type StanceChange struct {
	// Stance names the stance the card enters
	Stance string

	// Exit means the card leaves the current stance instead of entering one
	Exit bool
}

// Definition is the full blueprint of a collectible card. Instances in a
// deck reference a definition by ID; play never mutates the definition.
type Definition struct {
	ID          int
	Name        string
	Description string
	ArtworkRef  string

	Rarity   Rarity
	Category Category
	Type     CardType

	EnergyCost int
	Effects    []Effect

	StanceChange *StanceChange

	BuildsCombo         bool
	RequiresCombo       bool
	RequiredComboAmount int

	// PersistentEffects stay active for the rest of the fight after the
	// card resolves. Nil for cards whose effects end with the play.
	PersistentEffects []Effect

	CanUpgrade bool
	Upgrade    *UpgradeCondition

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the definition's internal consistency
func (d *Definition) Validate() error {
	if d.ID <= 0 {
		return forgeerr.Validationf("card id must be positive, got %d", d.ID)
	}

	if d.Name == "" {
		return forgeerr.Validation("card name is required")
	}

	if d.EnergyCost < 0 {
		return forgeerr.Validationf("energy cost cannot be negative, got %d", d.EnergyCost)
	}

	if d.Effects == nil {
		return forgeerr.Validation("card effects cannot be nil")
	}

	for i := range d.Effects {
		if err := d.Effects[i].Validate(); err != nil {
			return forgeerr.Wrapf(err, "effect %d", i)
		}
	}

	for i := range d.PersistentEffects {
		if err := d.PersistentEffects[i].Validate(); err != nil {
			return forgeerr.Wrapf(err, "persistent effect %d", i)
		}
	}

	if d.RequiresCombo && d.RequiredComboAmount < 1 {
		return forgeerr.Validationf("combo-gated card needs a positive combo amount, got %d", d.RequiredComboAmount)
	}

	if d.CanUpgrade && d.Upgrade == nil {
		return forgeerr.Validation("upgradable card is missing its upgrade condition")
	}

	if !d.CanUpgrade && d.Upgrade != nil {
		return forgeerr.Validation("card has an upgrade condition but is not flagged upgradable")
	}

	if d.Upgrade != nil {
		if err := d.Upgrade.Validate(); err != nil {
			return forgeerr.Wrap(err, "invalid upgrade condition")
		}
	}

	return nil
}
