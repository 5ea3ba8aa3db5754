package cards

import (
	"time"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
)

// cardData is the stored JSON shape of a card definition
type cardData struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ArtworkRef  string `json:"artwork_ref,omitempty"`

	Rarity   string `json:"rarity"`
	Category string `json:"category"`
	Type     string `json:"type"`

	EnergyCost int          `json:"energy_cost"`
	Effects    []effectData `json:"effects"`

	StanceChange *stanceChangeData `json:"stance_change,omitempty"`

	BuildsCombo         bool `json:"builds_combo,omitempty"`
	RequiresCombo       bool `json:"requires_combo,omitempty"`
	RequiredComboAmount int  `json:"required_combo_amount,omitempty"`

	PersistentEffects []effectData `json:"persistent_effects,omitempty"`

	CanUpgrade bool         `json:"can_upgrade,omitempty"`
	Upgrade    *upgradeData `json:"upgrade,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type effectData struct {
	Kind      string         `json:"kind"`
	Magnitude int            `json:"magnitude"`
	Target    string         `json:"target"`
	Duration  int            `json:"duration,omitempty"`
	Element   string         `json:"element,omitempty"`
	Condition *conditionData `json:"condition,omitempty"`
}

type conditionData struct {
	Kind         string `json:"kind"`
	Threshold    int    `json:"threshold"`
	Comparator   string `json:"comparator"`
	Policy       string `json:"policy"`
	AltKind      string `json:"alt_kind"`
	AltMagnitude int    `json:"alt_magnitude"`
}

type stanceChangeData struct {
	Stance string `json:"stance,omitempty"`
	Exit   bool   `json:"exit,omitempty"`
}

type upgradeData struct {
	Kind             string `json:"kind"`
	Threshold        int    `json:"threshold"`
	Comparator       string `json:"comparator"`
	Scope            string `json:"scope"`
	AllCopies        bool   `json:"all_copies,omitempty"`
	UpgradedID       int    `json:"upgraded_id"`
	RequiredStance   string `json:"required_stance,omitempty"`
	HealthPercentMin int    `json:"health_percent_min,omitempty"`
	HealthPercentMax int    `json:"health_percent_max,omitempty"`
	SingleTurn       bool   `json:"single_turn,omitempty"`
}

func toData(definition *card.Definition) *cardData {
	if definition == nil {
		return nil
	}

	effects := make([]effectData, len(definition.Effects))
	for i := range definition.Effects {
		effects[i] = toEffectData(&definition.Effects[i])
	}

	data := &cardData{
		ID:                  definition.ID,
		Name:                definition.Name,
		Description:         definition.Description,
		ArtworkRef:          definition.ArtworkRef,
		Rarity:              string(definition.Rarity),
		Category:            string(definition.Category),
		Type:                string(definition.Type),
		EnergyCost:          definition.EnergyCost,
		Effects:             effects,
		BuildsCombo:         definition.BuildsCombo,
		RequiresCombo:       definition.RequiresCombo,
		RequiredComboAmount: definition.RequiredComboAmount,
		CanUpgrade:          definition.CanUpgrade,
		CreatedAt:           definition.CreatedAt,
		UpdatedAt:           definition.UpdatedAt,
	}

	if len(definition.PersistentEffects) > 0 {
		persistent := make([]effectData, len(definition.PersistentEffects))
		for i := range definition.PersistentEffects {
			persistent[i] = toEffectData(&definition.PersistentEffects[i])
		}
		data.PersistentEffects = persistent
	}

	if definition.StanceChange != nil {
		data.StanceChange = &stanceChangeData{
			Stance: definition.StanceChange.Stance,
			Exit:   definition.StanceChange.Exit,
		}
	}

	if definition.Upgrade != nil {
		data.Upgrade = &upgradeData{
			Kind:             string(definition.Upgrade.Kind),
			Threshold:        definition.Upgrade.Threshold,
			Comparator:       string(definition.Upgrade.Comparator),
			Scope:            string(definition.Upgrade.Scope),
			AllCopies:        definition.Upgrade.AllCopies,
			UpgradedID:       definition.Upgrade.UpgradedID,
			RequiredStance:   definition.Upgrade.RequiredStance,
			HealthPercentMin: definition.Upgrade.HealthPercentMin,
			HealthPercentMax: definition.Upgrade.HealthPercentMax,
			SingleTurn:       definition.Upgrade.SingleTurn,
		}
	}

	return data
}

func toEffectData(effect *card.Effect) effectData {
	data := effectData{
		Kind:      string(effect.Kind),
		Magnitude: effect.Magnitude,
		Target:    string(effect.Target),
		Duration:  effect.Duration,
		Element:   string(effect.Element),
	}

	if effect.Condition != nil {
		data.Condition = &conditionData{
			Kind:         string(effect.Condition.Kind),
			Threshold:    effect.Condition.Threshold,
			Comparator:   string(effect.Condition.Comparator),
			Policy:       string(effect.Condition.Policy),
			AltKind:      string(effect.Condition.Alternative.Kind),
			AltMagnitude: effect.Condition.Alternative.Magnitude,
		}
	}

	return data
}

func toDefinition(data *cardData) *card.Definition {
	if data == nil {
		return nil
	}

	effects := make([]card.Effect, len(data.Effects))
	for i := range data.Effects {
		effects[i] = toEffect(&data.Effects[i])
	}

	definition := &card.Definition{
		ID:                  data.ID,
		Name:                data.Name,
		Description:         data.Description,
		ArtworkRef:          data.ArtworkRef,
		Rarity:              card.Rarity(data.Rarity),
		Category:            card.Category(data.Category),
		Type:                card.CardType(data.Type),
		EnergyCost:          data.EnergyCost,
		Effects:             effects,
		BuildsCombo:         data.BuildsCombo,
		RequiresCombo:       data.RequiresCombo,
		RequiredComboAmount: data.RequiredComboAmount,
		CanUpgrade:          data.CanUpgrade,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if len(data.PersistentEffects) > 0 {
		persistent := make([]card.Effect, len(data.PersistentEffects))
		for i := range data.PersistentEffects {
			persistent[i] = toEffect(&data.PersistentEffects[i])
		}
		definition.PersistentEffects = persistent
	}

	if data.StanceChange != nil {
		definition.StanceChange = &card.StanceChange{
			Stance: data.StanceChange.Stance,
			Exit:   data.StanceChange.Exit,
		}
	}

	if data.Upgrade != nil {
		definition.Upgrade = &card.UpgradeCondition{
			Kind:             card.UpgradeKind(data.Upgrade.Kind),
			Threshold:        data.Upgrade.Threshold,
			Comparator:       card.Comparator(data.Upgrade.Comparator),
			Scope:            card.UpgradeScope(data.Upgrade.Scope),
			AllCopies:        data.Upgrade.AllCopies,
			UpgradedID:       data.Upgrade.UpgradedID,
			RequiredStance:   data.Upgrade.RequiredStance,
			HealthPercentMin: data.Upgrade.HealthPercentMin,
			HealthPercentMax: data.Upgrade.HealthPercentMax,
			SingleTurn:       data.Upgrade.SingleTurn,
		}
	}

	return definition
}

func toEffect(data *effectData) card.Effect {
	effect := card.Effect{
		Kind:      card.EffectKind(data.Kind),
		Magnitude: data.Magnitude,
		Target:    card.TargetKind(data.Target),
		Duration:  data.Duration,
		Element:   card.Element(data.Element),
	}

	if data.Condition != nil {
		effect.Condition = &card.EffectCondition{
			Kind:       card.ConditionKind(data.Condition.Kind),
			Threshold:  data.Condition.Threshold,
			Comparator: card.Comparator(data.Condition.Comparator),
			Policy:     card.CombinationPolicy(data.Condition.Policy),
			Alternative: card.AltEffect{
				Kind:      card.EffectKind(data.Condition.AltKind),
				Magnitude: data.Condition.AltMagnitude,
			},
		}
	}

	return effect
}
