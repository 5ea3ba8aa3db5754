package testutils

import (
	"fmt"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
	"github.com/KirkDiggler/card-forge/internal/domain/deck"
	"github.com/KirkDiggler/card-forge/internal/uuid"
)

// CreateTestDefinition creates a test card definition
func CreateTestDefinition(id int, name string, rarity card.Rarity) *card.Definition {
	return &card.Definition{
		ID:         id,
		Name:       name,
		Rarity:     rarity,
		Category:   card.CategoryAttack,
		Type:       card.TypeStandard,
		EnergyCost: 1,
		Effects: []card.Effect{
			{
				Kind:      card.EffectDamage,
				Magnitude: 6,
				Target:    card.TargetOpponent,
				Element:   card.ElementFire,
			},
		},
	}
}

// CreateUpgradableDefinition creates a definition that upgrades into
// targetID once the condition is met
func CreateUpgradableDefinition(id, targetID int, kind card.UpgradeKind, threshold int) *card.Definition {
	definition := CreateTestDefinition(id, fmt.Sprintf("Card %d", id), card.RarityCommon)
	definition.CanUpgrade = true
	definition.Upgrade = &card.UpgradeCondition{
		Kind:       kind,
		Threshold:  threshold,
		Comparator: card.CompareGreaterOrEqual,
		Scope:      card.ScopeFight,
		UpgradedID: targetID,
	}
	return definition
}

// CreateConditionalDefinition creates a definition whose effect swaps
// payloads when the condition holds
func CreateConditionalDefinition(id int, name string) *card.Definition {
	definition := CreateTestDefinition(id, name, card.RarityUncommon)
	definition.Effects[0].Condition = &card.EffectCondition{
		Kind:       card.ConditionHealthBelowSource,
		Threshold:  50,
		Comparator: card.CompareLess,
		Policy:     card.PolicyReplace,
		Alternative: card.AltEffect{
			Kind:      card.EffectDamage,
			Magnitude: 10,
		},
	}
	return definition
}

// CreateTestDeck creates a fight deck holding copies of one definition
// in the draw pile
func CreateTestDeck(gen uuid.Generator, definitionID, copies int) *deck.Deck {
	fightDeck := deck.New()
	for i := 0; i < copies; i++ {
		fightDeck.Add(deck.ZoneDraw, &deck.CardInstance{
			ID:           gen.New(),
			DefinitionID: definitionID,
		})
	}
	return fightDeck
}
