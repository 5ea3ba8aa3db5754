package events

import "context"

// TriggerType represents the type of play trigger
type TriggerType string

const (
	// TriggerCardPlayed fires when a card instance resolves
	TriggerCardPlayed TriggerType = "card_played"

	// TriggerDamageDealt fires after a card's damage lands
	TriggerDamageDealt TriggerType = "damage_dealt"

	// TriggerHealingDone fires after a card's healing lands
	TriggerHealingDone TriggerType = "healing_done"

	// TriggerTurnEnded fires when the owning fighter's turn ends
	TriggerTurnEnded TriggerType = "turn_ended"

	// TriggerFightEnded fires when the fight resolves
	TriggerFightEnded TriggerType = "fight_ended"
)

// GameEvent carries the play-time facts listeners need to keep upgrade
// counters current. Fields beyond Type are filled per trigger; zero
// values mean "not applicable".
type GameEvent struct {
	Type TriggerType

	// InstanceID names the card copy the trigger concerns, empty for
	// turn and fight triggers
	InstanceID string

	// Amount is the damage or healing dealt
	Amount int

	// Turn is the current turn number
	Turn int

	// EnergySpent is the energy paid to play the card
	EnergySpent int

	// Stance is the stance the owner was in when the trigger fired
	Stance string

	// HealthPercent is the owner's health percentage at trigger time
	HealthPercent int

	// ComboCount is the owner's combo counter at trigger time
	ComboCount int

	// Won and Perfect describe a fight_ended trigger
	Won     bool
	Perfect bool
}

// Listener processes play triggers
type Listener interface {
	HandleEvent(ctx context.Context, event *GameEvent) error
	Priority() int
	ID() string
}
