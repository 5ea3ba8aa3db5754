package progression

import (
	"context"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
	"github.com/KirkDiggler/card-forge/internal/domain/deck"
	forgeerr "github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/events"
)

const trackerListenerID = "upgrade-tracker"

// Tracker feeds play triggers from the trigger bus into the
// progression service for one fight's deck
type Tracker struct {
	service   Service
	fightDeck *deck.Deck
}

// NewTracker creates a tracker bound to one fight's deck
func NewTracker(service Service, fightDeck *deck.Deck) *Tracker {
	if service == nil {
		panic("progression service is required")
	}
	if fightDeck == nil {
		panic("deck is required")
	}

	return &Tracker{
		service:   service,
		fightDeck: fightDeck,
	}
}

// ID implements events.Listener
func (t *Tracker) ID() string {
	return trackerListenerID
}

// Priority implements events.Listener
func (t *Tracker) Priority() int {
	return 100
}

// HandleEvent implements events.Listener
func (t *Tracker) HandleEvent(ctx context.Context, event *events.GameEvent) error {
	switch event.Type {
	case events.TriggerCardPlayed:
		return t.handleCardPlayed(ctx, event)
	case events.TriggerDamageDealt:
		return t.handleAmount(ctx, event, card.UpgradeDamageDealt)
	case events.TriggerHealingDone:
		return t.handleAmount(ctx, event, card.UpgradeHealingDone)
	case events.TriggerTurnEnded:
		return t.service.EndTurn(ctx, t.fightDeck)
	case events.TriggerFightEnded:
		return t.handleFightEnded(ctx, event)
	}

	return nil
}

func (t *Tracker) handleCardPlayed(ctx context.Context, event *events.GameEvent) error {
	instance := t.fightDeck.FindInstance(event.InstanceID)
	if instance == nil {
		return forgeerr.NotFoundf("played card %s is not in the deck", event.InstanceID)
	}

	tick := tickFor(event)

	// Guard filtering inside the service sorts out which of these the
	// condition actually counts
	if err := t.service.RecordTick(ctx, &RecordTickInput{Instance: instance, Kind: card.UpgradeTimesPlayed, Tick: tick}); err != nil {
		return err
	}
	if err := t.service.RecordTick(ctx, &RecordTickInput{Instance: instance, Kind: card.UpgradeLowHealthPlay, Tick: tick}); err != nil {
		return err
	}
	if event.EnergySpent == 0 {
		if err := t.service.RecordTick(ctx, &RecordTickInput{Instance: instance, Kind: card.UpgradeZeroCostPlays, Tick: tick}); err != nil {
			return err
		}
	}
	if event.ComboCount > 0 {
		highWater := &RecordTickInput{
			Instance: instance,
			Kind:     card.UpgradeComboReached,
			Amount:   event.ComboCount,
			Tick:     tick,
		}
		if err := t.service.RecordHighWater(ctx, highWater); err != nil {
			return err
		}
	}

	return t.evaluate(ctx, instance)
}

func (t *Tracker) handleAmount(ctx context.Context, event *events.GameEvent, kind card.UpgradeKind) error {
	if event.Amount <= 0 {
		return nil
	}

	// Damage and healing without a source card, thorns for example,
	// counts toward no instance
	instance := t.fightDeck.FindInstance(event.InstanceID)
	if instance == nil {
		return nil
	}

	tickInput := &RecordTickInput{
		Instance: instance,
		Kind:     kind,
		Amount:   event.Amount,
		Tick:     tickFor(event),
	}
	if err := t.service.RecordTick(ctx, tickInput); err != nil {
		return err
	}

	return t.evaluate(ctx, instance)
}

func (t *Tracker) handleFightEnded(ctx context.Context, event *events.GameEvent) error {
	tick := tickFor(event)

	if event.Won {
		for _, instance := range t.fightDeck.Instances() {
			if err := t.service.RecordTick(ctx, &RecordTickInput{Instance: instance, Kind: card.UpgradeFightsWon, Tick: tick}); err != nil {
				return err
			}
			if event.Perfect {
				if err := t.service.RecordTick(ctx, &RecordTickInput{Instance: instance, Kind: card.UpgradePerfectFights, Tick: tick}); err != nil {
					return err
				}
			}
		}
	}

	// Fight-scoped conditions get their last look before the counters
	// reset
	for _, instance := range t.fightDeck.Instances() {
		if _, err := t.service.EvaluateUpgrade(ctx, &EvaluateUpgradeInput{Instance: instance, Deck: t.fightDeck}); err != nil {
			return err
		}
	}

	return t.service.EndFight(ctx, t.fightDeck)
}

func (t *Tracker) evaluate(ctx context.Context, instance *deck.CardInstance) error {
	_, err := t.service.EvaluateUpgrade(ctx, &EvaluateUpgradeInput{Instance: instance, Deck: t.fightDeck})
	return err
}

func tickFor(event *events.GameEvent) *TickContext {
	return &TickContext{
		Stance:        event.Stance,
		HealthPercent: event.HealthPercent,
	}
}
