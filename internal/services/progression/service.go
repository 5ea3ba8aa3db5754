package progression

//go:generate mockgen -destination=mock/mock_service.go -package=mockprogression -source=service.go

import (
	"context"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
	"github.com/KirkDiggler/card-forge/internal/domain/deck"
	forgeerr "github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/repositories/cards"
	"github.com/KirkDiggler/card-forge/internal/repositories/playstats"
)

// Service defines the upgrade progression service interface
type Service interface {
	// RecordTick adds progress toward an instance's upgrade condition.
	// Ticks for the wrong kind, for guarded-out moments or for an
	// already upgraded copy fall away silently.
	RecordTick(ctx context.Context, input *RecordTickInput) error

	// RecordHighWater raises a high-water counter toward an instance's
	// upgrade condition
	RecordHighWater(ctx context.Context, input *RecordTickInput) error

	// EvaluateUpgrade fires an instance's upgrade when its condition
	// holds. A fired upgrade replaces deck references and never fires
	// again for the same copy.
	EvaluateUpgrade(ctx context.Context, input *EvaluateUpgradeInput) (*EvaluateUpgradeResult, error)

	// EndTurn clears single-turn counters across the deck
	EndTurn(ctx context.Context, fightDeck *deck.Deck) error

	// EndFight clears fight-scoped counters across the deck
	EndFight(ctx context.Context, fightDeck *deck.Deck) error
}

// RecordTickInput contains data for recording upgrade progress
type RecordTickInput struct {
	Instance *deck.CardInstance
	Kind     card.UpgradeKind

	// Amount defaults to 1 for RecordTick. RecordHighWater ignores
	// amounts that would lower the counter.
	Amount int

	// Tick is optional; guarded conditions reject ticks without one
	Tick *TickContext
}

// EvaluateUpgradeInput contains data for an upgrade check
type EvaluateUpgradeInput struct {
	Instance *deck.CardInstance
	Deck     *deck.Deck
}

// EvaluateUpgradeResult describes what an upgrade check did
type EvaluateUpgradeResult struct {
	Fired          bool
	UpgradedID     int
	ReplacedCopies int
}

// service implements the Service interface
type service struct {
	cards cards.Repository
	stats playstats.Repository
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	CardRepository  cards.Repository     // Required
	StatsRepository playstats.Repository // Required
}

// NewService creates a new upgrade progression service
func NewService(cfg *ServiceConfig) Service {
	if cfg.CardRepository == nil {
		panic("card repository is required")
	}
	if cfg.StatsRepository == nil {
		panic("stats repository is required")
	}

	return &service{
		cards: cfg.CardRepository,
		stats: cfg.StatsRepository,
	}
}

// RecordTick adds progress toward an instance's upgrade condition
func (s *service) RecordTick(ctx context.Context, input *RecordTickInput) error {
	if input == nil || input.Instance == nil {
		return forgeerr.InvalidArgument("instance is required")
	}
	if input.Amount < 0 {
		return forgeerr.InvalidArgumentf("amount cannot be negative, got %d", input.Amount)
	}
	if input.Instance.Upgraded {
		return nil
	}

	condition, err := s.upgradeConditionFor(ctx, input.Instance)
	if err != nil || condition == nil {
		return err
	}
	if condition.Kind != input.Kind {
		return nil
	}
	if !GuardsAllow(condition, input.Tick) {
		return nil
	}

	amount := input.Amount
	if amount == 0 {
		amount = 1
	}

	if err := s.stats.Increment(ctx, input.Instance.ID, input.Kind, amount); err != nil {
		return forgeerr.Wrapf(err, "failed to record %s for instance %s", input.Kind, input.Instance.ID)
	}

	return nil
}

// RecordHighWater raises a high-water counter toward an instance's
// upgrade condition
func (s *service) RecordHighWater(ctx context.Context, input *RecordTickInput) error {
	if input == nil || input.Instance == nil {
		return forgeerr.InvalidArgument("instance is required")
	}
	if input.Amount <= 0 {
		return nil
	}
	if input.Instance.Upgraded {
		return nil
	}

	condition, err := s.upgradeConditionFor(ctx, input.Instance)
	if err != nil || condition == nil {
		return err
	}
	if condition.Kind != input.Kind {
		return nil
	}
	if !GuardsAllow(condition, input.Tick) {
		return nil
	}

	if err := s.stats.SetMax(ctx, input.Instance.ID, input.Kind, input.Amount); err != nil {
		return forgeerr.Wrapf(err, "failed to record %s for instance %s", input.Kind, input.Instance.ID)
	}

	return nil
}

// EvaluateUpgrade fires an instance's upgrade when its condition holds
func (s *service) EvaluateUpgrade(ctx context.Context, input *EvaluateUpgradeInput) (*EvaluateUpgradeResult, error) {
	if input == nil || input.Instance == nil {
		return nil, forgeerr.InvalidArgument("instance is required")
	}
	if input.Deck == nil {
		return nil, forgeerr.InvalidArgument("deck is required")
	}

	// An upgraded copy never fires again
	if input.Instance.Upgraded {
		return &EvaluateUpgradeResult{}, nil
	}

	condition, err := s.upgradeConditionFor(ctx, input.Instance)
	if err != nil {
		return nil, err
	}
	if condition == nil {
		return &EvaluateUpgradeResult{}, nil
	}

	accumulated, err := s.stats.Get(ctx, input.Instance.ID, condition.Kind, condition.Scope)
	if err != nil {
		return nil, forgeerr.Wrapf(err, "failed to read %s progress for instance %s", condition.Kind, input.Instance.ID)
	}

	if !Satisfied(accumulated, condition.Threshold, condition.Comparator) {
		return &EvaluateUpgradeResult{}, nil
	}

	// The upgraded definition stays a bare id until the moment it is
	// needed
	upgraded, err := s.cards.Get(ctx, condition.UpgradedID)
	if err != nil {
		return nil, forgeerr.Wrapf(err, "upgrade target %d is not in the card arena", condition.UpgradedID)
	}

	result := &EvaluateUpgradeResult{
		Fired:      true,
		UpgradedID: upgraded.ID,
	}

	if condition.AllCopies {
		result.ReplacedCopies = input.Deck.ReplaceAllCopies(input.Instance.DefinitionID, upgraded.ID)
	} else if input.Deck.ReplaceInstance(input.Instance.ID, upgraded.ID) {
		result.ReplacedCopies = 1
	}

	if result.ReplacedCopies == 0 {
		return nil, forgeerr.NotFoundf("instance %s is not in the deck", input.Instance.ID)
	}

	return result, nil
}

// EndTurn clears single-turn counters across the deck
func (s *service) EndTurn(ctx context.Context, fightDeck *deck.Deck) error {
	if fightDeck == nil {
		return forgeerr.InvalidArgument("deck is required")
	}

	for _, instance := range fightDeck.Instances() {
		if instance.Upgraded {
			continue
		}

		condition, err := s.upgradeConditionFor(ctx, instance)
		if err != nil {
			return err
		}
		if condition == nil || !condition.SingleTurn {
			continue
		}

		if err := s.stats.ResetCounter(ctx, instance.ID, condition.Kind); err != nil {
			return forgeerr.Wrapf(err, "failed to reset %s for instance %s", condition.Kind, instance.ID)
		}
	}

	return nil
}

// EndFight clears fight-scoped counters across the deck
func (s *service) EndFight(ctx context.Context, fightDeck *deck.Deck) error {
	if fightDeck == nil {
		return forgeerr.InvalidArgument("deck is required")
	}

	for _, instance := range fightDeck.Instances() {
		if err := s.stats.ResetFight(ctx, instance.ID); err != nil {
			return forgeerr.Wrapf(err, "failed to reset fight stats for instance %s", instance.ID)
		}
	}

	return nil
}

// upgradeConditionFor loads the instance's upgrade condition, nil when
// the definition cannot upgrade
func (s *service) upgradeConditionFor(ctx context.Context, instance *deck.CardInstance) (*card.UpgradeCondition, error) {
	definition, err := s.cards.Get(ctx, instance.DefinitionID)
	if err != nil {
		return nil, forgeerr.Wrapf(err, "failed to load definition %d", instance.DefinitionID)
	}

	if !definition.CanUpgrade || definition.Upgrade == nil {
		return nil, nil
	}

	return definition.Upgrade, nil
}
