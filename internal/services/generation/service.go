package generation

//go:generate mockgen -destination=mock/mock_service.go -package=mockgeneration -source=service.go

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/card-forge/internal/config"
	"github.com/KirkDiggler/card-forge/internal/domain/card"
	forgeerr "github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/pricing"
	"github.com/KirkDiggler/card-forge/internal/random"
	"github.com/KirkDiggler/card-forge/internal/repositories/cards"
)

// Repository is an alias for the card repository interface
type Repository = cards.Repository

// Service defines the card generation service interface
type Service interface {
	// ComputeBudget derives the point budget split for a rarity tier.
	// Never fails: missing tuning falls back to built-in constants and
	// flags the breakdown.
	ComputeBudget(rarity card.Rarity) *card.BudgetBreakdown

	// ApplyUpgradeTax returns a new breakdown with the upgrade
	// condition's price added to the tax
	ApplyUpgradeTax(breakdown *card.BudgetBreakdown, kind card.UpgradeKind, threshold int) *card.BudgetBreakdown

	// GenerateCard assembles, prices and stores one new card
	GenerateCard(ctx context.Context, input *GenerateCardInput) (*GenerateCardResult, error)

	// GenerateBatch generates several cards of one rarity concurrently
	GenerateBatch(ctx context.Context, input *GenerateBatchInput) (*GenerateBatchResult, error)
}

// GenerateCardInput contains data for generating a card
type GenerateCardInput struct {
	// Name is optional; generated cards get a placeholder name
	Name string

	Rarity card.Rarity

	// Category is optional; derived from the rolled effects when empty
	Category card.Category

	// CardType is optional; defaults to standard
	CardType card.CardType

	// Upgrade attaches an upgrade condition. Its price is taxed off the
	// effect budget before assembly.
	Upgrade *card.UpgradeCondition
}

// GenerateCardResult is the finished card with its budget diagnostics
type GenerateCardResult struct {
	Card      *card.Definition
	Breakdown *card.BudgetBreakdown
}

// GenerateBatchInput contains data for generating a batch of cards
type GenerateBatchInput struct {
	Count      int
	Rarity     card.Rarity
	NamePrefix string
}

// GenerateBatchResult holds the generated batch in input order
type GenerateBatchResult struct {
	Cards []*card.Definition
}

// service implements the Service interface
type service struct {
	repository      Repository
	effectTable     *pricing.EffectTable
	upgradeTable    *pricing.UpgradeTable
	random          random.Source
	budgets         map[card.Rarity]tierBudget
	fallbackTiers   map[card.Rarity]bool
	pointsPerEnergy float64
	minEffects      int
	maxEffects      int
	conditionChance float64
	elementChance   float64
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository      // Required
	Balance    *config.Balance // Optional (built-in tuning if nil)
	Random     random.Source   // Optional
}

// NewService creates a new card generation service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	source := cfg.Random
	if source == nil {
		source = random.NewSource()
	}

	svc := &service{
		repository:      cfg.Repository,
		effectTable:     pricing.NewEffectTableFromBalance(cfg.Balance),
		upgradeTable:    pricing.NewUpgradeTableFromBalance(cfg.Balance),
		random:          source,
		pointsPerEnergy: defaultPointsPerEnergy,
		minEffects:      defaultMinEffects,
		maxEffects:      defaultMaxEffects,
		conditionChance: defaultConditionChance,
		elementChance:   defaultElementChance,
	}

	svc.budgets, svc.fallbackTiers = resolveTierBudgets(cfg.Balance)

	if cfg.Balance == nil {
		log.Printf("Warning: no balance bundle provided, card generation uses built-in tuning")
		return svc
	}

	if cfg.Balance.Budget.PointsPerEnergy > 0 {
		svc.pointsPerEnergy = cfg.Balance.Budget.PointsPerEnergy
	}

	assembler := cfg.Balance.Assembler
	if assembler.MinEffects >= 1 && assembler.MaxEffects >= assembler.MinEffects {
		svc.minEffects = assembler.MinEffects
		svc.maxEffects = assembler.MaxEffects
	}
	if assembler.ConditionChance > 0 && assembler.ConditionChance < 1 {
		svc.conditionChance = assembler.ConditionChance
	}
	if assembler.ElementChance > 0 && assembler.ElementChance < 1 {
		svc.elementChance = assembler.ElementChance
	}

	return svc
}

// GenerateCard assembles, prices and stores one new card
func (s *service) GenerateCard(ctx context.Context, input *GenerateCardInput) (*GenerateCardResult, error) {
	if input == nil {
		return nil, forgeerr.InvalidArgument("input cannot be nil")
	}
	if input.Rarity == "" {
		return nil, forgeerr.InvalidArgument("rarity is required")
	}
	if input.Upgrade != nil {
		if err := input.Upgrade.Validate(); err != nil {
			return nil, forgeerr.Wrap(err, "invalid upgrade condition")
		}
	}

	breakdown := s.ComputeBudget(input.Rarity)
	if input.Upgrade != nil {
		breakdown = s.ApplyUpgradeTax(breakdown, input.Upgrade.Kind, input.Upgrade.Threshold)
	}

	effects := s.assembleEffects(breakdown.FinalEffectBudget())

	id, err := s.repository.NextID(ctx)
	if err != nil {
		return nil, forgeerr.Wrap(err, "failed to allocate card id")
	}

	name := input.Name
	if name == "" {
		name = fmt.Sprintf("Card %d", id)
	}

	definition := &card.Definition{
		ID:           id,
		Name:         name,
		Rarity:       input.Rarity,
		EnergyCost:   breakdown.EnergyCost,
		Effects:      effects,
		StanceChange: s.deriveStanceChange(effects),
		CanUpgrade:   input.Upgrade != nil,
		Upgrade:      input.Upgrade,
	}

	definition.Category = input.Category
	if definition.Category == "" {
		definition.Category = categoryFor(effects)
	}

	definition.Type = input.CardType
	if definition.Type == "" {
		definition.Type = card.TypeStandard
		if definition.StanceChange != nil {
			definition.Type = card.TypeStance
		}
	}

	if err := definition.Validate(); err != nil {
		return nil, forgeerr.Wrap(err, "generated card failed validation")
	}

	if err := s.repository.Create(ctx, definition); err != nil {
		return nil, forgeerr.Wrapf(err, "failed to store card %d", id)
	}

	return &GenerateCardResult{
		Card:      definition,
		Breakdown: breakdown,
	}, nil
}

// GenerateBatch generates several cards of one rarity concurrently
func (s *service) GenerateBatch(ctx context.Context, input *GenerateBatchInput) (*GenerateBatchResult, error) {
	if input == nil {
		return nil, forgeerr.InvalidArgument("input cannot be nil")
	}
	if input.Count < 1 {
		return nil, forgeerr.InvalidArgumentf("batch count must be at least 1, got %d", input.Count)
	}

	generated := make([]*card.Definition, input.Count)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < input.Count; i++ {
		i := i
		g.Go(func() error {
			single := &GenerateCardInput{Rarity: input.Rarity}
			if input.NamePrefix != "" {
				single.Name = fmt.Sprintf("%s %d", input.NamePrefix, i+1)
			}

			result, err := s.GenerateCard(ctx, single)
			if err != nil {
				return err
			}
			generated[i] = result.Card
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &GenerateBatchResult{Cards: generated}, nil
}

// categoryFor derives a card category from its rolled effects
func categoryFor(effects []card.Effect) card.Category {
	for _, effect := range effects {
		if effect.Kind == card.EffectDamage {
			return card.CategoryAttack
		}
	}

	for _, effect := range effects {
		switch effect.Kind {
		case card.EffectStrength, card.EffectLimitBreak, card.EffectStanceEnter, card.EffectCriticalChance:
			return card.CategoryPower
		}
	}

	return card.CategorySkill
}

// deriveStanceChange builds the stance payload when the rolled effects
// move the owner into or out of a stance
func (s *service) deriveStanceChange(effects []card.Effect) *card.StanceChange {
	exit := false
	for _, effect := range effects {
		switch effect.Kind {
		case card.EffectStanceEnter:
			return &card.StanceChange{Stance: stanceNames[s.random.Intn(len(stanceNames))]}
		case card.EffectStanceExit:
			exit = true
		}
	}

	if exit {
		return &card.StanceChange{Exit: true}
	}
	return nil
}

// stanceNames are the stances generated cards can enter
var stanceNames = []string{"aggressive", "defensive", "focused", "flowing"}
