package generation

import (
	"strings"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
)

const (
	// proposerRetries bounds how many kinds one proposal may reject
	// before giving up on the remaining budget
	proposerRetries = 10

	// additionalPolicyChance picks the stack-on-top alternative over the
	// replacement alternative for conditional effects
	additionalPolicyChance = 0.5

	durationMin = 1
	durationMax = 3
)

// targetPolicy steers an effect kind toward its usual target with a
// weighted coin flip to the secondary target
type targetPolicy struct {
	primary     card.TargetKind
	secondary   card.TargetKind
	primaryProb float64
}

var defaultTargetPolicy = targetPolicy{primary: card.TargetSelf, secondary: card.TargetOpponent, primaryProb: 0.5}

var targetPolicies = map[card.EffectKind]targetPolicy{
	card.EffectDamage:          {primary: card.TargetOpponent, secondary: card.TargetRandom, primaryProb: 0.8},
	card.EffectHeal:            {primary: card.TargetSelf, secondary: card.TargetAlly, primaryProb: 0.5},
	card.EffectDraw:            {primary: card.TargetSelf, secondary: card.TargetSelf, primaryProb: 1.0},
	card.EffectDiscard:         {primary: card.TargetSelf, secondary: card.TargetSelf, primaryProb: 1.0},
	card.EffectShield:          {primary: card.TargetAlly, secondary: card.TargetSelf, primaryProb: 0.7},
	card.EffectThorns:          {primary: card.TargetAlly, secondary: card.TargetSelf, primaryProb: 0.7},
	card.EffectStrength:        {primary: card.TargetAlly, secondary: card.TargetSelf, primaryProb: 0.6},
	card.EffectSalve:           {primary: card.TargetAlly, secondary: card.TargetSelf, primaryProb: 0.6},
	card.EffectCriticalChance:  {primary: card.TargetAlly, secondary: card.TargetSelf, primaryProb: 0.6},
	card.EffectLimitBreak:      {primary: card.TargetSelf, secondary: card.TargetAlly, primaryProb: 0.6},
	card.EffectElementalStatus: {primary: card.TargetAlly, secondary: card.TargetSelf, primaryProb: 0.6},
	card.EffectStanceEnter:     {primary: card.TargetSelf, secondary: card.TargetAlly, primaryProb: 0.8},
	card.EffectStanceExit:      {primary: card.TargetSelf, secondary: card.TargetSelf, primaryProb: 1.0},
	card.EffectWeak:            {primary: card.TargetOpponent, secondary: card.TargetRandom, primaryProb: 0.7},
	card.EffectBreak:           {primary: card.TargetOpponent, secondary: card.TargetRandom, primaryProb: 0.7},
	card.EffectBurn:            {primary: card.TargetOpponent, secondary: card.TargetRandom, primaryProb: 0.7},
	card.EffectStun:            {primary: card.TargetOpponent, secondary: card.TargetRandom, primaryProb: 0.8},
	card.EffectCurse:           {primary: card.TargetOpponent, secondary: card.TargetRandom, primaryProb: 0.8},
}

// conditionWeights biases conditional effects toward triggers players
// can read at a glance. Entries are walked in order, so the table is a
// slice rather than a map.
var conditionWeights = []struct {
	kind   card.ConditionKind
	weight int
}{
	{kind: card.ConditionHealthBelowTarget, weight: 15},
	{kind: card.ConditionHealthBelowSource, weight: 15},
	{kind: card.ConditionCardsInHand, weight: 12},
	{kind: card.ConditionComboCount, weight: 12},
	{kind: card.ConditionEnergyRemaining, weight: 10},
	{kind: card.ConditionHealthAboveTarget, weight: 8},
	{kind: card.ConditionHealthAboveSource, weight: 8},
	{kind: card.ConditionCardsInDeck, weight: 6},
	{kind: card.ConditionCardsInDiscard, weight: 6},
	{kind: card.ConditionZeroCostThisTurn, weight: 5},
	{kind: card.ConditionTimesPlayedThisFight, weight: 5},
	{kind: card.ConditionDamageThisFight, weight: 3},
	{kind: card.ConditionHealingThisFight, weight: 3},
	{kind: card.ConditionDamageLastRound, weight: 3},
	{kind: card.ConditionHealingLastRound, weight: 3},
	{kind: card.ConditionZeroCostThisFight, weight: 2},
	{kind: card.ConditionPerfectionStreak, weight: 2},
	{kind: card.ConditionInStance, weight: 2},
	{kind: card.ConditionLastCardType, weight: 2},
}

var totalConditionWeight = func() int {
	total := 0
	for _, entry := range conditionWeights {
		total += entry.weight
	}
	return total
}()

// proposeEffect rolls one effect that fits inside the remaining budget.
// Returns nil when no affordable kind comes up within the retry cap.
func (s *service) proposeEffect(remaining float64) *card.Effect {
	kinds := card.AllEffectKinds()

	for attempt := 0; attempt < proposerRetries; attempt++ {
		kind := kinds[s.random.Intn(len(kinds))]

		maxUnits := int(remaining / s.effectTable.UnitPrice(kind))
		if maxUnits < 1 {
			continue
		}

		magnitude := 1
		if !s.effectTable.IsFlat(kind) {
			magnitude = 1 + s.random.Intn(maxUnits)
		}

		effect := &card.Effect{
			Kind:      kind,
			Magnitude: magnitude,
			Target:    s.rollTarget(kind),
		}

		if s.random.Float64() < s.conditionChance {
			effect.Condition = s.rollCondition(kind, magnitude)
		}

		if kind.SupportsElement() && s.random.Float64() < s.elementChance {
			elements := card.AllElements()
			effect.Element = elements[s.random.Intn(len(elements))]
		}

		if kind.HasDuration() {
			effect.Duration = durationMin + s.random.Intn(durationMax-durationMin+1)
		}

		return effect
	}

	return nil
}

// rollTarget picks a target for the kind per its policy
func (s *service) rollTarget(kind card.EffectKind) card.TargetKind {
	policy, ok := targetPolicies[kind]
	if !ok {
		policy = defaultTargetPolicy
	}

	if s.random.Float64() < policy.primaryProb {
		return policy.primary
	}
	return policy.secondary
}

// rollCondition attaches a trigger and an alternative payload to a
// proposed effect
func (s *service) rollCondition(kind card.EffectKind, magnitude int) *card.EffectCondition {
	conditionKind := s.rollConditionKind()

	policy := card.PolicyReplace
	if s.random.Float64() < additionalPolicyChance {
		policy = card.PolicyAdditional
	}

	bonus := 1 + s.random.Intn(magnitude)

	alternative := card.AltEffect{Kind: kind}
	if policy == card.PolicyReplace {
		alternative.Magnitude = magnitude + bonus
	} else {
		alternative.Magnitude = bonus
	}

	return &card.EffectCondition{
		Kind:        conditionKind,
		Threshold:   s.rollThreshold(conditionKind),
		Comparator:  defaultComparatorFor(conditionKind),
		Policy:      policy,
		Alternative: alternative,
	}
}

// rollConditionKind samples the weight table by subtracting weights
// from one roll until it goes negative
func (s *service) rollConditionKind() card.ConditionKind {
	roll := s.random.Intn(totalConditionWeight)
	for _, entry := range conditionWeights {
		roll -= entry.weight
		if roll < 0 {
			return entry.kind
		}
	}

	return conditionWeights[len(conditionWeights)-1].kind
}

// rollThreshold picks a threshold scaled to what the condition counts.
// Health conditions read as percentages, everything else as small
// counter values.
func (s *service) rollThreshold(kind card.ConditionKind) int {
	if isHealthPercentCondition(kind) {
		return 10 * (1 + s.random.Intn(7))
	}
	return 1 + s.random.Intn(5)
}

// defaultComparatorFor orients the comparison the way the condition
// name reads
func defaultComparatorFor(kind card.ConditionKind) card.Comparator {
	name := string(kind)
	switch {
	case strings.Contains(name, "below"):
		return card.CompareLess
	case strings.Contains(name, "above"):
		return card.CompareGreater
	default:
		return card.CompareGreaterOrEqual
	}
}

func isHealthPercentCondition(kind card.ConditionKind) bool {
	switch kind {
	case card.ConditionHealthBelowTarget, card.ConditionHealthBelowSource,
		card.ConditionHealthAboveTarget, card.ConditionHealthAboveSource:
		return true
	default:
		return false
	}
}
