package card

// EffectKind identifies one mechanical action a card can perform
type EffectKind string

const (
	EffectDamage          EffectKind = "damage"
	EffectHeal            EffectKind = "heal"
	EffectDraw            EffectKind = "draw"
	EffectDiscard         EffectKind = "discard"
	EffectShield          EffectKind = "shield"
	EffectThorns          EffectKind = "thorns"
	EffectStrength        EffectKind = "strength"
	EffectSalve           EffectKind = "salve"
	EffectCriticalChance  EffectKind = "critical_chance"
	EffectLimitBreak      EffectKind = "limit_break"
	EffectElementalStatus EffectKind = "elemental_status"
	EffectStanceEnter     EffectKind = "stance_enter"
	EffectStanceExit      EffectKind = "stance_exit"
	EffectWeak            EffectKind = "weak"
	EffectBreak           EffectKind = "break"
	EffectBurn            EffectKind = "burn"
	EffectStun            EffectKind = "stun"
	EffectCurse           EffectKind = "curse"
)

// AllEffectKinds returns every effect kind in a stable order
func AllEffectKinds() []EffectKind {
	return []EffectKind{
		EffectDamage,
		EffectHeal,
		EffectDraw,
		EffectDiscard,
		EffectShield,
		EffectThorns,
		EffectStrength,
		EffectSalve,
		EffectCriticalChance,
		EffectLimitBreak,
		EffectElementalStatus,
		EffectStanceEnter,
		EffectStanceExit,
		EffectWeak,
		EffectBreak,
		EffectBurn,
		EffectStun,
		EffectCurse,
	}
}

// SupportsElement reports whether the kind can carry an elemental tag
func (k EffectKind) SupportsElement() bool {
	return k == EffectDamage || k == EffectElementalStatus
}

// HasDuration reports whether the kind persists for a number of turns
func (k EffectKind) HasDuration() bool {
	switch k {
	case EffectElementalStatus, EffectStun, EffectStanceEnter, EffectLimitBreak:
		return true
	}
	return false
}

// TargetKind identifies who an effect resolves against
type TargetKind string

const (
	TargetSelf     TargetKind = "self"
	TargetOpponent TargetKind = "opponent"
	TargetAlly     TargetKind = "ally"
	TargetRandom   TargetKind = "random"
)

// Element tags damage and elemental-status effects
type Element string

const (
	ElementNone      Element = "none"
	ElementFire      Element = "fire"
	ElementIce       Element = "ice"
	ElementLightning Element = "lightning"
	ElementVoid      Element = "void"
)

// AllElements returns the elements an effect can be tagged with (none excluded)
func AllElements() []Element {
	return []Element{ElementFire, ElementIce, ElementLightning, ElementVoid}
}

// Rarity is the ordinal tier driving a card's power budget
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns the tiers from cheapest to most expensive
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}
}

// Category is the broad gameplay classification of a card
type Category string

const (
	CategoryAttack Category = "attack"
	CategorySkill  Category = "skill"
	CategoryPower  Category = "power"
)

// CardType distinguishes how a card entered the collection
type CardType string

const (
	TypeStandard CardType = "standard"
	TypeStance   CardType = "stance"
	TypeCurse    CardType = "curse"
	TypeToken    CardType = "token"
)

// Comparator selects how an accumulated statistic is checked against a threshold
type Comparator string

const (
	CompareGreaterOrEqual Comparator = ">="
	CompareEqual          Comparator = "="
	CompareGreater        Comparator = ">"
	CompareLessOrEqual    Comparator = "<="
	CompareLess           Comparator = "<"
)

// ConditionKind identifies the play-time statistic an effect condition reads
type ConditionKind string

const (
	ConditionHealthBelowTarget    ConditionKind = "health_below_target"
	ConditionHealthBelowSource    ConditionKind = "health_below_source"
	ConditionHealthAboveTarget    ConditionKind = "health_above_target"
	ConditionHealthAboveSource    ConditionKind = "health_above_source"
	ConditionCardsInHand          ConditionKind = "cards_in_hand"
	ConditionComboCount           ConditionKind = "combo_count"
	ConditionEnergyRemaining      ConditionKind = "energy_remaining"
	ConditionCardsInDeck          ConditionKind = "cards_in_deck"
	ConditionCardsInDiscard       ConditionKind = "cards_in_discard"
	ConditionZeroCostThisTurn     ConditionKind = "zero_cost_this_turn"
	ConditionTimesPlayedThisFight ConditionKind = "times_played_this_fight"
	ConditionDamageThisFight      ConditionKind = "damage_this_fight"
	ConditionHealingThisFight     ConditionKind = "healing_this_fight"
	ConditionDamageLastRound      ConditionKind = "damage_last_round"
	ConditionHealingLastRound     ConditionKind = "healing_last_round"
	ConditionZeroCostThisFight    ConditionKind = "zero_cost_this_fight"
	ConditionPerfectionStreak     ConditionKind = "perfection_streak"
	ConditionInStance             ConditionKind = "in_stance"
	ConditionLastCardType         ConditionKind = "last_card_type"
)

// CombinationPolicy decides how a conditional effect's alternative combines
// with the main effect when the condition holds
type CombinationPolicy string

const (
	// PolicyReplace resolves the alternative instead of the main effect
	PolicyReplace CombinationPolicy = "replace"

	// PolicyAdditional resolves the alternative on top of the main effect
	PolicyAdditional CombinationPolicy = "additional"
)

// UpgradeKind identifies the accumulated statistic an upgrade condition watches
type UpgradeKind string

const (
	UpgradeTimesPlayed   UpgradeKind = "times_played"
	UpgradeDamageDealt   UpgradeKind = "damage_dealt"
	UpgradeHealingDone   UpgradeKind = "healing_done"
	UpgradeComboReached  UpgradeKind = "combo_reached"
	UpgradeLowHealthPlay UpgradeKind = "low_health_play"
	UpgradeZeroCostPlays UpgradeKind = "zero_cost_plays"
	UpgradeFightsWon     UpgradeKind = "fights_won"
	UpgradePerfectFights UpgradeKind = "perfect_fights"
)

// UpgradeScope decides which counter window an upgrade condition reads
type UpgradeScope string

const (
	// ScopeFight counters reset when the fight ends
	ScopeFight UpgradeScope = "fight"

	// ScopeLifetime counters persist across fights
	ScopeLifetime UpgradeScope = "lifetime"
)
