package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/card-forge/internal/config"
	"github.com/KirkDiggler/card-forge/internal/domain/card"
	"github.com/KirkDiggler/card-forge/internal/domain/deck"
	"github.com/KirkDiggler/card-forge/internal/events"
	"github.com/KirkDiggler/card-forge/internal/random"
	"github.com/KirkDiggler/card-forge/internal/repositories/cards"
	"github.com/KirkDiggler/card-forge/internal/repositories/playstats"
	"github.com/KirkDiggler/card-forge/internal/services"
	"github.com/KirkDiggler/card-forge/internal/services/generation"
	"github.com/KirkDiggler/card-forge/internal/services/progression"
	"github.com/KirkDiggler/card-forge/internal/uuid"
)

func main() {
	count := flag.Int("count", 5, "number of cards to generate")
	rarity := flag.String("rarity", "common", "rarity tier to generate")
	prefix := flag.String("prefix", "", "name prefix for generated cards")
	seed := flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	simulate := flag.Bool("simulate", false, "play a generated card until it upgrades")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load the balance bundle. Generation runs on built-in tuning when
	// the bundle is missing.
	balance, err := config.LoadBalance(cfg.Balance.Path)
	if err != nil {
		log.Printf("Warning: balance bundle unavailable (%v), using built-in tuning", err)
		balance = nil
	} else {
		log.Printf("Loaded balance bundle from %s", cfg.Balance.Path)
	}

	providerConfig := &services.ProviderConfig{
		Balance: balance,
	}

	if *seed != 0 {
		providerConfig.Random = random.NewSeededSource(*seed)
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis if URL is provided
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		log.Printf("Connecting to Redis at: %s", redisURL)

		opts, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory repositories")
		} else {
			redisClient = redis.NewClient(opts)

			// Test connection
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

			if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
				cancel()
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory repositories")
			} else {
				defer cancel()
				log.Println("Successfully connected to Redis")

				providerConfig.CardRepository = cards.NewRedis(redisClient)
				providerConfig.StatsRepository = playstats.NewRedis(redisClient)

				log.Println("Using Redis for persistence")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory repositories")
	}

	serviceProvider := services.NewProvider(providerConfig)

	ctx := context.Background()

	result, err := serviceProvider.GenerationService.GenerateBatch(ctx, &generation.GenerateBatchInput{
		Count:      *count,
		Rarity:     card.Rarity(*rarity),
		NamePrefix: *prefix,
	})
	if err != nil {
		log.Fatalf("Failed to generate cards: %v", err)
	}

	fmt.Printf("Generated %d %s cards:\n\n", len(result.Cards), *rarity)
	for _, definition := range result.Cards {
		printDefinition(definition)
	}

	if *simulate {
		if err := runUpgradeDemo(ctx, serviceProvider, card.Rarity(*rarity)); err != nil {
			log.Fatalf("Upgrade demo failed: %v", err)
		}
	}

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// runUpgradeDemo generates an upgrade pair, then plays the base card
// through the trigger bus until it transforms
func runUpgradeDemo(ctx context.Context, serviceProvider *services.Provider, rarity card.Rarity) error {
	target, err := serviceProvider.GenerationService.GenerateCard(ctx, &generation.GenerateCardInput{
		Name:   "Forged Blade+",
		Rarity: rarity,
	})
	if err != nil {
		return err
	}

	base, err := serviceProvider.GenerationService.GenerateCard(ctx, &generation.GenerateCardInput{
		Name:   "Forged Blade",
		Rarity: rarity,
		Upgrade: &card.UpgradeCondition{
			Kind:       card.UpgradeTimesPlayed,
			Threshold:  3,
			Comparator: card.CompareGreaterOrEqual,
			Scope:      card.ScopeFight,
			UpgradedID: target.Card.ID,
		},
	})
	if err != nil {
		return err
	}

	fmt.Println("\n=== Upgrade Demo ===")
	printDefinition(base.Card)
	fmt.Printf("  upgrade tax: %.1f points, final effect budget: %.1f\n\n",
		base.Breakdown.UpgradeTax, base.Breakdown.FinalEffectBudget())

	generator := uuid.NewGoogleUUIDGenerator()
	fightDeck := deck.New()
	for i := 0; i < 3; i++ {
		fightDeck.Add(deck.ZoneHand, &deck.CardInstance{
			ID:           generator.New(),
			DefinitionID: base.Card.ID,
		})
	}

	tracker := progression.NewTracker(serviceProvider.ProgressionService, fightDeck)

	bus := events.NewBus()
	bus.Subscribe(events.TriggerCardPlayed, tracker)
	bus.Subscribe(events.TriggerTurnEnded, tracker)
	bus.Subscribe(events.TriggerFightEnded, tracker)

	played := fightDeck.Instances()[0]
	for turn := 1; turn <= 3; turn++ {
		event := &events.GameEvent{
			Type:        events.TriggerCardPlayed,
			InstanceID:  played.ID,
			Turn:        turn,
			EnergySpent: base.Card.EnergyCost,
		}
		if err := bus.Emit(ctx, event); err != nil {
			return err
		}

		if played.Upgraded {
			fmt.Printf("Play %d: %s transformed into #%d %s\n", turn, base.Card.Name, target.Card.ID, target.Card.Name)
		} else {
			fmt.Printf("Play %d: no upgrade yet\n", turn)
		}
	}

	return nil
}

func printDefinition(definition *card.Definition) {
	fmt.Printf("#%d %s [%s %s, %d energy]\n",
		definition.ID, definition.Name, definition.Rarity, definition.Category, definition.EnergyCost)

	for _, effect := range definition.Effects {
		fmt.Printf("    - %s\n", formatEffect(effect))
	}
	if definition.StanceChange != nil {
		if definition.StanceChange.Exit {
			fmt.Println("    - exits the current stance")
		} else {
			fmt.Printf("    - enters the %s stance\n", definition.StanceChange.Stance)
		}
	}
	if definition.Upgrade != nil {
		fmt.Printf("    - upgrades into #%d after %s %s %d (%s)\n",
			definition.Upgrade.UpgradedID, definition.Upgrade.Kind,
			definition.Upgrade.Comparator, definition.Upgrade.Threshold, definition.Upgrade.Scope)
	}
	fmt.Println()
}

func formatEffect(effect card.Effect) string {
	description := fmt.Sprintf("%s %d vs %s", effect.Kind, effect.Magnitude, effect.Target)
	if effect.Element != "" {
		description += fmt.Sprintf(" (%s)", effect.Element)
	}
	if effect.Duration > 0 {
		description += fmt.Sprintf(" for %d turns", effect.Duration)
	}
	if effect.Condition != nil {
		condition := effect.Condition
		description += fmt.Sprintf(", when %s %s %d: %s %d",
			condition.Kind, condition.Comparator, condition.Threshold,
			condition.Alternative.Kind, condition.Alternative.Magnitude)
		if condition.Policy == card.PolicyAdditional {
			description += " extra"
		}
	}
	return description
}
