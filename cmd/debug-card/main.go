package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
	"github.com/KirkDiggler/card-forge/internal/repositories/cards"
	"github.com/KirkDiggler/card-forge/internal/repositories/playstats"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: debug-card <card-id> [instance-id]")
		os.Exit(1)
	}

	cardID, err := strconv.Atoi(os.Args[1])
	if err != nil {
		log.Fatalf("Card id must be a number: %v", err)
	}

	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	// Test connection first
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}
	defer func() {
		clientErr := client.Close()
		if clientErr != nil {
			log.Printf("Failed to close Redis connection: %v", clientErr)
		}
	}()

	repo := cards.NewRedis(client)

	definition, err := repo.Get(ctx, cardID)
	if err != nil {
		log.Printf("Failed to get card: %v", err)
		return
	}

	fmt.Printf("Card ID: %d\n", definition.ID)
	fmt.Printf("Name: %s\n", definition.Name)
	fmt.Printf("Rarity: %s\n", definition.Rarity)
	fmt.Printf("Category: %s\n", definition.Category)
	fmt.Printf("Type: %s\n", definition.Type)
	fmt.Printf("Energy: %d\n", definition.EnergyCost)

	fmt.Printf("Effects: %d\n", len(definition.Effects))
	for i, effect := range definition.Effects {
		fmt.Printf("  %d: %s %d vs %s", i, effect.Kind, effect.Magnitude, effect.Target)
		if effect.Element != "" {
			fmt.Printf(" (%s)", effect.Element)
		}
		if effect.Duration > 0 {
			fmt.Printf(" for %d turns", effect.Duration)
		}
		fmt.Println()
		if effect.Condition != nil {
			condition := effect.Condition
			fmt.Printf("     when %s %s %d: %s %d (%s)\n",
				condition.Kind, condition.Comparator, condition.Threshold,
				condition.Alternative.Kind, condition.Alternative.Magnitude, condition.Policy)
		}
	}

	if definition.StanceChange != nil {
		if definition.StanceChange.Exit {
			fmt.Println("Stance: exits the current stance")
		} else {
			fmt.Printf("Stance: enters %s\n", definition.StanceChange.Stance)
		}
	}

	if definition.Upgrade != nil {
		upgrade := definition.Upgrade
		fmt.Printf("Upgrades into: %d after %s %s %d (%s scope)\n",
			upgrade.UpgradedID, upgrade.Kind, upgrade.Comparator, upgrade.Threshold, upgrade.Scope)
		if upgrade.AllCopies {
			fmt.Println("  replaces every copy in the deck")
		}
		if upgrade.RequiredStance != "" {
			fmt.Printf("  only counts in the %s stance\n", upgrade.RequiredStance)
		}
		if upgrade.HasHealthWindow() {
			fmt.Printf("  only counts between %d%% and %d%% health\n",
				upgrade.HealthPercentMin, upgrade.HealthPercentMax)
		}
		if upgrade.SingleTurn {
			fmt.Println("  counter resets every turn")
		}
	}

	fmt.Printf("Created: %s\n", definition.CreatedAt)
	fmt.Printf("Updated: %s\n", definition.UpdatedAt)

	// Dump play counters when an instance id is given
	if len(os.Args) > 2 {
		instanceID := os.Args[2]
		stats := playstats.NewRedis(client)

		for _, scope := range []card.UpgradeScope{card.ScopeFight, card.ScopeLifetime} {
			snapshot, statsErr := stats.Snapshot(ctx, instanceID, scope)
			if statsErr != nil {
				log.Printf("Failed to read %s stats: %v", scope, statsErr)
				continue
			}

			fmt.Printf("\n%s counters for %s: %d\n", scope, instanceID, len(snapshot))
			for kind, value := range snapshot {
				fmt.Printf("  %s: %d\n", kind, value)
			}
		}
	}
}
