package services

import (
	"github.com/KirkDiggler/card-forge/internal/config"
	"github.com/KirkDiggler/card-forge/internal/random"
	"github.com/KirkDiggler/card-forge/internal/repositories/cards"
	"github.com/KirkDiggler/card-forge/internal/repositories/playstats"
	generationService "github.com/KirkDiggler/card-forge/internal/services/generation"
	progressionService "github.com/KirkDiggler/card-forge/internal/services/progression"
)

// Provider holds all service instances
type Provider struct {
	GenerationService  generationService.Service
	ProgressionService progressionService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CardRepository  cards.Repository
	StatsRepository playstats.Repository
	Balance         *config.Balance
	Random          random.Source
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	cardRepo := cfg.CardRepository
	if cardRepo == nil {
		cardRepo = cards.NewInMemoryRepository()
	}

	statsRepo := cfg.StatsRepository
	if statsRepo == nil {
		statsRepo = playstats.NewInMemoryRepository()
	}

	genService := generationService.NewService(&generationService.ServiceConfig{
		Repository: cardRepo,
		Balance:    cfg.Balance,
		Random:     cfg.Random,
	})

	progService := progressionService.NewService(&progressionService.ServiceConfig{
		CardRepository:  cardRepo,
		StatsRepository: statsRepo,
	})

	return &Provider{
		GenerationService:  genService,
		ProgressionService: progService,
	}
}
