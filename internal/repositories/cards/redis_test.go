package cards

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/card-forge/internal/domain/card"
	forgeerr "github.com/KirkDiggler/card-forge/internal/errors"
	"github.com/KirkDiggler/card-forge/internal/repositories/cards/mocks"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func testDefinition(id int) *card.Definition {
	return &card.Definition{
		ID:         id,
		Name:       "Ember Slash",
		Rarity:     card.RarityCommon,
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

func (s *RedisRepoTestSuite) TestNextID() {
	ctx := context.Background()

	// Happy path
	s.mock.ExpectIncr("cards:next_id").SetVal(7)

	id, err := s.repo.NextID(ctx)
	s.NoError(err)
	s.Equal(7, id)

	// Dependency error
	s.mock.ExpectIncr("cards:next_id").SetErr(errors.New("redis error"))

	_, err = s.repo.NextID(ctx)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	definition := testDefinition(3)
	definition.CreatedAt = now
	definition.UpdatedAt = now

	jsonData, err := json.Marshal(toData(definition))
	s.Require().NoError(err)

	// Happy path
	s.timeProvider.EXPECT().Now().Return(now)
	s.mock.ExpectSetNX("card:3", string(jsonData), 0).SetVal(true)
	s.mock.ExpectSAdd("cards:rarity:common", 3).SetVal(1)
	s.mock.ExpectSAdd("cards:all", 3).SetVal(1)

	err = s.repo.Create(ctx, definition)
	s.NoError(err)

	// Card already stored under that id
	s.timeProvider.EXPECT().Now().Return(now)
	s.mock.ExpectSetNX("card:3", string(jsonData), 0).SetVal(false)

	err = s.repo.Create(ctx, definition)
	s.Error(err)
	s.True(forgeerr.IsAlreadyExists(err))

	// Dependency error
	s.timeProvider.EXPECT().Now().Return(now)
	s.mock.ExpectSetNX("card:3", string(jsonData), 0).SetErr(errors.New("redis error"))

	err = s.repo.Create(ctx, definition)
	s.Error(err)

	// Input validation
	err = s.repo.Create(ctx, nil)
	s.Error(err)
	s.True(forgeerr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	definition := testDefinition(3)
	definition.CreatedAt = now
	definition.UpdatedAt = now
	definition.CanUpgrade = true
	definition.Upgrade = &card.UpgradeCondition{
		Kind:       card.UpgradeTimesPlayed,
		Threshold:  4,
		Comparator: card.CompareGreaterOrEqual,
		Scope:      card.ScopeFight,
		UpgradedID: 9,
	}
	definition.PersistentEffects = []card.Effect{
		{Kind: card.EffectThorns, Magnitude: 2, Target: card.TargetSelf},
	}

	jsonData, err := json.Marshal(toData(definition))
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectGet("card:3").SetVal(string(jsonData))

	got, err := s.repo.Get(ctx, 3)
	s.NoError(err)
	s.Equal(3, got.ID)
	s.Equal(card.RarityCommon, got.Rarity)
	s.Len(got.Effects, 1)
	s.Equal(card.EffectDamage, got.Effects[0].Kind)
	s.Require().NotNil(got.Upgrade)
	s.Equal(9, got.Upgrade.UpgradedID)
	s.Require().Len(got.PersistentEffects, 1)
	s.Equal(card.EffectThorns, got.PersistentEffects[0].Kind)

	// Missing card
	s.mock.ExpectGet("card:9").RedisNil()

	_, err = s.repo.Get(ctx, 9)
	s.Error(err)
	s.True(forgeerr.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("card:3").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, 3)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestGetBatch() {
	ctx := context.Background()

	first := testDefinition(1)
	second := testDefinition(2)
	second.Name = "Frost Ward"
	second.Rarity = card.RarityRare

	firstJSON, err := json.Marshal(toData(first))
	s.Require().NoError(err)
	secondJSON, err := json.Marshal(toData(second))
	s.Require().NoError(err)

	// Gets run concurrently, so expectation order cannot be pinned
	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectGet("card:1").SetVal(string(firstJSON))
	s.mock.ExpectGet("card:2").SetVal(string(secondJSON))

	definitions, err := s.repo.GetBatch(ctx, []int{1, 2})
	s.NoError(err)
	s.Len(definitions, 2)
	s.Equal(1, definitions[0].ID)
	s.Equal(2, definitions[1].ID)
}

func (s *RedisRepoTestSuite) TestGetBatchMissingCard() {
	ctx := context.Background()

	s.mock.ExpectGet("card:9").RedisNil()

	_, err := s.repo.GetBatch(ctx, []int{9})
	s.Error(err)
	s.True(forgeerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	createdAt := time.Now().UTC().Truncate(time.Millisecond).Add(-1 * time.Hour)
	now := time.Now().UTC().Truncate(time.Millisecond)

	existing := testDefinition(3)
	existing.CreatedAt = createdAt
	existing.UpdatedAt = createdAt
	existingJSON, err := json.Marshal(toData(existing))
	s.Require().NoError(err)

	updated := testDefinition(3)
	updated.Rarity = card.RarityUncommon
	updated.CreatedAt = createdAt
	updated.UpdatedAt = now
	updatedJSON, err := json.Marshal(toData(updated))
	s.Require().NoError(err)

	s.mock.ExpectGet("card:3").SetVal(string(existingJSON))
	s.timeProvider.EXPECT().Now().Return(now)
	s.mock.ExpectSet("card:3", string(updatedJSON), 0).SetVal("OK")
	s.mock.ExpectSRem("cards:rarity:common", 3).SetVal(1)
	s.mock.ExpectSAdd("cards:rarity:uncommon", 3).SetVal(1)

	err = s.repo.Update(ctx, updated)
	s.NoError(err)

	// Input validation
	err = s.repo.Update(ctx, nil)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	definition := testDefinition(3)
	jsonData, err := json.Marshal(toData(definition))
	s.Require().NoError(err)

	// Happy path
	s.mock.ExpectGet("card:3").SetVal(string(jsonData))
	s.mock.ExpectDel("card:3").SetVal(1)
	s.mock.ExpectSRem("cards:rarity:common", 3).SetVal(1)
	s.mock.ExpectSRem("cards:all", 3).SetVal(1)

	err = s.repo.Delete(ctx, 3)
	s.NoError(err)

	// Missing card
	s.mock.ExpectGet("card:9").RedisNil()

	err = s.repo.Delete(ctx, 9)
	s.Error(err)
	s.True(forgeerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestListByRarity() {
	ctx := context.Background()

	first := testDefinition(1)
	second := testDefinition(2)
	firstJSON, err := json.Marshal(toData(first))
	s.Require().NoError(err)
	secondJSON, err := json.Marshal(toData(second))
	s.Require().NoError(err)

	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectSMembers("cards:rarity:common").SetVal([]string{"1", "2"})
	s.mock.ExpectGet("card:1").SetVal(string(firstJSON))
	s.mock.ExpectGet("card:2").SetVal(string(secondJSON))

	definitions, err := s.repo.ListByRarity(ctx, card.RarityCommon)
	s.NoError(err)
	s.Len(definitions, 2)
}

func (s *RedisRepoTestSuite) TestListByRarityMalformedIndex() {
	ctx := context.Background()

	s.mock.ExpectSMembers("cards:rarity:common").SetVal([]string{"not-a-number"})

	_, err := s.repo.ListByRarity(ctx, card.RarityCommon)
	s.Error(err)
}
