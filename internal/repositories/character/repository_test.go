package character_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
	character "github.com/KirkDiggler/rpg-party/internal/repositories/character"
	"github.com/KirkDiggler/rpg-party/internal/testutils"
	"github.com/KirkDiggler/rpg-party/internal/testutils/builders"
)

// RepositoryTestSuite runs the same behavior checks against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() (character.Repository, func())
	repo    character.Repository
	cleanup func()
	ctx     context.Context
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (character.Repository, func()) {
			return character.NewInMemory(), func() {}
		},
	})
}

func TestRedisRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (character.Repository, func()) {
		client, cleanup := testutils.CreateTestRedisClient(s.T())
		repo, err := character.NewRedis(&character.RedisConfig{Client: client})
		s.Require().NoError(err)
		return repo, cleanup
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	record := builders.NewCharacterBuilder().
		WithID("char_1").
		WithName("Gimli").
		WithEquipment(entities.SlotWeapon, "Axe").
		WithArmor("Mithril", 20).
		Build()

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: record})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(record, out.Character)
	s.True(out.Character.Enhancement.HasArmor())
	s.False(out.Character.Enhancement.HasWeapon())
}

func (s *RepositoryTestSuite) TestCreateDuplicate() {
	record := builders.NewCharacterBuilder().WithID("char_1").Build()
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: record})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: record})

	s.True(errors.IsAlreadyExists(err))

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Len(out.Characters, 1)
}

func (s *RepositoryTestSuite) TestCreateInvalid() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: builders.NewCharacterBuilder().WithID("").Build()})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "nope"})

	s.True(errors.IsNotFound(err))
	s.Equal("nope", errors.GetMeta(err)["character_id"])
}

func (s *RepositoryTestSuite) TestGetEmptyID() {
	_, err := s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestUpdate() {
	record := builders.NewCharacterBuilder().WithID("char_1").Build()
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: record})
	s.Require().NoError(err)

	weapon, bonus := "Bow", 3
	record.Enhancement.WeaponName = &weapon
	record.Enhancement.StrengthBonus = &bonus
	record.Equipment[entities.SlotWeapon] = weapon
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: record})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.True(out.Character.Enhancement.HasWeapon())
	s.Equal("Bow", out.Character.Equipment[entities.SlotWeapon])
}

func (s *RepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{
		Character: builders.NewCharacterBuilder().WithID("ghost").Build(),
	})

	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestStoredRecordIsIsolatedFromCaller() {
	record := builders.NewCharacterBuilder().WithID("char_1").WithEquipment("Ring", "Iron").Build()
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: record})
	s.Require().NoError(err)

	record.Equipment["Ring"] = "Gold"
	first, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	first.Character.Equipment["Ring"] = "Silver"

	second, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal("Iron", second.Character.Equipment["Ring"])
}

func (s *RepositoryTestSuite) TestListKeepsCreationOrder() {
	for _, id := range []string{"char_b", "char_a", "char_c"} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{
			Character: builders.NewCharacterBuilder().WithID(id).Build(),
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)

	s.Require().Len(out.Characters, 3)
	s.Equal("char_b", out.Characters[0].ID)
	s.Equal("char_a", out.Characters[1].ID)
	s.Equal("char_c", out.Characters[2].ID)
}

func (s *RepositoryTestSuite) TestListEmpty() {
	out, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}

func TestRedisListSkipsDanglingIndexEntries(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisServer(t)
	defer cleanup()

	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	_, err = repo.Create(ctx, character.CreateInput{Character: builders.NewCharacterBuilder().WithID("char_1").Build()})
	if err != nil {
		t.Fatal(err)
	}
	_, err = mr.Push("character:index", "char_gone")
	if err != nil {
		t.Fatal(err)
	}

	out, err := repo.List(ctx, character.ListInput{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Characters) != 1 || out.Characters[0].ID != "char_1" {
		t.Fatalf("expected only char_1, got %+v", out.Characters)
	}
}

func TestRedisGetCorruptData(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClientWithSetup(t, func(mr *miniredis.Miniredis) {
		_ = mr.Set("character:char_bad", "{not json")
	})
	defer cleanup()

	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}

	_, err = repo.Get(context.Background(), character.GetInput{ID: "char_bad"})
	if !errors.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestNewRedisRequiresClient(t *testing.T) {
	_, err := character.NewRedis(&character.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	_, err = character.NewRedis(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
