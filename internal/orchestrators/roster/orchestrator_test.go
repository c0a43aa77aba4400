package roster_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
	"github.com/KirkDiggler/rpg-party/internal/orchestrators/roster"
	"github.com/KirkDiggler/rpg-party/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-party/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-party/internal/repositories/character"
	partyrepo "github.com/KirkDiggler/rpg-party/internal/repositories/party"
)

// scriptedRoller returns queued values, then 1 once the queue is empty
type scriptedRoller struct {
	values []int
	err    error
}

func (r *scriptedRoller) Roll(_ int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(r.values) == 0 {
		return 1, nil
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

type recordedEvent struct {
	eventType string
	sourceID  string
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx          context.Context
	roller       *scriptedRoller
	characters   *characterrepo.InMemoryRepository
	parties      *partyrepo.InMemoryRepository
	orchestrator *roster.Orchestrator
	events       []recordedEvent
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = &scriptedRoller{}
	s.characters = characterrepo.NewInMemory()
	s.parties = partyrepo.NewInMemory()
	s.events = nil

	bus := events.NewBus()
	for _, eventType := range []string{
		roster.EventCharacterCreated,
		roster.EventCharacterEnhanced,
		roster.EventPartyCreated,
		roster.EventPartyMemberAdded,
		roster.EventPartyMemberRemoved,
		roster.EventCharacterAttacked,
		roster.EventChangeUndone,
		roster.EventChangeRedone,
	} {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			s.events = append(s.events, recordedEvent{eventType: e.Type(), sourceID: e.Source().GetID()})
			return nil
		})
	}

	o, err := roster.New(&roster.Config{
		CharacterRepo: s.characters,
		PartyRepo:     s.parties,
		DiceRoller:    s.roller,
		IDGenerator:   idgen.NewSequential(""),
		EventBus:      bus,
		Clock:         &clock.Fixed{At: time.Unix(1700000000, 0)},
	})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *OrchestratorTestSuite) createCharacter(name string, class entities.Class, equipment map[string]string) *entities.Character {
	out, err := s.orchestrator.CreateCharacter(s.ctx, &roster.CreateCharacterInput{
		Class:     class,
		Name:      name,
		Level:     1,
		Equipment: equipment,
	})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) createParty(name string) *entities.Party {
	out, err := s.orchestrator.CreateParty(s.ctx, &roster.CreatePartyInput{Name: name})
	s.Require().NoError(err)
	return out.Party
}

func (s *OrchestratorTestSuite) addMember(partyID string, kind entities.MemberKind, id string) error {
	_, err := s.orchestrator.AddPartyMember(s.ctx, &roster.AddPartyMemberInput{
		PartyID: partyID,
		Member:  entities.PartyMember{Kind: kind, ID: id},
	})
	return err
}

func ptr[T any](v T) *T {
	return &v
}

func (s *OrchestratorTestSuite) TestCreateCharacter_RollsClassStats() {
	testCases := []struct {
		class            entities.Class
		rolls            []int
		health, strength int
	}{
		{entities.ClassWarrior, []int{5, 3}, 94, 16},
		{entities.ClassMage, []int{20, 4}, 79, 9},
		{entities.ClassArcher, []int{1, 1}, 75, 10},
	}

	for _, tc := range testCases {
		s.Run(string(tc.class), func() {
			s.roller.values = tc.rolls

			record := s.createCharacter("Hero", tc.class, nil)

			s.Equal(tc.health, record.Health)
			s.Equal(tc.strength, record.Strength)
			s.Equal(tc.class, record.Class)
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateCharacter_StoresRecord() {
	equipment := map[string]string{"Boots": "Sandals"}

	record := s.createCharacter("  Frodo ", entities.ClassArcher, equipment)
	equipment["Boots"] = "Changed"

	s.Equal("char_1", record.ID)
	s.Equal("Frodo", record.Name)
	s.Equal(int64(1700000000), record.CreatedAt)
	s.Equal(map[string]string{"Boots": "Sandals"}, record.Equipment)
	s.False(record.Enhancement.HasEnhancements())

	out, err := s.orchestrator.GetCharacter(s.ctx, &roster.GetCharacterInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal(record, out.Character)

	s.Equal([]recordedEvent{{roster.EventCharacterCreated, "char_1"}}, s.events)
}

func (s *OrchestratorTestSuite) TestCreateCharacter_Validation() {
	testCases := []struct {
		name  string
		input *roster.CreateCharacterInput
	}{
		{"nil input", nil},
		{"empty name", &roster.CreateCharacterInput{Class: entities.ClassMage, Name: " ", Level: 1}},
		{"level zero", &roster.CreateCharacterInput{Class: entities.ClassMage, Name: "A", Level: 0}},
		{"level above cap", &roster.CreateCharacterInput{Class: entities.ClassMage, Name: "A", Level: 101}},
		{"unknown class", &roster.CreateCharacterInput{Class: "bard", Name: "A", Level: 1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.CreateCharacter(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}

	out, err := s.orchestrator.ListCharacters(s.ctx, &roster.ListCharactersInput{})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}

func (s *OrchestratorTestSuite) TestCreateCharacter_DiceFailure() {
	s.roller.err = fmt.Errorf("dice fell off the table")

	_, err := s.orchestrator.CreateCharacter(s.ctx, &roster.CreateCharacterInput{
		Class: entities.ClassWarrior, Name: "Unlucky", Level: 1,
	})

	s.Error(err)
	s.Contains(err.Error(), "failed to roll health")
}

func (s *OrchestratorTestSuite) TestEnhanceCharacter_PersistsMetadata() {
	s.roller.values = []int{1, 1}
	record := s.createCharacter("Arthur", entities.ClassWarrior, nil)
	s.Require().Equal(14, record.Strength)

	out, err := s.orchestrator.EnhanceCharacter(s.ctx, &roster.EnhanceCharacterInput{
		CharacterID: record.ID,
		Enhancement: composition.EnhancementRequest{WeaponName: ptr("Excalibur"), StrengthBonus: ptr(5)},
	})
	s.Require().NoError(err)

	s.True(out.Applied.Weapon)
	s.Equal(19, out.View.TotalStrength())

	view, err := s.orchestrator.GetCharacterView(s.ctx, &roster.GetCharacterViewInput{CharacterID: record.ID})
	s.Require().NoError(err)
	s.Equal(19, view.View.TotalStrength())
	s.Equal("Arthur (Warrior) - Level 1, Enhanced with Excalibur", view.View.Description())

	stored, err := s.orchestrator.GetCharacter(s.ctx, &roster.GetCharacterInput{CharacterID: record.ID})
	s.Require().NoError(err)
	s.Equal(14, stored.Character.Strength)
	s.Equal("Excalibur", stored.Character.Equipment[entities.SlotWeapon])

	s.Equal(recordedEvent{roster.EventCharacterEnhanced, record.ID}, s.events[len(s.events)-1])
}

func (s *OrchestratorTestSuite) TestEnhanceCharacter_PartialIsSilentNoOp() {
	s.roller.values = []int{1, 1}
	record := s.createCharacter("Arthur", entities.ClassWarrior, nil)
	s.events = nil

	out, err := s.orchestrator.EnhanceCharacter(s.ctx, &roster.EnhanceCharacterInput{
		CharacterID: record.ID,
		Enhancement: composition.EnhancementRequest{WeaponName: ptr("Excalibur")},
	})
	s.Require().NoError(err)

	s.False(out.Applied.Any())
	s.Equal(14, out.View.TotalStrength())
	s.Empty(s.events)

	stored, err := s.orchestrator.GetCharacter(s.ctx, &roster.GetCharacterInput{CharacterID: record.ID})
	s.Require().NoError(err)
	s.False(stored.Character.Enhancement.HasEnhancements())
	s.Empty(stored.Character.Equipment)
}

func (s *OrchestratorTestSuite) TestGetCharacterView_Errors() {
	_, err := s.orchestrator.GetCharacterView(s.ctx, &roster.GetCharacterViewInput{CharacterID: "char_404"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.GetCharacterView(s.ctx, &roster.GetCharacterViewInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.GetCharacterView(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestPartyView_MergesEquipment() {
	sword := s.createCharacter("Boromir", entities.ClassWarrior, map[string]string{entities.SlotWeapon: "Sword"})
	bow := s.createCharacter("Legolas", entities.ClassArcher, map[string]string{entities.SlotWeapon: "Bow"})
	p := s.createParty("Fellowship")

	s.Require().NoError(s.addMember(p.ID, entities.MemberKindCharacter, sword.ID))
	s.Require().NoError(s.addMember(p.ID, entities.MemberKindCharacter, bow.ID))

	out, err := s.orchestrator.GetPartyView(s.ctx, &roster.GetPartyViewInput{PartyID: p.ID})
	s.Require().NoError(err)

	s.Equal("Sword, Bow", out.View.Equipment()[entities.SlotWeapon])
	s.Equal(sword.Health+bow.Health, out.View.TotalHealth())
	s.Equal(sword.Strength+bow.Strength, out.View.TotalStrength())
	s.Equal(
		"Party 'Fellowship' (2 members): Boromir (Warrior) - Level 1, Legolas (Archer) - Level 1",
		out.View.Description(),
	)
}

func (s *OrchestratorTestSuite) TestPartyView_UsesEnhancedMembers() {
	s.roller.values = []int{1, 1}
	record := s.createCharacter("Merlin", entities.ClassMage, nil)
	_, err := s.orchestrator.EnhanceCharacter(s.ctx, &roster.EnhanceCharacterInput{
		CharacterID: record.ID,
		Enhancement: composition.EnhancementRequest{
			WeaponName: ptr("Staff"), StrengthBonus: ptr(3),
			ArmorName: ptr("Robe"), HealthBonus: ptr(10),
		},
	})
	s.Require().NoError(err)

	p := s.createParty("Council")
	s.Require().NoError(s.addMember(p.ID, entities.MemberKindCharacter, record.ID))

	out, err := s.orchestrator.GetPartyView(s.ctx, &roster.GetPartyViewInput{PartyID: p.ID})
	s.Require().NoError(err)
	s.Equal(70, out.View.TotalHealth())
	s.Equal(9, out.View.TotalStrength())
	s.Contains(out.View.Description(), "Enhanced with Staff, Protected by Robe")
}

func (s *OrchestratorTestSuite) TestPartyView_NestedAggregation() {
	s.roller.values = []int{11, 1, 1, 1, 1, 1}
	solo := s.createCharacter("Solo", entities.ClassWarrior, nil) // health 100
	a := s.createCharacter("A", entities.ClassMage, nil)          // health 60
	b := s.createCharacter("B", entities.ClassMage, nil)          // health 60

	partyA := s.createParty("A")
	partyB := s.createParty("B")
	outer := s.createParty("Outer")
	s.Require().NoError(s.addMember(partyA.ID, entities.MemberKindCharacter, solo.ID))
	s.Require().NoError(s.addMember(partyB.ID, entities.MemberKindCharacter, a.ID))
	s.Require().NoError(s.addMember(partyB.ID, entities.MemberKindCharacter, b.ID))
	s.Require().NoError(s.addMember(outer.ID, entities.MemberKindParty, partyA.ID))
	s.Require().NoError(s.addMember(outer.ID, entities.MemberKindParty, partyB.ID))

	out, err := s.orchestrator.GetPartyView(s.ctx, &roster.GetPartyViewInput{PartyID: outer.ID})
	s.Require().NoError(err)

	s.Equal(100, solo.Health)
	s.Equal(220, out.View.TotalHealth())
	s.Equal(2, out.View.Len())
}

func (s *OrchestratorTestSuite) TestPartyView_DuplicateMemberIsSameInstance() {
	hero := s.createCharacter("Echo", entities.ClassArcher, nil)
	p := s.createParty("Mirror")
	s.Require().NoError(s.addMember(p.ID, entities.MemberKindCharacter, hero.ID))
	s.Require().NoError(s.addMember(p.ID, entities.MemberKindCharacter, hero.ID))

	out, err := s.orchestrator.GetPartyView(s.ctx, &roster.GetPartyViewInput{PartyID: p.ID})
	s.Require().NoError(err)

	members := out.View.Members()
	s.Require().Len(members, 2)
	s.Same(members[0], members[1])
	s.Equal(2*hero.Health, out.View.TotalHealth())
}

func (s *OrchestratorTestSuite) TestPartyView_SharedSubPartyIsNotACycle() {
	hero := s.createCharacter("Shared", entities.ClassArcher, nil)
	shared := s.createParty("Shared")
	left := s.createParty("Left")
	right := s.createParty("Right")
	top := s.createParty("Top")
	s.Require().NoError(s.addMember(shared.ID, entities.MemberKindCharacter, hero.ID))
	s.Require().NoError(s.addMember(left.ID, entities.MemberKindParty, shared.ID))
	s.Require().NoError(s.addMember(right.ID, entities.MemberKindParty, shared.ID))
	s.Require().NoError(s.addMember(top.ID, entities.MemberKindParty, left.ID))
	s.Require().NoError(s.addMember(top.ID, entities.MemberKindParty, right.ID))

	out, err := s.orchestrator.GetPartyView(s.ctx, &roster.GetPartyViewInput{PartyID: top.ID})
	s.Require().NoError(err)
	s.Equal(2*hero.Health, out.View.TotalHealth())
}

func (s *OrchestratorTestSuite) TestAddPartyMember_RejectsCycles() {
	inner := s.createParty("Inner")
	middle := s.createParty("Middle")
	outer := s.createParty("Outer")
	s.Require().NoError(s.addMember(middle.ID, entities.MemberKindParty, inner.ID))
	s.Require().NoError(s.addMember(outer.ID, entities.MemberKindParty, middle.ID))

	err := s.addMember(inner.ID, entities.MemberKindParty, inner.ID)
	s.True(errors.IsStructuralCycle(err), "self: %v", err)

	err = s.addMember(inner.ID, entities.MemberKindParty, outer.ID)
	s.True(errors.IsStructuralCycle(err), "ancestor: %v", err)

	stored, err := s.parties.Get(s.ctx, partyrepo.GetInput{ID: inner.ID})
	s.Require().NoError(err)
	s.Empty(stored.Party.Members)
}

func (s *OrchestratorTestSuite) TestAddPartyMember_Errors() {
	p := s.createParty("Lonely")

	s.True(errors.IsNotFound(s.addMember(p.ID, entities.MemberKindCharacter, "char_404")))
	s.True(errors.IsNotFound(s.addMember(p.ID, entities.MemberKindParty, "party_404")))
	s.True(errors.IsNotFound(s.addMember("party_404", entities.MemberKindParty, p.ID)))
	s.True(errors.IsInvalidArgument(s.addMember(p.ID, "pet", "x")))
	s.True(errors.IsInvalidArgument(s.addMember(p.ID, entities.MemberKindCharacter, "")))
}

func (s *OrchestratorTestSuite) TestGetPartyView_StoredCycleFailsFast() {
	loopA := &entities.Party{ID: "party_a", Name: "A", Members: []entities.PartyMember{{Kind: entities.MemberKindParty, ID: "party_b"}}}
	loopB := &entities.Party{ID: "party_b", Name: "B", Members: []entities.PartyMember{{Kind: entities.MemberKindParty, ID: "party_a"}}}
	_, err := s.parties.Create(s.ctx, partyrepo.CreateInput{Party: loopA})
	s.Require().NoError(err)
	_, err = s.parties.Create(s.ctx, partyrepo.CreateInput{Party: loopB})
	s.Require().NoError(err)

	_, err = s.orchestrator.GetPartyView(s.ctx, &roster.GetPartyViewInput{PartyID: "party_a"})

	s.True(errors.IsStructuralCycle(err), "got %v", err)
}

func (s *OrchestratorTestSuite) TestRemovePartyMember() {
	hero := s.createCharacter("Hero", entities.ClassWarrior, nil)
	sidekick := s.createCharacter("Sidekick", entities.ClassArcher, nil)
	p := s.createParty("Duo")
	s.Require().NoError(s.addMember(p.ID, entities.MemberKindCharacter, hero.ID))
	s.Require().NoError(s.addMember(p.ID, entities.MemberKindCharacter, sidekick.ID))
	s.Require().NoError(s.addMember(p.ID, entities.MemberKindCharacter, hero.ID))

	out, err := s.orchestrator.RemovePartyMember(s.ctx, &roster.RemovePartyMemberInput{
		PartyID: p.ID,
		Member:  entities.PartyMember{Kind: entities.MemberKindCharacter, ID: hero.ID},
	})
	s.Require().NoError(err)
	s.True(out.Removed)
	s.Equal([]entities.PartyMember{
		{Kind: entities.MemberKindCharacter, ID: sidekick.ID},
		{Kind: entities.MemberKindCharacter, ID: hero.ID},
	}, out.Party.Members)

	out, err = s.orchestrator.RemovePartyMember(s.ctx, &roster.RemovePartyMemberInput{
		PartyID: p.ID,
		Member:  entities.PartyMember{Kind: entities.MemberKindParty, ID: hero.ID},
	})
	s.Require().NoError(err)
	s.False(out.Removed)
	s.Len(out.Party.Members, 2)
}

func (s *OrchestratorTestSuite) TestListParties() {
	s.createParty("First")
	s.createParty("Second")

	out, err := s.orchestrator.ListParties(s.ctx, &roster.ListPartiesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Parties, 2)
	s.Equal("First", out.Parties[0].Name)
	s.Equal("party_2", out.Parties[1].ID)
}

func (s *OrchestratorTestSuite) TestCreateParty_RequiresName() {
	_, err := s.orchestrator.CreateParty(s.ctx, &roster.CreatePartyInput{Name: ""})
	s.True(errors.IsInvalidArgument(err))
}
