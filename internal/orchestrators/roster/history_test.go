package roster_test

import (
	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
	"github.com/KirkDiggler/rpg-party/internal/orchestrators/roster"
	characterrepo "github.com/KirkDiggler/rpg-party/internal/repositories/character"
	partyrepo "github.com/KirkDiggler/rpg-party/internal/repositories/party"
)

func (s *OrchestratorTestSuite) enhance(id string, req composition.EnhancementRequest) {
	_, err := s.orchestrator.EnhanceCharacter(s.ctx, &roster.EnhanceCharacterInput{CharacterID: id, Enhancement: req})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) undo() *roster.UndoOutput {
	out, err := s.orchestrator.Undo(s.ctx, &roster.UndoInput{})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) redo() *roster.RedoOutput {
	out, err := s.orchestrator.Redo(s.ctx, &roster.RedoInput{})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) storedCharacter(id string) *entities.Character {
	out, err := s.characters.Get(s.ctx, characterrepo.GetInput{ID: id})
	s.Require().NoError(err)
	return out.Character
}

func (s *OrchestratorTestSuite) storedMembers(id string) []entities.PartyMember {
	out, err := s.parties.Get(s.ctx, partyrepo.GetInput{ID: id})
	s.Require().NoError(err)
	return out.Party.Members
}

func (s *OrchestratorTestSuite) TestUndoRedo_Enhancement() {
	hero := s.createCharacter("Aragorn", entities.ClassWarrior, map[string]string{"Ring": "Barahir"})
	s.enhance(hero.ID, composition.EnhancementRequest{WeaponName: ptr("Anduril"), StrengthBonus: ptr(5)})
	s.enhance(hero.ID, composition.EnhancementRequest{ArmorName: ptr("Mithril Coat"), HealthBonus: ptr(20)})

	out := s.undo()
	s.True(out.Undone)
	s.Equal("enhance Aragorn", out.Description)

	stored := s.storedCharacter(hero.ID)
	s.True(stored.Enhancement.HasWeapon())
	s.False(stored.Enhancement.HasArmor())
	s.Equal(map[string]string{"Ring": "Barahir", entities.SlotWeapon: "Anduril"}, stored.Equipment)

	s.undo()
	stored = s.storedCharacter(hero.ID)
	s.False(stored.Enhancement.HasEnhancements())
	s.Equal(map[string]string{"Ring": "Barahir"}, stored.Equipment)
	s.Equal(hero.Strength, stored.Strength)

	redone := s.redo()
	s.True(redone.Redone)
	stored = s.storedCharacter(hero.ID)
	s.True(stored.Enhancement.HasWeapon())
	s.Equal("Anduril", stored.Equipment[entities.SlotWeapon])

	s.Equal(recordedEvent{roster.EventChangeRedone, hero.ID}, s.events[len(s.events)-1])
}

func (s *OrchestratorTestSuite) TestUndoRedo_Membership() {
	hero := s.createCharacter("Hero", entities.ClassWarrior, nil)
	p := s.createParty("Duo")
	s.Require().NoError(s.addMember(p.ID, entities.MemberKindCharacter, hero.ID))
	_, err := s.orchestrator.RemovePartyMember(s.ctx, &roster.RemovePartyMemberInput{
		PartyID: p.ID,
		Member:  entities.PartyMember{Kind: entities.MemberKindCharacter, ID: hero.ID},
	})
	s.Require().NoError(err)
	s.Empty(s.storedMembers(p.ID))

	out := s.undo()
	s.Equal("remove character "+hero.ID+" from Duo", out.Description)
	s.Equal([]entities.PartyMember{{Kind: entities.MemberKindCharacter, ID: hero.ID}}, s.storedMembers(p.ID))
	s.Equal(recordedEvent{roster.EventChangeUndone, p.ID}, s.events[len(s.events)-1])

	out = s.undo()
	s.Equal("add character "+hero.ID+" to Duo", out.Description)
	s.Empty(s.storedMembers(p.ID))

	s.redo()
	s.Len(s.storedMembers(p.ID), 1)
}

func (s *OrchestratorTestSuite) TestUndoRedo_NothingToDo() {
	out := s.undo()
	s.False(out.Undone)
	s.Empty(out.Description)

	redone := s.redo()
	s.False(redone.Redone)
}

func (s *OrchestratorTestSuite) TestUndo_NoOpEnhancementIsNotRecorded() {
	hero := s.createCharacter("Hero", entities.ClassWarrior, nil)
	s.enhance(hero.ID, composition.EnhancementRequest{WeaponName: ptr("Stick")})

	s.False(s.undo().Undone)
}

func (s *OrchestratorTestSuite) TestRedo_RejectsCycleCreatedOutsideHistory() {
	outer := s.createParty("Outer")
	inner := s.createParty("Inner")
	s.Require().NoError(s.addMember(outer.ID, entities.MemberKindParty, inner.ID))
	s.undo()

	_, err := s.parties.Update(s.ctx, partyrepo.UpdateInput{Party: &entities.Party{
		ID:      inner.ID,
		Name:    inner.Name,
		Members: []entities.PartyMember{{Kind: entities.MemberKindParty, ID: outer.ID}},
	}})
	s.Require().NoError(err)

	_, err = s.orchestrator.Redo(s.ctx, &roster.RedoInput{})
	s.True(errors.IsStructuralCycle(err), "got %v", err)
	s.Empty(s.storedMembers(outer.ID))

	_, err = s.parties.Update(s.ctx, partyrepo.UpdateInput{Party: &entities.Party{ID: inner.ID, Name: inner.Name}})
	s.Require().NoError(err)
	s.True(s.redo().Redone, "a failed redo stays available")
	s.Len(s.storedMembers(outer.ID), 1)
}

func (s *OrchestratorTestSuite) TestRedo_ClearedByNewChange() {
	testCases := []struct {
		name     string
		undos    int
		newEdit  bool
		wantRedo bool
	}{
		{name: "undo keeps redo", undos: 1, wantRedo: true},
		{name: "add after undo clears redo", undos: 1, newEdit: true},
		{name: "add after undoing everything clears redo", undos: 2, newEdit: true},
		{name: "nothing undone", newEdit: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			hero := s.createCharacter("Hero", entities.ClassWarrior, nil)
			mage := s.createCharacter("Mage", entities.ClassMage, nil)
			p := s.createParty("Crew")
			s.Require().NoError(s.addMember(p.ID, entities.MemberKindCharacter, hero.ID))
			s.Require().NoError(s.addMember(p.ID, entities.MemberKindCharacter, mage.ID))

			for i := 0; i < tc.undos; i++ {
				s.Require().True(s.undo().Undone)
			}
			if tc.newEdit {
				s.Require().NoError(s.addMember(p.ID, entities.MemberKindCharacter, mage.ID))
			}

			s.Equal(tc.wantRedo, s.redo().Redone)
		})
	}
}
