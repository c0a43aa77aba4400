package roster_test

import (
	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
	"github.com/KirkDiggler/rpg-party/internal/orchestrators/roster"
)

func (s *OrchestratorTestSuite) TestAttack_BalancedUsesDecoratedStrength() {
	// warrior with all rolls at 1: health 90, strength 14
	hero := s.createCharacter("Hero", entities.ClassWarrior, nil)
	orc := s.createCharacter("Orc", entities.ClassWarrior, nil)
	s.enhance(hero.ID, composition.EnhancementRequest{WeaponName: ptr("Axe"), StrengthBonus: ptr(6)})
	s.enhance(orc.ID, composition.EnhancementRequest{ArmorName: ptr("Plate"), HealthBonus: ptr(10)})

	out, err := s.orchestrator.Attack(s.ctx, &roster.AttackInput{AttackerID: hero.ID, TargetID: orc.ID})
	s.Require().NoError(err)

	s.Equal("balanced", out.Strategy)
	s.Equal(21, out.Damage)
	s.False(out.Critical)
	s.Equal(100, out.TargetHealthBefore)
	s.Equal(79, out.TargetHealthAfter)

	s.Equal(90, s.storedCharacter(orc.ID).Health, "attacks never write health")
	s.Equal(recordedEvent{roster.EventCharacterAttacked, hero.ID}, s.events[len(s.events)-1])
}

func (s *OrchestratorTestSuite) TestAttack_SneakCriticalAndHealthFloor() {
	hero := s.createCharacter("Hero", entities.ClassWarrior, nil)
	mage := s.createCharacter("Mage", entities.ClassMage, nil)

	s.roller.values = []int{10}
	out, err := s.orchestrator.Attack(s.ctx, &roster.AttackInput{AttackerID: hero.ID, TargetID: mage.ID, Strategy: "sneak"})
	s.Require().NoError(err)
	s.False(out.Critical)
	s.Equal(14*7/10+1, out.Damage)

	s.roller.values = []int{2}
	out, err = s.orchestrator.Attack(s.ctx, &roster.AttackInput{AttackerID: hero.ID, TargetID: mage.ID, Strategy: "Sneak"})
	s.Require().NoError(err)
	s.True(out.Critical)
	s.Equal((14*7/10+1)*3, out.Damage)

	_, err = s.orchestrator.EnhanceCharacter(s.ctx, &roster.EnhanceCharacterInput{
		CharacterID: hero.ID,
		Enhancement: composition.EnhancementRequest{WeaponName: ptr("Greatsword"), StrengthBonus: ptr(100)},
	})
	s.Require().NoError(err)
	out, err = s.orchestrator.Attack(s.ctx, &roster.AttackInput{AttackerID: hero.ID, TargetID: mage.ID, Strategy: "aggressive"})
	s.Require().NoError(err)
	s.Equal(0, out.TargetHealthAfter)
}

func (s *OrchestratorTestSuite) TestAttack_Errors() {
	hero := s.createCharacter("Hero", entities.ClassWarrior, nil)

	_, err := s.orchestrator.Attack(s.ctx, &roster.AttackInput{AttackerID: hero.ID, TargetID: hero.ID, Strategy: "berserk"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.Attack(s.ctx, &roster.AttackInput{AttackerID: hero.ID, TargetID: "char_404"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.Attack(s.ctx, &roster.AttackInput{AttackerID: hero.ID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.Attack(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}
