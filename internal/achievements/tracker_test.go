package achievements_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-party/internal/achievements"
	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/orchestrators/roster"
)

type TrackerTestSuite struct {
	suite.Suite
	ctx     context.Context
	bus     events.EventBus
	tracker *achievements.Tracker
}

func TestTrackerSuite(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}

func (s *TrackerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.tracker = achievements.NewTracker()
	s.tracker.Subscribe(s.bus)
}

func (s *TrackerTestSuite) publish(eventType string, source core.Entity) {
	s.Require().NoError(s.bus.Publish(s.ctx, events.NewGameEvent(eventType, source, nil)))
}

func (s *TrackerTestSuite) TestLevelAchievementsUnlockOnce() {
	s.publish(roster.EventCharacterCreated, &entities.Character{ID: "char_low", Level: 9})
	s.Empty(s.tracker.Unlocked())

	s.publish(roster.EventCharacterCreated, &entities.Character{ID: "char_a", Level: 10})
	s.publish(roster.EventCharacterCreated, &entities.Character{ID: "char_b", Level: 25})
	s.publish(roster.EventCharacterCreated, &entities.Character{ID: "char_c", Level: 30})

	s.Equal([]achievements.Unlock{
		{Achievement: achievements.Level10, EntityID: "char_a"},
		{Achievement: achievements.Level20, EntityID: "char_b"},
	}, s.tracker.Unlocked())
}

func (s *TrackerTestSuite) TestFullyEquippedNeedsBothKinds() {
	weapon, bonus := "Anduril", 5
	armor, health := "Mithril Coat", 20

	halfway := &entities.Character{ID: "char_a", Enhancement: entities.Enhancement{
		WeaponName: &weapon, StrengthBonus: &bonus,
	}}
	s.publish(roster.EventCharacterEnhanced, halfway)
	s.False(s.tracker.Has(achievements.FullyEquipped))

	full := halfway.Clone()
	full.Enhancement.ArmorName = &armor
	full.Enhancement.HealthBonus = &health
	s.publish(roster.EventCharacterEnhanced, full)
	s.True(s.tracker.Has(achievements.FullyEquipped))
}

func (s *TrackerTestSuite) TestFirstPartyUsesParty() {
	party := &entities.Party{ID: "party_1"}
	s.publish(roster.EventPartyMemberAdded, party)
	s.publish(roster.EventPartyMemberAdded, &entities.Party{ID: "party_2"})

	s.Equal([]achievements.Unlock{{Achievement: achievements.FirstParty, EntityID: "party_1"}}, s.tracker.Unlocked())
}

func (s *TrackerTestSuite) TestUnsubscribeStopsTracking() {
	s.Require().NoError(s.tracker.Unsubscribe(s.bus))

	s.publish(roster.EventCharacterCreated, &entities.Character{ID: "char_a", Level: 50})
	s.Empty(s.tracker.Unlocked())
}

func (s *TrackerTestSuite) TestTitles() {
	s.Equal("Reached Level 10", achievements.Level10.Title())
	s.Equal("Fully Equipped", achievements.FullyEquipped.Title())
	s.Equal("Custom", achievements.Achievement("Custom").Title())
}
