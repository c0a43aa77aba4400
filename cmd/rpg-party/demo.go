package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-party/internal/combat"
	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
	"github.com/KirkDiggler/rpg-party/internal/orchestrators/roster"
)

func (c *cli) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through characters, enhancements, nested parties, undo, and attacks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runDemo(cmd.Context())
		},
	}
}

func (c *cli) runDemo(ctx context.Context) error {
	heroes := []struct {
		class entities.Class
		name  string
		level int
	}{
		{entities.ClassWarrior, "Aragorn", 10},
		{entities.ClassMage, "Gandalf", 20},
		{entities.ClassArcher, "Legolas", 8},
	}

	ids := make([]string, 0, len(heroes))
	for _, h := range heroes {
		out, err := c.service.CreateCharacter(ctx, &roster.CreateCharacterInput{Class: h.class, Name: h.name, Level: h.level})
		if err != nil {
			return err
		}
		ids = append(ids, out.Character.ID)
	}

	enhanced, err := c.service.EnhanceCharacter(ctx, &roster.EnhanceCharacterInput{
		CharacterID: ids[0],
		Enhancement: composition.EnhancementRequest{
			WeaponName: ptr("Anduril"), StrengthBonus: ptr(5),
			ArmorName: ptr("Mithril Coat"), HealthBonus: ptr(20),
		},
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, "== Enhanced character")
	if err := c.render(enhanced.View); err != nil {
		return err
	}

	fellowship, err := c.service.CreateParty(ctx, &roster.CreatePartyInput{Name: "Fellowship"})
	if err != nil {
		return err
	}
	scouts, err := c.service.CreateParty(ctx, &roster.CreatePartyInput{Name: "Scouts"})
	if err != nil {
		return err
	}

	steps := []*roster.AddPartyMemberInput{
		{PartyID: scouts.Party.ID, Member: entities.PartyMember{Kind: entities.MemberKindCharacter, ID: ids[2]}},
		{PartyID: fellowship.Party.ID, Member: entities.PartyMember{Kind: entities.MemberKindCharacter, ID: ids[0]}},
		{PartyID: fellowship.Party.ID, Member: entities.PartyMember{Kind: entities.MemberKindCharacter, ID: ids[1]}},
		{PartyID: fellowship.Party.ID, Member: entities.PartyMember{Kind: entities.MemberKindParty, ID: scouts.Party.ID}},
	}
	for _, step := range steps {
		if _, err := c.service.AddPartyMember(ctx, step); err != nil {
			return err
		}
	}

	view, err := c.service.GetPartyView(ctx, &roster.GetPartyViewInput{PartyID: fellowship.Party.ID})
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, "== Nested party")
	if err := c.render(view.View); err != nil {
		return err
	}

	_, err = c.service.AddPartyMember(ctx, &roster.AddPartyMemberInput{
		PartyID: scouts.Party.ID,
		Member:  entities.PartyMember{Kind: entities.MemberKindParty, ID: fellowship.Party.ID},
	})
	if !errors.IsStructuralCycle(err) {
		return errors.Internalf("expected the cycle guard to reject the add, got %v", err)
	}
	fmt.Fprintf(c.stdout, "== Cycle rejected\n%s\n", errors.GetMessage(err))

	if err := c.demoUndoRedo(ctx, fellowship.Party.ID); err != nil {
		return err
	}

	fmt.Fprintln(c.stdout, "== Attacks")
	for _, strategy := range combat.Names() {
		out, err := c.service.Attack(ctx, &roster.AttackInput{AttackerID: ids[0], TargetID: ids[1], Strategy: strategy})
		if err != nil {
			return err
		}
		c.printAttack(out)
	}

	fmt.Fprintln(c.stdout, "== Achievements")
	for _, u := range c.achievements.Unlocked() {
		fmt.Fprintf(c.stdout, "- %s (%s)\n", u.Achievement.Title(), u.EntityID)
	}
	return nil
}

// demoUndoRedo takes back the last membership change and replays it
func (c *cli) demoUndoRedo(ctx context.Context, partyID string) error {
	undone, err := c.service.Undo(ctx, &roster.UndoInput{})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "== Undo: %s\n", undone.Description)

	view, err := c.service.GetPartyView(ctx, &roster.GetPartyViewInput{PartyID: partyID})
	if err != nil {
		return err
	}
	if err := c.render(view.View); err != nil {
		return err
	}

	redone, err := c.service.Redo(ctx, &roster.RedoInput{})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "== Redo: %s\n", redone.Description)

	view, err = c.service.GetPartyView(ctx, &roster.GetPartyViewInput{PartyID: partyID})
	if err != nil {
		return err
	}
	return c.render(view.View)
}

func ptr[T any](v T) *T {
	return &v
}
