package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/orchestrators/roster"
)

func (c *cli) partyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "party",
		Short: "Group characters and parties into parties",
	}
	cmd.AddCommand(c.partyCreateCmd())
	cmd.AddCommand(c.partyAddCmd())
	cmd.AddCommand(c.partyRemoveCmd())
	cmd.AddCommand(c.partyShowCmd())
	cmd.AddCommand(c.partyListCmd())
	return cmd
}

func (c *cli) partyCreateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty party",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.service.CreateParty(cmd.Context(), &roster.CreatePartyInput{Name: name})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Created party %s\n", out.Party.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Party name (required)")
	_ = cmd.MarkFlagRequired("name") // nolint:errcheck // flag is defined above
	return cmd
}

// memberFlags binds the mutually exclusive --character / --party selectors
type memberFlags struct {
	characterID string
	partyID     string
}

func (m *memberFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&m.characterID, "character", "", "Character ID")
	cmd.Flags().StringVar(&m.partyID, "party", "", "Party ID")
	cmd.MarkFlagsMutuallyExclusive("character", "party")
	cmd.MarkFlagsOneRequired("character", "party")
}

func (m *memberFlags) member() entities.PartyMember {
	if m.partyID != "" {
		return entities.PartyMember{Kind: entities.MemberKindParty, ID: m.partyID}
	}
	return entities.PartyMember{Kind: entities.MemberKindCharacter, ID: m.characterID}
}

func (c *cli) partyAddCmd() *cobra.Command {
	var m memberFlags

	cmd := &cobra.Command{
		Use:   "add <party-id>",
		Short: "Add a character or a party as a member",
		Example: `  rpg-party party add party_1 --character char_1
  rpg-party party add party_1 --party party_2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.service.AddPartyMember(cmd.Context(), &roster.AddPartyMemberInput{
				PartyID: args[0],
				Member:  m.member(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Party %s now has %d members\n", out.Party.ID, len(out.Party.Members))
			return nil
		},
	}

	m.bind(cmd)
	return cmd
}

func (c *cli) partyRemoveCmd() *cobra.Command {
	var m memberFlags

	cmd := &cobra.Command{
		Use:   "remove <party-id>",
		Short: "Remove the first matching member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			member := m.member()
			out, err := c.service.RemovePartyMember(cmd.Context(), &roster.RemovePartyMemberInput{
				PartyID: args[0],
				Member:  member,
			})
			if err != nil {
				return err
			}
			if !out.Removed {
				fmt.Fprintf(c.stdout, "Party %s has no %s member %s\n", out.Party.ID, member.Kind, member.ID)
				return nil
			}
			fmt.Fprintf(c.stdout, "Party %s now has %d members\n", out.Party.ID, len(out.Party.Members))
			return nil
		},
	}

	m.bind(cmd)
	return cmd
}

func (c *cli) partyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <party-id>",
		Short: "Display a party with aggregated stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.service.GetPartyView(cmd.Context(), &roster.GetPartyViewInput{PartyID: args[0]})
			if err != nil {
				return err
			}
			return c.render(out.View)
		},
	}
}

func (c *cli) partyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List parties in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.service.ListParties(cmd.Context(), &roster.ListPartiesInput{})
			if err != nil {
				return err
			}
			if len(out.Parties) == 0 {
				fmt.Fprintln(c.stdout, "No parties")
				return nil
			}
			for _, p := range out.Parties {
				fmt.Fprintf(c.stdout, "%s  %s (%d members)\n", p.ID, p.Name, len(p.Members))
			}
			return nil
		},
	}
}
