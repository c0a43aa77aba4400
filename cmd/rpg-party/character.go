package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-party/internal/combat"
	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
	"github.com/KirkDiggler/rpg-party/internal/orchestrators/roster"
)

func (c *cli) characterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "character",
		Aliases: []string{"char"},
		Short:   "Create, enhance, and inspect characters",
	}
	cmd.AddCommand(c.characterCreateCmd())
	cmd.AddCommand(c.characterEnhanceCmd())
	cmd.AddCommand(c.characterShowCmd())
	cmd.AddCommand(c.characterListCmd())
	cmd.AddCommand(c.characterAttackCmd())
	return cmd
}

func (c *cli) characterCreateCmd() *cobra.Command {
	var (
		className string
		name      string
		level     int
		equipment map[string]string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a character with rolled base stats",
		Example: `  rpg-party character create --class warrior --name Aragorn --level 5
  rpg-party character create --class 2 --name Gandalf --equip Hat=Pointy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			class, ok := entities.ParseClass(className)
			if !ok {
				return errors.InvalidArgumentf("unknown class %q (want warrior, mage, archer or 1-3)", className)
			}

			out, err := c.service.CreateCharacter(cmd.Context(), &roster.CreateCharacterInput{
				Class:     class,
				Name:      name,
				Level:     level,
				Equipment: equipment,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(c.stdout, "Created character %s\n", out.Character.ID)
			return c.render(composition.BuildView(out.Character))
		},
	}

	cmd.Flags().StringVar(&className, "class", "", "Character class: warrior, mage, archer or 1-3 (required)")
	cmd.Flags().StringVar(&name, "name", "", "Character name (required)")
	cmd.Flags().IntVar(&level, "level", roster.MinLevel, "Starting level")
	cmd.Flags().StringToStringVar(&equipment, "equip", nil, "Starting equipment as Slot=Item pairs")
	_ = cmd.MarkFlagRequired("class") // nolint:errcheck // flag is defined above
	_ = cmd.MarkFlagRequired("name")  // nolint:errcheck // flag is defined above
	return cmd
}

func (c *cli) characterEnhanceCmd() *cobra.Command {
	var (
		weapon        string
		strengthBonus int
		armor         string
		healthBonus   int
	)

	cmd := &cobra.Command{
		Use:   "enhance <character-id>",
		Short: "Equip a weapon and/or armor",
		Long: `Equip a weapon and/or armor. A weapon needs both --weapon and --strength-bonus,
armor needs both --armor and --health-bonus; a half-specified kind is ignored.`,
		Example: `  rpg-party character enhance char_123 --weapon Excalibur --strength-bonus 5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := composition.EnhancementRequest{}
			flags := cmd.Flags()
			if flags.Changed("weapon") {
				req.WeaponName = &weapon
			}
			if flags.Changed("strength-bonus") {
				req.StrengthBonus = &strengthBonus
			}
			if flags.Changed("armor") {
				req.ArmorName = &armor
			}
			if flags.Changed("health-bonus") {
				req.HealthBonus = &healthBonus
			}

			out, err := c.service.EnhanceCharacter(cmd.Context(), &roster.EnhanceCharacterInput{
				CharacterID: args[0],
				Enhancement: req,
			})
			if err != nil {
				return err
			}

			if !out.Applied.Any() {
				fmt.Fprintln(c.stderr, "No enhancement applied: a weapon needs a name and a strength bonus, armor needs a name and a health bonus")
			}
			return c.render(out.View)
		},
	}

	cmd.Flags().StringVar(&weapon, "weapon", "", "Weapon name")
	cmd.Flags().IntVar(&strengthBonus, "strength-bonus", 0, "Strength bonus granted by the weapon")
	cmd.Flags().StringVar(&armor, "armor", "", "Armor name")
	cmd.Flags().IntVar(&healthBonus, "health-bonus", 0, "Health bonus granted by the armor")
	return cmd
}

func (c *cli) characterShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <character-id>",
		Short: "Display a character with its enhancements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.service.GetCharacterView(cmd.Context(), &roster.GetCharacterViewInput{CharacterID: args[0]})
			if err != nil {
				return err
			}
			return c.render(out.View)
		},
	}
}

func (c *cli) characterListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List characters in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.service.ListCharacters(cmd.Context(), &roster.ListCharactersInput{})
			if err != nil {
				return err
			}
			if len(out.Characters) == 0 {
				fmt.Fprintln(c.stdout, "No characters")
				return nil
			}
			for _, record := range out.Characters {
				fmt.Fprintf(c.stdout, "%s  %s\n", record.ID, composition.BuildView(record).Description())
			}
			return nil
		},
	}
}

func (c *cli) characterAttackCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "attack <attacker-id> <target-id>",
		Short: "Score an attack between two characters",
		Long: `Score an attack using the attacker's enhanced strength and level. The target's
health is reported after the hit but never stored.

Strategies: ` + strings.Join(combat.Names(), ", ") + `.`,
		Example: `  rpg-party character attack char_1 char_2 --strategy sneak`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.service.Attack(cmd.Context(), &roster.AttackInput{
				AttackerID: args[0],
				TargetID:   args[1],
				Strategy:   strategy,
			})
			if err != nil {
				return err
			}
			c.printAttack(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", combat.StrategyBalanced, "Attack strategy")
	return cmd
}

func (c *cli) printAttack(out *roster.AttackOutput) {
	critical := ""
	if out.Critical {
		critical = " (critical)"
	}
	fmt.Fprintf(c.stdout, "%s attacks %s [%s] for %d damage%s. %s health: %d -> %d\n",
		out.Attacker.Name, out.Target.Name, out.Strategy, out.Damage, critical,
		out.Target.Name, out.TargetHealthBefore, out.TargetHealthAfter)
}
