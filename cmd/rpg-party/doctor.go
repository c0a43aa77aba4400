package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-party/internal/errors"
	"github.com/KirkDiggler/rpg-party/internal/maintenance"
)

func (c *cli) doctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the redis registries for damaged records",
		Long: `Scan the redis registries for records that no longer decode, index entries
without records, records missing from the index, party members that point at
nothing, and parties that contain themselves. With --fix, everything except
cycles is repaired.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !c.cfg.UseRedis() {
				return errors.FailedPrecondition("doctor needs --redis-addr or RPG_PARTY_REDIS_ADDR")
			}

			client, err := openRedis(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
			}()

			checker, err := maintenance.New(&maintenance.Config{Client: client})
			if err != nil {
				return err
			}

			report, err := checker.Scan(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(c.stdout, "Checked %d characters and %d parties\n",
				report.CheckedCharacters, report.CheckedParties)
			if report.Healthy() {
				fmt.Fprintln(c.stdout, "No problems found")
				return nil
			}
			for _, issue := range report.Issues {
				fmt.Fprintf(c.stdout, "  %-16s %s %s: %s\n", issue.Kind, issue.Registry, issue.ID, issue.Detail)
			}

			if !fix {
				return errors.FailedPreconditionf("found %d problems; rerun with --fix to repair", len(report.Issues))
			}

			result, err := checker.Repair(cmd.Context(), report.Issues)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "Repaired %d, skipped %d\n", result.Fixed, result.Skipped)
			if result.Skipped > 0 {
				return errors.FailedPreconditionf("%d problems need manual attention", result.Skipped)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Repair what can be repaired")
	return cmd
}
