// Package main is the entry point for the rpg-party command line tool
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-party/internal/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree and maps the result to an exit status
func run(args []string, stdout, stderr io.Writer) int {
	return newCLI(stdout, stderr).execute(args)
}

func (c *cli) execute(args []string) int {
	defer c.close()

	root := c.rootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return errors.GetCode(err).ExitCode()
	}
	return 0
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rpg-party",
		Short: "Compose characters, enhancements, and parties",
		Long: `rpg-party creates characters, equips them with weapon and armor enhancements,
and groups them into nested parties. Views are rebuilt from stored records on
every read.

Without --redis-addr the registries live in memory for a single invocation;
use the demo command to see a full walk-through.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	root.PersistentFlags().StringVar(&c.redisAddr, "redis-addr", "", "Redis address for persistent registries (env RPG_PARTY_REDIS_ADDR)")
	root.PersistentFlags().StringVar(&c.format, "format", "", "Display format: text, json, xml, yaml or 1-4 (env RPG_PARTY_FORMAT)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error (env RPG_PARTY_LOG_LEVEL)")

	root.AddCommand(c.characterCmd())
	root.AddCommand(c.partyCmd())
	root.AddCommand(c.demoCmd())
	root.AddCommand(c.doctorCmd())
	return root
}
