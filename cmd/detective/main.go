// Detective Quest: explore a mansion laid out as a binary tree of rooms,
// collecting clues that are kept in alphabetical order.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	exitOK = 0
	// exitFailure covers usage errors and a map that could not be built.
	exitFailure = 1
)

func newRootCmd() *cobra.Command {
	cfg := appConfig{JournalPath: os.Getenv("DETECTIVE_JOURNAL")}

	rootCmd := &cobra.Command{
		Use:           "detective",
		Short:         "Explore the mansion and collect clues",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.MapPath, "map", "", "load the map from a YAML or JSON file")
	flags.StringVar(&cfg.MCPServer, "mcp-server", "", "fetch the map from an MCP server started with this command line")
	flags.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "record the exploration in this sqlite file")
	flags.BoolVar(&cfg.Plain, "plain", false, "use line-oriented console output instead of the terminal UI")
	flags.BoolVar(&cfg.Debug, "debug", false, "write debug logs to debug.log")
	flags.BoolVar(&cfg.EndAtDeadEnd, "end-at-dead-end", false, "finish the exploration when a room has no exits")

	rootCmd.AddCommand(newJournalCmd())
	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}
	os.Exit(exitOK)
}
