// Command gostrips grounds PDDL-like domain/problem descriptions into
// ground actions and searches for a plan using DFS, BFS, A*, or a
// GraphPlan-style planning graph. It holds no planning logic of its own —
// only flag parsing, loading the AST, invoking pkg/planner, and formatting
// output (spec.md §1's "no embedded PDDL parser or CLI" scope note; the CLI
// is the external collaborator that scope excludes from the engine).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/gostrips/internal/cliutil"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gostrips",
	Short: "A STRIPS-style classical planner",
	Long: `gostrips grounds a domain/problem pair and searches for a plan.

Subcommands:
  ground  report the ground action count per schema
  solve   search for a plan with DFS, BFS, or A*
  graph   build a planning graph, or extract a plan GraphPlan-style
  batch   run an independent batch of solve() calls from a YAML manifest`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = cliutil.NewLogger(verbose)
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(groundCmd, solveCmd, graphCmd, batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
