package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gostrips/internal/cliutil"
	"github.com/gitrdm/gostrips/pkg/planner"
)

var (
	solveMode         string
	solveFastMode     bool
	solveMaxSolutions int
	solveHeuristic    string
)

var solveCmd = &cobra.Command{
	Use:   "solve <domain.json> <problem.json>",
	Short: "Ground a domain/problem pair and search for a plan",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		domainAST, err := readDomainAST(args[0])
		if err != nil {
			return err
		}
		problemAST, err := readProblemAST(args[1])
		if err != nil {
			return err
		}

		sink := cliutil.ErrorSink(logger)
		domain, problem, err := planner.Load(domainAST, problemAST, planner.LoadOptions{FastMode: solveFastMode, Sink: sink})
		if err != nil {
			return err
		}

		mode, err := parseSearchMode(solveMode)
		if err != nil {
			return err
		}

		opts := planner.SolveOptions{
			Mode:         mode,
			MaxSolutions: solveMaxSolutions,
			Sink:         sink,
		}
		if mode == planner.ModeAStar {
			opts.Heuristic, err = parseHeuristic(solveHeuristic, problem)
			if err != nil {
				return err
			}
		}

		result, err := planner.Solve(domain, problem, opts)
		if err != nil {
			return err
		}

		if len(result.Solutions) == 0 {
			fmt.Println("no plan found")
			return nil
		}
		for i, sol := range result.Solutions {
			fmt.Printf("plan %d (%d step(s)):\n", i+1, sol.Steps)
			for _, step := range sol.Path {
				fmt.Println("  " + step)
			}
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&solveMode, "mode", "bfs", "search strategy: dfs, bfs, or astar")
	solveCmd.Flags().BoolVar(&solveFastMode, "fast", true, "use permutation-without-repetition grounding (per type in typed mode)")
	solveCmd.Flags().IntVar(&solveMaxSolutions, "max-solutions", 1, "maximum number of plans to return (dfs/bfs only)")
	solveCmd.Flags().StringVar(&solveHeuristic, "heuristic", "goalcount", "A* heuristic: zero or goalcount")
}

func parseSearchMode(s string) (planner.SearchMode, error) {
	switch strings.ToLower(s) {
	case "dfs":
		return planner.ModeDFS, nil
	case "bfs":
		return planner.ModeBFS, nil
	case "astar":
		return planner.ModeAStar, nil
	default:
		return 0, fmt.Errorf("unknown search mode %q", s)
	}
}

// parseHeuristic builds the A* heuristic a --heuristic flag or batch
// manifest entry names.
func parseHeuristic(name string, p *planner.Problem) (planner.Heuristic, error) {
	switch strings.ToLower(name) {
	case "", "zero":
		return func(planner.State) int { return 0 }, nil
	case "goalcount":
		return goalCountHeuristic(p.Goal), nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
}

// goalCountHeuristic counts goal literals not yet present in the state. It
// is not admissible in general — a single action can satisfy more than one
// goal literal at once, so it can overestimate — but is a common, cheap
// default for exploratory use; callers wanting optimality must supply their
// own admissible heuristic.
func goalCountHeuristic(goal []planner.Literal) planner.Heuristic {
	return func(s planner.State) int {
		missing := 0
		for _, g := range goal {
			if !s.Has(g) {
				missing++
			}
		}
		return missing
	}
}
