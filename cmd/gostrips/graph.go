package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gostrips/internal/cliutil"
	"github.com/gitrdm/gostrips/pkg/planner"
)

var (
	graphMinLayers    int
	graphMaxLayers    int
	graphSkipNegative bool
	graphSkipMutex    bool
	graphExtract      bool
)

var graphCmd = &cobra.Command{
	Use:   "graph <domain.json> <problem.json>",
	Short: "Build a planning graph, or extract a plan GraphPlan-style with --extract",
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
		domain, problem, err := planner.Load(domainAST, problemAST, planner.LoadOptions{FastMode: true, Sink: sink})
		if err != nil {
			return err
		}

		if graphExtract {
			result := planner.SolveGraph(domain, problem)
			if len(result.Solutions) == 0 {
				fmt.Println("no plan found")
				return nil
			}
			sol := result.Solutions[0]
			fmt.Printf("plan (%d step(s)):\n", sol.Steps)
			for _, step := range sol.Path {
				fmt.Println("  " + step)
			}
			return nil
		}

		g := planner.Graph(domain, problem, planner.GraphOptions{
			MinLayers:    graphMinLayers,
			MaxLayers:    graphMaxLayers,
			SkipNegative: graphSkipNegative,
			SkipMutex:    graphSkipMutex,
		})
		for i, layer := range g.Layers {
			fmt.Printf("layer %d: %d action(s), %d literal(s)\n", i, len(layer.Actions), len(layer.Literals))
		}
		return nil
	},
}

func init() {
	graphCmd.Flags().IntVar(&graphMinLayers, "min-layers", 0, "minimum action layers to build before stopping at a fixed point")
	graphCmd.Flags().IntVar(&graphMaxLayers, "max-layers", 0, "maximum action layers to build (0 = uncapped)")
	graphCmd.Flags().BoolVar(&graphSkipNegative, "skip-negative", false, "drop negative effect literals from layer construction")
	graphCmd.Flags().BoolVar(&graphSkipMutex, "skip-mutex", false, "skip mutex computation")
	graphCmd.Flags().BoolVar(&graphExtract, "extract", false, "run GraphPlan-style backward extraction instead of printing layer summaries")
}
