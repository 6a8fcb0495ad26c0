package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gostrips/internal/batch"
	"github.com/gitrdm/gostrips/internal/cliutil"
	"github.com/gitrdm/gostrips/pkg/planner"
)

var batchCmd = &cobra.Command{
	Use:   "batch <manifest.yaml>",
	Short: "Run an independent batch of solve() calls concurrently from a YAML manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, err := batch.LoadManifest(args[0])
		if err != nil {
			return err
		}

		sink := cliutil.ErrorSink(logger)
		load := func(spec batch.RunSpec) (*planner.Domain, *planner.Problem, error) {
			domainAST, err := readDomainAST(spec.Domain)
			if err != nil {
				return nil, nil, err
			}
			problemAST, err := readProblemAST(spec.Problem)
			if err != nil {
				return nil, nil, err
			}
			return planner.Load(domainAST, problemAST, planner.LoadOptions{FastMode: true, Sink: sink})
		}

		results := batch.Run(context.Background(), manifest, load, parseHeuristic)

		for _, r := range results {
			if r.Err != nil {
				fmt.Printf("[%s] %s: error: %v\n", r.RunID, r.Spec.Name, r.Err)
				continue
			}
			if len(r.Solve.Solutions) == 0 {
				fmt.Printf("[%s] %s: no plan found\n", r.RunID, r.Spec.Name)
				continue
			}
			fmt.Printf("[%s] %s: %d step(s)\n", r.RunID, r.Spec.Name, r.Solve.Solutions[0].Steps)
		}
		return nil
	},
}
