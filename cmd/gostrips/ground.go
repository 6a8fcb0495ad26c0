package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gostrips/internal/cliutil"
	"github.com/gitrdm/gostrips/pkg/planner"
)

var groundFastMode bool

var groundCmd = &cobra.Command{
	Use:   "ground <domain.json> <problem.json>",
	Short: "Ground a domain/problem pair and print the resulting action counts",
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

		opts := planner.LoadOptions{FastMode: groundFastMode, Sink: cliutil.ErrorSink(logger)}
		domain, _, err := planner.Load(domainAST, problemAST, opts)
		if err != nil {
			return err
		}

		for _, schema := range domain.Schemas {
			fmt.Printf("%s: %d grounding(s)\n", schema.Name, len(schema.Groundings))
		}
		return nil
	},
}

func init() {
	groundCmd.Flags().BoolVar(&groundFastMode, "fast", true, "use permutation-without-repetition grounding (per type in typed mode)")
}
