// Package batch runs many independent planning problems concurrently from
// a YAML manifest. It adapts the shape of the teacher's worker pool
// (bounded goroutines draining a job channel into a result-collection
// channel) to a domain where the concurrency boundary sits between wholly
// unrelated solve() calls, never inside one — the core planner package
// stays single-threaded and synchronous per spec.md §5.
package batch

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/gitrdm/gostrips/pkg/planner"
)

// RunSpec is one entry of a batch manifest: an independent domain/problem
// pair and the search strategy to solve it with.
type RunSpec struct {
	Name      string `yaml:"name"`
	Domain    string `yaml:"domain"`
	Problem   string `yaml:"problem"`
	Mode      string `yaml:"mode"`
	Heuristic string `yaml:"heuristic"`
}

// Manifest is a batch of runs plus the worker count to run them with.
type Manifest struct {
	Workers int       `yaml:"workers"`
	Runs    []RunSpec `yaml:"runs"`
}

// LoadManifest reads and parses a YAML batch manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.Workers <= 0 {
		m.Workers = 1
	}
	return &m, nil
}

// Result is one run's outcome, tagged with a run ID so concurrent output can
// be correlated back to its manifest entry.
type Result struct {
	RunID uuid.UUID
	Spec  RunSpec
	Solve planner.SolveResult
	Err   error
}

// Loader resolves a RunSpec's domain/problem files into a grounded
// Domain/Problem pair. Left to the caller so this package carries no
// opinion on AST source format.
type Loader func(spec RunSpec) (*planner.Domain, *planner.Problem, error)

// HeuristicFactory builds the Heuristic a RunSpec names, for runs that
// request A*.
type HeuristicFactory func(name string, p *planner.Problem) (planner.Heuristic, error)

// Run fans the manifest's runs out across a bounded pool of goroutines and
// collects their results. Each individual Solve call is itself fully
// synchronous; only the fan-out across unrelated runs is concurrent.
func Run(ctx context.Context, m *Manifest, load Loader, heuristics HeuristicFactory) []Result {
	jobs := make(chan RunSpec)
	results := make(chan Result, len(m.Runs))

	var wg sync.WaitGroup
	for i := 0; i < m.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for spec := range jobs {
				results <- runOne(spec, load, heuristics)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, spec := range m.Runs {
			select {
			case jobs <- spec:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(results)

	out := make([]Result, 0, len(m.Runs))
	for r := range results {
		out = append(out, r)
	}
	return out
}

func runOne(spec RunSpec, load Loader, heuristics HeuristicFactory) Result {
	runID := uuid.New()

	domain, problem, err := load(spec)
	if err != nil {
		return Result{RunID: runID, Spec: spec, Err: err}
	}

	mode, err := parseMode(spec.Mode)
	if err != nil {
		return Result{RunID: runID, Spec: spec, Err: err}
	}

	opts := planner.SolveOptions{Mode: mode, MaxSolutions: 1}
	if mode == planner.ModeAStar {
		h, err := heuristics(spec.Heuristic, problem)
		if err != nil {
			return Result{RunID: runID, Spec: spec, Err: err}
		}
		opts.Heuristic = h
	}

	result, err := planner.Solve(domain, problem, opts)
	return Result{RunID: runID, Spec: spec, Solve: result, Err: err}
}

func parseMode(s string) (planner.SearchMode, error) {
	switch s {
	case "", "bfs":
		return planner.ModeBFS, nil
	case "dfs":
		return planner.ModeDFS, nil
	case "astar":
		return planner.ModeAStar, nil
	default:
		return 0, fmt.Errorf("unknown search mode %q", s)
	}
}
