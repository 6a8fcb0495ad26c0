package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gitrdm/gostrips/pkg/planner"
)

func readDomainAST(path string) (*planner.DomainAST, error) {
	var ast planner.DomainAST
	if err := readJSON(path, &ast); err != nil {
		return nil, fmt.Errorf("read domain %s: %w", path, err)
	}
	return &ast, nil
}

func readProblemAST(path string) (*planner.ProblemAST, error) {
	var ast planner.ProblemAST
	if err := readJSON(path, &ast); err != nil {
		return nil, fmt.Errorf("read problem %s: %w", path, err)
	}
	return &ast, nil
}

func readJSON(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(v)
}
