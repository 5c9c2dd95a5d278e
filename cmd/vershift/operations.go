package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cavcrosby/vershift/internal/config"
	"github.com/cavcrosby/vershift/internal/storage"
	"github.com/cavcrosby/vershift/internal/version"
)

// ComparisonResult is the outcome of classifying the shift between two
// versions, shaped for both text and JSON output.
type ComparisonResult struct {
	Subject  string   `json:"subject,omitempty"`
	Grammar  string   `json:"grammar"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Kinds    []string `json:"update_kinds"`
	Greatest string   `json:"greatest,omitempty"`
	Changed  bool     `json:"changed"`
}

// buildComparison assembles a ComparisonResult from detected update kinds.
func buildComparison(subject, grammar, from, to string, kinds []version.UpdateKind) ComparisonResult {
	result := ComparisonResult{
		Subject: subject,
		Grammar: grammar,
		From:    from,
		To:      to,
		Kinds:   make([]string, 0, len(kinds)),
	}

	for _, k := range kinds {
		result.Kinds = append(result.Kinds, k.String())
	}

	if greatest, ok := version.Greatest(kinds); ok {
		result.Greatest = greatest.String()
		result.Changed = true
	}

	return result
}

// printComparison writes the result to stdout, as JSON when requested.
func printComparison(result ComparisonResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("From:     %s\n", result.From)
	fmt.Printf("To:       %s\n", result.To)
	if !result.Changed {
		fmt.Println("Change:   none")
		return nil
	}

	fmt.Printf("Detected:")
	for _, k := range result.Kinds {
		fmt.Printf(" %s", k)
	}
	fmt.Println()
	fmt.Printf("Greatest: %s\n", result.Greatest)
	return nil
}

// recordComparison persists a comparison result to the history database
// named by the resolved configuration.
func recordComparison(ctx context.Context, configPath string, result ComparisonResult) error {
	cfg, err := config.Load(resolveConfigPath(configPath))
	if err != nil {
		return err
	}

	if dir := dbDir(cfg.DBPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	return store.RecordComparison(ctx, storage.ComparisonRecord{
		Subject:     result.Subject,
		Grammar:     result.Grammar,
		FromVersion: result.From,
		ToVersion:   result.To,
		Kinds:       result.Kinds,
		Greatest:    result.Greatest,
	})
}

func dbDir(dbPath string) string {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "/" {
		return ""
	}
	return dir
}
