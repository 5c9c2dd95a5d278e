package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cavcrosby/vershift/internal/config"
	"github.com/cavcrosby/vershift/internal/storage"
)

// HistoryOptions contains options for the history command
type HistoryOptions struct {
	Limit      int
	JSONOutput bool
	ConfigPath string
}

// HistoryCommand implements the history command
type HistoryCommand struct {
	options HistoryOptions
}

// NewHistoryCommand creates a new history command
func NewHistoryCommand() *HistoryCommand {
	return &HistoryCommand{
		options: HistoryOptions{Limit: 20},
	}
}

// ParseFlags parses command-line flags for the history command
func (c *HistoryCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)

	fs.IntVar(&c.options.Limit, "limit", c.options.Limit, "Maximum number of entries to show")
	fs.BoolVar(&c.options.JSONOutput, "json", false, "Output in JSON format")
	fs.StringVar(&c.options.ConfigPath, "config", "", "Path to the config file")

	return fs.Parse(args)
}

// Run executes the history command
func (c *HistoryCommand) Run(ctx context.Context) error {
	cfg, err := config.Load(resolveConfigPath(c.options.ConfigPath))
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		fmt.Println("No comparisons recorded.")
		return nil
	}

	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	records, err := store.ListComparisons(ctx, c.options.Limit)
	if err != nil {
		return err
	}

	if c.options.JSONOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No comparisons recorded.")
		return nil
	}

	for _, rec := range records {
		greatest := rec.Greatest
		if greatest == "" {
			greatest = "none"
		}
		fmt.Printf("%s  %-9s %s -> %s  [%s]",
			rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.Grammar,
			rec.FromVersion, rec.ToVersion, greatest)
		if len(rec.Kinds) > 1 {
			fmt.Printf("  (%s)", strings.Join(rec.Kinds, ", "))
		}
		if rec.Subject != "" && rec.Subject != rec.Grammar {
			fmt.Printf("  %s", rec.Subject)
		}
		fmt.Println()
	}

	return nil
}
