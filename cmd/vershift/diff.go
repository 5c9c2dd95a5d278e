package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/cavcrosby/vershift/internal/version"
)

// DiffOptions contains options for the diff command
type DiffOptions struct {
	Jenkins    bool
	Record     bool
	JSONOutput bool
	ConfigPath string

	From string
	To   string
}

// DiffCommand implements the diff command
type DiffCommand struct {
	options DiffOptions
}

// NewDiffCommand creates a new diff command
func NewDiffCommand() *DiffCommand {
	return &DiffCommand{}
}

// ParseFlags parses command-line flags for the diff command
func (c *DiffCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)

	fs.BoolVar(&c.options.Jenkins, "jenkins", false, "Parse the versions with the Jenkins grammar (optional patch)")
	fs.BoolVar(&c.options.Record, "record", false, "Record the comparison in the history database")
	fs.BoolVar(&c.options.JSONOutput, "json", false, "Output in JSON format")
	fs.StringVar(&c.options.ConfigPath, "config", "", "Path to the config file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 2 {
		return fmt.Errorf("expected exactly two version strings, got %d", fs.NArg())
	}
	c.options.From = fs.Arg(0)
	c.options.To = fs.Arg(1)

	return nil
}

// Run executes the diff command
func (c *DiffCommand) Run(ctx context.Context) error {
	grammar := "semantic"
	if c.options.Jenkins {
		grammar = "jenkins"
	}

	var kinds []version.UpdateKind
	if c.options.Jenkins {
		from, err := version.ParseJenkins(c.options.From)
		if err != nil {
			return err
		}
		to, err := version.ParseJenkins(c.options.To)
		if err != nil {
			return err
		}
		kinds = version.Diff(from, to)
	} else {
		from, err := version.ParseSemantic(c.options.From)
		if err != nil {
			return err
		}
		to, err := version.ParseSemantic(c.options.To)
		if err != nil {
			return err
		}
		kinds = version.Diff(from, to)
	}

	result := buildComparison(grammar, grammar, c.options.From, c.options.To, kinds)
	if err := printComparison(result, c.options.JSONOutput); err != nil {
		return err
	}

	if c.options.Record {
		if err := recordComparison(ctx, c.options.ConfigPath, result); err != nil {
			return fmt.Errorf("failed to record comparison: %w", err)
		}
	}

	return nil
}
