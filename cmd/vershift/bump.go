package main

import (
	"flag"
	"fmt"

	"github.com/cavcrosby/vershift/internal/version"
)

// BumpOptions contains options for the bump command
type BumpOptions struct {
	Part  string
	By    int
	To    int
	SetTo bool

	Version string
}

// BumpCommand implements the bump command
type BumpCommand struct {
	options BumpOptions
}

// NewBumpCommand creates a new bump command
func NewBumpCommand() *BumpCommand {
	return &BumpCommand{
		options: BumpOptions{
			Part: "patch",
			By:   1,
		},
	}
}

// ParseFlags parses command-line flags for the bump command
func (c *BumpCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("bump", flag.ExitOnError)

	fs.StringVar(&c.options.Part, "part", c.options.Part, "Component to change: major, minor, patch")
	fs.IntVar(&c.options.By, "by", c.options.By, "Amount to increment the component by")
	fs.IntVar(&c.options.To, "to", 0, "Set the component to this value instead of incrementing")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "to" {
			c.options.SetTo = true
		}
	})

	switch c.options.Part {
	case "major", "minor", "patch":
	default:
		return fmt.Errorf("invalid part %q: must be major, minor, or patch", c.options.Part)
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one version string, got %d", fs.NArg())
	}
	c.options.Version = fs.Arg(0)

	return nil
}

// Run executes the bump command
func (c *BumpCommand) Run() error {
	v, err := version.ParseSemantic(c.options.Version)
	if err != nil {
		return err
	}

	switch c.options.Part {
	case "major":
		if c.options.SetTo {
			v.SetMajor(c.options.To)
		} else {
			v.IncrementMajor(c.options.By)
		}
	case "minor":
		if c.options.SetTo {
			v.SetMinor(c.options.To)
		} else {
			v.IncrementMinor(c.options.By)
		}
	case "patch":
		if c.options.SetTo {
			v.SetPatch(c.options.To)
		} else {
			v.IncrementPatch(c.options.By)
		}
	}

	fmt.Println(v.String())
	return nil
}
