package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/cavcrosby/vershift/internal/config"
	"github.com/cavcrosby/vershift/internal/docker"
	"github.com/cavcrosby/vershift/internal/jenkins"
	"github.com/cavcrosby/vershift/internal/version"
)

// JenkinsOptions contains options for the jenkins command
type JenkinsOptions struct {
	Image      string
	Against    string
	Record     bool
	JSONOutput bool
	ConfigPath string
}

// JenkinsCommand implements the jenkins command
type JenkinsCommand struct {
	options JenkinsOptions
}

// NewJenkinsCommand creates a new jenkins command
func NewJenkinsCommand() *JenkinsCommand {
	return &JenkinsCommand{}
}

// ParseFlags parses command-line flags for the jenkins command
func (c *JenkinsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("jenkins", flag.ExitOnError)

	fs.StringVar(&c.options.Image, "image", "", "Jenkins image reference (defaults to the configured image)")
	fs.StringVar(&c.options.Against, "against", "", "Classify the shift against this Jenkins version string")
	fs.BoolVar(&c.options.Record, "record", false, "Record the comparison in the history database")
	fs.BoolVar(&c.options.JSONOutput, "json", false, "Output in JSON format")
	fs.StringVar(&c.options.ConfigPath, "config", "", "Path to the config file")

	return fs.Parse(args)
}

// Run executes the jenkins command
func (c *JenkinsCommand) Run(ctx context.Context) error {
	cfg, err := config.Load(resolveConfigPath(c.options.ConfigPath))
	if err != nil {
		return err
	}

	imageRef := c.options.Image
	if imageRef == "" {
		imageRef = cfg.JenkinsImage
	}

	dockerService, err := docker.NewService()
	if err != nil {
		return fmt.Errorf("failed to create Docker service: %w", err)
	}
	defer dockerService.Close()

	pullCtx, cancel := context.WithTimeout(ctx, cfg.PullTimeout)
	defer cancel()

	imageVersion, err := jenkins.VersionFromImage(pullCtx, dockerService, imageRef)
	if err != nil {
		return err
	}

	if c.options.Against == "" {
		fmt.Printf("%s declares Jenkins %s\n", imageRef, imageVersion)
		return nil
	}

	against, err := version.ParseJenkins(c.options.Against)
	if err != nil {
		return err
	}

	kinds := version.Diff(against, imageVersion)
	result := buildComparison(imageRef, "jenkins", against.String(), imageVersion.String(), kinds)
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
