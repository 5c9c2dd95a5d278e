// Command vershift classifies the magnitude of change between software
// versions: parse two version strings (or read one out of a Jenkins
// container image), diff their components, and report whether the shift is
// a major, minor, or patch update.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cavcrosby/vershift/internal/gitrepo"
)

const configFileName = ".vershift.yml"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "diff":
		cmd := NewDiffCommand()
		if err := cmd.ParseFlags(args); err != nil {
			log.Fatalf("Failed to parse flags: %v", err)
		}
		if err := cmd.Run(context.Background()); err != nil {
			log.Fatalf("Diff command failed: %v", err)
		}

	case "bump":
		cmd := NewBumpCommand()
		if err := cmd.ParseFlags(args); err != nil {
			log.Fatalf("Failed to parse flags: %v", err)
		}
		if err := cmd.Run(); err != nil {
			log.Fatalf("Bump command failed: %v", err)
		}

	case "jenkins":
		cmd := NewJenkinsCommand()
		if err := cmd.ParseFlags(args); err != nil {
			log.Fatalf("Failed to parse flags: %v", err)
		}
		if err := cmd.Run(context.Background()); err != nil {
			log.Fatalf("Jenkins command failed: %v", err)
		}

	case "history":
		cmd := NewHistoryCommand()
		if err := cmd.ParseFlags(args); err != nil {
			log.Fatalf("Failed to parse flags: %v", err)
		}
		if err := cmd.Run(context.Background()); err != nil {
			log.Fatalf("History command failed: %v", err)
		}

	case "help", "-h", "--help":
		printUsage()

	default:
		log.Fatalf("Unknown command: %s\nAvailable commands: diff, bump, jenkins, history", command)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: vershift <command> [flags] [args]

Commands:
  diff <from> <to>   Classify the shift between two version strings
  bump <version>     Bump a component of a semantic version
  jenkins            Read the Jenkins version out of a container image
  history            Show recorded comparisons

Run 'vershift <command> -h' for command flags.`)
}

// resolveConfigPath picks the config file to load: the explicit flag value
// when given, then .vershift.yml in the working directory, then at the
// root of the enclosing git repository. An empty result means defaults
// only.
func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}

	if root, err := gitrepo.WorkingDir("."); err == nil && root != "" {
		candidate := filepath.Join(root, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
