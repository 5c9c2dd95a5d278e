// Package config loads tool configuration from an optional YAML file with
// environment-variable overrides.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Environment variables that override file values.
const (
	EnvDBPath       = "VERSHIFT_DB_PATH"
	EnvJenkinsImage = "VERSHIFT_JENKINS_IMAGE"
	EnvPullTimeout  = "VERSHIFT_PULL_TIMEOUT"
)

// Config represents the application configuration.
type Config struct {
	// DBPath is where the comparison history database lives.
	DBPath string `yaml:"db_path"`

	// JenkinsImage is the image reference used when the jenkins command
	// is invoked without an explicit -image flag.
	JenkinsImage string `yaml:"jenkins_image"`

	// PullTimeout bounds how long an image pull may take.
	PullTimeout time.Duration `yaml:"pull_timeout"`
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		DBPath:       defaultDBPath(),
		JenkinsImage: "jenkins/jenkins:lts",
		PullTimeout:  5 * time.Minute,
	}
}

// Load merges defaults, the YAML file at path (if it exists), and
// environment overrides, in that order of increasing precedence.
func Load(path string) (Config, error) {
	cfg := Default()

	fileCfg, err := loadYAML(path)
	if err != nil {
		return Config{}, err
	}
	cfg = merge(cfg, fileCfg)

	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvJenkinsImage); v != "" {
		cfg.JenkinsImage = v
	}
	if v := os.Getenv(EnvPullTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PullTimeout = d
		}
	}

	return cfg, nil
}

// merge overlays the non-zero fields of over onto base.
func merge(base, over Config) Config {
	if over.DBPath != "" {
		base.DBPath = over.DBPath
	}
	if over.JenkinsImage != "" {
		base.JenkinsImage = over.JenkinsImage
	}
	if over.PullTimeout != 0 {
		base.PullTimeout = over.PullTimeout
	}
	return base
}

// defaultDBPath places the history database under the user config
// directory, falling back to the working directory when none is known.
func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "vershift.db"
	}
	return filepath.Join(dir, "vershift", "history.db")
}
