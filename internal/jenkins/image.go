// Package jenkins resolves the Jenkins version declared by a Jenkins
// container image.
package jenkins

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cavcrosby/vershift/internal/docker"
	"github.com/cavcrosby/vershift/internal/logging"
	"github.com/cavcrosby/vershift/internal/version"
)

// VersionEnvVar is the environment variable Jenkins images use to declare
// their Jenkins version.
const VersionEnvVar = "JENKINS_VERSION"

// ErrVersionNotFound indicates the image environment carries no
// JENKINS_VERSION entry.
var ErrVersionNotFound = errors.New("no jenkins version found in image")

// envVarPattern matches a well-formed NAME=VALUE environment entry.
var envVarPattern = regexp.MustCompile(`^[a-zA-Z_]\w*=.+`)

// VersionFromImage pulls the named image, scans its declared environment
// for JENKINS_VERSION, and constructs a JenkinsVersion from the value. The
// pulled image is removed again once the environment has been read,
// whether or not a version was found. Inspecting an image's config
// requires it to be present locally, hence the pull.
func VersionFromImage(ctx context.Context, cli docker.Client, imageRef string) (*version.JenkinsVersion, error) {
	log := logging.Default().WithField("image", imageRef)

	if err := cli.PullImage(ctx, imageRef); err != nil {
		return nil, fmt.Errorf("failed to pull %s: %w", imageRef, err)
	}
	defer func() {
		if err := cli.RemoveImage(ctx, imageRef); err != nil {
			log.Warn("failed to remove pulled image: %v", err)
		}
	}()

	env, err := cli.ImageEnv(ctx, imageRef)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment of %s: %w", imageRef, err)
	}

	for _, envVar := range env {
		if !envVarPattern.MatchString(envVar) {
			continue
		}

		name, value, _ := strings.Cut(envVar, "=")
		if name != VersionEnvVar {
			continue
		}

		log.Debug("found %s=%s", VersionEnvVar, value)
		v, err := version.ParseJenkins(value)
		if err != nil {
			return nil, fmt.Errorf("image %s declares a malformed jenkins version: %w", imageRef, err)
		}
		return v, nil
	}

	return nil, fmt.Errorf("image %s: %w", imageRef, ErrVersionNotFound)
}
