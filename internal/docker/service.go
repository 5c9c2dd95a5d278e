package docker

import (
	"context"
	"fmt"
	"io"

	"github.com/distribution/reference"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"

	"github.com/cavcrosby/vershift/internal/logging"
)

// Service implements the Client interface using the Docker SDK.
type Service struct {
	cli *client.Client
	log *logging.Logger
}

// NewService creates a new Docker service that connects to the Docker
// socket. It uses the default Docker host from environment variables or
// defaults to unix:///var/run/docker.sock on Unix systems.
func NewService() (*Service, error) {
	cli, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	return &Service{
		cli: cli,
		log: logging.Default().WithField("component", "docker"),
	}, nil
}

// PullImage pulls the named image and drains the progress stream so the
// daemon completes the pull before this call returns.
func (s *Service) PullImage(ctx context.Context, imageRef string) error {
	normalized, err := NormalizeImageRef(imageRef)
	if err != nil {
		return err
	}

	s.log.DebugContext(ctx, "pulling image %s", normalized)
	reader, err := s.cli.ImagePull(ctx, normalized, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("failed to pull image %s: %w", normalized, err)
	}
	defer reader.Close()

	// The pull only completes once the progress stream is consumed.
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return fmt.Errorf("failed to read pull progress for %s: %w", normalized, err)
	}

	return nil
}

// ImageEnv returns the environment list declared in the image config.
func (s *Service) ImageEnv(ctx context.Context, imageRef string) ([]string, error) {
	normalized, err := NormalizeImageRef(imageRef)
	if err != nil {
		return nil, err
	}

	imageInfo, _, err := s.cli.ImageInspectWithRaw(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect image %s: %w", normalized, err)
	}

	if imageInfo.Config == nil {
		return nil, nil
	}
	return imageInfo.Config.Env, nil
}

// RemoveImage removes a locally present image.
func (s *Service) RemoveImage(ctx context.Context, imageRef string) error {
	normalized, err := NormalizeImageRef(imageRef)
	if err != nil {
		return err
	}

	s.log.DebugContext(ctx, "removing image %s", normalized)
	if _, err := s.cli.ImageRemove(ctx, normalized, image.RemoveOptions{}); err != nil {
		return fmt.Errorf("failed to remove image %s: %w", normalized, err)
	}

	return nil
}

// Close releases resources held by the Docker client.
func (s *Service) Close() error {
	if s.cli != nil {
		return s.cli.Close()
	}
	return nil
}

// NormalizeImageRef validates an image reference and expands it to its
// fully qualified form, applying the default "latest" tag when the
// reference carries neither tag nor digest (e.g. "jenkins/jenkins" becomes
// "docker.io/jenkins/jenkins:latest").
func NormalizeImageRef(imageRef string) (string, error) {
	named, err := reference.ParseNormalizedNamed(imageRef)
	if err != nil {
		return "", fmt.Errorf("invalid image reference %s: %w", imageRef, err)
	}

	return reference.TagNameOnly(named).String(), nil
}
