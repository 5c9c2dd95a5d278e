package docker

import "context"

// Client defines the interface for the image operations this tool needs
// from a container daemon. The interface allows for easy mocking in tests
// and follows the dependency injection pattern.
type Client interface {
	// PullImage pulls the named image from its registry and blocks until
	// the pull completes.
	PullImage(ctx context.Context, imageRef string) error

	// ImageEnv returns the declared environment of a locally present
	// image as a list of NAME=VALUE strings.
	ImageEnv(ctx context.Context, imageRef string) ([]string, error)

	// RemoveImage removes a locally present image.
	RemoveImage(ctx context.Context, imageRef string) error

	// Close releases resources held by the client.
	Close() error
}
