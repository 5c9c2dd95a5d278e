// Package testutil provides shared testing utilities for the vershift test
// suite. This package contains mocks and common fixtures.
package testutil

import (
	"context"
	"errors"
	"sync"
)

// Common test errors for use in mocks
var (
	ErrMockPull    = errors.New("pull failed")
	ErrMockInspect = errors.New("inspect failed")
	ErrMockRemove  = errors.New("remove failed")
)

// MockDockerClient implements the docker.Client interface for tests. It
// records the calls made against it so tests can assert on cleanup
// behavior.
type MockDockerClient struct {
	mu sync.Mutex

	// Env is returned by ImageEnv unless EnvErr is set.
	Env []string

	// PullErr, EnvErr, and RemoveErr force the corresponding call to fail.
	PullErr   error
	EnvErr    error
	RemoveErr error

	PulledImages  []string
	RemovedImages []string
	Closed        bool
}

// PullImage records the pull and returns PullErr.
func (m *MockDockerClient) PullImage(_ context.Context, imageRef string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PullErr != nil {
		return m.PullErr
	}
	m.PulledImages = append(m.PulledImages, imageRef)
	return nil
}

// ImageEnv returns the configured environment list.
func (m *MockDockerClient) ImageEnv(_ context.Context, _ string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.EnvErr != nil {
		return nil, m.EnvErr
	}
	return m.Env, nil
}

// RemoveImage records the removal and returns RemoveErr.
func (m *MockDockerClient) RemoveImage(_ context.Context, imageRef string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.RemovedImages = append(m.RemovedImages, imageRef)
	return nil
}

// Close marks the client as closed.
func (m *MockDockerClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Closed = true
	return nil
}
