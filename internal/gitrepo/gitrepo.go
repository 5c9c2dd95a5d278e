// Package gitrepo answers questions about the git repository enclosing a
// path by shelling out to the git binary.
package gitrepo

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotARepository indicates no git repository encloses the given path.
var ErrNotARepository = errors.New("not inside a git repository")

// IsRepo reports whether path is inside a git repository, searching parent
// directories the way git itself does.
func IsRepo(path string) bool {
	cmd := exec.Command("git", "-C", path, "rev-parse", "--git-dir")
	return cmd.Run() == nil
}

// WorkingDir returns the top-level working directory of the repository
// enclosing path. A bare repository has no working tree, for which an
// empty string is returned. Returns ErrNotARepository when no repository
// encloses the path.
func WorkingDir(path string) (string, error) {
	if !IsRepo(path) {
		return "", fmt.Errorf("%s: %w", path, ErrNotARepository)
	}

	out, err := exec.Command("git", "-C", path, "rev-parse", "--is-bare-repository").Output()
	if err != nil {
		return "", fmt.Errorf("failed to inspect repository at %s: %w", path, err)
	}
	if strings.TrimSpace(string(out)) == "true" {
		return "", nil
	}

	out, err = exec.Command("git", "-C", path, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory of %s: %w", path, err)
	}

	return strings.TrimSpace(string(out)), nil
}
