package gitrepo

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func initRepo(t *testing.T, bare bool) string {
	t.Helper()

	dir := t.TempDir()
	args := []string{"init"}
	if bare {
		args = append(args, "--bare")
	}
	args = append(args, dir)

	if out, err := exec.Command("git", args...).CombinedOutput(); err != nil {
		t.Fatalf("git init: %v\n%s", err, out)
	}
	return dir
}

func TestIsRepo(t *testing.T) {
	requireGit(t)

	repo := initRepo(t, false)
	if !IsRepo(repo) {
		t.Errorf("IsRepo(%q): got false, want true", repo)
	}

	// Nested paths resolve to the enclosing repository.
	nested := filepath.Join(repo, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if !IsRepo(nested) {
		t.Errorf("IsRepo(%q): got false, want true", nested)
	}

	plain := t.TempDir()
	if IsRepo(plain) {
		t.Errorf("IsRepo(%q): got true, want false", plain)
	}
}

func TestWorkingDir(t *testing.T) {
	requireGit(t)

	repo := initRepo(t, false)
	got, err := WorkingDir(repo)
	if err != nil {
		t.Fatalf("WorkingDir: %v", err)
	}

	// macOS tempdirs involve symlinks, so compare resolved paths.
	wantResolved, _ := filepath.EvalSymlinks(repo)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("WorkingDir: got %q, want %q", got, repo)
	}
}

func TestWorkingDirBareRepo(t *testing.T) {
	requireGit(t)

	bare := initRepo(t, true)
	got, err := WorkingDir(bare)
	if err != nil {
		t.Fatalf("WorkingDir on bare repo: %v", err)
	}
	if got != "" {
		t.Errorf("WorkingDir on bare repo: got %q, want empty string", got)
	}
}

func TestWorkingDirOutsideRepo(t *testing.T) {
	requireGit(t)

	_, err := WorkingDir(t.TempDir())
	if !errors.Is(err, ErrNotARepository) {
		t.Errorf("WorkingDir outside a repo: got %v, want ErrNotARepository", err)
	}
}
