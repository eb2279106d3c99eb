package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// RepositoryStatus is a point-in-time snapshot of the repository
type RepositoryStatus struct {
	StagedFiles   []string
	CurrentBranch string
	HasUpstream   bool
}

// Executor defines the interface for git command execution
type Executor interface {
	// Status returns the staged files, current branch and upstream presence
	Status(ctx context.Context) (*RepositoryStatus, error)

	// DiffCached returns the staged diff, limited to files when any are given
	DiffCached(ctx context.Context, files ...string) (string, error)

	// CurrentBranch returns the current branch name
	CurrentBranch(ctx context.Context) (string, error)

	// Commit executes a git commit with the given message
	Commit(ctx context.Context, message string) error

	// Push runs a plain git push
	Push(ctx context.Context) error

	// PushSetUpstream pushes branch to remote and records it as upstream
	PushSetUpstream(ctx context.Context, remote, branch string) error

	// GetGlobalConfig reads a key from the user's global git config, "" when unset
	GetGlobalConfig(ctx context.Context, key string) (string, error)

	// SetGlobalConfig sets a key in the user's global git config
	SetGlobalConfig(ctx context.Context, key, value string) error
}

// DefaultExecutor is the default implementation of Executor
type DefaultExecutor struct {
	workDir string
}

// NewExecutor creates a new DefaultExecutor
func NewExecutor(workDir string) *DefaultExecutor {
	return &DefaultExecutor{workDir: workDir}
}

// runGit runs a git command and returns the output
func (e *DefaultExecutor) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w\n%s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

// StagedFiles returns the paths staged for the next commit
func (e *DefaultExecutor) StagedFiles(ctx context.Context) ([]string, error) {
	// quotepath off keeps non-ASCII paths readable and prefix-matchable
	output, err := e.runGit(ctx, "-c", "core.quotepath=false", "diff", "--cached", "--name-only")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// Status returns a fresh snapshot of the repository state
func (e *DefaultExecutor) Status(ctx context.Context) (*RepositoryStatus, error) {
	staged, err := e.StagedFiles(ctx)
	if err != nil {
		return nil, err
	}

	branch, err := e.CurrentBranch(ctx)
	if err != nil {
		return nil, err
	}

	return &RepositoryStatus{
		StagedFiles:   staged,
		CurrentBranch: branch,
		HasUpstream:   e.hasUpstream(ctx),
	}, nil
}

// DiffCached returns the diff of staged changes
func (e *DefaultExecutor) DiffCached(ctx context.Context, files ...string) (string, error) {
	args := []string{"diff", "--cached"}
	if len(files) > 0 {
		args = append(args, "--")
		args = append(args, files...)
	}
	return e.runGit(ctx, args...)
}

// CurrentBranch returns the current branch name
// symbolic-ref also works on an unborn branch; detached HEAD falls back to rev-parse
func (e *DefaultExecutor) CurrentBranch(ctx context.Context) (string, error) {
	branch, err := e.runGit(ctx, "symbolic-ref", "--short", "HEAD")
	if err == nil {
		return branch, nil
	}
	return e.runGit(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// hasUpstream reports whether the current branch tracks a remote branch
func (e *DefaultExecutor) hasUpstream(ctx context.Context) bool {
	_, err := e.runGit(ctx, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
	return err == nil
}

// Commit executes a git commit with the given message
func (e *DefaultExecutor) Commit(ctx context.Context, message string) error {
	_, err := e.runGit(ctx, "commit", "-m", message)
	return err
}

// Push runs a plain git push
func (e *DefaultExecutor) Push(ctx context.Context) error {
	_, err := e.runGit(ctx, "push")
	return err
}

// PushSetUpstream runs git push -u <remote> <branch>
func (e *DefaultExecutor) PushSetUpstream(ctx context.Context, remote, branch string) error {
	_, err := e.runGit(ctx, "push", "-u", remote, branch)
	return err
}

// GetGlobalConfig runs git config --global --get <key>
// git exits with 1 when the key is unset, which is not an error here
func (e *DefaultExecutor) GetGlobalConfig(ctx context.Context, key string) (string, error) {
	value, err := e.runGit(ctx, "config", "--global", "--get", key)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return "", nil
	}
	return value, err
}

// SetGlobalConfig runs git config --global <key> <value>
func (e *DefaultExecutor) SetGlobalConfig(ctx context.Context, key, value string) error {
	_, err := e.runGit(ctx, "config", "--global", key, value)
	return err
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
