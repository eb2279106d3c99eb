package git

import (
	"context"
	"strings"

	"github.com/evanfang0054/ai-commit-wizard/internal/apperror"
	"github.com/evanfang0054/ai-commit-wizard/internal/log"
)

// DefaultRemote is the remote used when bootstrapping an upstream branch
const DefaultRemote = "origin"

// noUpstreamMarker is the fragment git prints when a branch has no upstream
const noUpstreamMarker = "no upstream branch"

// IsNoUpstream reports whether a push failed only because no upstream is set
func IsNoUpstream(err error) bool {
	return err != nil && strings.Contains(err.Error(), noUpstreamMarker)
}

// Transaction wraps the repository side effects of one wizard run
type Transaction struct {
	exec   Executor
	remote string
}

// NewTransaction creates a Transaction over the given executor
func NewTransaction(exec Executor) *Transaction {
	return &Transaction{exec: exec, remote: DefaultRemote}
}

// CheckPrecondition fails when nothing is staged
func (t *Transaction) CheckPrecondition(ctx context.Context) error {
	status, err := t.exec.Status(ctx)
	if err != nil {
		return apperror.Git(err, "failed to read repository status")
	}

	log.Debug("Staged files: %d, branch: %s, upstream: %v", len(status.StagedFiles), status.CurrentBranch, status.HasUpstream)

	if len(status.StagedFiles) == 0 {
		return apperror.GitState("stage the files to commit first, e.g. git add <file> or git add -A", "no staged changes")
	}
	return nil
}

// Commit records the staged changes with message
func (t *Transaction) Commit(ctx context.Context, message string) error {
	if err := t.exec.Commit(ctx, message); err != nil {
		return apperror.Git(err, "commit failed")
	}
	return nil
}

// Push pushes the current branch
// A missing upstream is bootstrapped once with push -u <remote> <branch>
func (t *Transaction) Push(ctx context.Context) error {
	err := t.exec.Push(ctx)
	if err == nil {
		return nil
	}
	if !IsNoUpstream(err) {
		return apperror.Push(err, "", "")
	}

	branch, err := t.exec.CurrentBranch(ctx)
	if err != nil {
		return apperror.Git(err, "failed to read current branch")
	}

	log.Warn("current branch has no upstream branch, pushing with -u %s %s", t.remote, branch)

	if err := t.exec.PushSetUpstream(ctx, t.remote, branch); err != nil {
		return apperror.Push(err, "check that the remote '"+t.remote+"' exists and you have push access",
			"push to %s/%s failed", t.remote, branch)
	}
	return nil
}
