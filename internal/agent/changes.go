package agent

import (
	"context"
	"strings"

	"github.com/evanfang0054/ai-commit-wizard/internal/apperror"
	"github.com/evanfang0054/ai-commit-wizard/internal/git"
	"github.com/evanfang0054/ai-commit-wizard/internal/log"
)

// StagedChangeSet is the filtered view of the staging area sent to the model
type StagedChangeSet struct {
	Files    []string
	DiffText string
}

// ChangeCollector reads staged changes and drops excluded paths
type ChangeCollector struct {
	exec git.Executor
}

// NewChangeCollector creates a ChangeCollector over exec
func NewChangeCollector(exec git.Executor) *ChangeCollector {
	return &ChangeCollector{exec: exec}
}

// Collect returns the retained staged files and the diff restricted to them
func (c *ChangeCollector) Collect(ctx context.Context, exclude []string) (*StagedChangeSet, error) {
	status, err := c.exec.Status(ctx)
	if err != nil {
		return nil, apperror.Git(err, "failed to read staged files")
	}

	files := FilterExcluded(status.StagedFiles, exclude)
	log.Debug("Staged files: %d, retained after exclude rules: %d", len(status.StagedFiles), len(files))

	changes := &StagedChangeSet{Files: files}
	if len(files) == 0 {
		return changes, nil
	}

	diff, err := c.exec.DiffCached(ctx, files...)
	if err != nil {
		return nil, apperror.Git(err, "failed to read staged diff")
	}
	changes.DiffText = diff
	return changes, nil
}

// FilterExcluded returns the files no rule matches, keeping their order
func FilterExcluded(files, rules []string) []string {
	retained := make([]string, 0, len(files))
	for _, f := range files {
		if !IsExcluded(f, rules) {
			retained = append(retained, f)
		}
	}
	return retained
}

// IsExcluded reports whether file starts with a rule or contains /<rule>/
// Empty rules are ignored
func IsExcluded(file string, rules []string) bool {
	for _, rule := range rules {
		if rule == "" {
			continue
		}
		if strings.HasPrefix(file, rule) || strings.Contains(file, "/"+rule+"/") {
			return true
		}
	}
	return false
}
