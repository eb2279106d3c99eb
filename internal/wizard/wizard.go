package wizard

import (
	"context"
	"fmt"

	"github.com/evanfang0054/ai-commit-wizard/internal/agent"
	"github.com/evanfang0054/ai-commit-wizard/internal/commit"
	"github.com/evanfang0054/ai-commit-wizard/internal/config"
	"github.com/evanfang0054/ai-commit-wizard/internal/log"
	"github.com/evanfang0054/ai-commit-wizard/internal/ui"
)

// Phase ids shown while the wizard runs
const (
	PhaseGitCheck = "git-check"
	PhaseCommit   = "commit"
	PhasePush     = "push"
)

// Transaction performs the repository side effects
type Transaction interface {
	CheckPrecondition(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
}

// ChangeCollector reads the filtered staged changes
type ChangeCollector interface {
	Collect(ctx context.Context, exclude []string) (*agent.StagedChangeSet, error)
}

// Suggester proposes a commit type, scope and subject
type Suggester interface {
	Suggest(ctx context.Context, changes *agent.StagedChangeSet) (*commit.AISuggestion, error)
}

// AnswerCollector asks the user for the commit answers
type AnswerCollector interface {
	Collect(ctx context.Context) (*commit.CommitAnswers, error)
	ConfirmSuggestion(ctx context.Context, s commit.AISuggestion) (*commit.CommitAnswers, error)
}

// Options wires the collaborators of a Wizard
type Options struct {
	UseAI        bool
	Transaction  Transaction
	Changes      ChangeCollector
	Answers      AnswerCollector
	Progress     *ui.Progress
	LoadConfig   func() (*config.OpenAIConfig, error)
	NewSuggester func(cfg *config.OpenAIConfig) (Suggester, error)
}

// Validate checks that every collaborator the mode needs is present
func (o *Options) Validate() error {
	if o.Transaction == nil {
		return fmt.Errorf("transaction is not configured")
	}
	if o.Answers == nil {
		return fmt.Errorf("answer collector is not configured")
	}
	if o.Progress == nil {
		return fmt.Errorf("progress is not configured")
	}
	if o.UseAI {
		if o.Changes == nil || o.LoadConfig == nil || o.NewSuggester == nil {
			return fmt.Errorf("AI mode needs a change collector, a config loader and a suggester")
		}
	}
	return nil
}

// Wizard runs one commit from precondition check to optional push
type Wizard struct {
	opts Options
}

// New creates a Wizard
func New(opts Options) (*Wizard, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &Wizard{opts: opts}, nil
}

// Run checks the repository, collects answers, commits and pushes when asked
func (w *Wizard) Run(ctx context.Context) error {
	err := w.phase(PhaseGitCheck, "Checking git status...", "Git status checked", "Git status check failed",
		func() error { return w.opts.Transaction.CheckPrecondition(ctx) })
	if err != nil {
		return err
	}

	answers, err := w.collect(ctx)
	if err != nil {
		return err
	}

	message := commit.Assemble(*answers)
	log.Debug("Commit message:\n%s", message)

	err = w.phase(PhaseCommit, "Committing...", "Commit created", "Commit failed",
		func() error { return w.opts.Transaction.Commit(ctx, message) })
	if err != nil {
		return err
	}

	if !answers.ShouldPush {
		return nil
	}

	return w.phase(PhasePush, "Pushing to remote...", "Pushed to remote", "Push failed",
		func() error { return w.opts.Transaction.Push(ctx) })
}

// collect gathers answers from the suggestion flow or manual prompts
func (w *Wizard) collect(ctx context.Context) (*commit.CommitAnswers, error) {
	if !w.opts.UseAI {
		return w.opts.Answers.Collect(ctx)
	}

	cfg, err := w.opts.LoadConfig()
	if err != nil {
		return nil, err
	}
	log.DebugConfig("Configuration", cfg.Redacted())

	changes, err := w.opts.Changes.Collect(ctx, cfg.Exclude)
	if err != nil {
		return nil, err
	}

	suggester, err := w.opts.NewSuggester(cfg)
	if err != nil {
		return nil, err
	}

	suggestion, err := suggester.Suggest(ctx, changes)
	if err != nil {
		return nil, err
	}
	log.Debug("Suggestion source: %s", suggestion.Source)

	return w.opts.Answers.ConfirmSuggestion(ctx, *suggestion)
}

// phase runs fn inside a progress indicator that is closed on every path
func (w *Wizard) phase(id, running, done, failed string, fn func() error) error {
	ph := w.opts.Progress.Start(id, running)
	defer ph.Close()

	if err := fn(); err != nil {
		ph.Fail(failed)
		return err
	}
	ph.Succeed(done)
	return nil
}
