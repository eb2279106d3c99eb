package commit

import (
	"context"
	"io"
	"strings"

	"github.com/evanfang0054/ai-commit-wizard/internal/log"
	"github.com/evanfang0054/ai-commit-wizard/internal/ui"
)

// Prompter asks the user questions
type Prompter interface {
	Select(message string, options []ui.Option, defaultIndex int) (int, error)
	Input(message string, validate func(string) error) (string, error)
	Confirm(message string, defaultYes bool) (bool, error)
}

const (
	promptType       = "? Select the type of change"
	promptScope      = "? Scope of this change (optional, e.g. user, auth)"
	promptSubject    = "? Short description of the change"
	promptAddDoc     = "? Add a documentation link?"
	promptDocLink    = "? Documentation URL"
	promptPush       = "? Push to the remote repository?"
	promptUseAI      = "? Use the AI suggestion?"
	promptFixSubject = "? The suggested subject is not usable, enter a subject"
)

// Collector gathers commit answers interactively
type Collector struct {
	prompter Prompter
	out      io.Writer
}

// NewCollector creates a Collector asking through p and showing previews on out
func NewCollector(p Prompter, out io.Writer) *Collector {
	return &Collector{prompter: p, out: out}
}

// Collect asks for every field of a commit
func (c *Collector) Collect(ctx context.Context) (*CommitAnswers, error) {
	commitType, err := c.collectType(ctx)
	if err != nil {
		return nil, err
	}

	scope, err := c.collectScope(ctx)
	if err != nil {
		return nil, err
	}

	subject, err := c.collectSubject(ctx, promptSubject)
	if err != nil {
		return nil, err
	}

	answers := &CommitAnswers{Type: commitType, Scope: scope, Subject: subject}
	if err := c.collectPublishing(ctx, answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// ConfirmSuggestion offers the suggestion and falls back to Collect when it is declined
func (c *Collector) ConfirmSuggestion(ctx context.Context, s AISuggestion) (*CommitAnswers, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	answers := &CommitAnswers{
		Type:    strings.TrimSpace(s.Type),
		Scope:   strings.TrimSpace(s.Scope),
		Subject: strings.TrimSpace(s.Subject),
	}
	if answers.Type == "" {
		answers.Type = DefaultType
	}

	if err := ui.ShowCommitMessage(answers.Title(), c.out); err != nil {
		return nil, err
	}

	use, err := c.prompter.Confirm(promptUseAI, true)
	if err != nil {
		return nil, err
	}
	if !use {
		return c.Collect(ctx)
	}

	if err := ValidateScope(answers.Scope); err != nil {
		log.Warn("suggested scope %q rejected: %v", answers.Scope, err)
		if answers.Scope, err = c.collectScope(ctx); err != nil {
			return nil, err
		}
	}

	if err := ValidateSubject(answers.Subject); err != nil {
		log.Warn("suggested subject rejected: %v", err)
		if answers.Subject, err = c.collectSubject(ctx, promptFixSubject); err != nil {
			return nil, err
		}
	}

	if err := c.collectPublishing(ctx, answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (c *Collector) collectType(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	options := make([]ui.Option, len(Types))
	for i, t := range Types {
		options[i] = ui.Option{Value: t.Value, Description: t.Description}
	}

	idx, err := c.prompter.Select(promptType, options, 0)
	if err != nil {
		return "", err
	}
	return Types[idx].Value, nil
}

func (c *Collector) collectScope(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.prompter.Input(promptScope, ValidateScope)
}

func (c *Collector) collectSubject(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return c.prompter.Input(message, ValidateSubject)
}

// collectPublishing asks for the optional doc link and whether to push
func (c *Collector) collectPublishing(ctx context.Context, answers *CommitAnswers) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addDoc, err := c.prompter.Confirm(promptAddDoc, false)
	if err != nil {
		return err
	}
	answers.AddDocLink = addDoc

	if addDoc {
		if err := ctx.Err(); err != nil {
			return err
		}
		link, err := c.prompter.Input(promptDocLink, ValidateURL)
		if err != nil {
			return err
		}
		answers.DocLink = link
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	push, err := c.prompter.Confirm(promptPush, false)
	if err != nil {
		return err
	}
	answers.ShouldPush = push
	return nil
}
