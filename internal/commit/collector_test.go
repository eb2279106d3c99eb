package commit

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanfang0054/ai-commit-wizard/internal/log"
	"github.com/evanfang0054/ai-commit-wizard/internal/ui"
)

// scriptedPrompter answers prompts from fixed queues and records the questions
type scriptedPrompter struct {
	selects  []string
	inputs   []string
	confirms []bool

	asked    []string
	rejected []error
}

func (s *scriptedPrompter) Select(message string, options []ui.Option, defaultIndex int) (int, error) {
	s.asked = append(s.asked, message)
	if len(s.selects) == 0 {
		return -1, io.EOF
	}
	want := s.selects[0]
	s.selects = s.selects[1:]
	for i, o := range options {
		if o.Value == want {
			return i, nil
		}
	}
	return -1, errors.New("no option " + want)
}

// Input consumes answers until one passes validate, like the terminal prompter
func (s *scriptedPrompter) Input(message string, validate func(string) error) (string, error) {
	s.asked = append(s.asked, message)
	for len(s.inputs) > 0 {
		answer := s.inputs[0]
		s.inputs = s.inputs[1:]
		if validate != nil {
			if err := validate(answer); err != nil {
				s.rejected = append(s.rejected, err)
				continue
			}
		}
		return answer, nil
	}
	return "", io.EOF
}

func (s *scriptedPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	s.asked = append(s.asked, message)
	if len(s.confirms) == 0 {
		return false, io.EOF
	}
	v := s.confirms[0]
	s.confirms = s.confirms[1:]
	return v, nil
}

func TestCollector_Collect(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		p := &scriptedPrompter{
			selects:  []string{"feat"},
			inputs:   []string{"user", "add login", "https://example.com/doc"},
			confirms: []bool{true, true},
		}
		c := NewCollector(p, &bytes.Buffer{})

		answers, err := c.Collect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, &CommitAnswers{
			Type:       "feat",
			Scope:      "user",
			Subject:    "add login",
			AddDocLink: true,
			DocLink:    "https://example.com/doc",
			ShouldPush: true,
		}, answers)
		assert.Equal(t, []string{promptType, promptScope, promptSubject, promptAddDoc, promptDocLink, promptPush}, p.asked)
	})

	t.Run("no doc link skips the URL question", func(t *testing.T) {
		p := &scriptedPrompter{
			selects:  []string{"fix"},
			inputs:   []string{"", "handle nil"},
			confirms: []bool{false, false},
		}
		c := NewCollector(p, &bytes.Buffer{})

		answers, err := c.Collect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "fix: handle nil", Assemble(*answers))
		assert.NotContains(t, p.asked, promptDocLink)
	})

	t.Run("invalid answers are asked again", func(t *testing.T) {
		p := &scriptedPrompter{
			selects:  []string{"docs"},
			inputs:   []string{"", "   ", "update readme", "ftp://x", "http://", "https://example.com"},
			confirms: []bool{true, false},
		}
		c := NewCollector(p, &bytes.Buffer{})

		answers, err := c.Collect(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "update readme", answers.Subject)
		assert.Equal(t, "https://example.com", answers.DocLink)
		assert.Equal(t, []error{ErrSubjectRequired, ErrURLProtocol, ErrURLFormat}, p.rejected)
	})

	t.Run("input closed", func(t *testing.T) {
		p := &scriptedPrompter{selects: []string{"feat"}}
		c := NewCollector(p, &bytes.Buffer{})

		_, err := c.Collect(context.Background())
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("canceled context asks nothing", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := &scriptedPrompter{selects: []string{"feat"}}
		c := NewCollector(p, &bytes.Buffer{})

		_, err := c.Collect(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, p.asked)
	})
}

func TestCollector_ConfirmSuggestion(t *testing.T) {
	suggestion := AISuggestion{Type: "feat", Scope: "user", Subject: "add login", Source: SourceParsed}

	t.Run("accepted", func(t *testing.T) {
		out := &bytes.Buffer{}
		p := &scriptedPrompter{confirms: []bool{true, false, true}}
		c := NewCollector(p, out)

		answers, err := c.ConfirmSuggestion(context.Background(), suggestion)
		require.NoError(t, err)
		assert.Equal(t, &CommitAnswers{Type: "feat", Scope: "user", Subject: "add login", ShouldPush: true}, answers)
		assert.Equal(t, []string{promptUseAI, promptAddDoc, promptPush}, p.asked)
		assert.Contains(t, out.String(), "feat(user): add login")
	})

	t.Run("declined falls back to manual collection", func(t *testing.T) {
		p := &scriptedPrompter{
			selects:  []string{"fix"},
			inputs:   []string{"", "handle nil"},
			confirms: []bool{false, false, false},
		}
		c := NewCollector(p, &bytes.Buffer{})

		answers, err := c.ConfirmSuggestion(context.Background(), suggestion)
		require.NoError(t, err)
		assert.Equal(t, "fix", answers.Type)
		assert.Equal(t, "handle nil", answers.Subject)
		assert.Equal(t, promptType, p.asked[1])
	})

	t.Run("unusable subject is asked for", func(t *testing.T) {
		var logBuf bytes.Buffer
		log.SetOutput(&logBuf)
		defer log.SetOutput(os.Stderr)

		p := &scriptedPrompter{
			inputs:   []string{"fix the parser"},
			confirms: []bool{true, false, false},
		}
		c := NewCollector(p, &bytes.Buffer{})

		answers, err := c.ConfirmSuggestion(context.Background(), AISuggestion{Type: "fix", Subject: "   "})
		require.NoError(t, err)
		assert.Equal(t, "fix the parser", answers.Subject)
		assert.Contains(t, p.asked, promptFixSubject)
		assert.Contains(t, logBuf.String(), "subject")
	})

	t.Run("fields are trimmed and type defaults", func(t *testing.T) {
		p := &scriptedPrompter{confirms: []bool{true, false, false}}
		c := NewCollector(p, &bytes.Buffer{})

		answers, err := c.ConfirmSuggestion(context.Background(), AISuggestion{Type: " ", Scope: " api ", Subject: " tidy up "})
		require.NoError(t, err)
		assert.Equal(t, "chore(api): tidy up", Assemble(*answers))
	})
}
