package apperror

import (
	"context"
	"errors"
	"fmt"

	cerr "github.com/cockroachdb/errors"
)

// Kind classifies a fatal error for reporting
type Kind string

const (
	KindConfig    Kind = "config"
	KindGitState  Kind = "git_state"
	KindAIService Kind = "ai_service"
	KindPush      Kind = "push"
	KindGit       Kind = "git"
	KindInternal  Kind = "internal"
)

// Sentinel errors matched with errors.Is
var (
	ErrConfig    = errors.New("configuration error")
	ErrGitState  = errors.New("git state error")
	ErrAIService = errors.New("ai service error")
	ErrPush      = errors.New("push error")
	ErrGit       = errors.New("git error")
)

var sentinels = map[Kind]error{
	KindConfig:    ErrConfig,
	KindGitState:  ErrGitState,
	KindAIService: ErrAIService,
	KindPush:      ErrPush,
	KindGit:       ErrGit,
}

// AppError is a classified error carrying the user-facing message
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the message, followed by the cause when there is one
// An empty message passes the cause through unchanged
func (e *AppError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind
func (e *AppError) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

func newError(kind Kind, err error, hint, format string, args ...interface{}) error {
	wrapped := cerr.WithStackDepth(&AppError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}, 2)
	if hint != "" {
		wrapped = cerr.WithHint(wrapped, hint)
	}
	return wrapped
}

// Config creates a configuration error
func Config(err error, hint, format string, args ...interface{}) error {
	return newError(KindConfig, err, hint, format, args...)
}

// GitState creates an error for an unusable repository state
func GitState(hint, format string, args ...interface{}) error {
	return newError(KindGitState, nil, hint, format, args...)
}

// AIService creates an error for a failed completion call
func AIService(err error, hint, format string, args ...interface{}) error {
	return newError(KindAIService, err, hint, format, args...)
}

// Push creates an error for a failed push
func Push(err error, hint, format string, args ...interface{}) error {
	return newError(KindPush, err, hint, format, args...)
}

// Git creates an error for any other failed repository operation
func Git(err error, format string, args ...interface{}) error {
	return newError(KindGit, err, "", format, args...)
}

// KindOf returns the kind of err, KindInternal for unclassified errors
func KindOf(err error) Kind {
	var appErr *AppError
	if cerr.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Hints returns every hint attached to err
func Hints(err error) []string {
	return cerr.GetAllHints(err)
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130 // SIGINT
	default:
		return 1
	}
}
