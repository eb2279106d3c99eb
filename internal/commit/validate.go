package commit

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	MaxSubjectLength = 100
	MaxScopeLength   = 50
)

// Validation errors; their messages are shown to the user as is
var (
	ErrSubjectRequired = errors.New("subject is required, please enter it again")
	ErrSubjectTooLong  = errors.New("subject must not exceed 100 characters")
	ErrScopeTooLong    = errors.New("scope must not exceed 50 characters")
	ErrURLProtocol     = errors.New("please enter a valid URL starting with http:// or https://")
	ErrURLFormat       = errors.New("please enter a valid URL")
)

var validate = validator.New()

// ValidateSubject checks that the trimmed subject is present and at most 100 characters
func ValidateSubject(subject string) error {
	trimmed := strings.TrimSpace(subject)
	if trimmed == "" {
		return ErrSubjectRequired
	}
	if utf8.RuneCountInString(trimmed) > MaxSubjectLength {
		return ErrSubjectTooLong
	}
	return nil
}

// ValidateScope checks that the optional scope is at most 50 characters
func ValidateScope(scope string) error {
	if utf8.RuneCountInString(strings.TrimSpace(scope)) > MaxScopeLength {
		return ErrScopeTooLong
	}
	return nil
}

// ValidateURL checks that link uses http or https and parses as a URL
func ValidateURL(link string) error {
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return ErrURLProtocol
	}
	if err := validate.Var(link, "url"); err != nil {
		return ErrURLFormat
	}
	return nil
}
