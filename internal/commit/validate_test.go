package commit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		wantErr error
	}{
		{"empty", "", ErrSubjectRequired},
		{"whitespace only", "   \t ", ErrSubjectRequired},
		{"short", "add login", nil},
		{"exactly 100", strings.Repeat("a", 100), nil},
		{"101", strings.Repeat("a", 101), ErrSubjectTooLong},
		{"100 after trim", "  " + strings.Repeat("a", 100) + "  ", nil},
		{"100 multibyte runes", strings.Repeat("中", 100), nil},
		{"101 multibyte runes", strings.Repeat("中", 101), ErrSubjectTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubject(tt.subject)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateSubject_Messages(t *testing.T) {
	assert.EqualError(t, ValidateSubject(""), "subject is required, please enter it again")
	assert.EqualError(t, ValidateSubject(strings.Repeat("x", 101)), "subject must not exceed 100 characters")
}

func TestValidateScope(t *testing.T) {
	assert.NoError(t, ValidateScope(""))
	assert.NoError(t, ValidateScope("user"))
	assert.NoError(t, ValidateScope(strings.Repeat("s", 50)))
	assert.ErrorIs(t, ValidateScope(strings.Repeat("s", 51)), ErrScopeTooLong)
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		wantErr error
	}{
		{"https", "https://example.com/doc", nil},
		{"http with path and query", "http://example.com/docs?id=1#top", nil},
		{"ftp", "ftp://example.com", ErrURLProtocol},
		{"no scheme", "example.com", ErrURLProtocol},
		{"empty", "", ErrURLProtocol},
		{"scheme only", "http://", ErrURLFormat},
		{"space in host", "https://exa mple.com", ErrURLFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.link)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
