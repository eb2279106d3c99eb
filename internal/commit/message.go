package commit

import "fmt"

// Provenance tells whether a suggestion came from the model or from defaults
type Provenance int

const (
	// SourceParsed means the fields were read from the model reply
	SourceParsed Provenance = iota
	// SourceDefault means the reply was unusable and defaults were substituted
	SourceDefault
)

// String returns the string representation of the provenance
func (p Provenance) String() string {
	if p == SourceDefault {
		return "default"
	}
	return "parsed"
}

// AISuggestion is the type, scope and subject proposed by the model
type AISuggestion struct {
	Type    string
	Scope   string
	Subject string
	Source  Provenance
}

// CommitAnswers holds everything needed to build and publish a commit
type CommitAnswers struct {
	Type       string
	Scope      string
	Subject    string
	AddDocLink bool
	DocLink    string
	ShouldPush bool
}

// Title returns the first line of the commit message
func (a *CommitAnswers) Title() string {
	if a.Scope != "" {
		return fmt.Sprintf("%s(%s): %s", a.Type, a.Scope, a.Subject)
	}
	return fmt.Sprintf("%s: %s", a.Type, a.Subject)
}

// Assemble builds the commit message: the title, then a Docs footer when a link is present
func Assemble(a CommitAnswers) string {
	if a.DocLink != "" {
		return fmt.Sprintf("%s\n\nDocs: %s", a.Title(), a.DocLink)
	}
	return a.Title()
}
