package tson

import "fmt"

// ErrorKind is the closed taxonomy of parse failures.
type ErrorKind int

const (
	// UnclosedTemplate means an opened "{{" outside a string never found
	// its matching "}}" before the end of input.
	UnclosedTemplate ErrorKind = iota
	// UnmatchedClosingTemplate means a "}}" outside a string appeared with
	// no corresponding open.
	UnmatchedClosingTemplate
	// StrictJSONSyntax means the text, after placeholder substitution,
	// violates the strict-JSON grammar.
	StrictJSONSyntax
)

// String returns the taxonomy name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case UnclosedTemplate:
		return "UnclosedTemplate"
	case UnmatchedClosingTemplate:
		return "UnmatchedClosingTemplate"
	case StrictJSONSyntax:
		return "StrictJsonSyntaxError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a parse failure. Message is the human-readable text surfaced
// directly in the editor's configuration-validation UI; Kind exists so Go
// callers can classify without matching on message substrings.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// syntaxErrorf builds a StrictJSONSyntax error from a format string.
func syntaxErrorf(format string, args ...any) *Error {
	return &Error{Kind: StrictJSONSyntax, Message: fmt.Sprintf(format, args...)}
}
