package tmplscan

import "fmt"

// Span is a maximal balanced {{ ... }} region found outside string
// literals. Start is the offset of the opening "{{" and End is the offset
// just past the closing "}}", so text[Start:End] covers the whole
// placeholder. Depth is the deepest level of nested "{{" openers observed
// inside the span (1 for a plain placeholder).
type Span struct {
	Start int
	End   int
	Depth int
}

// ErrorKind classifies a span-matching failure.
type ErrorKind int

const (
	// UnclosedTemplate means an opened "{{" never found its matching "}}"
	// before the end of input.
	UnclosedTemplate ErrorKind = iota
	// UnmatchedClosingTemplate means a "}}" appeared outside a string with
	// no corresponding "{{" open.
	UnmatchedClosingTemplate
)

// Error is a span-matching failure. Its message is the user-facing text
// surfaced by the configuration editor.
type Error struct {
	Kind    ErrorKind
	Offset  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Spans finds every top-level balanced {{ ... }} region in text, left to
// right. Brace pairs inside string literals are not special. A "{{" seen
// while a span is already open increments the nesting depth rather than
// starting a new span; the span closes only when the depth returns to
// zero, so the payload of a placeholder is never interpreted.
//
// On failure no partial span list is returned.
func Spans(text string) ([]Span, error) {
	mask := MaskStrings(text)
	var spans []Span
	depth := 0
	maxDepth := 0
	start := 0
	for i := 0; i+1 < len(text); i++ {
		if mask.Inside(i) {
			continue
		}
		switch {
		case text[i] == '{' && text[i+1] == '{':
			if depth == 0 {
				start = i
				maxDepth = 0
			}
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
			i++
		case text[i] == '}' && text[i+1] == '}':
			if depth == 0 {
				return nil, &Error{
					Kind:    UnmatchedClosingTemplate,
					Offset:  i,
					Message: fmt.Sprintf("Unmatched template closing: '}}' at offset %d has no corresponding '{{'", i),
				}
			}
			depth--
			if depth == 0 {
				spans = append(spans, Span{Start: start, End: i + 2, Depth: maxDepth})
			}
			i++
		}
	}
	if depth > 0 {
		return nil, &Error{
			Kind:    UnclosedTemplate,
			Offset:  start,
			Message: fmt.Sprintf("Unclosed template placeholder: '{{' at offset %d has no matching '}}'", start),
		}
	}
	return spans, nil
}
