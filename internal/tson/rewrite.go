package tson

import (
	"strings"

	"github.com/Skyvern-AI/skyvern-sub008/internal/tmplscan"
)

// Stub is the sentinel substituted for every matched placeholder span,
// regardless of the span's content or nesting depth. It is always emitted
// as a double-quoted string literal so the rewritten text stays inside the
// strict-JSON grammar.
const Stub = "<STUB>"

const quotedStub = `"` + Stub + `"`

// stubSpans returns text with each span replaced by the quoted stub.
// Everything outside the spans, including string-literal contents, is
// preserved byte for byte. Spans are non-overlapping and ordered, which
// Spans guarantees.
func stubSpans(text string, spans []tmplscan.Span) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, s := range spans {
		b.WriteString(text[prev:s.Start])
		b.WriteString(quotedStub)
		prev = s.End
	}
	b.WriteString(text[prev:])
	return b.String()
}
