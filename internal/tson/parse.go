package tson

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/zclconf/go-cty/cty"

	"github.com/Skyvern-AI/skyvern-sub008/internal/tmplscan"
)

// maxNestingDepth bounds object/array nesting so adversarial input returns
// an error instead of exhausting the call stack.
const maxNestingDepth = 10000

// Parse turns TSON text into a cty value tree.
//
// Every balanced {{ ... }} placeholder outside a string literal collapses
// to the Stub string, wherever it occurs: scalar position, array element,
// object value, or object key. Duplicate object keys follow last-write-wins
// semantics, which also applies when two distinct placeholders stub to the
// same key.
//
// On failure the returned error is always a *Error from the closed
// taxonomy; no partial result is produced.
func Parse(text string) (cty.Value, error) {
	spans, err := tmplscan.Spans(text)
	if err != nil {
		var spanErr *tmplscan.Error
		if errors.As(err, &spanErr) {
			kind := UnclosedTemplate
			if spanErr.Kind == tmplscan.UnmatchedClosingTemplate {
				kind = UnmatchedClosingTemplate
			}
			return cty.NilVal, &Error{Kind: kind, Message: spanErr.Message}
		}
		return cty.NilVal, &Error{Kind: StrictJSONSyntax, Message: err.Error()}
	}

	p := &parser{src: stubSpans(text, spans)}
	p.skipSpace()
	v, perr := p.parseValue(0)
	if perr != nil {
		return cty.NilVal, perr
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return cty.NilVal, syntaxErrorf("Unexpected %s after top-level value at offset %d", p.describe(p.pos), p.pos)
	}
	return v, nil
}

// parser is a strict-JSON recursive-descent parser over the rewritten
// text. One instance serves exactly one Parse call.
type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// describe renders the token at pos for error messages.
func (p *parser) describe(pos int) string {
	if pos >= len(p.src) {
		return "end of input"
	}
	r, _ := utf8.DecodeRuneInString(p.src[pos:])
	return fmt.Sprintf("token %q", r)
}

func (p *parser) parseValue(depth int) (cty.Value, *Error) {
	if depth > maxNestingDepth {
		return cty.NilVal, syntaxErrorf("Structure exceeds maximum nesting depth of %d", maxNestingDepth)
	}
	if p.pos >= len(p.src) {
		return cty.NilVal, syntaxErrorf("Expected a value but found end of input")
	}
	switch c := p.src[p.pos]; {
	case c == '{':
		return p.parseObject(depth)
	case c == '[':
		return p.parseArray(depth)
	case c == '"':
		s, err := p.parseString()
		if err != nil {
			return cty.NilVal, err
		}
		return cty.StringVal(s), nil
	case c == 't':
		if err := p.expectLiteral("true"); err != nil {
			return cty.NilVal, err
		}
		return cty.True, nil
	case c == 'f':
		if err := p.expectLiteral("false"); err != nil {
			return cty.NilVal, err
		}
		return cty.False, nil
	case c == 'n':
		if err := p.expectLiteral("null"); err != nil {
			return cty.NilVal, err
		}
		return cty.NullVal(cty.DynamicPseudoType), nil
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return cty.NilVal, syntaxErrorf("Unexpected %s at offset %d", p.describe(p.pos), p.pos)
	}
}

func (p *parser) expectLiteral(lit string) *Error {
	if !strings.HasPrefix(p.src[p.pos:], lit) {
		return syntaxErrorf("Unexpected %s at offset %d", p.describe(p.pos), p.pos)
	}
	p.pos += len(lit)
	return nil
}

func (p *parser) parseObject(depth int) (cty.Value, *Error) {
	p.pos++ // consume '{'
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '}' {
		p.pos++
		return cty.EmptyObjectVal, nil
	}
	attrs := make(map[string]cty.Value)
	for {
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != '"' {
			return cty.NilVal, syntaxErrorf("Expected double-quoted property name but found %s at offset %d", p.describe(p.pos), p.pos)
		}
		key, err := p.parseString()
		if err != nil {
			return cty.NilVal, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ':' {
			return cty.NilVal, syntaxErrorf("Expected ':' after property name but found %s at offset %d", p.describe(p.pos), p.pos)
		}
		p.pos++
		p.skipSpace()
		val, err := p.parseValue(depth + 1)
		if err != nil {
			return cty.NilVal, err
		}
		// Last write wins on duplicate keys.
		attrs[key] = val
		p.skipSpace()
		if p.pos >= len(p.src) {
			return cty.NilVal, syntaxErrorf("Expected ',' or '}' but found end of input")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return cty.ObjectVal(attrs), nil
		default:
			return cty.NilVal, syntaxErrorf("Expected ',' or '}' but found %s at offset %d", p.describe(p.pos), p.pos)
		}
	}
}

func (p *parser) parseArray(depth int) (cty.Value, *Error) {
	p.pos++ // consume '['
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == ']' {
		p.pos++
		return cty.EmptyTupleVal, nil
	}
	var elems []cty.Value
	for {
		p.skipSpace()
		val, err := p.parseValue(depth + 1)
		if err != nil {
			return cty.NilVal, err
		}
		elems = append(elems, val)
		p.skipSpace()
		if p.pos >= len(p.src) {
			return cty.NilVal, syntaxErrorf("Expected ',' or ']' but found end of input")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return cty.TupleVal(elems), nil
		default:
			return cty.NilVal, syntaxErrorf("Expected ',' or ']' but found %s at offset %d", p.describe(p.pos), p.pos)
		}
	}
}

// parseString consumes a double-quoted JSON string, decoding the standard
// escapes including \uXXXX with surrogate pairs.
func (p *parser) parseString() (string, *Error) {
	start := p.pos
	p.pos++ // consume opening '"'
	var b strings.Builder
	for {
		if p.pos >= len(p.src) {
			return "", syntaxErrorf("Unterminated string literal starting at offset %d", start)
		}
		c := p.src[p.pos]
		switch {
		case c == '"':
			p.pos++
			return b.String(), nil
		case c == '\\':
			esc, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			b.WriteRune(esc)
		case c < 0x20:
			return "", syntaxErrorf("Invalid control character %q in string literal at offset %d", rune(c), p.pos)
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *parser) parseEscape() (rune, *Error) {
	escStart := p.pos
	p.pos++ // consume '\'
	if p.pos >= len(p.src) {
		return 0, syntaxErrorf("Unterminated escape sequence at offset %d", escStart)
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		r, err := p.parseUnicodeEscape(escStart)
		if err != nil {
			return 0, err
		}
		if utf16.IsSurrogate(r) {
			// A high surrogate must be followed by a \u low surrogate to
			// form a single code point; anything else is replaced.
			if strings.HasPrefix(p.src[p.pos:], `\u`) {
				save := p.pos
				p.pos += 2
				r2, err := p.parseUnicodeEscape(escStart)
				if err != nil {
					return 0, err
				}
				if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
					return combined, nil
				}
				p.pos = save
			}
			return utf8.RuneError, nil
		}
		return r, nil
	default:
		return 0, syntaxErrorf("Invalid escape sequence '\\%c' at offset %d", c, escStart)
	}
}

func (p *parser) parseUnicodeEscape(escStart int) (rune, *Error) {
	if p.pos+4 > len(p.src) {
		return 0, syntaxErrorf("Unterminated unicode escape at offset %d", escStart)
	}
	hex := p.src[p.pos : p.pos+4]
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, syntaxErrorf("Invalid unicode escape '\\u%s' at offset %d", hex, escStart)
	}
	p.pos += 4
	return rune(n), nil
}

// parseNumber consumes a JSON number literal. The lexical shape is checked
// here; cty.ParseNumberVal then carries the full-precision value.
func (p *parser) parseNumber() (cty.Value, *Error) {
	start := p.pos
	if p.src[p.pos] == '-' {
		p.pos++
	}
	switch {
	case p.pos < len(p.src) && p.src[p.pos] == '0':
		p.pos++
	case p.pos < len(p.src) && p.src[p.pos] >= '1' && p.src[p.pos] <= '9':
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			p.pos++
		}
	default:
		return cty.NilVal, syntaxErrorf("Invalid number literal at offset %d", start)
	}
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos++
		if p.pos >= len(p.src) || !isDigit(p.src[p.pos]) {
			return cty.NilVal, syntaxErrorf("Invalid number literal at offset %d: expected digits after decimal point", start)
		}
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			p.pos++
		}
	}
	if p.pos < len(p.src) && (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
		p.pos++
		if p.pos < len(p.src) && (p.src[p.pos] == '+' || p.src[p.pos] == '-') {
			p.pos++
		}
		if p.pos >= len(p.src) || !isDigit(p.src[p.pos]) {
			return cty.NilVal, syntaxErrorf("Invalid number literal at offset %d: expected digits in exponent", start)
		}
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			p.pos++
		}
	}
	lit := p.src[start:p.pos]
	v, err := cty.ParseNumberVal(lit)
	if err != nil {
		return cty.NilVal, syntaxErrorf("Invalid number literal %q at offset %d", lit, start)
	}
	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
