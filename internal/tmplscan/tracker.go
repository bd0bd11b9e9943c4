package tmplscan

// StringMask records, for every byte offset of a scanned text, whether that
// offset lies inside a double-quoted string literal. It is produced by a
// single forward pass; consumers query the mask instead of re-scanning.
type StringMask []bool

// Inside reports whether the given offset lies inside a double-quoted
// string literal, including the quote characters themselves. Offsets out
// of range report false.
func (m StringMask) Inside(offset int) bool {
	if offset < 0 || offset >= len(m) {
		return false
	}
	return m[offset]
}

// MaskStrings scans text once, left to right, and returns its StringMask.
// A backslash escapes the character that follows it, so an escaped quote
// (\") does not terminate a string. Malformed input never fails here; an
// unterminated string simply marks every remaining offset as in-string and
// is reported later as a grammar error by the parser.
func MaskStrings(text string) StringMask {
	mask := make(StringMask, len(text))
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		if !inString {
			if text[i] == '"' {
				inString = true
				mask[i] = true
			}
			continue
		}
		mask[i] = true
		switch {
		case escaped:
			escaped = false
		case text[i] == '\\':
			escaped = true
		case text[i] == '"':
			inString = false
		}
	}
	return mask
}
