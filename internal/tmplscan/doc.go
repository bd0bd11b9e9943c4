// Package tmplscan locates template placeholder spans ({{ ... }}) in
// TSON-flavoured configuration text. It tracks double-quoted string
// literals so that braces appearing inside string contents are treated as
// plain text, and counts nesting depth so that a placeholder containing
// further brace pairs is reported as a single span.
//
// All scanning state is created fresh per call; the package holds no
// shared mutable state and is safe for concurrent use.
package tmplscan
