// Package tson parses TSON, the templated superset of strict JSON used by
// workflow block configuration. TSON is standard JSON (double-quoted
// object keys, no trailing commas) in which any value, array element, or
// object key may instead be a {{ ... }} template placeholder.
//
// Parsing never evaluates a placeholder. Each balanced placeholder span is
// replaced by a fixed stub string literal and the rewritten text is then
// parsed with a strict-JSON grammar, so the result is an ordinary value
// tree in which every placeholder appears as the stub string.
//
// Parse is a pure function of its input; results are freshly allocated per
// call and the package is safe for concurrent use.
package tson
