// Package refscan performs bounded static analysis over a workflow node
// collection: it finds, renames, and removes {{ variable }} references in
// the string leaves of each node's nested data.
//
// All operations are pure. Inputs are never mutated; rewrites return
// freshly built node slices and value trees. Traversal uses an explicit
// work stack rather than native recursion, so deeply nested payloads
// cannot overflow the call stack, and every regular expression is compiled
// fresh per call so no scanning state is shared across calls or
// goroutines.
//
// Mapping entries named "id", "type", or "parameterKeys" hold structural
// identifiers rather than free text and are skipped at traversal time.
package refscan
