// Package node defines the editor-owned configuration unit the engine
// scans: an identifier, a human-readable label, and an arbitrarily nested
// data payload. The engine never assumes a schema for the payload; it is a
// closed cty value tree traversed generically.
package node

import "github.com/zclconf/go-cty/cty"

// Node is a single workflow block as the editor holds it in memory.
type Node struct {
	// ID is the unique, machine-readable identifier for the block.
	ID string
	// Label is the human-readable block name shown in the editor.
	// Example: "extract_contact_info"
	Label string
	// Data is the block's configuration payload. String leaves anywhere
	// inside it may carry {{ variable }} references.
	Data cty.Value
}
