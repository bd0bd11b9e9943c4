package workflow

import "github.com/hashicorp/hcl/v2"

// nodeBlock is one `node "<id>" { ... }` block in a workflow definition
// file. The data attribute is kept as a raw expression so it can be
// evaluated into a cty value with no variables or functions in scope.
type nodeBlock struct {
	ID    string         `hcl:"id,label"`
	Label string         `hcl:"label,optional"`
	Data  hcl.Expression `hcl:"data"`
}

// workflowConfig is the top-level structure of a workflow definition
// file: a flat collection of node blocks.
type workflowConfig struct {
	Nodes []*nodeBlock `hcl:"node,block"`
}
