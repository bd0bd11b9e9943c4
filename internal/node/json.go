package node

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zclconf/go-cty/cty"

	"github.com/Skyvern-AI/skyvern-sub008/internal/ctyconv"
)

// nodeJSON is the editor's export shape for a single block.
type nodeJSON struct {
	ID    string          `json:"id"`
	Label string          `json:"label,omitempty"`
	Data  json.RawMessage `json:"data"`
}

// DecodeCollection reads an editor JSON export: an array of
// {id, label, data} records. Numbers inside data keep full precision.
func DecodeCollection(r io.Reader) ([]Node, error) {
	var raw []nodeJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid node collection: %w", err)
	}
	nodes := make([]Node, len(raw))
	for i, rn := range raw {
		if rn.ID == "" {
			return nil, fmt.Errorf("node at index %d has no id", i)
		}
		if len(rn.Data) == 0 {
			nodes[i] = Node{ID: rn.ID, Label: rn.Label, Data: cty.NullVal(cty.DynamicPseudoType)}
			continue
		}
		data, err := ctyconv.FromJSON(rn.Data)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", rn.ID, err)
		}
		nodes[i] = Node{ID: rn.ID, Label: rn.Label, Data: data}
	}
	return nodes, nil
}

// EncodeCollection renders nodes back into the editor's export shape.
func EncodeCollection(nodes []Node) ([]byte, error) {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		data, err := ctyconv.ToNative(n.Data)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", n.ID, err)
		}
		out[i] = map[string]any{
			"id":    n.ID,
			"label": n.Label,
			"data":  data,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
