package refscan

import (
	"regexp"

	"github.com/Skyvern-AI/skyvern-sub008/internal/node"
)

// identifier is one segment of a variable path.
const identifier = `[a-zA-Z_][a-zA-Z0-9_]*`

// referencePattern compiles the general reference grammar fresh for each
// call: {{ identifier(.identifier)* }} with optional whitespace around the
// path. Group 1 captures the path.
func referencePattern() *regexp.Regexp {
	return regexp.MustCompile(`\{\{\s*(` + identifier + `(?:\.` + identifier + `)*)\s*\}\}`)
}

// variablePattern compiles a matcher for one exact variable path. The name
// is quoted, so a path match is literal and identifier-exact: renaming
// "url" never touches "{{ url2 }}" and renaming "a" never touches
// "{{ a.b }}".
func variablePattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`\{\{\s*` + regexp.QuoteMeta(name) + `\s*\}\}`)
}

// Reference is one concrete {{ variableName }} occurrence located in a
// specific string field of a specific node.
type Reference struct {
	VariableName string `json:"variableName"`
	NodeID       string `json:"nodeId"`
	NodeLabel    string `json:"nodeLabel"`
	FieldPath    string `json:"fieldPath"`
	FullMatch    string `json:"fullMatch"`
}

// NodeUsage summarises every field of one node that references a
// variable.
type NodeUsage struct {
	NodeID    string   `json:"nodeId"`
	NodeLabel string   `json:"nodeLabel"`
	Fields    []string `json:"fields"`
}

// FindReferencesToVariable collects every occurrence of the given
// variable across the node collection. Matching is case-sensitive on the
// variable path and insensitive to whitespace inside the braces. Order is
// deterministic: nodes in input order, mapping keys sorted, sequence
// elements in order, occurrences left to right within a string.
func FindReferencesToVariable(nodes []node.Node, variableName string) []Reference {
	pattern := referencePattern()
	var refs []Reference
	for _, n := range nodes {
		visitStrings(n.Data, func(path, value string) {
			for _, m := range pattern.FindAllStringSubmatch(value, -1) {
				if m[1] != variableName {
					continue
				}
				refs = append(refs, Reference{
					VariableName: variableName,
					NodeID:       n.ID,
					NodeLabel:    n.Label,
					FieldPath:    path,
					FullMatch:    m[0],
				})
			}
		})
	}
	return refs
}

// FindNodesUsingVariable groups the references by node, deduplicating
// field paths while keeping first-seen order.
func FindNodesUsingVariable(nodes []node.Node, variableName string) []NodeUsage {
	refs := FindReferencesToVariable(nodes, variableName)
	var usages []NodeUsage
	index := make(map[string]int)
	seen := make(map[string]map[string]struct{})
	for _, ref := range refs {
		i, ok := index[ref.NodeID]
		if !ok {
			i = len(usages)
			index[ref.NodeID] = i
			usages = append(usages, NodeUsage{NodeID: ref.NodeID, NodeLabel: ref.NodeLabel})
			seen[ref.NodeID] = make(map[string]struct{})
		}
		if _, dup := seen[ref.NodeID][ref.FieldPath]; dup {
			continue
		}
		seen[ref.NodeID][ref.FieldPath] = struct{}{}
		usages[i].Fields = append(usages[i].Fields, ref.FieldPath)
	}
	return usages
}

// HasReferencesToVariable reports whether any node references the
// variable.
func HasReferencesToVariable(nodes []node.Node, variableName string) bool {
	return len(FindReferencesToVariable(nodes, variableName)) > 0
}

// ReplaceVariableInNodes returns a new collection in which every
// {{ oldName }} occurrence is rewritten to the canonical "{{ newName }}"
// form. The input collection is left untouched; nodes without matches
// carry structurally identical data.
func ReplaceVariableInNodes(nodes []node.Node, oldName, newName string) []node.Node {
	pattern := variablePattern(oldName)
	replacement := "{{ " + newName + " }}"
	return rewriteCollection(nodes, func(s string) string {
		return pattern.ReplaceAllLiteralString(s, replacement)
	})
}

// RemoveVariableFromNodes returns a new collection with every
// {{ variableName }} occurrence deleted, collapsing the surrounding text.
func RemoveVariableFromNodes(nodes []node.Node, variableName string) []node.Node {
	pattern := variablePattern(variableName)
	return rewriteCollection(nodes, func(s string) string {
		return pattern.ReplaceAllLiteralString(s, "")
	})
}

func rewriteCollection(nodes []node.Node, rewrite func(string) string) []node.Node {
	out := make([]node.Node, len(nodes))
	for i, n := range nodes {
		out[i] = node.Node{
			ID:    n.ID,
			Label: n.Label,
			Data:  rewriteStrings(n.Data, rewrite),
		}
	}
	return out
}
