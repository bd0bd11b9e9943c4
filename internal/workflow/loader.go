// Package workflow loads node collections from disk: HCL workflow
// definition files and JSON editor exports. It exists so the CLI and
// tests can assemble realistic collections without hand-building cty
// values; the scanning engine itself never touches the file system.
package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/Skyvern-AI/skyvern-sub008/internal/ctxlog"
	"github.com/Skyvern-AI/skyvern-sub008/internal/fsutil"
	"github.com/Skyvern-AI/skyvern-sub008/internal/node"
)

// Load resolves path to one or more workflow files and merges their node
// collections in file order. A file is decoded by extension: .hcl as a
// workflow definition, .json as an editor export. Duplicate node IDs
// across the collection are an error.
func Load(ctx context.Context, path string) ([]node.Node, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving workflow path.", "path", path)

	files, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	var nodes []node.Node
	seen := make(map[string]string)
	for _, file := range files {
		var decoded []node.Node
		switch filepath.Ext(file) {
		case ".hcl":
			decoded, err = decodeHCLFile(file)
		case ".json":
			decoded, err = decodeJSONFile(file)
		default:
			return nil, fmt.Errorf("unsupported workflow file type: %s", file)
		}
		if err != nil {
			return nil, err
		}
		for _, n := range decoded {
			if prev, dup := seen[n.ID]; dup {
				return nil, fmt.Errorf("duplicate node id %q in %s (first defined in %s)", n.ID, file, prev)
			}
			seen[n.ID] = file
		}
		nodes = append(nodes, decoded...)
	}

	logger.Debug("Workflow loaded.", "files", len(files), "nodes", len(nodes))
	return nodes, nil
}

// resolvePath accepts a single .hcl/.json file or a directory scanned
// recursively for both.
func resolvePath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("workflow path not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if info.IsDir() {
		files, err := fsutil.FindFilesByExtension(path, ".hcl", ".json")
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no workflow files found under %s", path)
		}
		return files, nil
	}
	switch filepath.Ext(path) {
	case ".hcl", ".json":
		return []string{path}, nil
	}
	return nil, fmt.Errorf("specified file is not a workflow file: %s", path)
}

// decodeHCLFile parses a workflow definition file. Each node block's data
// attribute is evaluated with a nil evaluation context: workflow data is
// literal structure, with {{ variable }} references living inside plain
// strings rather than HCL interpolation.
func decodeHCLFile(filePath string) ([]node.Node, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse workflow file %s: %s", filePath, diags.Error())
	}

	var config workflowConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode workflow file %s: %s", filePath, diags.Error())
	}

	nodes := make([]node.Node, 0, len(config.Nodes))
	for _, block := range config.Nodes {
		data, diags := block.Data.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate data for node %q in %s: %s", block.ID, filePath, diags.Error())
		}
		nodes = append(nodes, node.Node{ID: block.ID, Label: block.Label, Data: data})
	}
	return nodes, nil
}

// decodeJSONFile reads an editor JSON export.
func decodeJSONFile(filePath string) ([]node.Node, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workflow file %s: %w", filePath, err)
	}
	defer f.Close()

	nodes, err := node.DecodeCollection(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode workflow file %s: %w", filePath, err)
	}
	return nodes, nil
}
