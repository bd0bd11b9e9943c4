package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Skyvern-AI/skyvern-sub008/internal/ctxlog"
	"github.com/Skyvern-AI/skyvern-sub008/internal/node"
	"github.com/Skyvern-AI/skyvern-sub008/internal/refscan"
	"github.com/Skyvern-AI/skyvern-sub008/internal/tson"
	"github.com/Skyvern-AI/skyvern-sub008/internal/workflow"
)

// ErrCheckFailed is returned by Run when a -check invocation parsed its
// input and found it invalid. The failure Result has already been written
// to the output; callers use this to pick the exit code.
var ErrCheckFailed = errors.New("tson check failed")

// Run executes the mode selected by the configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var err error
	if a.config.CheckPath != "" {
		err = a.runCheck(ctx)
	} else {
		err = a.runWorkflowOp(ctx)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runCheck parses one TSON document and prints the editor-shaped result.
func (a *App) runCheck(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var text []byte
	var err error
	if a.config.CheckPath == "-" {
		text, err = io.ReadAll(a.inR)
	} else {
		text, err = os.ReadFile(a.config.CheckPath)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	logger.Debug("Input read.", "bytes", len(text))

	result := tson.Check(string(text))
	if err := a.writeJSON(result); err != nil {
		return err
	}
	if !result.Success {
		logger.Debug("TSON check failed.", "error", result.Error)
		return ErrCheckFailed
	}
	return nil
}

// runWorkflowOp loads the node collection and applies the configured
// reference operation.
func (a *App) runWorkflowOp(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	nodes, err := workflow.Load(ctx, a.config.WorkflowPath)
	if err != nil {
		return fmt.Errorf("failed to load workflow: %w", err)
	}
	logger.Debug("Workflow nodes loaded.", "count", len(nodes))

	switch {
	case a.config.FindVar != "":
		refs := refscan.FindReferencesToVariable(nodes, a.config.FindVar)
		logger.Debug("References collected.", "variable", a.config.FindVar, "count", len(refs))
		if refs == nil {
			refs = []refscan.Reference{}
		}
		return a.writeJSON(refs)

	case a.config.UsesVar != "":
		usages := refscan.FindNodesUsingVariable(nodes, a.config.UsesVar)
		logger.Debug("Usages grouped.", "variable", a.config.UsesVar, "nodes", len(usages))
		if usages == nil {
			usages = []refscan.NodeUsage{}
		}
		return a.writeJSON(usages)

	case a.config.RenameOld != "":
		updated := refscan.ReplaceVariableInNodes(nodes, a.config.RenameOld, a.config.RenameNew)
		return a.writeCollection(updated)

	case a.config.RemoveVar != "":
		updated := refscan.RemoveVariableFromNodes(nodes, a.config.RemoveVar)
		return a.writeCollection(updated)
	}
	return errors.New("no workflow operation selected")
}

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.outW)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

func (a *App) writeCollection(nodes []node.Node) error {
	out, err := node.EncodeCollection(nodes)
	if err != nil {
		return fmt.Errorf("failed to encode node collection: %w", err)
	}
	if _, err := a.outW.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("failed to write node collection: %w", err)
	}
	return nil
}
