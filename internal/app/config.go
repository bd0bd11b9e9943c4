package app

import "errors"

// Config holds everything an App instance needs to run. Exactly one mode
// is active per invocation: checking a TSON document, or one reference
// operation against a workflow.
type Config struct {
	// CheckPath is the TSON document to parse; "-" reads stdin.
	CheckPath string

	// WorkflowPath points at a workflow file or directory for the
	// reference operations below.
	WorkflowPath string
	FindVar      string
	UsesVar      string
	RenameOld    string
	RenameNew    string
	RemoveVar    string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it. Mode selection rules: a
// check is exclusive with workflow operations, and a workflow path
// requires exactly one operation.
func NewConfig(cfg Config) (*Config, error) {
	ops := 0
	if cfg.FindVar != "" {
		ops++
	}
	if cfg.UsesVar != "" {
		ops++
	}
	if cfg.RenameOld != "" {
		ops++
	}
	if cfg.RemoveVar != "" {
		ops++
	}

	switch {
	case cfg.CheckPath != "" && cfg.WorkflowPath != "":
		return nil, errors.New("-check and -workflow are mutually exclusive")
	case cfg.CheckPath != "":
		if ops > 0 {
			return nil, errors.New("-find, -uses, -rename, and -remove require -workflow")
		}
	case cfg.WorkflowPath != "":
		if ops == 0 {
			return nil, errors.New("-workflow requires exactly one of -find, -uses, -rename, or -remove")
		}
		if ops > 1 {
			return nil, errors.New("only one of -find, -uses, -rename, or -remove may be used per invocation")
		}
		if cfg.RenameOld != "" && cfg.RenameNew == "" {
			return nil, errors.New("-rename requires the OLD:NEW form")
		}
	default:
		return nil, errors.New("either -check or -workflow is required")
	}

	return &cfg, nil
}
