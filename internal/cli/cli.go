package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Skyvern-AI/skyvern-sub008/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("tsonlint", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
tsonlint - validate templated JSON configuration and track {{ variable }} references.

Usage:
  tsonlint -check FILE
  tsonlint -workflow PATH (-find VAR | -uses VAR | -rename OLD:NEW | -remove VAR)

Modes:
  -check FILE
    Parse FILE as TSON and print {"success":...}. Use '-' for stdin.
  -workflow PATH
    A workflow .hcl/.json file, or a directory scanned recursively.

Options:
`)
		flagSet.PrintDefaults()
	}

	checkFlag := flagSet.String("check", "", "TSON document to parse ('-' for stdin).")
	workflowFlag := flagSet.String("workflow", "", "Workflow file or directory holding the node collection.")
	findFlag := flagSet.String("find", "", "List every reference to the named variable.")
	usesFlag := flagSet.String("uses", "", "Summarise, per node, the fields referencing the named variable.")
	renameFlag := flagSet.String("rename", "", "Rewrite references, in the form OLD:NEW.")
	removeFlag := flagSet.String("remove", "", "Delete every reference to the named variable.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *checkFlag == "" && *workflowFlag == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	renameOld, renameNew := "", ""
	if *renameFlag != "" {
		before, after, ok := strings.Cut(*renameFlag, ":")
		if !ok || before == "" || after == "" {
			return nil, false, &ExitError{Code: 2, Message: "invalid -rename: expected the form OLD:NEW"}
		}
		renameOld, renameNew = before, after
	}

	config, err := app.NewConfig(app.Config{
		CheckPath:    *checkFlag,
		WorkflowPath: *workflowFlag,
		FindVar:      *findFlag,
		UsesVar:      *usesFlag,
		RenameOld:    renameOld,
		RenameNew:    renameNew,
		RemoveVar:    *removeFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
