package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skyvern-AI/skyvern-sub008/internal/app"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return shouldExit=true.
	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "expected help text on the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_CheckSuccess(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(strings.NewReader(`{"a": {{ x }}}`), out, &bytes.Buffer{}, []string{"-check", "-"})

	require.NoError(t, err)
	require.Contains(t, out.String(), `"success": true`)
}

func TestRun_CheckFailure(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(strings.NewReader("{{ unclosed"), out, &bytes.Buffer{}, []string{"-check", "-"})

	require.True(t, errors.Is(err, app.ErrCheckFailed), "invalid input should map to the check-failed error")
	require.Contains(t, out.String(), "Unclosed")
}

func TestRun_WorkflowRename(t *testing.T) {
	t.Parallel()

	workflow := `
node "b1" {
  data = { url = "{{ base_url }}/x" }
}
`
	path := filepath.Join(t.TempDir(), "w.hcl")
	require.NoError(t, os.WriteFile(path, []byte(workflow), 0600))

	out := &bytes.Buffer{}
	err := run(strings.NewReader(""), out, &bytes.Buffer{}, []string{"-workflow", path, "-rename", "base_url:host"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "{{ host }}/x")
}
