package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and captures stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeTempFile writes content under a temp dir and returns its path.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalContract = `{
  "app": {"name": "Gatekeeper"},
  "pages": {
    "home": {
      "content": {
        "type": "stack",
        "children": [
          {"type": "heading", "props": {"content": "{{app.name}}"}},
          {"type": "badge", "props": {"content": "{{status | badge:green}}"}}
        ]
      }
    }
  }
}`
