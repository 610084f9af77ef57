package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommandValid(t *testing.T) {
	path := writeTempFile(t, "app.json", minimalContract)

	out, err := executeCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "valid")
}

func TestValidateCommandInvalidLayout(t *testing.T) {
	path := writeTempFile(t, "app.json", `{"shell":{"layout":"diagonal"}}`)

	_, err := executeCommand(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestValidateCommandDuplicateNodeIDs(t *testing.T) {
	path := writeTempFile(t, "app.json", `{
		"pages": {
			"home": {
				"content": {
					"type": "stack",
					"children": [
						{"id": "dup", "type": "text"},
						{"id": "dup", "type": "text"}
					]
				}
			}
		}
	}`)

	_, err := executeCommand(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestValidateCommandMissingFile(t *testing.T) {
	_, err := executeCommand(t, "validate", "/nonexistent/app.json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestValidateCommandJSONEnvelope(t *testing.T) {
	path := writeTempFile(t, "app.json", minimalContract)

	out, err := executeCommand(t, "--format", "json", "validate", path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestValidateCommandJSONErrorEnvelope(t *testing.T) {
	path := writeTempFile(t, "app.json", `{"shell":{"layout":"diagonal"}}`)

	out, err := executeCommand(t, "--format", "json", "validate", path)
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.NotEmpty(t, resp.Error.Code)
}

func TestRootRejectsUnknownFormat(t *testing.T) {
	_, err := executeCommand(t, "--format", "xml", "validate", "x.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
