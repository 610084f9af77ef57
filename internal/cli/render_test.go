package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommandResolvesTemplates(t *testing.T) {
	contractPath := writeTempFile(t, "app.json", minimalContract)
	dataPath := writeTempFile(t, "data.json", `{"status": "PASS"}`)

	out, err := executeCommand(t, "render", contractPath, "--data", dataPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Gatekeeper")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "<h2")
}

func TestRenderCommandUnknownPage(t *testing.T) {
	contractPath := writeTempFile(t, "app.json", minimalContract)

	_, err := executeCommand(t, "render", contractPath, "--page", "missing")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestRenderCommandJSONEnvelope(t *testing.T) {
	contractPath := writeTempFile(t, "app.json", minimalContract)

	out, err := executeCommand(t, "--format", "json", "render", contractPath)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "home", data["page"])
	assert.Contains(t, data["html"], "Gatekeeper")
}

func TestRenderCommandTreeOutput(t *testing.T) {
	contractPath := writeTempFile(t, "app.json", minimalContract)

	out, err := executeCommand(t, "render", contractPath, "--tree")
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	assert.Equal(t, "div", tree["tag"])
	children, ok := tree["children"].([]any)
	require.True(t, ok)
	assert.Len(t, children, 2)
}

func TestRenderCommandWritesFile(t *testing.T) {
	contractPath := writeTempFile(t, "app.json", minimalContract)
	outPath := filepath.Join(t.TempDir(), "page.html")

	_, err := executeCommand(t, "render", contractPath, "-o", outPath)
	require.NoError(t, err)

	html, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Gatekeeper")
}

func TestTokensCommandEmitsCSS(t *testing.T) {
	contractPath := writeTempFile(t, "app.json", `{
		"app": {"name": "X"},
		"tokens": {
			"color": {"primary": {"value": "#3b82f6"}},
			"spacing": {"md": {"value": "16", "unit": "px"}}
		}
	}`)

	out, err := executeCommand(t, "tokens", contractPath)
	require.NoError(t, err)

	assert.Contains(t, out, ":root {")
	assert.Contains(t, out, "--orqui-color-primary: #3b82f6;")
	assert.Contains(t, out, "--orqui-spacing-md: 16px;")
}
