package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orqui/orqui/internal/contract"
)

func TestSearchDefaults(t *testing.T) {
	r, _ := newTestRenderer(nil)

	el := r.Render(contract.NodeDef{Type: "search"}, Context{})
	require.NotNil(t, el)
	assert.Equal(t, "input", el.Tag)
	assert.Equal(t, "search", el.Attr("type"))
	assert.Equal(t, "Search...", el.Attr("placeholder"))
}

func TestSearchWithAction(t *testing.T) {
	r, _ := newTestRenderer(nil)

	el := r.Render(contract.NodeDef{
		Type:  "search",
		Props: map[string]any{"placeholder": "Find {{kind}}", "action": "filter"},
	}, Context{Data: map[string]any{"kind": "runs"}})
	require.NotNil(t, el)
	assert.Equal(t, "Find runs", el.Attr("placeholder"))
	assert.Equal(t, "filter", el.Attr("data-action"))
}

func TestSelectLiteralOptions(t *testing.T) {
	r, _ := newTestRenderer(nil)

	el := r.Render(contract.NodeDef{
		Type: "select",
		Props: map[string]any{
			"placeholder": "Any status",
			"options": []any{
				"PASS",
				map[string]any{"value": "FAIL", "label": "Failed"},
				map[string]any{"value": "WARN"},
			},
		},
	}, Context{})
	require.NotNil(t, el)
	require.Len(t, el.Children, 4)

	assert.Equal(t, "", el.Children[0].Attr("value"))
	assert.Equal(t, "Any status", el.Children[0].Text)
	assert.Equal(t, "PASS", el.Children[1].Attr("value"))
	assert.Equal(t, "PASS", el.Children[1].Text)
	assert.Equal(t, "FAIL", el.Children[2].Attr("value"))
	assert.Equal(t, "Failed", el.Children[2].Text)
	assert.Equal(t, "WARN", el.Children[3].Text)
}

func TestSelectTemplateOptions(t *testing.T) {
	r, _ := newTestRenderer(nil)

	el := r.Render(contract.NodeDef{
		Type:  "select",
		Props: map[string]any{"options": "{{statusOptions}}"},
	}, Context{Data: map[string]any{"statusOptions": `["a","b"]`}})
	require.NotNil(t, el)
	require.Len(t, el.Children, 2)
	assert.Equal(t, "a", el.Children[0].Attr("value"))
	assert.Equal(t, "b", el.Children[1].Attr("value"))
}

func TestSelectMalformedTemplateYieldsNoOptions(t *testing.T) {
	r, _ := newTestRenderer(nil)

	el := r.Render(contract.NodeDef{
		Type:  "select",
		Props: map[string]any{"options": "{{broken}}"},
	}, Context{Data: map[string]any{"broken": "not json at all"}})
	require.NotNil(t, el)
	assert.Empty(t, el.Children)
}
