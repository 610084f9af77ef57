package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orqui/orqui/internal/contract"
)

func TestRenderInvisibleNodeIsNil(t *testing.T) {
	r, _ := newTestRenderer(nil)

	node := contract.NodeDef{
		Type:       "text",
		Props:      map[string]any{"content": "hidden"},
		Visibility: &contract.Rule{When: &contract.Condition{Path: "absent", Op: "exists"}},
	}

	assert.Nil(t, r.Render(node, Context{}))
}

func TestRenderChildrenDropInvisible(t *testing.T) {
	r, _ := newTestRenderer(nil)

	node := contract.NodeDef{
		Type: "stack",
		Children: []contract.NodeDef{
			{Type: "text", Props: map[string]any{"content": "a"}},
			{
				Type:       "text",
				Props:      map[string]any{"content": "b"},
				Visibility: &contract.Rule{When: &contract.Condition{Path: "absent", Op: "exists"}},
			},
			{Type: "text", Props: map[string]any{"content": "c"}},
		},
	}

	el := r.Render(node, Context{})
	require.NotNil(t, el)
	require.Len(t, el.Children, 2)
	assert.Equal(t, "a", el.Children[0].Text)
	assert.Equal(t, "c", el.Children[1].Text)
}

func TestRenderUnknownTypeDegrades(t *testing.T) {
	r, _ := newTestRenderer(nil)

	node := contract.NodeDef{
		Type: "holographic-chart",
		Children: []contract.NodeDef{
			{Type: "text", Props: map[string]any{"content": "still here"}},
		},
	}

	el := r.Render(node, Context{})
	require.NotNil(t, el)
	assert.Equal(t, "holographic-chart", el.Attr(AttrUnknownType))
	assert.Equal(t, "1px dashed #999", el.Style["border"])

	// Children render inside the placeholder.
	require.Len(t, el.Children, 1)
	assert.Equal(t, "still here", el.Children[0].Text)
}

func TestRenderTypeNormalization(t *testing.T) {
	r, _ := newTestRenderer(nil)

	tests := []struct {
		typ  string
		want string // expected flex-direction
	}{
		{"hstack", "row"},
		{"vstack", "column"},
		{"  Row ", "row"},
		{"STACK", "column"},
	}
	for _, tt := range tests {
		el := r.Render(contract.NodeDef{Type: tt.typ}, Context{})
		require.NotNil(t, el, "type %q", tt.typ)
		assert.Equal(t, tt.want, el.Style["flex-direction"], "type %q", tt.typ)
	}
}

func TestRenderNodeStyleOverridesWin(t *testing.T) {
	r, _ := newTestRenderer(nil)
	r.host.(*testHost).withTokens(map[string]map[string]contract.TokenDef{
		"color": {"accent": {Value: "#f59e0b"}},
	})

	node := contract.NodeDef{
		Type: "stack",
		Style: map[string]string{
			"display":    "inline-flex",
			"background": "$tokens.color.accent",
		},
	}

	el := r.Render(node, Context{})
	require.NotNil(t, el)
	// The handler's computed display is overridden by the node style,
	// and token references in overrides resolve.
	assert.Equal(t, "inline-flex", el.Style["display"])
	assert.Equal(t, "#f59e0b", el.Style["background"])
	assert.Equal(t, "column", el.Style["flex-direction"])
}

func TestRenderSetsNodeID(t *testing.T) {
	r, _ := newTestRenderer(nil)

	el := r.Render(contract.NodeDef{ID: "main", Type: "stack"}, Context{})
	require.NotNil(t, el)
	assert.Equal(t, "main", el.Attr(AttrNodeID))

	anon := r.Render(contract.NodeDef{Type: "stack"}, Context{})
	require.NotNil(t, anon)
	assert.Empty(t, anon.Attr(AttrNodeID))
}

func TestRenderRichTemplateParts(t *testing.T) {
	r, _ := newTestRenderer(nil)

	node := contract.NodeDef{
		Type:  "text",
		Props: map[string]any{"content": "Status: {{status | badge:green}}"},
	}

	el := r.Render(node, Context{Data: map[string]any{"status": "PASS"}})
	require.NotNil(t, el)
	// Rich templates render as child elements, not flat text.
	assert.Empty(t, el.Text)
	require.Len(t, el.Children, 2)
	assert.Equal(t, "Status: ", el.Children[0].Text)
	assert.Equal(t, "PASS", el.Children[1].Text)
	assert.Equal(t, "badge", el.Children[1].Attr("data-orqui-badge"))
}

func TestRenderGridSpans(t *testing.T) {
	r, _ := newTestRenderer(nil)

	node := contract.NodeDef{
		Type:  "grid",
		Props: map[string]any{"columns": float64(4)},
		Children: []contract.NodeDef{
			{Type: "text", Props: map[string]any{"span": float64(2), "content": "wide"}},
			{Type: "text", Props: map[string]any{"span": float64(99), "content": "clamped"}},
			{Type: "text", Props: map[string]any{"content": "default"}},
		},
	}

	el := r.Render(node, Context{})
	require.NotNil(t, el)
	assert.Equal(t, "repeat(4, minmax(0, 1fr))", el.Style["grid-template-columns"])
	require.Len(t, el.Children, 3)
	assert.Equal(t, "span 2", el.Children[0].Style["grid-column"])
	assert.Equal(t, "span 4", el.Children[1].Style["grid-column"])
	assert.Empty(t, el.Children[2].Style["grid-column"])
}

func TestRenderHeadingLevelClamped(t *testing.T) {
	r, _ := newTestRenderer(nil)

	tests := []struct {
		level any
		tag   string
	}{
		{nil, "h2"},
		{float64(1), "h1"},
		{float64(6), "h6"},
		{float64(0), "h1"},
		{float64(9), "h6"},
	}
	for _, tt := range tests {
		props := map[string]any{"content": "x"}
		if tt.level != nil {
			props["level"] = tt.level
		}
		el := r.Render(contract.NodeDef{Type: "heading", Props: props}, Context{})
		require.NotNil(t, el)
		assert.Equal(t, tt.tag, el.Tag)
	}
}

func TestRenderAvatarMonogram(t *testing.T) {
	r, _ := newTestRenderer(nil)

	el := r.Render(contract.NodeDef{
		Type:  "avatar",
		Props: map[string]any{"name": "ada lovelace"},
	}, Context{})
	require.NotNil(t, el)
	assert.Equal(t, "AL", el.Text)

	empty := r.Render(contract.NodeDef{Type: "avatar"}, Context{})
	require.NotNil(t, empty)
	assert.Equal(t, "?", empty.Text)
}

func TestRenderButton(t *testing.T) {
	r, _ := newTestRenderer(nil)

	el := r.Render(contract.NodeDef{
		Type: "button",
		Props: map[string]any{
			"label":  "Save {{kind}}",
			"action": "save",
			"icon":   "disk",
		},
	}, Context{Data: map[string]any{"kind": "draft"}})
	require.NotNil(t, el)
	assert.Equal(t, "save", el.Attr("data-action"))
	assert.Equal(t, "primary", el.Attr("data-variant"))
	require.Len(t, el.Children, 2)
	assert.Equal(t, "disk", el.Children[0].Attr("data-orqui-icon"))
	assert.Equal(t, "Save draft", el.Children[1].Text)
}
