package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orqui/orqui/internal/contract"
)

func tabsNode() contract.NodeDef {
	return contract.NodeDef{
		ID:   "views",
		Type: "tabs",
		Props: map[string]any{
			"tabs": []any{
				map[string]any{"id": "summary", "label": "Summary"},
				map[string]any{"id": "details", "label": "Details"},
			},
		},
		Children: []contract.NodeDef{
			{Type: "text", Props: map[string]any{"tab": "summary", "content": "summary body"}},
			{Type: "text", Props: map[string]any{"tab": "details", "content": "details body"}},
		},
	}
}

func TestTabsFirstChildActiveByDefault(t *testing.T) {
	r, _ := newTestRenderer(nil)

	el := r.Render(tabsNode(), Context{})
	require.NotNil(t, el)

	active := el.Find(func(e *Element) bool { return e.Attr("data-active") == "true" })
	require.NotNil(t, active)
	assert.Equal(t, "summary", active.Attr("data-tab-id"))

	panel := el.Find(func(e *Element) bool { return e.Attr("role") == "tabpanel" })
	require.NotNil(t, panel)
	assert.Equal(t, "summary body", panel.TextContent())
}

func TestTabsDefaultTabProp(t *testing.T) {
	r, _ := newTestRenderer(nil)

	node := tabsNode()
	node.Props["defaultTab"] = "details"

	el := r.Render(node, Context{})
	panel := el.Find(func(e *Element) bool { return e.Attr("role") == "tabpanel" })
	require.NotNil(t, panel)
	assert.Equal(t, "details body", panel.TextContent())
}

func TestTabsRuntimeStateWins(t *testing.T) {
	r, h := newTestRenderer(nil)
	h.activeTabs["views"] = "details"

	node := tabsNode()
	node.Props["defaultTab"] = "summary"

	el := r.Render(node, Context{})
	panel := el.Find(func(e *Element) bool { return e.Attr("role") == "tabpanel" })
	require.NotNil(t, panel)
	assert.Equal(t, "details body", panel.TextContent())
}

func TestTabsInferredFromChildren(t *testing.T) {
	r, _ := newTestRenderer(nil)

	node := tabsNode()
	delete(node.Props, "tabs")

	el := r.Render(node, Context{})
	strip := el.Find(func(e *Element) bool { return e.Attr("role") == "tablist" })
	require.NotNil(t, strip)
	require.Len(t, strip.Children, 2)
	assert.Equal(t, "summary", strip.Children[0].Attr("data-tab-id"))
	assert.Equal(t, "details", strip.Children[1].Attr("data-tab-id"))
}
