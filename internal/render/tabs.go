package render

import (
	"github.com/orqui/orqui/internal/contract"
)

// renderTabs renders a tab strip plus the children matching the active
// tab. Activation state is local to the node instance: the runtime's
// per-node record wins, then props.defaultTab, then the first child's
// tab id. Non-matching children render nothing.
func (r *Renderer) renderTabs(node contract.NodeDef, ctx Context) *Element {
	active := r.activeTab(node)

	el := NewElement("div").SetAttr("data-orqui-tabs", node.ID)

	strip := NewElement("div").SetAttr("role", "tablist")
	for _, tab := range r.tabDefs(node, ctx) {
		btn := NewElement("button").
			SetAttr("role", "tab").
			SetAttr("data-tab-id", tab.id).
			withText(tab.label)
		if tab.id == active {
			btn.SetAttr("data-active", "true")
		}
		strip.Append(btn)
	}
	el.Append(strip)

	panel := NewElement("div").SetAttr("role", "tabpanel")
	for _, child := range node.Children {
		if stringProp(child, "tab", "") != active {
			continue
		}
		panel.Append(r.Render(child, ctx))
	}
	el.Append(panel)
	return el
}

type tabDef struct {
	id    string
	label string
}

// tabDefs reads props.tabs ({id, label} entries); when absent, tab ids
// are inferred from the children's tab props in order.
func (r *Renderer) tabDefs(node contract.NodeDef, ctx Context) []tabDef {
	if raw, ok := sliceProp(node, "tabs"); ok {
		out := make([]tabDef, 0, len(raw))
		for _, item := range raw {
			m, ok := mapValue(item)
			if !ok {
				continue
			}
			id, _ := m["id"].(string)
			label, _ := m["label"].(string)
			if label == "" {
				label = id
			}
			if id == "" {
				continue
			}
			out = append(out, tabDef{id: id, label: r.host.ResolveText(label, ctx.Data)})
		}
		return out
	}

	var out []tabDef
	seen := map[string]bool{}
	for _, child := range node.Children {
		id := stringProp(child, "tab", "")
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, tabDef{id: id, label: id})
	}
	return out
}

func (r *Renderer) activeTab(node contract.NodeDef) string {
	if active, ok := r.host.ActiveTab(node.ID); ok && active != "" {
		return active
	}
	if def := stringProp(node, "defaultTab", ""); def != "" {
		return def
	}
	for _, child := range node.Children {
		if id := stringProp(child, "tab", ""); id != "" {
			return id
		}
	}
	return ""
}
