package render

import (
	"strconv"

	"github.com/orqui/orqui/internal/contract"
)

// renderSlot renders consumer-injected content under the slot's name,
// or an empty marked placeholder when nothing was injected.
func (r *Renderer) renderSlot(node contract.NodeDef, ctx Context) *Element {
	name := stringProp(node, "name", "default")
	el := NewElement("div").SetAttr(AttrSlot, name)
	if injected, ok := ctx.Slots[name]; ok {
		el.Append(injected...)
	}
	return el
}

// renderComponent resolves a component-typed node against the
// registry. Missing name, unregistered name, and entry-without-
// renderer degrade to three distinct placeholders.
func (r *Renderer) renderComponent(node contract.NodeDef, ctx Context) *Element {
	name := componentName(node)
	if name == "" {
		return NewElement("div").
			SetAttr(AttrMissingName, "component").
			SetStyle("border", "1px dashed #999").
			withText("component node without a name")
	}

	fn, state := r.registry.ResolveEntry(name)
	switch state {
	case NotRegistered:
		return NewElement("div").
			SetAttr(AttrUnregistered, name).
			SetStyle("border", "1px dashed #999").
			withText("unregistered component: " + name)
	case NoRenderer:
		return NewElement("div").
			SetAttr(AttrNoRenderer, name).
			SetStyle("border", "1px dashed #999").
			withText("component has no renderer: " + name)
	}

	return r.renderExternal(fn, node, ctx)
}

// renderExternal invokes a registry renderer with merged props and
// resolved slots. The computed style the parent passes always takes
// precedence over whatever style the component itself emits.
func (r *Renderer) renderExternal(fn RendererFunc, node contract.NodeDef, ctx Context) *Element {
	el := fn(ctx, node, componentProps(node), r.resolveComponentSlots(node, ctx))
	if el == nil {
		return nil
	}
	for k, v := range node.Style {
		el.SetStyle(k, r.host.ResolveToken(v))
	}
	return el
}

// resolveComponentSlots renders props.slots into named element lists.
// Each slot definition may be a single node-or-value or an array of
// them; array entries get synthesized positional keys. The "default"
// slot falls back to the node's own children when not supplied
// explicitly.
func (r *Renderer) resolveComponentSlots(node contract.NodeDef, ctx Context) map[string][]*Element {
	slots := map[string][]*Element{}

	if raw, ok := node.Prop("slots"); ok {
		if defs, ok := mapValue(raw); ok {
			for name, def := range defs {
				slots[name] = r.renderSlotValue(node.ID+"-slot-"+name, def, ctx)
			}
		}
	}

	if _, ok := slots["default"]; !ok && len(node.Children) > 0 {
		slots["default"] = r.RenderChildren(node.Children, ctx)
	}
	return slots
}

// renderSlotValue renders one slot definition entry. Node-shaped maps
// render through the standard recursive path; scalar values render as
// text spans.
func (r *Renderer) renderSlotValue(keyBase string, def any, ctx Context) []*Element {
	entries, isList := def.([]any)
	if !isList {
		entries = []any{def}
	}

	out := make([]*Element, 0, len(entries))
	for idx, entry := range entries {
		if nodeDef, ok := decodeNodeDef(entry); ok && nodeDef.Type != "" {
			if nodeDef.ID == "" {
				nodeDef.ID = keyBase + "-" + strconv.Itoa(idx)
			}
			if el := r.Render(nodeDef, ctx); el != nil {
				out = append(out, el)
			}
			continue
		}
		text := r.host.ResolveText(contract.Stringify(entry), ctx.Data)
		out = append(out, NewElement("span").withText(text))
	}
	return out
}
