package render

import (
	"strings"

	"github.com/orqui/orqui/internal/contract"
)

// Diagnostic marker attributes carried by degraded placeholders.
const (
	AttrNodeID       = "data-orqui-id"
	AttrUnknownType  = "data-orqui-unknown-type"
	AttrMissingName  = "data-orqui-missing-name"
	AttrUnregistered = "data-orqui-unregistered"
	AttrNoRenderer   = "data-orqui-no-renderer"
	AttrSlot         = "data-orqui-slot"
	AttrEmptyState   = "data-orqui-empty"
)

// Renderer renders contract node trees against one host.
type Renderer struct {
	host     Host
	registry *Registry
}

// New creates a renderer. The registry may be nil.
func New(host Host, registry *Registry) *Renderer {
	return &Renderer{host: host, registry: registry}
}

// handlerFunc renders one native node type. The style override map is
// applied by Render after dispatch; handlers only build their own
// computed style.
type handlerFunc func(r *Renderer, node contract.NodeDef, ctx Context) *Element

// nativeHandlers is the closed set of native node types. Anything else
// resolves through the registry or degrades to an unknown-type
// container.
var nativeHandlers map[string]handlerFunc

// Populated in init to break the initialization cycle between the map
// and the handler methods that re-enter Render.
func init() {
	nativeHandlers = map[string]handlerFunc{
		// layout
		"grid":      (*Renderer).renderGrid,
		"stack":     (*Renderer).renderStack,
		"row":       (*Renderer).renderRow,
		"container": (*Renderer).renderContainer,
		// content
		"text":    (*Renderer).renderText,
		"heading": (*Renderer).renderHeading,
		"badge":   (*Renderer).renderBadge,
		"icon":    (*Renderer).renderIcon,
		"button":  (*Renderer).renderButton,
		"image":   (*Renderer).renderImage,
		"divider": (*Renderer).renderDivider,
		"spacer":  (*Renderer).renderSpacer,
		"link":    (*Renderer).renderLink,
		"avatar":  (*Renderer).renderAvatar,
		// data
		"stat-card": (*Renderer).renderStatCard,
		"card":      (*Renderer).renderCard,
		"key-value": (*Renderer).renderKeyValue,
		"table":     (*Renderer).renderTable,
		"list":      (*Renderer).renderList,
		"progress":  (*Renderer).renderProgress,
		// navigation
		"tabs": (*Renderer).renderTabs,
		// input
		"search": (*Renderer).renderSearch,
		"select": (*Renderer).renderSelect,
		// special
		"slot":      (*Renderer).renderSlot,
		"component": (*Renderer).renderComponent,
	}
}

// typeAliases maps known alternate spellings to canonical native types.
var typeAliases = map[string]string{
	"hstack": "row",
	"vstack": "stack",
}

// normalizeType lowercases and strips whitespace from a node type and
// applies the alias table.
func normalizeType(t string) string {
	norm := strings.ToLower(strings.Join(strings.Fields(t), ""))
	if canonical, ok := typeAliases[norm]; ok {
		return canonical
	}
	return norm
}

// Render renders one node. Returns nil when the node's visibility rule
// evaluates false: absence, not an empty box. Malformed nodes degrade
// to marked placeholders; Render never panics on data problems.
func (r *Renderer) Render(node contract.NodeDef, ctx Context) *Element {
	if !r.host.IsVisible(node.Visibility, ctx.Data) {
		return nil
	}

	normalized := normalizeType(node.Type)

	var el *Element
	if handler, ok := nativeHandlers[normalized]; ok {
		el = handler(r, node, ctx)
	} else if fn, state := r.registry.ResolveEntry(node.Type); state == Resolved {
		el = r.renderExternal(fn, node, ctx)
	} else {
		el = r.renderUnknown(node, ctx)
	}
	if el == nil {
		return nil
	}

	// Node-level style overrides win: token-resolved, applied last.
	for k, v := range node.Style {
		el.SetStyle(k, r.host.ResolveToken(v))
	}
	if node.ID != "" {
		el.SetAttr(AttrNodeID, node.ID)
	}
	return el
}

// RenderChildren renders a node list in order, dropping invisible
// results. Children are never dropped silently for any other reason.
func (r *Renderer) RenderChildren(children []contract.NodeDef, ctx Context) []*Element {
	out := make([]*Element, 0, len(children))
	for _, child := range children {
		if el := r.Render(child, ctx); el != nil {
			out = append(out, el)
		}
	}
	return out
}

// renderUnknown renders the graceful-degradation container for a type
// that is neither native nor registered. Children still render.
func (r *Renderer) renderUnknown(node contract.NodeDef, ctx Context) *Element {
	el := NewElement("div").
		SetAttr(AttrUnknownType, node.Type).
		SetStyle("border", "1px dashed #999")
	el.Append(r.RenderChildren(node.Children, ctx)...)
	return el
}

// resolveParts renders a resolved template as inline elements when it
// carries rich values, or as a single text node otherwise. Callers
// embed the result inside their own element.
func (r *Renderer) applyResolved(el *Element, tpl string, ctx Context) {
	resolved := r.host.Resolve(tpl, ctx.Data)
	if !resolved.HasRichValues {
		el.Text = resolved.Text()
		return
	}
	for _, part := range resolved.Parts {
		if part.Rich == nil {
			if part.Text != "" {
				el.Append(&Element{Tag: "span", Text: part.Text})
			}
			continue
		}
		el.Append(renderRichValue(part.Rich, r))
	}
}
