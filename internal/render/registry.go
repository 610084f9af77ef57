package render

import (
	"strings"

	"github.com/orqui/orqui/internal/contract"
)

// RendererFunc renders one external component node. It receives the
// threaded render context, the node itself, the merged component props
// bag, and the resolved named slots.
type RendererFunc func(ctx Context, node contract.NodeDef, props map[string]any, slots map[string][]*Element) *Element

// Entry is a registry entry carrying a renderer plus metadata.
type Entry struct {
	Renderer    RendererFunc
	Description string
}

// Registry maps component names to consumer-supplied renderers. It is
// read-only during rendering. Entries may be bare RendererFuncs or
// Entry values.
type Registry struct {
	Components map[string]any
}

// ResolveState classifies a registry lookup outcome. The three failure
// states are individually diagnosable in rendered output.
type ResolveState int

const (
	// Resolved means a usable renderer was found.
	Resolved ResolveState = iota
	// NotRegistered means no entry exists under the name.
	NotRegistered
	// NoRenderer means an entry exists but carries no renderer.
	NoRenderer
)

// ResolveEntry looks up a renderer by type or component name,
// normalized name first, then the original spelling.
func (r *Registry) ResolveEntry(typeOrName string) (RendererFunc, ResolveState) {
	if r == nil || len(r.Components) == 0 {
		return nil, NotRegistered
	}

	raw, ok := r.Components[normalizeType(typeOrName)]
	if !ok {
		raw, ok = r.Components[typeOrName]
	}
	if !ok {
		return nil, NotRegistered
	}

	switch entry := raw.(type) {
	case RendererFunc:
		return entry, Resolved
	case func(Context, contract.NodeDef, map[string]any, map[string][]*Element) *Element:
		return entry, Resolved
	case Entry:
		if entry.Renderer == nil {
			return nil, NoRenderer
		}
		return entry.Renderer, Resolved
	case *Entry:
		if entry == nil || entry.Renderer == nil {
			return nil, NoRenderer
		}
		return entry.Renderer, Resolved
	default:
		return nil, NoRenderer
	}
}

// componentName extracts the external component name from a
// component-typed node. Precedence: props.name, then props.component,
// then props.componentName. First non-empty wins.
func componentName(node contract.NodeDef) string {
	for _, key := range []string{"name", "component", "componentName"} {
		if v, ok := node.Prop(key); ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

// reservedComponentProps are node props consumed by component-ref
// resolution itself and excluded from the merged component props bag.
var reservedComponentProps = map[string]bool{
	"name": true, "component": true, "componentName": true,
	"props": true, "slots": true,
}

// componentProps builds the component props bag: props.props (if
// given) merged over the remaining non-reserved node props.
func componentProps(node contract.NodeDef) map[string]any {
	out := map[string]any{}
	for k, v := range node.Props {
		if !reservedComponentProps[k] {
			out[k] = v
		}
	}
	if explicit, ok := node.Prop("props"); ok {
		if m, ok := explicit.(map[string]any); ok {
			for k, v := range m {
				out[k] = v
			}
		}
	}
	return out
}
