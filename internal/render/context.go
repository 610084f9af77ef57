package render

import (
	"github.com/orqui/orqui/internal/contract"
	"github.com/orqui/orqui/internal/template"
)

// Host is the capability set the renderer consumes from a mounted
// contract context. The runtime package implements it; tests supply
// lightweight fakes.
type Host interface {
	// Resolve resolves a template string against merged data.
	Resolve(tpl string, data map[string]any) template.ResolvedTemplate
	// ResolveText is the literal-only projection of Resolve.
	ResolveText(tpl string, data map[string]any) string
	// IsVisible evaluates a visibility rule for the current page,
	// viewport, and the given data context.
	IsVisible(rule *contract.Rule, data map[string]any) bool
	// ResolveToken resolves a "$tokens." reference, pass-through on miss.
	ResolveToken(ref string) string
	// TextStyle returns a named text style.
	TextStyle(name string) (contract.TextStyleDef, bool)
	// EmptyState returns the contract-level empty-state defaults.
	EmptyState() contract.EmptyStateConfig
	// ActiveTab returns the runtime-held active tab for a tabs node.
	ActiveTab(nodeID string) (string, bool)
}

// ActionFunc receives fire-and-forget action callbacks. The second
// argument is the data item in scope, if any.
type ActionFunc func(actionID string, item any)

// NavigateFunc receives navigation callbacks.
type NavigateFunc func(route string)

// Context bundles the values threaded unchanged through every
// recursive render call: the data context, injected slot content, and
// the consumer callbacks. It is immutable; branches that scope new
// data derive a copy via WithData.
type Context struct {
	Data       map[string]any
	Slots      map[string][]*Element
	OnAction   ActionFunc
	OnNavigate NavigateFunc
}

// WithData returns a context whose data is the receiver's merged with
// local entries, local taking precedence. Slots and callbacks are
// threaded unchanged.
func (c Context) WithData(local map[string]any) Context {
	merged := make(map[string]any, len(c.Data)+len(local))
	for k, v := range c.Data {
		merged[k] = v
	}
	for k, v := range local {
		merged[k] = v
	}
	c.Data = merged
	return c
}

// Action invokes the action callback if one is set.
func (c Context) Action(actionID string, item any) {
	if c.OnAction != nil {
		c.OnAction(actionID, item)
	}
}

// Navigate invokes the navigation callback if one is set.
func (c Context) Navigate(route string) {
	if c.OnNavigate != nil {
		c.OnNavigate(route)
	}
}
