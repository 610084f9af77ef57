package render

import (
	"github.com/orqui/orqui/internal/contract"
	"github.com/orqui/orqui/internal/template"
	"github.com/orqui/orqui/internal/token"
	"github.com/orqui/orqui/internal/visibility"
)

// testHost is a minimal Host over static contract pieces, standing in
// for the runtime package in renderer tests.
type testHost struct {
	app        *contract.AppContext
	tokens     *token.Resolver
	textStyles map[string]contract.TextStyleDef
	emptyState contract.EmptyStateConfig
	activeTabs map[string]string
	page       string
	viewport   contract.Breakpoint
}

func newTestHost() *testHost {
	return &testHost{
		app:        &contract.AppContext{App: contract.AppConfig{Name: "Gatekeeper"}},
		tokens:     token.NewResolver(nil),
		textStyles: map[string]contract.TextStyleDef{},
		activeTabs: map[string]string{},
		page:       "home",
		viewport:   contract.BreakpointDesktop,
	}
}

func (h *testHost) withTokens(tokens map[string]map[string]contract.TokenDef) *testHost {
	h.tokens = token.NewResolver(tokens)
	return h
}

func (h *testHost) Resolve(tpl string, data map[string]any) template.ResolvedTemplate {
	return template.NewResolver(h.app).Resolve(tpl, data)
}

func (h *testHost) ResolveText(tpl string, data map[string]any) string {
	return template.NewResolver(h.app).ResolveText(tpl, data)
}

func (h *testHost) IsVisible(rule *contract.Rule, data map[string]any) bool {
	return visibility.Evaluate(rule, h.page, data, h.app, h.viewport)
}

func (h *testHost) ResolveToken(ref string) string {
	return h.tokens.Resolve(ref)
}

func (h *testHost) TextStyle(name string) (contract.TextStyleDef, bool) {
	ts, ok := h.textStyles[name]
	return ts, ok
}

func (h *testHost) EmptyState() contract.EmptyStateConfig {
	return h.emptyState
}

func (h *testHost) ActiveTab(nodeID string) (string, bool) {
	active, ok := h.activeTabs[nodeID]
	return active, ok
}

func newTestRenderer(reg *Registry) (*Renderer, *testHost) {
	h := newTestHost()
	return New(h, reg), h
}
