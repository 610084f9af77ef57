package runtime

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/orqui/orqui/internal/contract"
	"github.com/orqui/orqui/internal/render"
	"github.com/orqui/orqui/internal/template"
	"github.com/orqui/orqui/internal/token"
	"github.com/orqui/orqui/internal/visibility"
)

// Options configures a mount.
type Options struct {
	// Registry supplies external component renderers. May be nil.
	Registry *render.Registry
	// StyleSink receives the generated token stylesheet. Defaults to an
	// in-process MemorySink.
	StyleSink token.Sink
	// Data is the global data context merged under per-call local data.
	Data map[string]any
	// Page is the initial current page id.
	Page string
	// ViewportWidth seeds breakpoint classification; 0 means desktop.
	ViewportWidth int
	// Locale and Variables populate the reserved template context.
	Locale    string
	Variables map[string]any
	// Slots is consumer-injected named content for slot nodes.
	Slots map[string][]*render.Element
	// OnAction and OnNavigate are threaded through every render call.
	OnAction   render.ActionFunc
	OnNavigate render.NavigateFunc
}

// Runtime is one mounted contract context.
type Runtime struct {
	mu sync.RWMutex

	id       string
	contract contract.Contract
	tokens   *token.Resolver
	sink     token.Sink
	renderer *render.Renderer

	data      map[string]any
	slots     map[string][]*render.Element
	onAction  render.ActionFunc
	onNav     render.NavigateFunc
	locale    string
	variables map[string]any

	page             string
	viewport         contract.Breakpoint
	viewportWidth    int
	activeTabs       map[string]string
	sidebarCollapsed bool

	mounted bool
}

// Mount normalizes a contract and builds a runtime over it. The token
// stylesheet is written through the style sink before Mount returns.
func Mount(c contract.Contract, opts Options) (*Runtime, error) {
	normalized := contract.Normalize(c)

	sink := opts.StyleSink
	if sink == nil {
		sink = token.NewMemorySink()
	}

	data := opts.Data
	if data == nil {
		data = map[string]any{}
	}

	r := &Runtime{
		id:            uuid.NewString(),
		contract:      normalized,
		tokens:        token.NewResolver(normalized.Tokens),
		sink:          sink,
		data:          data,
		slots:         opts.Slots,
		onAction:      opts.OnAction,
		onNav:         opts.OnNavigate,
		locale:        opts.Locale,
		variables:     opts.Variables,
		page:          opts.Page,
		viewport:      visibility.Classify(opts.ViewportWidth),
		viewportWidth: opts.ViewportWidth,
		activeTabs:    map[string]string{},
		mounted:       true,
	}
	if r.contract.Shell.Sidebar != nil {
		r.sidebarCollapsed = r.contract.Shell.Sidebar.Collapsed
	}
	r.renderer = render.New(r, opts.Registry)

	if err := sink.Apply(token.StyleTagID, token.GenerateCSS(normalized.Tokens)); err != nil {
		return nil, fmt.Errorf("mount: apply token styles: %w", err)
	}
	return r, nil
}

// Close removes the injected stylesheet and unmounts the runtime. Any
// later use panics. Close itself is idempotent.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.mounted {
		return nil
	}
	r.mounted = false
	if err := r.sink.Remove(token.StyleTagID); err != nil {
		return fmt.Errorf("close: remove token styles: %w", err)
	}
	return nil
}

// ID returns the unique identifier of this mount.
func (r *Runtime) ID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	return r.id
}

// Contract returns the normalized contract.
func (r *Runtime) Contract() contract.Contract {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	return r.contract
}

// ensureMounted panics when the runtime is used outside its mounted
// lifetime. Callers must hold at least a read lock.
func (r *Runtime) ensureMounted() {
	if !r.mounted {
		panic("orqui: runtime used outside a mounted context (after Close)")
	}
}

// appContext builds the static app context for the current page.
// Callers must hold at least a read lock.
func (r *Runtime) appContext() *contract.AppContext {
	return &contract.AppContext{
		App:       r.contract.App,
		Page:      r.page,
		Locale:    r.locale,
		Variables: r.variables,
		Tokens:    r.contract.Tokens,
	}
}

// mergedData merges per-call local data over the global data context,
// local winning.
func (r *Runtime) mergedData(local map[string]any) map[string]any {
	if len(local) == 0 {
		return r.data
	}
	merged := make(map[string]any, len(r.data)+len(local))
	for k, v := range r.data {
		merged[k] = v
	}
	for k, v := range local {
		merged[k] = v
	}
	return merged
}

// Resolve resolves a template against the global data merged with
// local data.
func (r *Runtime) Resolve(tpl string, local map[string]any) template.ResolvedTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	return template.NewResolver(r.appContext()).Resolve(tpl, r.mergedData(local))
}

// ResolveText is the literal-only projection of Resolve.
func (r *Runtime) ResolveText(tpl string, local map[string]any) string {
	return r.Resolve(tpl, local).Text()
}

// IsVisible evaluates a visibility rule for the current page and
// viewport against merged data. A nil rule is always visible.
func (r *Runtime) IsVisible(rule *contract.Rule, local map[string]any) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	return visibility.Evaluate(rule, r.page, r.mergedData(local), r.appContext(), r.viewport)
}

// FilterVisible returns the nodes whose rules evaluate true, order
// preserved.
func (r *Runtime) FilterVisible(nodes []contract.NodeDef, local map[string]any) []contract.NodeDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	return visibility.Filter(nodes, func(n contract.NodeDef) *contract.Rule { return n.Visibility },
		r.page, r.mergedData(local), r.appContext(), r.viewport)
}

// ResolveToken resolves a "$tokens." reference; pass-through on miss.
func (r *Runtime) ResolveToken(ref string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	return r.tokens.Resolve(ref)
}

// TextStyle returns a named text style.
func (r *Runtime) TextStyle(name string) (contract.TextStyleDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	ts, ok := r.contract.TextStyles[name]
	return ts, ok
}

// EmptyState returns the contract-level empty-state defaults.
func (r *Runtime) EmptyState() contract.EmptyStateConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	return r.contract.Structure.EmptyState
}

// ActiveTab returns the runtime-held active tab for a tabs node.
func (r *Runtime) ActiveTab(nodeID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	tab, ok := r.activeTabs[nodeID]
	return tab, ok
}

// SetActiveTab records the active tab for a tabs node.
func (r *Runtime) SetActiveTab(nodeID, tabID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureMounted()
	r.activeTabs[nodeID] = tabID
}

// Page returns a page definition by id.
func (r *Runtime) Page(id string) (contract.Page, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	p, ok := r.contract.Pages[id]
	return p, ok
}

// CurrentPage returns the current page id.
func (r *Runtime) CurrentPage() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	return r.page
}

// SetPage switches the current page.
func (r *Runtime) SetPage(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureMounted()
	r.page = id
}

// Viewport returns the current breakpoint.
func (r *Runtime) Viewport() contract.Breakpoint {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	return r.viewport
}

// SetViewportWidth reclassifies the breakpoint from a new viewport
// width, the analog of a window resize event.
func (r *Runtime) SetViewportWidth(width int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureMounted()
	r.viewportWidth = width
	r.viewport = visibility.Classify(width)
}

// SidebarCollapsed returns the sidebar collapse state.
func (r *Runtime) SidebarCollapsed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	return r.sidebarCollapsed
}

// SetSidebarCollapsed updates the sidebar collapse state.
func (r *Runtime) SetSidebarCollapsed(collapsed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureMounted()
	r.sidebarCollapsed = collapsed
}

// SetTokens replaces the token table and synchronously rewrites the
// injected stylesheet under the same id. The sheet is replaced, never
// appended, so re-application is idempotent across re-renders.
func (r *Runtime) SetTokens(tokens map[string]map[string]contract.TokenDef) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureMounted()
	if tokens == nil {
		tokens = map[string]map[string]contract.TokenDef{}
	}
	r.contract.Tokens = tokens
	r.tokens = token.NewResolver(tokens)
	if err := r.sink.Apply(token.StyleTagID, token.GenerateCSS(tokens)); err != nil {
		return fmt.Errorf("set tokens: %w", err)
	}
	return nil
}

// NavItems returns the navigation sorted by order ascending (ties keep
// input order) and visibility-filtered, children included.
func (r *Runtime) NavItems(local map[string]any) []contract.NavItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	r.ensureMounted()
	return r.navItems(r.contract.Navigation, r.mergedData(local))
}

func (r *Runtime) navItems(items []contract.NavItem, data map[string]any) []contract.NavItem {
	sorted := make([]contract.NavItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	app := r.appContext()
	visible := visibility.Filter(sorted, func(n contract.NavItem) *contract.Rule { return n.Visibility },
		r.page, data, app, r.viewport)

	for i := range visible {
		if len(visible[i].Children) > 0 {
			visible[i].Children = r.navItems(visible[i].Children, data)
		}
	}
	return visible
}

// Render renders one node against the global data merged with local
// data, threading the mount's slots and callbacks.
func (r *Runtime) Render(node contract.NodeDef, local map[string]any) *render.Element {
	r.mu.RLock()
	r.ensureMounted()
	ctx := render.Context{
		Data:       r.mergedData(local),
		Slots:      r.slots,
		OnAction:   r.onAction,
		OnNavigate: r.onNav,
	}
	renderer := r.renderer
	r.mu.RUnlock()
	return renderer.Render(node, ctx)
}

// RenderPage renders a page's content tree. An unknown page id is an
// error; an invisible page renders nil.
func (r *Runtime) RenderPage(id string, local map[string]any) (*render.Element, error) {
	page, ok := r.Page(id)
	if !ok {
		return nil, fmt.Errorf("render page: unknown page %q", id)
	}
	if !r.IsVisible(page.Visibility, local) {
		return nil, nil
	}
	return r.Render(page.Content, local), nil
}
