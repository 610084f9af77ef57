package contract

// Contract is the root layout contract document. It describes the app
// shell, design tokens, navigation, and pages of a declaratively
// rendered application. The document is supplied whole by the hosting
// application; Orqui never mutates it after Normalize.
type Contract struct {
	App        AppConfig                      `json:"app"`
	Tokens     map[string]map[string]TokenDef `json:"tokens,omitempty"`
	TextStyles map[string]TextStyleDef        `json:"textStyles,omitempty"`
	Shell      ShellConfig                    `json:"shell"`
	Navigation []NavItem                      `json:"navigation,omitempty"`
	Pages      map[string]Page                `json:"pages,omitempty"`
	Structure  StructureConfig                `json:"structure,omitempty"`
	Stamp      *Stamp                         `json:"$orqui,omitempty"`
}

// Stamp carries provenance metadata for a contract document. The hash
// covers the canonical JSON of the document with the stamp removed.
type Stamp struct {
	Version     string `json:"version,omitempty"`
	Hash        string `json:"hash,omitempty"`
	GeneratedAt string `json:"generatedAt,omitempty"`
}

// AppConfig describes the application identity shown in the shell.
type AppConfig struct {
	Name    string     `json:"name"`
	Favicon string     `json:"favicon,omitempty"`
	Logo    LogoConfig `json:"logo,omitempty"`
}

// LogoConfig selects one of three logo variants.
type LogoConfig struct {
	Variant string `json:"variant,omitempty"` // "text", "icon-text", or "image"
	Text    string `json:"text,omitempty"`
	Icon    string `json:"icon,omitempty"`
	Src     string `json:"src,omitempty"`
}

// TokenDef is a single named design value within a token category.
type TokenDef struct {
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// TextStyleDef describes a named text style.
type TextStyleDef struct {
	Family     string `json:"family,omitempty"`
	Size       string `json:"size,omitempty"`
	Weight     string `json:"weight,omitempty"`
	LineHeight string `json:"lineHeight,omitempty"`
	Transform  string `json:"transform,omitempty"`
}

// Shell layout kinds.
const (
	LayoutSidebarLeft  = "sidebar-left"
	LayoutSidebarRight = "sidebar-right"
	LayoutTopbar       = "topbar"
	LayoutMinimal      = "minimal"
)

// ValidLayouts defines the allowed shell layout kinds.
var ValidLayouts = map[string]bool{
	LayoutSidebarLeft:  true,
	LayoutSidebarRight: true,
	LayoutTopbar:       true,
	LayoutMinimal:      true,
}

// ShellConfig describes the application chrome around page content.
type ShellConfig struct {
	Layout  string         `json:"layout"`
	Sidebar *SidebarConfig `json:"sidebar,omitempty"`
	Header  *HeaderConfig  `json:"header,omitempty"`
	Footer  *FooterConfig  `json:"footer,omitempty"`
}

// SidebarConfig describes sidebar behavior.
type SidebarConfig struct {
	Width       string `json:"width,omitempty"`
	Collapsible bool   `json:"collapsible,omitempty"`
	Collapsed   bool   `json:"collapsed,omitempty"`
}

// HeaderConfig holds the shell-level header defaults. Pages may hide,
// add, or override elements via PageHeader.
type HeaderConfig struct {
	Elements []HeaderElement `json:"elements,omitempty"`
	CTA      *NodeDef        `json:"cta,omitempty"`
}

// FooterConfig describes the shell footer.
type FooterConfig struct {
	Elements []HeaderElement `json:"elements,omitempty"`
}

// Header zones.
const (
	ZoneLeft   = "left"
	ZoneCenter = "center"
	ZoneRight  = "right"
)

// HeaderElement is one zoned element of the shell header or footer.
type HeaderElement struct {
	ID         string   `json:"id"`
	Zone       string   `json:"zone,omitempty"` // defaults to "right"
	Node       NodeDef  `json:"node"`
	Visibility *Rule    `json:"visibility,omitempty"`
}

// NavItem is one entry of the app navigation. Order determines render
// order ascending; ties keep original array order (stable sort).
type NavItem struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Icon       string    `json:"icon,omitempty"`
	Route      string    `json:"route,omitempty"`
	Order      int       `json:"order,omitempty"`
	Type       string    `json:"type,omitempty"` // "page", "group", or "divider"
	Visibility *Rule     `json:"visibility,omitempty"`
	Children   []NavItem `json:"children,omitempty"`
}

// Page is one routable page of the contract.
type Page struct {
	ID         string      `json:"id"`
	Label      string      `json:"label,omitempty"`
	Route      string      `json:"route,omitempty"`
	Header     *PageHeader `json:"header,omitempty"`
	Content    NodeDef     `json:"content"`
	Visibility *Rule       `json:"visibility,omitempty"`
}

// PageHeader carries per-page overrides applied over the shell header
// defaults: Hide removes elements by id, Add appends new ones, CTA
// replaces the shell CTA. Overrides apply before the final visibility
// pass so an added element can itself be hidden by the same rule
// evaluation.
type PageHeader struct {
	Title string          `json:"title,omitempty"`
	Hide  []string        `json:"hide,omitempty"`
	Add   []HeaderElement `json:"add,omitempty"`
	CTA   *NodeDef        `json:"cta,omitempty"`
}

// StructureConfig holds contract-level defaults for structural widgets.
type StructureConfig struct {
	EmptyState EmptyStateConfig `json:"emptyState,omitempty"`
}

// EmptyStateConfig configures the empty-state shown by table and list
// nodes when their data source resolves to zero items.
type EmptyStateConfig struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ActionLabel string `json:"actionLabel,omitempty"`
	ShowAction  *bool  `json:"showAction,omitempty"`
}

// NodeDef is one element of the recursive UI tree, discriminated by
// Type. Props is a free-form bag whose shape depends on the type; a
// node with missing Props behaves as if Props were empty.
type NodeDef struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Props      map[string]any    `json:"props,omitempty"`
	Children   []NodeDef         `json:"children,omitempty"`
	Style      map[string]string `json:"style,omitempty"`
	Visibility *Rule             `json:"visibility,omitempty"`
}

// Prop returns the named prop, treating missing Props as empty.
func (n NodeDef) Prop(key string) (any, bool) {
	if n.Props == nil {
		return nil, false
	}
	v, ok := n.Props[key]
	return v, ok
}

// Breakpoint classifies a viewport width.
type Breakpoint string

// Viewport breakpoints. Mobile is strictly below 768px, tablet strictly
// below 1024px, everything wider is desktop.
const (
	BreakpointMobile  Breakpoint = "mobile"
	BreakpointTablet  Breakpoint = "tablet"
	BreakpointDesktop Breakpoint = "desktop"
)

// ValidBreakpoints defines the allowed breakpoint names in rules.
var ValidBreakpoints = map[Breakpoint]bool{
	BreakpointMobile:  true,
	BreakpointTablet:  true,
	BreakpointDesktop: true,
}

// Rule is a declarative visibility predicate over the current page, the
// data context, and the viewport breakpoint. A nil rule means "always
// visible". All listed constraints must hold for the subject to render.
type Rule struct {
	Pages       []string     `json:"pages,omitempty"`
	Breakpoints []Breakpoint `json:"breakpoints,omitempty"`
	When        *Condition   `json:"when,omitempty"`
	All         []Condition  `json:"all,omitempty"`
	Any         []Condition  `json:"any,omitempty"`
	Not         *Condition   `json:"not,omitempty"`
}

// Condition operators.
const (
	OpEq       = "eq"
	OpNeq      = "neq"
	OpGt       = "gt"
	OpGte      = "gte"
	OpLt       = "lt"
	OpLte      = "lte"
	OpExists   = "exists"
	OpEmpty    = "empty"
	OpContains = "contains"
	OpIn       = "in"
)

// ValidOps defines the allowed condition operators.
var ValidOps = map[string]bool{
	OpEq: true, OpNeq: true,
	OpGt: true, OpGte: true, OpLt: true, OpLte: true,
	OpExists: true, OpEmpty: true, OpContains: true, OpIn: true,
}

// Condition is a single data predicate, or a boolean composition of
// nested conditions when All/Any/Not are set.
type Condition struct {
	Path  string      `json:"path,omitempty"`
	Op    string      `json:"op,omitempty"` // defaults to "eq" when Value given, "exists" otherwise
	Value any         `json:"value,omitempty"`
	All   []Condition `json:"all,omitempty"`
	Any   []Condition `json:"any,omitempty"`
	Not   *Condition  `json:"not,omitempty"`
}

// AppContext is the static application context threaded into template
// resolution and visibility evaluation alongside the per-node data
// context.
type AppContext struct {
	App       AppConfig
	Page      string
	Locale    string
	Variables map[string]any
	Tokens    map[string]map[string]TokenDef
}
