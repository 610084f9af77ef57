package template

// PartKind discriminates resolved-template parts.
type PartKind string

const (
	// PartLiteral is verbatim text between placeholders.
	PartLiteral PartKind = "literal"
	// PartResolved is the result of evaluating one placeholder.
	PartResolved PartKind = "resolved"
)

// RichKind discriminates rich values.
type RichKind string

// Rich value variants. Each carries enough data to render without
// further lookups.
const (
	RichBadge       RichKind = "badge"
	RichBooleanIcon RichKind = "boolean-icon"
	RichLink        RichKind = "link"
	RichColor       RichKind = "color"
)

// RichValue is a structured inline value produced by a rich formatter.
type RichValue struct {
	Kind  RichKind `json:"kind"`
	Text  string   `json:"text"`
	Color string   `json:"color,omitempty"`
	Href  string   `json:"href,omitempty"`
}

// Part is one segment of a resolved template. Text always holds the
// plain projection; Rich is set only on resolved parts carrying a rich
// value.
type Part struct {
	Kind PartKind   `json:"kind"`
	Text string     `json:"text"`
	Rich *RichValue `json:"rich,omitempty"`
}

// ResolvedTemplate is the ordered result of resolving one template
// string. HasRichValues short-circuits plain-text rendering: callers
// that only need text skip part inspection when it is false.
type ResolvedTemplate struct {
	Parts         []Part `json:"parts"`
	HasRichValues bool   `json:"hasRichValues"`
}

// Text returns the plain-text projection: literals verbatim, resolved
// parts degraded to their text field, order preserved.
func (rt ResolvedTemplate) Text() string {
	var out string
	for _, p := range rt.Parts {
		out += p.Text
	}
	return out
}

// FirstRich returns the first resolved part carrying a rich value.
// Formatting-aware call sites (badge rendering) inspect parts rather
// than the text projection to recover presentation metadata.
func (rt ResolvedTemplate) FirstRich() *RichValue {
	for _, p := range rt.Parts {
		if p.Rich != nil {
			return p.Rich
		}
	}
	return nil
}
