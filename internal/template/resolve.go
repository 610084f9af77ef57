package template

import (
	"strings"

	"github.com/orqui/orqui/internal/contract"
)

// Resolver resolves templates against one contract's app context.
type Resolver struct {
	app *contract.AppContext
}

// NewResolver creates a resolver bound to an app context. A nil app
// context resolves only plain data paths.
func NewResolver(app *contract.AppContext) *Resolver {
	return &Resolver{app: app}
}

// Resolve tokenizes and evaluates a template against a data context.
func (r *Resolver) Resolve(tpl string, data map[string]any) ResolvedTemplate {
	segments := tokenize(tpl)
	if len(segments) == 0 {
		return ResolvedTemplate{Parts: []Part{}}
	}

	ctx := contract.BuildContext(data, r.app)

	out := ResolvedTemplate{Parts: make([]Part, 0, len(segments))}
	for _, seg := range segments {
		if !seg.expr {
			out.Parts = append(out.Parts, Part{Kind: PartLiteral, Text: seg.text})
			continue
		}
		part := evalExpression(seg.text, ctx)
		if part.Rich != nil {
			out.HasRichValues = true
		}
		out.Parts = append(out.Parts, part)
	}
	return out
}

// ResolveText is the literal-only projection of Resolve.
func (r *Resolver) ResolveText(tpl string, data map[string]any) string {
	return r.Resolve(tpl, data).Text()
}

type segment struct {
	text string
	expr bool
}

// tokenize splits a template into literal and expression segments.
// An unterminated "{{" is treated as literal text.
func tokenize(tpl string) []segment {
	var segments []segment
	rest := tpl
	for rest != "" {
		open := strings.Index(rest, "{{")
		if open == -1 {
			segments = append(segments, segment{text: rest})
			break
		}
		close := strings.Index(rest[open:], "}}")
		if close == -1 {
			segments = append(segments, segment{text: rest})
			break
		}
		if open > 0 {
			segments = append(segments, segment{text: rest[:open]})
		}
		segments = append(segments, segment{text: rest[open+2 : open+close], expr: true})
		rest = rest[open+close+2:]
	}
	return segments
}

// evalExpression evaluates "path | formatter:arg" to a resolved part.
func evalExpression(expr string, ctx map[string]any) Part {
	path := expr
	var formatter, arg string

	if pipe := strings.Index(expr, "|"); pipe != -1 {
		path = strings.TrimSpace(expr[:pipe])
		formatter = strings.TrimSpace(expr[pipe+1:])
		if colon := strings.Index(formatter, ":"); colon != -1 {
			arg = strings.TrimSpace(formatter[colon+1:])
			formatter = strings.TrimSpace(formatter[:colon])
		}
	}

	val, found := contract.LookupPath(ctx, path)
	if !found {
		return Part{Kind: PartResolved, Text: ""}
	}

	return applyFormatter(formatter, arg, val)
}

// Default colors for rich formatters when no argument is given.
const (
	defaultBadgeColor = "gray"
	trueColor         = "green"
	falseColor        = "red"
)

func applyFormatter(formatter, arg string, val any) Part {
	text := contract.Stringify(val)

	switch formatter {
	case "":
		return Part{Kind: PartResolved, Text: text}
	case "badge":
		color := arg
		if color == "" {
			color = defaultBadgeColor
		}
		return richPart(RichValue{Kind: RichBadge, Text: text, Color: color})
	case "bool":
		if contract.Truthy(val) {
			return richPart(RichValue{Kind: RichBooleanIcon, Text: "Yes", Color: trueColor})
		}
		return richPart(RichValue{Kind: RichBooleanIcon, Text: "No", Color: falseColor})
	case "link":
		label := arg
		if label == "" {
			label = text
		}
		return richPart(RichValue{Kind: RichLink, Text: label, Href: text})
	case "color":
		color := arg
		if color == "" {
			color = text
		}
		return richPart(RichValue{Kind: RichColor, Text: text, Color: color})
	case "upper":
		return Part{Kind: PartResolved, Text: strings.ToUpper(text)}
	case "lower":
		return Part{Kind: PartResolved, Text: strings.ToLower(text)}
	default:
		// Unknown formatter: keep the value, drop the formatter.
		return Part{Kind: PartResolved, Text: text}
	}
}

func richPart(rv RichValue) Part {
	return Part{Kind: PartResolved, Text: rv.Text, Rich: &rv}
}
