package render

import (
	"strconv"
	"strings"

	"github.com/orqui/orqui/internal/contract"
	"github.com/orqui/orqui/internal/template"
)

// renderRichValue materializes a template rich value as an inline
// element. Colors may themselves be token references.
func renderRichValue(rv *template.RichValue, r *Renderer) *Element {
	switch rv.Kind {
	case template.RichBadge:
		return NewElement("span").
			SetAttr("data-orqui-badge", string(rv.Kind)).
			SetStyle("background", r.host.ResolveToken(rv.Color)).
			withText(rv.Text)
	case template.RichBooleanIcon:
		return NewElement("span").
			SetAttr("data-orqui-bool", rv.Text).
			SetStyle("color", r.host.ResolveToken(rv.Color)).
			withText(rv.Text)
	case template.RichLink:
		return NewElement("a").
			SetAttr("href", rv.Href).
			withText(rv.Text)
	case template.RichColor:
		return NewElement("span").
			SetStyle("color", r.host.ResolveToken(rv.Color)).
			withText(rv.Text)
	default:
		return NewElement("span").withText(rv.Text)
	}
}

func (e *Element) withText(text string) *Element {
	e.Text = text
	return e
}

func (r *Renderer) renderText(node contract.NodeDef, ctx Context) *Element {
	el := NewElement("span")
	if styleName := stringProp(node, "textStyle", ""); styleName != "" {
		if ts, ok := r.host.TextStyle(styleName); ok {
			applyTextStyle(el, ts)
		}
	}
	r.applyResolved(el, stringProp(node, "content", ""), ctx)
	return el
}

func applyTextStyle(el *Element, ts contract.TextStyleDef) {
	if ts.Family != "" {
		el.SetStyle("font-family", ts.Family)
	}
	if ts.Size != "" {
		el.SetStyle("font-size", ts.Size)
	}
	if ts.Weight != "" {
		el.SetStyle("font-weight", ts.Weight)
	}
	if ts.LineHeight != "" {
		el.SetStyle("line-height", ts.LineHeight)
	}
	if ts.Transform != "" {
		el.SetStyle("text-transform", ts.Transform)
	}
}

func (r *Renderer) renderHeading(node contract.NodeDef, ctx Context) *Element {
	level := intProp(node, "level", 2)
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	el := NewElement("h" + strconv.Itoa(level))
	r.applyResolved(el, stringProp(node, "content", ""), ctx)
	return el
}

// renderBadge extracts the first resolved rich part and uses its color
// when present, falling back to the plain resolved text.
func (r *Renderer) renderBadge(node contract.NodeDef, ctx Context) *Element {
	resolved := r.host.Resolve(stringProp(node, "content", ""), ctx.Data)

	el := NewElement("span").SetAttr("data-orqui-badge", "badge")
	if rich := resolved.FirstRich(); rich != nil {
		el.Text = rich.Text
		if rich.Color != "" {
			el.SetStyle("background", r.host.ResolveToken(rich.Color))
		}
		return el
	}
	el.Text = resolved.Text()
	if color := stringProp(node, "color", ""); color != "" {
		el.SetStyle("background", r.host.ResolveToken(color))
	}
	return el
}

func (r *Renderer) renderIcon(node contract.NodeDef, _ Context) *Element {
	return NewElement("span").
		SetAttr("data-orqui-icon", stringProp(node, "name", "circle"))
}

func (r *Renderer) renderButton(node contract.NodeDef, ctx Context) *Element {
	el := NewElement("button")
	if variant := stringProp(node, "variant", "primary"); variant != "" {
		el.SetAttr("data-variant", variant)
	}
	if action := stringProp(node, "action", ""); action != "" {
		el.SetAttr("data-action", action)
	}
	if route := stringProp(node, "route", ""); route != "" {
		el.SetAttr("data-route", route)
	}
	if icon := stringProp(node, "icon", ""); icon != "" {
		el.Append(NewElement("span").SetAttr("data-orqui-icon", icon))
	}
	label := r.host.ResolveText(stringProp(node, "label", ""), ctx.Data)
	if len(el.Children) > 0 {
		el.Append(NewElement("span").withText(label))
	} else {
		el.Text = label
	}
	return el
}

func (r *Renderer) renderImage(node contract.NodeDef, ctx Context) *Element {
	el := NewElement("img").
		SetAttr("src", r.host.ResolveText(stringProp(node, "src", ""), ctx.Data))
	if alt := stringProp(node, "alt", ""); alt != "" {
		el.SetAttr("alt", r.host.ResolveText(alt, ctx.Data))
	}
	return el
}

func (r *Renderer) renderDivider(node contract.NodeDef, _ Context) *Element {
	return NewElement("hr")
}

func (r *Renderer) renderSpacer(node contract.NodeDef, _ Context) *Element {
	size := stringProp(node, "size", "16px")
	return NewElement("div").SetStyle("height", r.host.ResolveToken(size))
}

func (r *Renderer) renderLink(node contract.NodeDef, ctx Context) *Element {
	el := NewElement("a").
		SetAttr("href", r.host.ResolveText(stringProp(node, "href", "#"), ctx.Data))
	r.applyResolved(el, stringProp(node, "content", ""), ctx)
	return el
}

// renderAvatar renders an image avatar when src is given, otherwise a
// monogram of up to two initials derived from the resolved name.
func (r *Renderer) renderAvatar(node contract.NodeDef, ctx Context) *Element {
	if src := stringProp(node, "src", ""); src != "" {
		return NewElement("img").
			SetAttr("data-orqui-avatar", "image").
			SetAttr("src", r.host.ResolveText(src, ctx.Data))
	}
	name := r.host.ResolveText(stringProp(node, "name", ""), ctx.Data)
	return NewElement("span").
		SetAttr("data-orqui-avatar", "monogram").
		withText(initials(name))
}

func initials(name string) string {
	fields := strings.Fields(name)
	var b strings.Builder
	for i, f := range fields {
		if i >= 2 {
			break
		}
		runes := []rune(f)
		b.WriteString(strings.ToUpper(string(runes[0])))
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}
