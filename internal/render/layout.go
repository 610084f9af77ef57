package render

import (
	"strconv"

	"github.com/orqui/orqui/internal/contract"
)

// DefaultGridColumns is the column count used when props.columns is
// missing or malformed.
const DefaultGridColumns = 12

func (r *Renderer) renderGrid(node contract.NodeDef, ctx Context) *Element {
	columns := intProp(node, "columns", DefaultGridColumns)
	if columns < 1 {
		columns = DefaultGridColumns
	}

	el := NewElement("div").
		SetStyle("display", "grid").
		SetStyle("grid-template-columns", "repeat("+strconv.Itoa(columns)+", minmax(0, 1fr))")
	if gap := stringProp(node, "gap", ""); gap != "" {
		el.SetStyle("gap", r.host.ResolveToken(gap))
	}

	// Spans are computed per child from the child's own props.span and
	// clamped to the grid width.
	for _, child := range node.Children {
		span := intProp(child, "span", 1)
		if span < 1 {
			span = 1
		}
		if span > columns {
			span = columns
		}
		rendered := r.Render(child, ctx)
		if rendered == nil {
			continue
		}
		if span > 1 {
			rendered.SetStyle("grid-column", "span "+strconv.Itoa(span))
		}
		el.Append(rendered)
	}
	return el
}

func (r *Renderer) renderStack(node contract.NodeDef, ctx Context) *Element {
	el := NewElement("div").
		SetStyle("display", "flex").
		SetStyle("flex-direction", "column")
	if gap := stringProp(node, "gap", ""); gap != "" {
		el.SetStyle("gap", r.host.ResolveToken(gap))
	}
	el.Append(r.RenderChildren(node.Children, ctx)...)
	return el
}

func (r *Renderer) renderRow(node contract.NodeDef, ctx Context) *Element {
	el := NewElement("div").
		SetStyle("display", "flex").
		SetStyle("flex-direction", "row")
	if gap := stringProp(node, "gap", ""); gap != "" {
		el.SetStyle("gap", r.host.ResolveToken(gap))
	}
	if boolProp(node, "wrap", false) {
		el.SetStyle("flex-wrap", "wrap")
	}
	if align := stringProp(node, "align", ""); align != "" {
		el.SetStyle("align-items", align)
	}
	if justify := stringProp(node, "justify", ""); justify != "" {
		el.SetStyle("justify-content", justify)
	}
	el.Append(r.RenderChildren(node.Children, ctx)...)
	return el
}

func (r *Renderer) renderContainer(node contract.NodeDef, ctx Context) *Element {
	el := NewElement("div")
	if padding := stringProp(node, "padding", ""); padding != "" {
		el.SetStyle("padding", r.host.ResolveToken(padding))
	}
	if background := stringProp(node, "background", ""); background != "" {
		el.SetStyle("background", r.host.ResolveToken(background))
	}
	if maxWidth := stringProp(node, "maxWidth", ""); maxWidth != "" {
		el.SetStyle("max-width", r.host.ResolveToken(maxWidth))
		el.SetStyle("margin", "0 auto")
	}
	el.Append(r.RenderChildren(node.Children, ctx)...)
	return el
}
