package render

import (
	"strconv"
	"strings"

	"github.com/orqui/orqui/internal/contract"
)

// Built-in empty-state defaults, the last tier of the fallback chain.
const (
	DefaultEmptyIcon        = "magnifying-glass"
	DefaultEmptyTitle       = "No items found"
	DefaultEmptyActionLabel = "Create New"
)

func (r *Renderer) renderStatCard(node contract.NodeDef, ctx Context) *Element {
	el := NewElement("div").SetAttr("data-orqui-stat", "stat-card")
	if icon := stringProp(node, "icon", ""); icon != "" {
		el.Append(NewElement("span").SetAttr("data-orqui-icon", icon))
	}
	label := NewElement("span").
		withText(r.host.ResolveText(stringProp(node, "label", ""), ctx.Data))
	value := NewElement("strong")
	r.applyResolved(value, stringProp(node, "value", ""), ctx)
	el.Append(label, value)
	if delta := stringProp(node, "delta", ""); delta != "" {
		el.Append(NewElement("span").
			SetAttr("data-orqui-delta", "delta").
			withText(r.host.ResolveText(delta, ctx.Data)))
	}
	return el
}

func (r *Renderer) renderCard(node contract.NodeDef, ctx Context) *Element {
	el := NewElement("div").SetAttr("data-orqui-card", "card")
	if title := stringProp(node, "title", ""); title != "" {
		heading := NewElement("h3")
		r.applyResolved(heading, title, ctx)
		el.Append(heading)
	}
	el.Append(r.RenderChildren(node.Children, ctx)...)
	return el
}

// renderKeyValue renders props.items, an array of {label, value}
// entries whose values may be templates. Malformed entries are
// skipped, never fatal.
func (r *Renderer) renderKeyValue(node contract.NodeDef, ctx Context) *Element {
	el := NewElement("dl")
	items, _ := sliceProp(node, "items")
	for _, raw := range items {
		entry, ok := mapValue(raw)
		if !ok {
			continue
		}
		label, _ := entry["label"].(string)
		value, _ := entry["value"].(string)
		el.Append(NewElement("dt").withText(r.host.ResolveText(label, ctx.Data)))
		dd := NewElement("dd")
		r.applyResolved(dd, value, ctx)
		el.Append(dd)
	}
	return el
}

func (r *Renderer) renderTable(node contract.NodeDef, ctx Context) *Element {
	items := resolveDataSource(node, ctx)
	if len(items) == 0 {
		return r.renderEmptyState(node, ctx)
	}

	columns, _ := sliceProp(node, "columns")
	singular := singularize(stringProp(node, "dataSource", "item"))

	el := NewElement("table")

	if len(columns) > 0 {
		headRow := NewElement("tr")
		for _, raw := range columns {
			col, _ := mapValue(raw)
			label, _ := col["label"].(string)
			headRow.Append(NewElement("th").withText(r.host.ResolveText(label, ctx.Data)))
		}
		el.Append(NewElement("thead").Append(headRow))
	}

	body := NewElement("tbody")
	for idx, item := range items {
		rowCtx := ctx.WithData(map[string]any{singular: item})
		row := NewElement("tr").SetAttr(AttrNodeID, derivedID(node.ID, idx))
		for _, raw := range columns {
			col, _ := mapValue(raw)
			row.Append(r.renderCell(col, item, rowCtx))
		}
		body.Append(row)
	}
	el.Append(body)
	return el
}

// renderCell renders one table cell: a cell template wins over a plain
// key lookup into the row item.
func (r *Renderer) renderCell(col map[string]any, item any, rowCtx Context) *Element {
	cell := NewElement("td")
	if tpl, _ := col["template"].(string); tpl != "" {
		r.applyResolved(cell, tpl, rowCtx)
		return cell
	}
	key, _ := col["key"].(string)
	if m, ok := item.(map[string]any); ok && key != "" {
		cell.Text = contract.Stringify(m[key])
	}
	return cell
}

func (r *Renderer) renderList(node contract.NodeDef, ctx Context) *Element {
	items := resolveDataSource(node, ctx)
	if len(items) == 0 {
		return r.renderEmptyState(node, ctx)
	}

	if max := intProp(node, "maxItems", 0); max > 0 && len(items) > max {
		items = items[:max]
	}
	singular := singularize(stringProp(node, "dataSource", "item"))

	el := NewElement("ul")
	for idx, item := range items {
		rowCtx := ctx.WithData(map[string]any{singular: item})
		li := NewElement("li").SetAttr(AttrNodeID, derivedID(node.ID, idx))
		if len(node.Children) > 0 {
			li.Append(r.RenderChildren(node.Children, rowCtx)...)
		} else {
			li.Text = contract.Stringify(item)
		}
		el.Append(li)
	}
	return el
}

func (r *Renderer) renderProgress(node contract.NodeDef, ctx Context) *Element {
	value := intProp(node, "value", 0)
	if raw := stringProp(node, "value", ""); raw != "" && strings.Contains(raw, "{{") {
		if parsed, err := strconv.Atoi(r.host.ResolveText(raw, ctx.Data)); err == nil {
			value = parsed
		}
	}
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	bar := NewElement("div").
		SetStyle("width", strconv.Itoa(value)+"%")
	return NewElement("div").
		SetAttr("data-orqui-progress", strconv.Itoa(value)).
		Append(bar)
}

// resolveDataSource resolves props.dataSource against the data
// context. An absent source or a non-list value renders as an empty
// list, taking the empty-state path rather than erroring.
func resolveDataSource(node contract.NodeDef, ctx Context) []any {
	source := stringProp(node, "dataSource", "")
	if source == "" {
		return nil
	}
	v, ok := contract.LookupPath(ctx.Data, source)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	return items
}

// derivedID synthesizes a stable child id for list-generated rows. No
// two siblings share a derived id because idx is unique per parent.
func derivedID(parentID string, idx int) string {
	if parentID == "" {
		parentID = "item"
	}
	return parentID + "-item-" + strconv.Itoa(idx)
}

// renderEmptyState renders the shared table/list empty state with the
// three-tier fallback chain: node props, then contract structure
// defaults, then built-in defaults.
func (r *Renderer) renderEmptyState(node contract.NodeDef, ctx Context) *Element {
	defaults := r.host.EmptyState()

	icon := fallback(stringProp(node, "emptyIcon", ""), defaults.Icon, DefaultEmptyIcon)
	title := fallback(stringProp(node, "emptyTitle", ""), defaults.Title, DefaultEmptyTitle)
	description := fallback(stringProp(node, "emptyDescription", ""), defaults.Description, "")
	actionLabel := fallback(stringProp(node, "emptyActionLabel", ""), defaults.ActionLabel, DefaultEmptyActionLabel)

	showAction := true
	if v, ok := node.Prop("emptyShowAction"); ok {
		if b, ok := v.(bool); ok {
			showAction = b
		}
	} else if defaults.ShowAction != nil {
		showAction = *defaults.ShowAction
	}

	el := NewElement("div").SetAttr(AttrEmptyState, "empty")
	el.Append(NewElement("span").SetAttr("data-orqui-icon", icon))
	el.Append(NewElement("h3").withText(r.host.ResolveText(title, ctx.Data)))
	if description != "" {
		el.Append(NewElement("p").withText(r.host.ResolveText(description, ctx.Data)))
	}
	if showAction {
		resolvedLabel := r.host.ResolveText(actionLabel, ctx.Data)
		el.Append(NewElement("button").
			SetAttr("data-action", emptyActionID(node, resolvedLabel)).
			withText(resolvedLabel))
	}
	return el
}

// emptyActionID resolves the empty-state action identifier:
// props.emptyAction, then props.action, then props.onAction when it is
// a string, falling back to the resolved action label itself.
func emptyActionID(node contract.NodeDef, resolvedLabel string) string {
	if id := stringProp(node, "emptyAction", ""); id != "" {
		return id
	}
	if id := stringProp(node, "action", ""); id != "" {
		return id
	}
	if v, ok := node.Prop("onAction"); ok {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	return resolvedLabel
}

func fallback(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// singularize derives the per-row data key from a plural dataSource
// name: "runs" exposes each row under "run". The heuristic covers the
// common English plural forms contracts use for entity collections.
func singularize(name string) string {
	// Nested paths singularize their last segment.
	if dot := strings.LastIndex(name, "."); dot != -1 {
		name = name[dot+1:]
	}
	switch {
	case name == "":
		return "item"
	case strings.HasSuffix(name, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(name, "ses"), strings.HasSuffix(name, "xes"),
		strings.HasSuffix(name, "zes"), strings.HasSuffix(name, "ches"),
		strings.HasSuffix(name, "shes"):
		return name[:len(name)-2]
	case strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "ss"):
		return name[:len(name)-1]
	default:
		return name
	}
}
