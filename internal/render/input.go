package render

import (
	"encoding/json"
	"strings"

	"github.com/orqui/orqui/internal/contract"
)

func (r *Renderer) renderSearch(node contract.NodeDef, ctx Context) *Element {
	el := NewElement("input").
		SetAttr("type", "search").
		SetAttr("placeholder", r.host.ResolveText(stringProp(node, "placeholder", "Search..."), ctx.Data))
	if action := stringProp(node, "action", ""); action != "" {
		el.SetAttr("data-action", action)
	}
	return el
}

func (r *Renderer) renderSelect(node contract.NodeDef, ctx Context) *Element {
	el := NewElement("select")
	if placeholder := stringProp(node, "placeholder", ""); placeholder != "" {
		el.Append(NewElement("option").
			SetAttr("value", "").
			withText(r.host.ResolveText(placeholder, ctx.Data)))
	}
	for _, opt := range r.selectOptions(node, ctx) {
		el.Append(NewElement("option").
			SetAttr("value", opt.value).
			withText(opt.label))
	}
	return el
}

type selectOption struct {
	value string
	label string
}

// selectOptions resolves props.options either as a literal array or as
// a template string expected to resolve to a JSON array. Malformed
// JSON yields zero options, never an error.
func (r *Renderer) selectOptions(node contract.NodeDef, ctx Context) []selectOption {
	raw, ok := node.Prop("options")
	if !ok {
		return nil
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case string:
		resolved := r.host.ResolveText(v, ctx.Data)
		if err := json.Unmarshal([]byte(resolved), &items); err != nil {
			return nil
		}
	default:
		return nil
	}

	out := make([]selectOption, 0, len(items))
	for _, item := range items {
		switch opt := item.(type) {
		case string:
			out = append(out, selectOption{value: opt, label: opt})
		case map[string]any:
			value := contract.Stringify(opt["value"])
			label := contract.Stringify(opt["label"])
			if label == "" {
				label = value
			}
			if strings.TrimSpace(value) == "" && strings.TrimSpace(label) == "" {
				continue
			}
			out = append(out, selectOption{value: value, label: label})
		}
	}
	return out
}
