package visibility

import (
	"encoding/json"
	"strings"

	"github.com/orqui/orqui/internal/contract"
)

// Breakpoint classification thresholds in CSS pixels.
const (
	MobileMax = 768
	TabletMax = 1024
)

// Classify maps a viewport width to its breakpoint. Widths below 768
// are mobile, below 1024 tablet, everything else desktop. Non-positive
// widths classify as desktop (unknown viewport).
func Classify(width int) contract.Breakpoint {
	switch {
	case width <= 0:
		return contract.BreakpointDesktop
	case width < MobileMax:
		return contract.BreakpointMobile
	case width < TabletMax:
		return contract.BreakpointTablet
	default:
		return contract.BreakpointDesktop
	}
}

// Evaluate resolves a visibility rule to a boolean. A nil rule is
// always visible. All present constraints must hold.
func Evaluate(rule *contract.Rule, page string, data map[string]any, app *contract.AppContext, viewport contract.Breakpoint) bool {
	if rule == nil {
		return true
	}

	if len(rule.Pages) > 0 && !containsString(rule.Pages, page) {
		return false
	}

	if len(rule.Breakpoints) > 0 {
		found := false
		for _, bp := range rule.Breakpoints {
			if bp == viewport {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	ctx := contract.BuildContext(data, app)

	if rule.When != nil && !evalCondition(*rule.When, ctx) {
		return false
	}
	for _, cond := range rule.All {
		if !evalCondition(cond, ctx) {
			return false
		}
	}
	if len(rule.Any) > 0 {
		matched := false
		for _, cond := range rule.Any {
			if evalCondition(cond, ctx) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	if rule.Not != nil && evalCondition(*rule.Not, ctx) {
		return false
	}

	return true
}

// Filter returns the items whose rule evaluates true, preserving
// relative order. The rule accessor keeps Filter generic over nav
// items, header elements, and node lists.
func Filter[T any](items []T, rule func(T) *contract.Rule, page string, data map[string]any, app *contract.AppContext, viewport contract.Breakpoint) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Evaluate(rule(item), page, data, app, viewport) {
			out = append(out, item)
		}
	}
	return out
}

// evalCondition evaluates one condition against a merged context.
// Compositions (All/Any/Not) take precedence over the leaf predicate.
func evalCondition(cond contract.Condition, ctx map[string]any) bool {
	if len(cond.All) > 0 || len(cond.Any) > 0 || cond.Not != nil {
		for _, sub := range cond.All {
			if !evalCondition(sub, ctx) {
				return false
			}
		}
		if len(cond.Any) > 0 {
			matched := false
			for _, sub := range cond.Any {
				if evalCondition(sub, ctx) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		}
		if cond.Not != nil && evalCondition(*cond.Not, ctx) {
			return false
		}
		return true
	}

	val, found := contract.LookupPath(ctx, cond.Path)

	op := cond.Op
	if op == "" {
		if cond.Value != nil {
			op = contract.OpEq
		} else {
			op = contract.OpExists
		}
	}

	switch op {
	case contract.OpExists:
		return found
	case contract.OpEmpty:
		return !found || !contract.Truthy(val)
	case contract.OpEq:
		return found && valuesEqual(val, cond.Value)
	case contract.OpNeq:
		return !found || !valuesEqual(val, cond.Value)
	case contract.OpGt, contract.OpGte, contract.OpLt, contract.OpLte:
		if !found {
			return false
		}
		a, aok := toNumber(val)
		b, bok := toNumber(cond.Value)
		if !aok || !bok {
			return false
		}
		switch op {
		case contract.OpGt:
			return a > b
		case contract.OpGte:
			return a >= b
		case contract.OpLt:
			return a < b
		default:
			return a <= b
		}
	case contract.OpContains:
		if !found {
			return false
		}
		switch coll := val.(type) {
		case string:
			return strings.Contains(coll, contract.Stringify(cond.Value))
		case []any:
			for _, elem := range coll {
				if valuesEqual(elem, cond.Value) {
					return true
				}
			}
			return false
		default:
			return false
		}
	case contract.OpIn:
		if !found {
			return false
		}
		set, ok := cond.Value.([]any)
		if !ok {
			return false
		}
		for _, elem := range set {
			if valuesEqual(val, elem) {
				return true
			}
		}
		return false
	default:
		// Unknown operator: malformed rule, degrade to hidden-safe true
		// would surprise; treat as non-matching predicate.
		return false
	}
}

// valuesEqual compares two data values, numerically when both sides
// are numbers, otherwise by string projection. JSON and YAML decoding
// disagree on number types, so direct == is not enough.
func valuesEqual(a, b any) bool {
	if an, aok := toNumber(a); aok {
		if bn, bok := toNumber(b); bok {
			return an == bn
		}
	}
	return contract.Stringify(a) == contract.Stringify(b)
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
