package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orqui/orqui/internal/contract"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		width int
		want  contract.Breakpoint
	}{
		{0, contract.BreakpointDesktop},
		{-1, contract.BreakpointDesktop},
		{1, contract.BreakpointMobile},
		{767, contract.BreakpointMobile},
		{768, contract.BreakpointTablet},
		{1023, contract.BreakpointTablet},
		{1024, contract.BreakpointDesktop},
		{1920, contract.BreakpointDesktop},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.width), "width %d", tt.width)
	}
}

func eval(rule *contract.Rule, data map[string]any) bool {
	return Evaluate(rule, "home", data, nil, contract.BreakpointDesktop)
}

func TestEvaluateNilRuleVisible(t *testing.T) {
	assert.True(t, eval(nil, nil))
}

func TestEvaluatePages(t *testing.T) {
	rule := &contract.Rule{Pages: []string{"home", "reports"}}
	assert.True(t, Evaluate(rule, "home", nil, nil, contract.BreakpointDesktop))
	assert.False(t, Evaluate(rule, "settings", nil, nil, contract.BreakpointDesktop))
}

func TestEvaluateBreakpoints(t *testing.T) {
	rule := &contract.Rule{Breakpoints: []contract.Breakpoint{contract.BreakpointMobile}}
	assert.True(t, Evaluate(rule, "home", nil, nil, contract.BreakpointMobile))
	assert.False(t, Evaluate(rule, "home", nil, nil, contract.BreakpointDesktop))
}

func TestEvaluateOperators(t *testing.T) {
	data := map[string]any{
		"status": "PASS",
		"count":  float64(5),
		"tags":   []any{"a", "b"},
		"note":   "",
	}

	tests := []struct {
		name string
		cond contract.Condition
		want bool
	}{
		{"eq match", contract.Condition{Path: "status", Op: "eq", Value: "PASS"}, true},
		{"eq mismatch", contract.Condition{Path: "status", Op: "eq", Value: "FAIL"}, false},
		{"neq", contract.Condition{Path: "status", Op: "neq", Value: "FAIL"}, true},
		{"neq missing path", contract.Condition{Path: "absent", Op: "neq", Value: "x"}, true},
		{"gt", contract.Condition{Path: "count", Op: "gt", Value: float64(3)}, true},
		{"gte equal", contract.Condition{Path: "count", Op: "gte", Value: float64(5)}, true},
		{"lt", contract.Condition{Path: "count", Op: "lt", Value: float64(3)}, false},
		{"lte", contract.Condition{Path: "count", Op: "lte", Value: float64(5)}, true},
		{"gt non-numeric", contract.Condition{Path: "status", Op: "gt", Value: float64(1)}, false},
		{"exists", contract.Condition{Path: "status", Op: "exists"}, true},
		{"exists missing", contract.Condition{Path: "absent", Op: "exists"}, false},
		{"empty on empty string", contract.Condition{Path: "note", Op: "empty"}, true},
		{"empty on missing", contract.Condition{Path: "absent", Op: "empty"}, true},
		{"empty on value", contract.Condition{Path: "status", Op: "empty"}, false},
		{"contains slice", contract.Condition{Path: "tags", Op: "contains", Value: "a"}, true},
		{"contains slice miss", contract.Condition{Path: "tags", Op: "contains", Value: "z"}, false},
		{"contains string", contract.Condition{Path: "status", Op: "contains", Value: "AS"}, true},
		{"in", contract.Condition{Path: "status", Op: "in", Value: []any{"PASS", "WARN"}}, true},
		{"in miss", contract.Condition{Path: "status", Op: "in", Value: []any{"FAIL"}}, false},
		{"in non-list value", contract.Condition{Path: "status", Op: "in", Value: "PASS"}, false},
		{"unknown op", contract.Condition{Path: "status", Op: "matches", Value: "P.*"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &contract.Rule{When: &tt.cond}
			assert.Equal(t, tt.want, eval(rule, data))
		})
	}
}

func TestEvaluateDefaultOperator(t *testing.T) {
	data := map[string]any{"status": "PASS"}

	// Value present defaults to eq.
	withValue := &contract.Rule{When: &contract.Condition{Path: "status", Value: "PASS"}}
	assert.True(t, eval(withValue, data))

	// No value defaults to exists.
	noValue := &contract.Rule{When: &contract.Condition{Path: "status"}}
	assert.True(t, eval(noValue, data))
	missing := &contract.Rule{When: &contract.Condition{Path: "absent"}}
	assert.False(t, eval(missing, data))
}

func TestEvaluateNumericEqualityAcrossTypes(t *testing.T) {
	// JSON decodes 5 as float64, static rules may carry int.
	data := map[string]any{"count": float64(5)}
	rule := &contract.Rule{When: &contract.Condition{Path: "count", Op: "eq", Value: 5}}
	assert.True(t, eval(rule, data))
}

func TestEvaluateComposition(t *testing.T) {
	data := map[string]any{"status": "PASS", "count": float64(5)}

	all := &contract.Rule{All: []contract.Condition{
		{Path: "status", Op: "eq", Value: "PASS"},
		{Path: "count", Op: "gt", Value: float64(1)},
	}}
	assert.True(t, eval(all, data))

	allFail := &contract.Rule{All: []contract.Condition{
		{Path: "status", Op: "eq", Value: "PASS"},
		{Path: "count", Op: "gt", Value: float64(10)},
	}}
	assert.False(t, eval(allFail, data))

	anyRule := &contract.Rule{Any: []contract.Condition{
		{Path: "status", Op: "eq", Value: "FAIL"},
		{Path: "count", Op: "gt", Value: float64(1)},
	}}
	assert.True(t, eval(anyRule, data))

	notRule := &contract.Rule{Not: &contract.Condition{Path: "status", Op: "eq", Value: "FAIL"}}
	assert.True(t, eval(notRule, data))
	notHide := &contract.Rule{Not: &contract.Condition{Path: "status", Op: "eq", Value: "PASS"}}
	assert.False(t, eval(notHide, data))
}

func TestEvaluateNestedConditionComposition(t *testing.T) {
	data := map[string]any{"role": "admin", "beta": true}

	rule := &contract.Rule{When: &contract.Condition{
		Any: []contract.Condition{
			{Path: "role", Op: "eq", Value: "admin"},
			{All: []contract.Condition{
				{Path: "beta", Op: "exists"},
				{Path: "role", Op: "eq", Value: "editor"},
			}},
		},
	}}
	assert.True(t, eval(rule, data))
}

func TestFilterPreservesOrder(t *testing.T) {
	items := []contract.NavItem{
		{ID: "a"},
		{ID: "b", Visibility: &contract.Rule{When: &contract.Condition{Path: "absent", Op: "exists"}}},
		{ID: "c"},
	}

	got := Filter(items, func(n contract.NavItem) *contract.Rule { return n.Visibility },
		"home", nil, nil, contract.BreakpointDesktop)

	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}
