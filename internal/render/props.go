package render

import (
	"encoding/json"
	"strconv"

	"github.com/orqui/orqui/internal/contract"
)

// Prop extraction helpers. Every native handler parses its own props
// with per-field defaults here: malformed values fall back to the
// documented default, never throw.

func stringProp(node contract.NodeDef, key, def string) string {
	v, ok := node.Prop(key)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return def
	}
	return s
}

func intProp(node contract.NodeDef, key string, def int) int {
	v, ok := node.Prop(key)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		return def
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
		return def
	default:
		return def
	}
}

func boolProp(node contract.NodeDef, key string, def bool) bool {
	v, ok := node.Prop(key)
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
		return def
	default:
		return def
	}
}

func sliceProp(node contract.NodeDef, key string) ([]any, bool) {
	v, ok := node.Prop(key)
	if !ok {
		return nil, false
	}
	s, ok := v.([]any)
	return s, ok
}

func mapValue(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// decodeNodeDef converts a raw prop value (a generic JSON map) into a
// NodeDef, via a JSON round-trip. Used for node definitions embedded
// inside prop bags (component slots, header CTAs in props).
func decodeNodeDef(v any) (contract.NodeDef, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return contract.NodeDef{}, false
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return contract.NodeDef{}, false
	}
	var def contract.NodeDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return contract.NodeDef{}, false
	}
	return def, true
}
