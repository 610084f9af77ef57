package contract

import (
	"encoding/json"
	"strconv"
	"strings"
)

// LookupPath resolves a dot path with optional [idx] indexes against a
// data context, e.g. "run.status" or "items[0].name". Returns false
// when any segment is missing; a missing path is expected input, not
// an error.
func LookupPath(data map[string]any, path string) (any, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false
	}

	var cur any = data
	for _, seg := range strings.Split(path, ".") {
		key, indexes, ok := splitIndexes(seg)
		if !ok {
			return nil, false
		}
		if key != "" {
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			cur, ok = m[key]
			if !ok {
				return nil, false
			}
		}
		for _, idx := range indexes {
			arr, ok := cur.([]any)
			if !ok || idx < 0 || idx >= len(arr) {
				return nil, false
			}
			cur = arr[idx]
		}
	}
	return cur, true
}

// splitIndexes splits "items[0][1]" into key "items" and indexes [0 1].
func splitIndexes(seg string) (string, []int, bool) {
	open := strings.IndexByte(seg, '[')
	if open == -1 {
		return seg, nil, true
	}
	key := seg[:open]
	rest := seg[open:]
	var indexes []int
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, false
		}
		close := strings.IndexByte(rest, ']')
		if close == -1 {
			return "", nil, false
		}
		n, err := strconv.Atoi(rest[1:close])
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, n)
		rest = rest[close+1:]
	}
	return key, indexes, true
}

// Truthy reports whether a data value is considered true by visibility
// and template evaluation: false, nil, zero numbers, empty strings,
// and empty collections are falsy.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	case json.Number:
		return val.String() != "0" && val.String() != ""
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

// Stringify projects a data value to display text. Maps and slices
// project to compact JSON; nil projects to the empty string.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case json.Number:
		return val.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
