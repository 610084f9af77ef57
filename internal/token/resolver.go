package token

import (
	"strings"

	"github.com/orqui/orqui/internal/contract"
)

// RefPrefix marks a token reference inside style values.
const RefPrefix = "$tokens."

// Resolver resolves token references against one contract's token
// table. The table is read-only for the resolver's lifetime.
type Resolver struct {
	tokens map[string]map[string]contract.TokenDef
}

// NewResolver creates a resolver over a token table. A nil table
// behaves as an empty one.
func NewResolver(tokens map[string]map[string]contract.TokenDef) *Resolver {
	return &Resolver{tokens: tokens}
}

// Resolve resolves a "$tokens.<category>.<name>" reference to its
// concrete value (value + unit). Non-references and missing paths pass
// through unchanged.
func (r *Resolver) Resolve(ref string) string {
	def, ok := r.lookup(ref)
	if !ok {
		return ref
	}
	return def.Value + def.Unit
}

// ResolveVar is like Resolve but emits a var() reference to the
// generated CSS custom property instead of the literal value, keeping
// rendered styles in sync with runtime token changes.
func (r *Resolver) ResolveVar(ref string) string {
	category, name, ok := splitRef(ref)
	if !ok {
		return ref
	}
	if _, ok := r.lookupParts(category, name); !ok {
		return ref
	}
	return "var(" + VarName(category, name) + ")"
}

// ResolveStyle resolves every token reference in a style map, leaving
// other values untouched. Returns a new map; the input is not mutated.
func (r *Resolver) ResolveStyle(style map[string]string) map[string]string {
	if len(style) == 0 {
		return map[string]string{}
	}
	out := make(map[string]string, len(style))
	for k, v := range style {
		out[k] = r.Resolve(v)
	}
	return out
}

func (r *Resolver) lookup(ref string) (contract.TokenDef, bool) {
	category, name, ok := splitRef(ref)
	if !ok {
		return contract.TokenDef{}, false
	}
	return r.lookupParts(category, name)
}

func (r *Resolver) lookupParts(category, name string) (contract.TokenDef, bool) {
	defs, ok := r.tokens[category]
	if !ok {
		return contract.TokenDef{}, false
	}
	def, ok := defs[name]
	return def, ok
}

// splitRef splits "$tokens.colors.accent" into ("colors", "accent").
// Refs with missing segments or extra dots are not token references.
func splitRef(ref string) (category, name string, ok bool) {
	if !strings.HasPrefix(ref, RefPrefix) {
		return "", "", false
	}
	path := strings.TrimPrefix(ref, RefPrefix)
	parts := strings.Split(path, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
