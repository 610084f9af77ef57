package token

import (
	"sort"
	"strings"

	"github.com/orqui/orqui/internal/contract"
)

// StyleTagID is the element id of the injected style tag. One tag per
// mounted runtime; re-applies replace its content, never duplicate it.
const StyleTagID = "orqui-contract-tokens"

// VarName returns the CSS custom property name for a token.
// The "--orqui-<category>-<name>" convention must be preserved exactly
// for visual fidelity with consumers of the generated stylesheet.
func VarName(category, name string) string {
	return "--orqui-" + category + "-" + name
}

// GenerateCSS renders the token table as a :root block of CSS custom
// properties. Output is deterministic: categories and names are
// emitted in sorted order.
func GenerateCSS(tokens map[string]map[string]contract.TokenDef) string {
	var b strings.Builder
	b.WriteString(":root {\n")

	categories := make([]string, 0, len(tokens))
	for category := range tokens {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		defs := tokens[category]
		names := make([]string, 0, len(defs))
		for name := range defs {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			def := defs[name]
			b.WriteString("  ")
			b.WriteString(VarName(category, name))
			b.WriteString(": ")
			b.WriteString(def.Value)
			b.WriteString(def.Unit)
			b.WriteString(";\n")
		}
	}

	b.WriteString("}\n")
	return b.String()
}
