// Package token resolves symbolic design-token references and
// generates the CSS custom properties derived from a contract's token
// table.
//
// References use the form "$tokens.<category>.<name>". Anything that
// is not a token reference, or that references a missing path, passes
// through unchanged. A miss is expected input, not an error.
//
// Generated CSS variables follow the "--orqui-<category>-<name>"
// convention. The naming is load-bearing: native node handlers template
// these names into inline styles, so it must not change.
package token
