// Package template resolves "{{...}}" placeholder strings against a
// data context and the static app context.
//
// Resolution tokenizes a template into an ordered sequence of literal
// and resolved parts, preserving interleaving exactly as in the source
// string. Concatenating the text projection of every part reconstructs
// the template with placeholders substituted (round-trip property).
//
// # Expression grammar
//
// An expression is a dot path with optional [idx] indexes, optionally
// piped to a single formatter:
//
//	{{run.status}}
//	{{items[0].name}}
//	{{status | badge:green}}
//	{{ok | bool}}
//	{{url | link:Open run}}
//	{{state | color:#dc2626}}
//	{{name | upper}}
//
// Paths evaluate against the data context merged with the reserved
// fields app, page, variables, tokens, and locale. An unresolvable
// path yields an empty resolved part, never an error. Rich formatters
// (badge, bool, link, color) produce structured rich values carrying
// presentation metadata alongside text; scalar formatters (upper,
// lower) transform text in place. Unknown formatters are ignored.
package template
