// Package render materializes layout contract node trees into element
// trees.
//
// The renderer is a recursive dispatcher: each node is visibility
// checked, style resolved, and dispatched by normalized type to one of
// the native handlers, or to an externally registered component, or to
// a diagnosable unknown-type container that still renders children.
//
// Rendering is a pure, bounded, synchronous tree walk. Malformed nodes
// never abort the walk: every degraded state renders a distinguishable
// placeholder carrying a data-orqui-* marker so the surrounding layout
// is preserved and the defect is diagnosable in the output.
package render
