// Package schema validates layout contract documents.
//
// Validation runs in two passes. The first unifies the raw document
// with the embedded CUE contract schema, catching shape errors (wrong
// types, unknown shell layouts). The second walks the decoded contract
// for structural rules CUE cannot express conveniently: duplicate node
// ids within a page tree, unknown visibility operators, unknown
// breakpoint names.
//
// Validation is a tooling concern. The rendering runtime never
// requires a validated document; malformed contracts degrade at
// render time instead.
package schema
