// Package runtime owns the per-mount contract context: the single
// source of truth for one mounted layout contract.
//
// Mounting normalizes the contract, injects the generated token
// stylesheet through the configured style sink, and exposes the
// resolver capabilities the node renderer consumes. Runtime-only
// state (current page, viewport, active tabs, sidebar collapse) lives
// here and is mutated only through setters; node renderers read
// values and invoke callbacks, never mutate shared state directly.
//
// Using a runtime after Close is a programmer error and panics
// immediately; this signals a wiring bug to the integrator, not a
// data problem.
package runtime
