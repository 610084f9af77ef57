// Package cli implements the orqui command line tool.
//
// Commands operate on layout contract documents: validate checks a
// document against the embedded schema, render evaluates a page to
// HTML, tokens emits the design-token stylesheet, hash computes or
// verifies the canonical content hash, and push/pull/list manage the
// local contract store.
//
// All commands honor --format json, emitting a {status, data, error}
// envelope suitable for scripting. Exit codes follow the convention
// 0 success, 1 validation or verification failure, 2 command error.
package cli
