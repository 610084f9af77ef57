// Package contract provides the layout contract data model for Orqui.
//
// This package contains type definitions plus the canonical JSON and
// content-hash primitives built on them. All other internal packages
// import contract; contract imports nothing internal. This keeps the
// contract model the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Contract documents are read-only during a render pass
//   - Missing or partial fields normalize to documented defaults, never panic
//   - Canonical serialization uses UTF-16 key ordering and NFC normalization
//     so content hashes are stable across producers
package contract
