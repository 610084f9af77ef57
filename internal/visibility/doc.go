// Package visibility evaluates declarative visibility rules.
//
// A rule gates whether a node, navigation item, or header element
// renders, based on three independent constraints that must all hold:
//
//   - Pages: the current page id must be listed (empty list = any page)
//   - Breakpoints: the viewport breakpoint must be listed (empty = any)
//   - Data predicate: When/All/Any/Not conditions over the merged
//     data + app context
//
// A nil rule always evaluates to visible. Evaluation is pure and
// synchronous; unresolvable condition paths evaluate per-operator
// (exists is false, empty is true, comparisons are false) and never
// raise an error.
package visibility
