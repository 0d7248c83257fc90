// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (card chrome, banner, stacks)
//
// Not allowed here:
// - key handling, expansion state, focus, or catalog lookups
package widgets
