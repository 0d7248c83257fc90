// Package core contains app-wide presentation contracts.
//
// Allowed here:
// - palette and shared styles
// - the key registry (actions, scopes, user overrides)
// - status and footer bar rendering
//
// Not allowed here:
// - page state (expansion, focus) or catalog data
// - card and banner drawing, which live in widgets
package core
