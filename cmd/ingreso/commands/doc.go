// Package commands wires the ingreso command tree: the interactive page and
// its non-interactive companions (list, show, open).
package commands
