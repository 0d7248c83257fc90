// Package expansion tracks which card of the page, if any, is expanded.
//
// State is a value type. The zero value is Collapsed, and at most one index
// can be expanded at a time because only one index is stored.
package expansion

import "strconv"

// State is either Collapsed or Expanded(i).
type State struct {
	index    int
	expanded bool
}

// Collapsed is the initial state.
var Collapsed = State{}

// Expanded returns the state with card i expanded. It does not check bounds;
// use Toggle or Bound when the catalog length is known.
func Expanded(i int) State {
	if i < 0 {
		return Collapsed
	}
	return State{index: i, expanded: true}
}

// Toggle applies a toggle action on card i of a catalog with n cards.
// Toggling the expanded card collapses it; toggling any other card expands
// that card instead. An out-of-range i yields Collapsed.
func (s State) Toggle(i, n int) State {
	if i < 0 || i >= n {
		return Collapsed
	}
	if s.expanded && s.index == i {
		return Collapsed
	}
	return State{index: i, expanded: true}
}

// Bound returns s if its index is valid for a catalog of n cards and
// Collapsed otherwise.
func (s State) Bound(n int) State {
	if !s.expanded || s.index < 0 || s.index >= n {
		return Collapsed
	}
	return s
}

// Index reports the expanded card.
func (s State) Index() (int, bool) {
	if !s.expanded {
		return -1, false
	}
	return s.index, true
}

func (s State) IsExpanded(i int) bool {
	return s.expanded && s.index == i
}

func (s State) IsCollapsed() bool { return !s.expanded }

func (s State) String() string {
	if !s.expanded {
		return "collapsed"
	}
	return "expanded(" + strconv.Itoa(s.index) + ")"
}
