package expansion

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const cards = 5

func expandedCount(s State, n int) int {
	count := 0
	for i := 0; i < n; i++ {
		if s.IsExpanded(i) {
			count++
		}
	}
	return count
}

func TestZeroValueIsCollapsed(t *testing.T) {
	var s State
	require.True(t, s.IsCollapsed())
	require.Equal(t, Collapsed, s)
	_, ok := s.Index()
	require.False(t, ok)
	require.Equal(t, "collapsed", s.String())
}

func TestTransitions(t *testing.T) {
	s := Collapsed.Toggle(2, cards)
	require.True(t, s.IsExpanded(2))
	require.Equal(t, "expanded(2)", s.String())

	s = s.Toggle(2, cards)
	require.True(t, s.IsCollapsed())

	s = Collapsed.Toggle(0, cards).Toggle(3, cards)
	idx, ok := s.Index()
	require.True(t, ok)
	require.Equal(t, 3, idx)
	require.False(t, s.IsExpanded(0))
}

func TestToggleOutOfRangeFailsSafe(t *testing.T) {
	s := Collapsed.Toggle(1, cards)
	require.Equal(t, Collapsed, s.Toggle(cards, cards))
	require.Equal(t, Collapsed, s.Toggle(-1, cards))
	require.Equal(t, Collapsed, Collapsed.Toggle(0, 0))
}

func TestBound(t *testing.T) {
	require.Equal(t, Expanded(4), Expanded(4).Bound(cards))
	require.Equal(t, Collapsed, Expanded(5).Bound(cards))
	require.Equal(t, Collapsed, Expanded(0).Bound(0))
	require.Equal(t, Collapsed, Expanded(-3))
}

func TestRandomToggleSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(6841))
	for run := 0; run < 200; run++ {
		s := Collapsed
		for step := 0; step < 50; step++ {
			i := rng.Intn(cards)
			before := s
			next := s.Toggle(i, cards)

			// at most one expanded
			require.LessOrEqual(t, expandedCount(next, cards), 1)

			// same index twice round-trips between collapsed and expanded(i)
			if before.IsCollapsed() || before.IsExpanded(i) {
				require.Equal(t, before, next.Toggle(i, cards))
			} else {
				require.True(t, next.Toggle(i, cards).IsCollapsed())
			}

			// switching collapses the previous card
			if prev, ok := before.Index(); ok && prev != i {
				require.True(t, next.IsExpanded(i))
				require.False(t, next.IsExpanded(prev))
			}
			s = next
		}
	}
}
