package transitions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlekbai/transitions"
)

// newDiamond builds A->B, A->C, B->D, C->D, B->C.
func newDiamond(t *testing.T) *transitions.TransitionSystem[State] {
	t.Helper()
	ts := newSystem(t)
	for _, e := range [][2]State{{StateA, StateB}, {StateA, StateC}, {StateB, StateD}, {StateC, StateD}, {StateB, StateC}} {
		require.NoError(t, ts.AddValidTransition(e[0], e[1], nil, false))
	}
	return ts
}

func newChain(t *testing.T) *transitions.TransitionSystem[State] {
	t.Helper()
	ts := newSystem(t)
	_, err := ts.AddValidTransitionChain(nil, false, StateA, StateB, StateC, StateD)
	require.NoError(t, err)
	return ts
}

func TestLabyrinth_AllPaths(t *testing.T) {
	ts := newDiamond(t)

	paths, err := ts.Labyrinth(StateA, StateD, false)
	require.NoError(t, err)
	assert.Equal(t, [][]State{
		{StateB, StateD},
		{StateB, StateC, StateD},
		{StateC, StateD},
	}, paths)
}

func TestLabyrinth_Shortest(t *testing.T) {
	ts := newDiamond(t)

	paths, err := ts.Labyrinth(StateA, StateD, true)
	require.NoError(t, err)
	assert.Equal(t, [][]State{{StateB, StateD}, {StateC, StateD}}, paths)
}

func TestLabyrinth_SameStartAndFinish(t *testing.T) {
	ts := newDiamond(t)

	paths, err := ts.Labyrinth(StateB, StateB, false)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Empty(t, paths[0])
}

func TestLabyrinth_Unreachable(t *testing.T) {
	ts := newDiamond(t)

	paths, err := ts.Labyrinth(StateD, StateA, false)
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = ts.Labyrinth(StateD, StateA, true)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestLabyrinth_IgnoresInvalidEdges(t *testing.T) {
	ts := newSystem(t)
	require.NoError(t, ts.AddInvalidTransition(StateA, StateB, nil))

	paths, err := ts.Labyrinth(StateA, StateB, false)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestLabyrinth_UnknownState(t *testing.T) {
	ts, err := transitions.New(transitions.Named(StateA, StateB))
	require.NoError(t, err)

	_, err = ts.Labyrinth(StateA, StateD, false)
	assert.True(t, transitions.IsUnknownElementError(err))
}

func TestLabyrinth_UndirectedBothWays(t *testing.T) {
	ts := newSystem(t)
	_, err := ts.AddValidTransitionChain(nil, true, StateA, StateB, StateC)
	require.NoError(t, err)

	paths, err := ts.Labyrinth(StateA, StateC, false)
	require.NoError(t, err)
	assert.Equal(t, [][]State{{StateB, StateC}}, paths)

	paths, err = ts.Labyrinth(StateC, StateA, false)
	require.NoError(t, err)
	assert.Equal(t, [][]State{{StateB, StateA}}, paths)
}

func TestLabyrinth_SeesEdgesAddedAfterFirstQuery(t *testing.T) {
	ts := newDiamond(t)

	paths, err := ts.Labyrinth(StateA, StateD, true)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	require.NoError(t, ts.AddValidTransition(StateA, StateD, nil, false))
	require.NoError(t, ts.AddValidTransition(StateD, StateA, nil, false))

	paths, err = ts.Labyrinth(StateA, StateD, true)
	require.NoError(t, err)
	assert.Equal(t, [][]State{{StateD}}, paths)

	successors, err := ts.Successors(StateD)
	require.NoError(t, err)
	assert.Equal(t, []State{StateA}, successors)
}

func TestFindDeadEnds(t *testing.T) {
	ts := newDiamond(t)

	allPaths, deadEnds, err := ts.FindDeadEndsBetween(StateA, StateB)
	require.NoError(t, err)
	assert.Equal(t, [][]State{{StateB}}, allPaths)
	assert.Equal(t, []State{StateC, StateD}, deadEnds)

	deadEnds, err = ts.FindDeadEnds(StateA, [][]State{{StateB, StateD}, {StateC, StateD}})
	require.NoError(t, err)
	assert.Empty(t, deadEnds)

	deadEnds, err = ts.FindDeadEnds(StateB, nil)
	require.NoError(t, err)
	assert.Equal(t, []State{StateA, StateC, StateD}, deadEnds)
}

func TestFindDeadEnds_UnknownStateInPath(t *testing.T) {
	ts, err := transitions.New(transitions.Named(StateA, StateB))
	require.NoError(t, err)

	_, err = ts.FindDeadEnds(StateA, [][]State{{StateC}})
	assert.True(t, transitions.IsUnknownElementError(err))
}

func TestLongestPaths(t *testing.T) {
	ts := newChain(t)

	report := ts.LongestPaths()
	// four single-state paths plus six forward pairs
	assert.Equal(t, 10, report.PathCount)
	assert.Equal(t, 3, report.MaxLength)
	assert.Equal(t, [][]State{{StateB, StateC, StateD}}, report.Paths)
}

func TestLongestPaths_NoEdges(t *testing.T) {
	ts := newSystem(t)

	report := ts.LongestPaths()
	assert.Equal(t, 4, report.PathCount)
	assert.Equal(t, 0, report.MaxLength)
	assert.Len(t, report.Paths, 4)
}

func TestMaximumPaths(t *testing.T) {
	ts := newDiamond(t)

	report := ts.MaximumPaths()
	assert.Equal(t, 3, report.Count)
	assert.Equal(t, []transitions.Pair[State]{{Start: StateA, Finish: StateD}}, report.Pairs)
}

func TestMaximumPaths_Grid(t *testing.T) {
	// 2x2 grid with undirected sides: every distinct pair is joined by two routes.
	ts := newSystem(t)
	_, err := ts.AddValidTransitionChain(nil, true, StateA, StateB, StateD, StateC, StateA)
	require.NoError(t, err)

	report := ts.MaximumPaths()
	assert.Equal(t, 2, report.Count)
	assert.Len(t, report.Pairs, 12)
	for _, pair := range report.Pairs {
		assert.NotEqual(t, pair.Start, pair.Finish)
	}
}

func TestTerminalsAndSuccessors(t *testing.T) {
	ts := newChain(t)

	assert.Equal(t, []State{StateD}, ts.Terminals())

	successors, err := ts.Successors(StateB)
	require.NoError(t, err)
	assert.Equal(t, []State{StateC}, successors)

	successors, err = ts.Successors(StateD)
	require.NoError(t, err)
	assert.Empty(t, successors)
}
