package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bendworks/loopline/cycle"
	"github.com/bendworks/loopline/grid"
	"github.com/bendworks/loopline/session"
)

// ring4 is the hand-checkable 4×4 cycle shared with the turns tests; the
// hint at (1,1) expects 3 bends in its area.
func ring4() []grid.Coord {
	return []grid.Coord{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 3, Col: 0},
		{Row: 3, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 1},
		{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2},
		{Row: 3, Col: 3}, {Row: 2, Col: 3}, {Row: 1, Col: 3},
		{Row: 0, Col: 3}, {Row: 0, Col: 2}, {Row: 0, Col: 1},
	}
}

// fixedSession builds a deterministic Easy session around ring4 through the
// snapshot contract, bypassing random generation.
func fixedSession(t *testing.T, opts ...session.Option) *session.Session {
	t.Helper()
	s, err := session.Resume(session.Snapshot{
		Difficulty:   session.Easy,
		GridSize:     4,
		Seed:         7,
		SolutionPath: ring4(),
		HintCells:    map[string]int{"1,1": 3},
	}, opts...)
	require.NoError(t, err)

	return s
}

// TestNew_Deterministic: equal seeds build identical puzzles (daily mode);
// seed 0 draws entropy (unlimited mode).
func TestNew_Deterministic(t *testing.T) {
	a, err := session.New(session.Medium, session.WithSeed(99))
	require.NoError(t, err)
	b, err := session.New(session.Medium, session.WithSeed(99))
	require.NoError(t, err)

	assert.Equal(t, a.SolutionPath(), b.SolutionPath())
	assert.Equal(t, a.HintCells(), b.HintCells())
	assert.NotEqual(t, a.ID(), b.ID(), "instances must keep distinct IDs")

	u, err := session.New(session.Easy)
	require.NoError(t, err)
	assert.NotZero(t, u.Seed())
}

// TestNew_ValidPuzzle checks generated content per difficulty.
func TestNew_ValidPuzzle(t *testing.T) {
	for _, d := range []session.Difficulty{session.Easy, session.Medium, session.Hard} {
		s, err := session.New(d, session.WithSeed(5))
		require.NoError(t, err)
		assert.Equal(t, d.GridSize(), s.GridSize())
		require.NoError(t, cycle.Validate(s.SolutionPath(), s.GridSize()))
		if d == session.Easy {
			assert.LessOrEqual(t, len(s.HintCells()), 2, "easy caps hints at 2")
		}
		assert.Equal(t, session.StateNew, s.State())
	}
}

// TestNew_UnknownDifficulty rejects out-of-range values.
func TestNew_UnknownDifficulty(t *testing.T) {
	_, err := session.New(session.Difficulty(42))
	require.ErrorIs(t, err, session.ErrUnknownDifficulty)
}

// TestWinFlow draws the exact solution loop and checks the deferred win:
// still IN_PROGRESS while the closing drag is in flight, WON at pointer up,
// score 100.
func TestWinFlow(t *testing.T) {
	s := fixedSession(t)

	loop := ring4()
	s.PointerDown(loop[0].Row, loop[0].Col)
	assert.Equal(t, session.StateInProgress, s.State())
	for _, c := range loop[1:] {
		s.PointerMove(c.Row, c.Col)
	}
	s.PointerMove(loop[0].Row, loop[0].Col) // close the loop

	assert.True(t, s.Dragging())
	assert.Equal(t, session.StateInProgress, s.State(), "win must defer until the drag settles")

	s.PointerUp()
	assert.Equal(t, session.StateWon, s.State())
	assert.Equal(t, 100, s.Score())

	// Terminal states ignore further gestures.
	s.PointerDown(0, 0)
	s.PointerUp()
	assert.Equal(t, session.StateWon, s.State())
}

// TestRestart clears the player graph and re-enters IN_PROGRESS from a
// terminal state, keeping the same puzzle.
func TestRestart(t *testing.T) {
	s := fixedSession(t)
	s.ViewSolution()
	require.Equal(t, session.StateViewedSolution, s.State())

	before := s.SolutionPath()
	s.Restart()
	assert.Equal(t, session.StateInProgress, s.State())
	assert.Zero(t, s.Board().DrawnCount())
	assert.Zero(t, s.Elapsed())
	assert.Equal(t, before, s.SolutionPath(), "restart keeps the same puzzle")
}

// TestManualFinishAndViewSolution are terminal and idempotent.
func TestManualFinishAndViewSolution(t *testing.T) {
	s := fixedSession(t)
	s.FinishManually()
	assert.Equal(t, session.StateManuallyFinished, s.State())
	s.ViewSolution() // ignored in a terminal state
	assert.Equal(t, session.StateManuallyFinished, s.State())
}

// TestSnapshotRoundTrip wins a puzzle, snapshots it, resumes it, and expects
// an indistinguishable session.
func TestSnapshotRoundTrip(t *testing.T) {
	s := fixedSession(t)
	loop := ring4()
	s.PointerDown(loop[0].Row, loop[0].Col)
	for _, c := range loop[1:] {
		s.PointerMove(c.Row, c.Col)
	}
	s.PointerMove(loop[0].Row, loop[0].Col)
	s.PointerUp()
	s.SetElapsed(137)
	require.Equal(t, session.StateWon, s.State())

	snap := s.Snapshot()
	assert.True(t, snap.HasWon)
	assert.Equal(t, 137, snap.ElapsedSeconds)

	r, err := session.Resume(snap)
	require.NoError(t, err)
	assert.Equal(t, s.ID(), r.ID())
	assert.Equal(t, session.StateWon, r.State())
	assert.Equal(t, 137, r.Elapsed())
	assert.Equal(t, s.Score(), r.Score())
	assert.Equal(t, s.Board().Connections(), r.Board().Connections())
}

// TestResume_MidGameState classifies snapshots without terminal flags.
func TestResume_MidGameState(t *testing.T) {
	fresh := fixedSession(t)
	assert.Equal(t, session.StateNew, fresh.State())

	s := fixedSession(t)
	s.PointerDown(0, 0)
	s.PointerMove(0, 1)
	s.PointerUp()
	r, err := session.Resume(s.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, session.StateInProgress, r.State())
	assert.Equal(t, 2, r.Board().DrawnCount())
}

// TestOnChange counts notifications across a short gesture.
func TestOnChange(t *testing.T) {
	var fired int
	s := fixedSession(t, session.WithOnChange(func() { fired++ }))

	s.PointerDown(0, 0)
	s.PointerMove(0, 1)
	s.PointerUp()
	assert.Equal(t, 3, fired)

	s.Restart()
	assert.Equal(t, 4, fired)
}

// TestDifficultyPresets pins the difficulty table.
func TestDifficultyPresets(t *testing.T) {
	assert.Equal(t, 4, session.Easy.GridSize())
	assert.Equal(t, 6, session.Medium.GridSize())
	assert.Equal(t, 8, session.Hard.GridSize())
	assert.False(t, session.Easy.RequiresFullCover())
	assert.False(t, session.Medium.RequiresFullCover())
	assert.True(t, session.Hard.RequiresFullCover())
	assert.Equal(t, "easy", session.Easy.String())
}
