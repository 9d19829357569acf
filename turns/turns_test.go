package turns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bendworks/loopline/grid"
	"github.com/bendworks/loopline/turns"
)

// ring4 is a hand-checkable closed cycle on the 4×4 grid: down column 0,
// boustrophedon through columns 1..3 over rows 3..1, back along row 0.
func ring4() []grid.Coord {
	return []grid.Coord{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 3, Col: 0},
		{Row: 3, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 1},
		{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2},
		{Row: 3, Col: 3}, {Row: 2, Col: 3}, {Row: 1, Col: 3},
		{Row: 0, Col: 3}, {Row: 0, Col: 2}, {Row: 0, Col: 1},
	}
}

// TestSolutionMap_Ring4 compares against the hand-computed turn set of ring4.
func TestSolutionMap_Ring4(t *testing.T) {
	tm := turns.SolutionMap(ring4())
	require.Len(t, tm, 16)

	wantTurns := map[string]bool{
		"0,0": true, "3,0": true, "3,1": true, "1,1": true,
		"1,2": true, "3,2": true, "3,3": true, "0,3": true,
	}
	for _, c := range ring4() {
		assert.Equal(t, wantTurns[c.Key()], tm[c.Key()], "cell %s", c.Key())
	}
}

// TestPlayerMap covers degree 0/1/2/straight/bent cells.
func TestPlayerMap(t *testing.T) {
	conns := map[string][]string{
		"0,0": {"0,1"},               // degree 1, never a turn
		"0,1": {"0,0", "0,2"},        // straight run along row 0
		"0,2": {"0,1", "1,2"},        // bend
		"1,2": {"0,2"},               // degree 1
		"5,5": {},                    // orphan entry, degree 0
		"2,2": {"1,2", "2,3", "3,2"}, // degree 3 cannot happen via gestures, still not a turn
	}
	tm := turns.PlayerMap(conns)
	assert.False(t, tm["0,0"])
	assert.False(t, tm["0,1"])
	assert.True(t, tm["0,2"])
	assert.False(t, tm["1,2"])
	assert.False(t, tm["5,5"])
	assert.False(t, tm["2,2"])
}

// TestPlayerMap_VerticalStraight checks the column-collinear branch.
func TestPlayerMap_VerticalStraight(t *testing.T) {
	tm := turns.PlayerMap(map[string][]string{
		"1,0": {"0,0", "2,0"},
	})
	assert.False(t, tm["1,0"])
}

// TestCountInArea checks interior and clipped corner neighborhoods on ring4.
func TestCountInArea(t *testing.T) {
	tm := turns.SolutionMap(ring4())

	// Around (1,1): turns are (0,0), (1,1), (1,2).
	assert.Equal(t, 3, turns.CountInArea(1, 1, 4, tm))
	// Corner (0,0) clips to a 2×2 area: turns are (0,0), (1,1).
	assert.Equal(t, 2, turns.CountInArea(0, 0, 4, tm))
	// Around (2,2): turns are (1,1), (1,2), (3,1), (3,2), (3,3).
	assert.Equal(t, 5, turns.CountInArea(2, 2, 4, tm))
}
