package hint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bendworks/loopline/cycle"
	"github.com/bendworks/loopline/grid"
	"github.com/bendworks/loopline/hint"
	"github.com/bendworks/loopline/turns"
)

func solutionTurnMap(t *testing.T, size int, seed int64) map[string]bool {
	t.Helper()
	path, err := cycle.Generate(size, cycle.WithSeed(seed))
	require.NoError(t, err)

	return turns.SolutionMap(path)
}

// TestGenerate_SpacingAndCap verifies both rejection rules over many seeds.
func TestGenerate_SpacingAndCap(t *testing.T) {
	tm := solutionTurnMap(t, 8, 3)
	for seed := int64(1); seed <= 50; seed++ {
		hints, err := hint.Generate(8, tm,
			hint.WithSeed(seed),
			hint.WithProbability(0.9),
			hint.WithMaxCount(5),
			hint.WithMinSpacing(3),
		)
		require.NoError(t, err)
		require.LessOrEqual(t, len(hints), 5)

		coords := make([]grid.Coord, 0, len(hints))
		for key := range hints {
			c, err := grid.ParseKey(key)
			require.NoError(t, err)
			coords = append(coords, c)
		}
		for i := range coords {
			for j := i + 1; j < len(coords); j++ {
				assert.GreaterOrEqual(t, grid.Chebyshev(coords[i], coords[j]), 3,
					"seed %d: hints %v and %v too close", seed, coords[i], coords[j])
			}
		}
	}
}

// TestGenerate_ExpectedCounts checks every emitted count against the turn map.
func TestGenerate_ExpectedCounts(t *testing.T) {
	tm := solutionTurnMap(t, 6, 11)
	hints, err := hint.Generate(6, tm, hint.WithSeed(4), hint.WithProbability(0.8))
	require.NoError(t, err)
	require.NotEmpty(t, hints)
	for key, want := range hints {
		c, err := grid.ParseKey(key)
		require.NoError(t, err)
		assert.Equal(t, want, turns.CountInArea(c.Row, c.Col, 6, tm))
	}
}

// TestGenerate_Determinism verifies equal seeds select equal hint sets.
func TestGenerate_Determinism(t *testing.T) {
	tm := solutionTurnMap(t, 6, 2)
	a, err := hint.Generate(6, tm, hint.WithSeed(21))
	require.NoError(t, err)
	b, err := hint.Generate(6, tm, hint.WithSeed(21))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestGenerate_ProbabilityExtremes: p=0 selects nothing, p=1 selects up to
// the spacing limit.
func TestGenerate_ProbabilityExtremes(t *testing.T) {
	tm := solutionTurnMap(t, 4, 6)

	none, err := hint.Generate(4, tm, hint.WithProbability(0))
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := hint.Generate(4, tm, hint.WithProbability(1), hint.WithMinSpacing(0))
	require.NoError(t, err)
	assert.Len(t, all, 16)
}

// TestGenerate_Errors covers size and option violations.
func TestGenerate_Errors(t *testing.T) {
	_, err := hint.Generate(1, nil)
	require.ErrorIs(t, err, hint.ErrGridSize)

	tm := solutionTurnMap(t, 4, 6)
	_, err = hint.Generate(4, tm, hint.WithProbability(1.5))
	require.ErrorIs(t, err, hint.ErrOptionViolation)
	_, err = hint.Generate(4, tm, hint.WithMaxCount(-1))
	require.ErrorIs(t, err, hint.ErrOptionViolation)
	_, err = hint.Generate(4, tm, hint.WithMinSpacing(-1))
	require.ErrorIs(t, err, hint.ErrOptionViolation)
}
