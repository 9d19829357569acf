package cycle

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bendworks/loopline/grid"
)

// Generate produces a Hamiltonian cycle on a size×size grid: size² distinct
// cells, every consecutive pair (including last→first) orthogonally adjacent.
// Phases run in order — Warnsdorff walks, budgeted backtracking, then the
// deterministic fallback — and the first success wins. The fallback never
// fails for even grid sides, so Generate returns an error only for invalid
// input or options.
//
// Identical seeds reproduce identical cycles; see rng.go for the seed policy.
func Generate(size int, opts ...Option) ([]grid.Coord, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGridSize, size)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	rng := o.rng()

	// Phase 1: Warnsdorff walks. Fast, succeeds a minority of the time.
	attempts := o.GreedyAttempts
	if attempts == 0 {
		attempts = defaultGreedyAttempts(size)
	}
	for i := 0; i < attempts; i++ {
		if path := greedyAttempt(size, rng); path != nil {
			return path, nil
		}
	}

	// Phase 2: budgeted backtracking from shuffled start cells.
	starts := o.BacktrackStarts
	if starts == 0 {
		starts = defaultBacktrackStarts(size)
	}
	budget := o.BacktrackBudget
	if budget == 0 {
		budget = defaultBacktrackBudget(size)
	}
	cells := allCells(size)
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
	if starts > len(cells) {
		starts = len(cells)
	}
	for i := 0; i < starts; i++ {
		e := newBtEngine(size, budget, rng)
		if path, ok := e.run(cells[i]); ok {
			return path, nil
		}
	}

	// Phase 3: deterministic fallback. Reaching it means the tuned budgets
	// above were insufficient, which is worth a diagnostic record.
	path, closed := fallbackRing(size, rng)
	if o.Logger != nil {
		o.Logger.WithFields(logrus.Fields{
			"size":            size,
			"greedyAttempts":  attempts,
			"backtrackStarts": starts,
			"backtrackBudget": budget,
			"closed":          closed,
		}).Warn("cycle: randomized phases exhausted, using deterministic fallback")
	}

	return path, nil
}

// Validate checks that path is a closed Hamiltonian cycle on a size×size
// grid: length size², each in-bounds cell exactly once, every consecutive
// pair (cyclic) adjacent. Returns nil or a wrapped ErrNotHamiltonian.
//
// Complexity: O(size²).
func Validate(path []grid.Coord, size int) error {
	total := size * size
	if len(path) != total {
		return fmt.Errorf("%w: length %d, want %d", ErrNotHamiltonian, len(path), total)
	}
	seen := make([]bool, total)
	for _, c := range path {
		if !grid.InBounds(c.Row, c.Col, size) {
			return fmt.Errorf("%w: cell %s out of bounds", ErrNotHamiltonian, c.Key())
		}
		idx := c.Row*size + c.Col
		if seen[idx] {
			return fmt.Errorf("%w: cell %s repeated", ErrNotHamiltonian, c.Key())
		}
		seen[idx] = true
	}
	for i, c := range path {
		next := path[(i+1)%total]
		if !grid.IsAdjacent(c.Row, c.Col, next.Row, next.Col) {
			return fmt.Errorf("%w: %s and %s not adjacent", ErrNotHamiltonian, c.Key(), next.Key())
		}
	}

	return nil
}

// allCells enumerates every cell of a size×size grid in row-major order.
func allCells(size int) []grid.Coord {
	out := make([]grid.Coord, 0, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			out = append(out, grid.Coord{Row: r, Col: c})
		}
	}

	return out
}
