package hint

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/bendworks/loopline/grid"
	"github.com/bendworks/loopline/turns"
)

// Sentinel errors for hint generation.
var (
	// ErrGridSize is returned when the grid side is below 2.
	ErrGridSize = errors.New("hint: grid size must be at least 2")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hint: invalid option supplied")
)

// Option configures hint selection via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for Generate.
type Options struct {
	// Probability is the per-cell inclusion chance in [0,1].
	Probability float64

	// MaxCount caps total selections; 0 means unbounded (probability-limited).
	MaxCount int

	// MinSpacing is the minimum Chebyshev distance between any two selected
	// cells. 0 disables spacing rejection.
	MinSpacing int

	// Seed selects the deterministic random stream; Rand overrides it.
	Seed int64
	Rand *rand.Rand

	err error
}

// DefaultOptions returns Options tuned for a mid-size grid: 30% inclusion,
// unbounded count, spacing 2.
func DefaultOptions() Options {
	return Options{Probability: 0.3, MinSpacing: 2}
}

// WithProbability sets the per-cell inclusion chance.
// Values outside [0,1] are an ErrOptionViolation.
func WithProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: Probability must be in [0,1], got %v", ErrOptionViolation, p)
			return
		}
		o.Probability = p
	}
}

// WithMaxCount caps the number of selected hint cells; 0 means unbounded.
// Negative values are an ErrOptionViolation.
func WithMaxCount(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCount cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCount = n
	}
}

// WithMinSpacing sets the minimum Chebyshev distance between selections.
// Negative values are an ErrOptionViolation.
func WithMinSpacing(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MinSpacing cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MinSpacing = d
	}
}

// WithSeed fixes the random stream for reproducible selections.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a caller-owned random source, overriding WithSeed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// Generate selects hint cells for a size×size grid against the solution turn
// map and returns cell key → expected bend count in that cell's 3×3 area.
//
// Complexity: O(size² × selected).
func Generate(size int, turnMap map[string]bool, opts ...Option) (map[string]int, error) {
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
	rng := o.Rand
	if rng == nil {
		seed := o.Seed
		if seed == 0 {
			seed = 1
		}
		rng = rand.New(rand.NewSource(seed))
	}

	// Randomized scan order over all cells.
	cells := make([]grid.Coord, 0, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cells = append(cells, grid.Coord{Row: r, Col: c})
		}
	}
	rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	selected := mapset.New[string]()
	coords := make([]grid.Coord, 0, 8)
	out := make(map[string]int)
	for _, cell := range cells {
		if o.MaxCount > 0 && selected.Size() >= o.MaxCount {
			break
		}
		if rng.Float64() >= o.Probability {
			continue
		}
		if tooClose(cell, coords, o.MinSpacing) {
			// Rejection, not retry: the candidate is simply skipped.
			continue
		}
		selected.Put(cell.Key())
		coords = append(coords, cell)
		out[cell.Key()] = turns.CountInArea(cell.Row, cell.Col, size, turnMap)
	}

	return out, nil
}

// tooClose reports whether cell is within minSpacing (Chebyshev, exclusive)
// of any already-selected coordinate.
func tooClose(cell grid.Coord, chosen []grid.Coord, minSpacing int) bool {
	if minSpacing <= 0 {
		return false
	}
	for _, c := range chosen {
		if grid.Chebyshev(cell, c) < minSpacing {
			return true
		}
	}

	return false
}
