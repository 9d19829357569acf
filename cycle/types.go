// Package cycle - options and sentinel errors for the cycle generator.
package cycle

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for cycle generation.
var (
	// ErrGridSize is returned when the requested grid side is below 2.
	ErrGridSize = errors.New("cycle: grid size must be at least 2")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cycle: invalid option supplied")

	// ErrNotHamiltonian is returned by Validate for sequences that are not
	// a closed Hamiltonian cycle on the given grid.
	ErrNotHamiltonian = errors.New("cycle: path is not a closed Hamiltonian cycle")
)

// Option configures generation via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Generate is invoked.
type Option func(*Options)

// Options holds tunable parameters for Generate.
type Options struct {
	// Seed selects the deterministic random stream. Seed==0 uses the fixed
	// default seed (see rng.go); callers wanting variety pass entropy here.
	Seed int64

	// Rand, when non-nil, overrides Seed entirely. The generator consumes it
	// sequentially; sharing it across goroutines is the caller's bug.
	Rand *rand.Rand

	// GreedyAttempts caps phase-1 Warnsdorff walks. 0 means "scaled default"
	// (grows with grid size; see defaultGreedyAttempts).
	GreedyAttempts int

	// BacktrackStarts caps how many shuffled start cells phase 2 tries.
	// 0 means "scaled default".
	BacktrackStarts int

	// BacktrackBudget is the per-start iteration cap of the phase-2 DFS.
	// 0 means "scaled default" (hundreds of thousands of steps).
	BacktrackBudget int

	// Logger receives a diagnostic record when the deterministic fallback
	// engages, which indicates the tuned budgets were insufficient.
	// Nil disables logging.
	Logger *logrus.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the zero seed policy, scaled phase
// budgets, and no logger.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed fixes the random stream so identical seeds reproduce identical
// cycles. Seed 0 keeps the fixed default seed.
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

// WithGreedyAttempts overrides the phase-1 attempt budget.
//
//	n > 0: use exactly n attempts
//	n == 0: scaled default
//	n < 0: invalid option → ErrOptionViolation
func WithGreedyAttempts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: GreedyAttempts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.GreedyAttempts = n
	}
}

// WithBacktrackStarts overrides how many start cells phase 2 explores.
// Negative values are an ErrOptionViolation.
func WithBacktrackStarts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: BacktrackStarts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.BacktrackStarts = n
	}
}

// WithBacktrackBudget overrides the per-start iteration cap of phase 2.
// Negative values are an ErrOptionViolation.
func WithBacktrackBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: BacktrackBudget cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.BacktrackBudget = n
	}
}

// WithLogger attaches a logger for fallback diagnostics.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// defaultGreedyAttempts scales the phase-1 budget with grid size: closing the
// loop is the hard constraint, so larger grids need more retries.
func defaultGreedyAttempts(size int) int {
	return 10 + 2*size
}

// defaultBacktrackStarts scales the number of phase-2 start cells.
func defaultBacktrackStarts(size int) int {
	return size
}

// defaultBacktrackBudget scales the per-start iteration cap. Tuned so the
// fallback probability is negligible while one event-loop turn stays bounded.
func defaultBacktrackBudget(size int) int {
	return 200_000 * size
}
