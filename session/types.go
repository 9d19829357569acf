// Package session - difficulty presets, game states, options, and the
// persistence snapshot shape.
package session

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/bendworks/loopline/grid"
)

// Sentinel errors for session construction.
var (
	// ErrUnknownDifficulty is returned for a Difficulty outside the presets.
	ErrUnknownDifficulty = errors.New("session: unknown difficulty")
)

// Difficulty selects grid size, hint tuning, and the coverage policy.
type Difficulty int

const (
	// Easy plays on 4×4 with at most two hints and no coverage requirement.
	Easy Difficulty = iota
	// Medium plays on 6×6, hints bounded only by probability sampling.
	Medium
	// Hard plays on 8×8 and requires the loop to cover every cell.
	Hard
)

// String implements fmt.Stringer.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// GridSize returns the grid side for the difficulty.
func (d Difficulty) GridSize() int {
	switch d {
	case Easy:
		return 4
	case Medium:
		return 6
	default:
		return 8
	}
}

// RequiresFullCover reports whether the win check demands the loop span
// every grid cell.
func (d Difficulty) RequiresFullCover() bool { return d == Hard }

// hintTuning returns the per-difficulty hint sampling parameters.
func (d Difficulty) hintTuning() (probability float64, maxCount, minSpacing int) {
	switch d {
	case Easy:
		return 0.5, 2, 2
	case Medium:
		return 0.35, 0, 2
	default:
		return 0.3, 0, 2
	}
}

// State is the game lifecycle state.
type State int

const (
	// StateNew: puzzle generated, no gesture yet.
	StateNew State = iota
	// StateInProgress: at least one gesture landed.
	StateInProgress
	// StateWon: the win validation passed. Terminal.
	StateWon
	// StateViewedSolution: the player gave up and revealed. Terminal.
	StateViewedSolution
	// StateManuallyFinished: the player closed the puzzle early. Terminal.
	StateManuallyFinished
)

// Terminal reports whether s is one of the end states.
func (s State) Terminal() bool {
	return s == StateWon || s == StateViewedSolution || s == StateManuallyFinished
}

// Snapshot is the serializable state handed to the persistence collaborator.
// Resume accepts any well-formed Snapshot — the round-trip contract — and
// shape/version validation before that is the collaborator's concern.
type Snapshot struct {
	ID                  string              `json:"id"`
	Difficulty          Difficulty          `json:"difficulty"`
	GridSize            int                 `json:"gridSize"`
	Seed                int64               `json:"seed"`
	SolutionPath        []grid.Coord        `json:"solutionPath"`
	HintCells           map[string]int      `json:"hintCells"`
	PlayerDrawnCells    []string            `json:"playerDrawnCells"`
	PlayerConnections   map[string][]string `json:"playerConnections"`
	ElapsedSeconds      int                 `json:"elapsedSeconds"`
	HasWon              bool                `json:"hasWon"`
	HasViewedSolution   bool                `json:"hasViewedSolution"`
	HasManuallyFinished bool                `json:"hasManuallyFinished"`
}

// Option configures a Session via functional arguments.
type Option func(*Options)

// Options holds Session construction parameters.
type Options struct {
	// Seed fixes the puzzle for daily mode; 0 draws an entropy seed
	// (unlimited mode).
	Seed int64

	// OnChange is invoked after every state-changing operation. The render
	// scheduler outside the core decides when to actually repaint.
	OnChange func()

	// Logger receives generator diagnostics. Nil disables logging.
	Logger *logrus.Logger
}

// WithSeed fixes the puzzle seed so every machine builds the same daily
// puzzle. Seed 0 keeps unlimited-mode behavior.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithOnChange registers the state-changed notification callback.
func WithOnChange(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnChange = fn
		}
	}
}

// WithLogger attaches a logger for generation diagnostics.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
