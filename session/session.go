package session

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bendworks/loopline/cycle"
	"github.com/bendworks/loopline/grid"
	"github.com/bendworks/loopline/hint"
	"github.com/bendworks/loopline/path"
	"github.com/bendworks/loopline/turns"
	"github.com/bendworks/loopline/validate"
)

// Session is one puzzle instance with its player state. Not goroutine-safe:
// a Session belongs to a single UI event loop, where all mutation happens
// synchronously inside one event handler at a time.
type Session struct {
	id         string
	difficulty Difficulty
	seed       int64

	solution      []grid.Coord
	solutionTurns map[string]bool
	hintCells     map[string]int

	board   *path.Board
	tracker *path.Tracker

	state   State
	elapsed int
	score   int

	onChange func()
}

// New generates a fresh puzzle for the difficulty. A non-zero seed makes the
// instance fully deterministic (daily mode); seed 0 draws one from system
// entropy (unlimited mode).
func New(d Difficulty, opts ...Option) (*Session, error) {
	if d < Easy || d > Hard {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	seed := o.Seed
	if seed == 0 {
		seed = entropySeed()
	}
	size := d.GridSize()

	solution, err := cycle.Generate(size,
		cycle.WithSeed(seed),
		cycle.WithLogger(o.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("session: generating solution: %w", err)
	}
	solutionTurns := turns.SolutionMap(solution)

	probability, maxCount, minSpacing := d.hintTuning()
	hintCells, err := hint.Generate(size, solutionTurns,
		hint.WithSeed(seed),
		hint.WithProbability(probability),
		hint.WithMaxCount(maxCount),
		hint.WithMinSpacing(minSpacing),
	)
	if err != nil {
		return nil, fmt.Errorf("session: generating hints: %w", err)
	}

	board := path.NewBoard(size)
	s := &Session{
		id:            uuid.NewString(),
		difficulty:    d,
		seed:          seed,
		solution:      solution,
		solutionTurns: solutionTurns,
		hintCells:     hintCells,
		board:         board,
		tracker:       path.NewTracker(board),
		state:         StateNew,
		onChange:      o.OnChange,
	}

	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Difficulty returns the difficulty preset.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// GridSize returns the grid side length.
func (s *Session) GridSize() int { return s.difficulty.GridSize() }

// Seed returns the seed this instance was generated from.
func (s *Session) Seed() int64 { return s.seed }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the 0–100 progress score computed at the last settled
// gesture.
func (s *Session) Score() int { return s.score }

// Elapsed returns the played seconds recorded so far.
func (s *Session) Elapsed() int { return s.elapsed }

// SetElapsed records the played seconds; the timer itself is an external
// collaborator.
func (s *Session) SetElapsed(seconds int) {
	if seconds >= 0 {
		s.elapsed = seconds
	}
}

// SolutionPath returns a copy of the hidden solution loop, for the reveal
// view.
func (s *Session) SolutionPath() []grid.Coord {
	out := make([]grid.Coord, len(s.solution))
	copy(out, s.solution)

	return out
}

// HintCells returns a copy of the hint map: cell key → expected bend count.
func (s *Session) HintCells() map[string]int {
	out := make(map[string]int, len(s.hintCells))
	for k, v := range s.hintCells {
		out[k] = v
	}

	return out
}

// Board exposes the player graph for read-only renderer access; mutation
// goes exclusively through the gesture methods below.
func (s *Session) Board() *path.Board { return s.board }

// Dragging reports whether a gesture is in flight.
func (s *Session) Dragging() bool { return s.tracker.Dragging() }

// PointerDown forwards a gesture start. The first gesture moves a new
// session to IN_PROGRESS; gestures in terminal states are ignored.
func (s *Session) PointerDown(row, col int) {
	if s.state.Terminal() {
		return
	}
	if s.state == StateNew {
		s.state = StateInProgress
	}
	s.tracker.PointerDown(row, col)
	s.notify()
}

// PointerMove forwards a gesture move. Win validation stays deferred here —
// a drag is in flight.
func (s *Session) PointerMove(row, col int) {
	if s.state.Terminal() {
		return
	}
	s.tracker.PointerMove(row, col)
	s.notify()
}

// PointerUp ends the gesture, then settles: recompute the score and check
// the win guard now that no drag is in flight.
func (s *Session) PointerUp() {
	if s.state.Terminal() {
		return
	}
	s.tracker.PointerUp()
	s.settle()
	s.notify()
}

// PointerCancel aborts the gesture and settles like PointerUp.
func (s *Session) PointerCancel() {
	if s.state.Terminal() {
		return
	}
	s.tracker.PointerCancel()
	s.settle()
	s.notify()
}

// Restart clears the player graph and re-enters IN_PROGRESS from any state.
// Solution and hints are untouched: it is the same puzzle again.
func (s *Session) Restart() {
	s.tracker.PointerCancel()
	s.board.Clear()
	s.elapsed = 0
	s.score = 0
	s.state = StateInProgress
	s.notify()
}

// ViewSolution reveals the answer and ends the game. Terminal.
func (s *Session) ViewSolution() {
	if s.state.Terminal() {
		return
	}
	s.state = StateViewedSolution
	s.notify()
}

// FinishManually closes the puzzle early without a win. Terminal.
func (s *Session) FinishManually() {
	if s.state.Terminal() {
		return
	}
	s.state = StateManuallyFinished
	s.notify()
}

// settle recomputes the score and evaluates the IN_PROGRESS→WON guard.
// Only called with no drag in flight.
func (s *Session) settle() {
	s.score = validate.Score(s.board, s.solutionTurns, s.hintCells)
	if s.state == StateInProgress &&
		validate.FullWin(s.board, s.solutionTurns, s.hintCells, s.difficulty.RequiresFullCover()) {
		s.state = StateWon
	}
}

// notify emits the state-changed signal for the render scheduler.
func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Snapshot captures the full serializable state. Cheap and synchronous, so
// the persistence collaborator may call it at arbitrary times (including on
// tab-hide) without side effects.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:                  s.id,
		Difficulty:          s.difficulty,
		GridSize:            s.GridSize(),
		Seed:                s.seed,
		SolutionPath:        s.SolutionPath(),
		HintCells:           s.HintCells(),
		PlayerDrawnCells:    s.board.DrawnCells(),
		PlayerConnections:   s.board.Connections(),
		ElapsedSeconds:      s.elapsed,
		HasWon:              s.state == StateWon,
		HasViewedSolution:   s.state == StateViewedSolution,
		HasManuallyFinished: s.state == StateManuallyFinished,
	}
}

// Resume reconstructs a session from a snapshot. Per the round-trip
// contract the snapshot is assumed well-formed; the rebuilt session is
// indistinguishable from one that reached this state through gestures.
func Resume(snap Snapshot, opts ...Option) (*Session, error) {
	if snap.Difficulty < Easy || snap.Difficulty > Hard {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(snap.Difficulty))
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	board := path.NewBoard(snap.Difficulty.GridSize())
	board.Restore(snap.PlayerDrawnCells, snap.PlayerConnections)

	id := snap.ID
	if id == "" {
		id = uuid.NewString()
	}
	s := &Session{
		id:            id,
		difficulty:    snap.Difficulty,
		seed:          snap.Seed,
		solution:      append([]grid.Coord(nil), snap.SolutionPath...),
		solutionTurns: turns.SolutionMap(snap.SolutionPath),
		hintCells:     snap.HintCells,
		board:         board,
		tracker:       path.NewTracker(board),
		elapsed:       snap.ElapsedSeconds,
		onChange:      o.OnChange,
	}

	switch {
	case snap.HasWon:
		s.state = StateWon
	case snap.HasViewedSolution:
		s.state = StateViewedSolution
	case snap.HasManuallyFinished:
		s.state = StateManuallyFinished
	case board.DrawnCount() > 0 || snap.ElapsedSeconds > 0:
		s.state = StateInProgress
	default:
		s.state = StateNew
	}
	s.score = validate.Score(s.board, s.solutionTurns, s.hintCells)

	return s, nil
}

// entropySeed draws a 63-bit seed from the system entropy source, falling
// back to the wall clock if that source is unavailable.
func entropySeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if seed == 0 {
		seed = 1
	}

	return seed
}
