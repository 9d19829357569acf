package path

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/bendworks/loopline/grid"
)

// Tracker interprets one pointer gesture at a time into Board mutations.
// Its state is ephemeral: it exists only between PointerDown and
// PointerUp/PointerCancel and is reset at every gesture end.
type Tracker struct {
	board *Board

	dragging bool
	moved    bool
	dragPath []string           // cells visited during the current drag, in order
	added    mapset.Set[string] // cells first drawn by this gesture (tap-erase needs the distinction)
}

// NewTracker returns a Tracker mutating b.
func NewTracker(b *Board) *Tracker {
	return &Tracker{board: b, added: mapset.New[string]()}
}

// Dragging reports whether a gesture is in flight. Win validation is
// deferred while this is true, so no popup interrupts an unfinished stroke.
func (t *Tracker) Dragging() bool { return t.dragging }

// DragPath returns the cells of the current drag in visit order.
func (t *Tracker) DragPath() []string {
	out := make([]string, len(t.dragPath))
	copy(out, t.dragPath)

	return out
}

// PointerDown begins a gesture at (row, col). A press on an already-drawn
// cell destroys nothing yet: erase is deferred to PointerUp so a drag that
// starts on the existing path can extend it instead. Out-of-bounds presses
// are ignored and no gesture starts.
func (t *Tracker) PointerDown(row, col int) {
	if !grid.InBounds(row, col, t.board.Size()) {
		return
	}
	key := grid.Key(row, col)
	if !t.board.Drawn(key) {
		t.board.MarkDrawn(key)
		t.added.Put(key)
	}
	t.dragging = true
	t.moved = false
	t.dragPath = append(t.dragPath[:0], key)
}

// PointerMove advances the gesture to (row, col). Ignored when no gesture is
// in flight, the position is out of bounds, or the cell is the current drag
// head. Otherwise exactly one of the backtrack or extension cases applies.
func (t *Tracker) PointerMove(row, col int) {
	if !t.dragging || !grid.InBounds(row, col, t.board.Size()) {
		return
	}
	key := grid.Key(row, col)
	head := t.dragPath[len(t.dragPath)-1]
	if key == head {
		return
	}
	t.moved = true

	if k := t.indexInDrag(key); k >= 0 {
		t.backtrack(k)
		return
	}
	t.extend(key)
}

// PointerUp ends the gesture. A press-and-release that never moved and
// landed on a cell that pre-existed this gesture is the tap-erase: the cell
// and all its connections are removed. Orphans are always swept and the drag
// state always resets.
func (t *Tracker) PointerUp() {
	if t.dragging && !t.moved && len(t.dragPath) == 1 {
		if key := t.dragPath[0]; !t.added.Has(key) {
			t.board.Erase(key)
		}
	}
	t.finish()
}

// PointerCancel aborts the gesture: same cleanup as PointerUp but never
// interprets the gesture as a tap-erase.
func (t *Tracker) PointerCancel() {
	t.finish()
}

// finish sweeps orphans and resets all drag state.
func (t *Tracker) finish() {
	t.board.CleanupOrphans()
	t.dragging = false
	t.moved = false
	t.dragPath = t.dragPath[:0]
	t.added = mapset.New[string]()
}

// indexInDrag returns the index of key within dragPath excluding the head,
// or -1. A hit means the pointer moved backwards along its own stroke.
func (t *Tracker) indexInDrag(key string) int {
	for i := 0; i < len(t.dragPath)-1; i++ {
		if t.dragPath[i] == key {
			return i
		}
	}

	return -1
}

// backtrack handles re-entering dragPath[k]. Re-entering the drag's own
// start (k == 0) first attempts to close the loop: link the drag tail to the
// drag head, which succeeds only when they are adjacent and not already
// connected. On success the start is appended and the stroke is done.
// Otherwise the drag is truncated back to k: the abandoned tail is unlinked
// pair by pair in reverse, then orphans are swept.
func (t *Tracker) backtrack(k int) {
	if k == 0 {
		tail := t.dragPath[len(t.dragPath)-1]
		headKey := t.dragPath[0]
		if !t.board.Connected(tail, headKey) && t.board.link(tail, headKey) {
			t.dragPath = append(t.dragPath, headKey)
			return
		}
	}
	for i := len(t.dragPath) - 1; i > k; i-- {
		t.board.unlink(t.dragPath[i], t.dragPath[i-1])
	}
	t.dragPath = t.dragPath[:k+1]
	t.board.CleanupOrphans()
}

// extend connects the drag head to a new cell along the shortest lattice
// path, so a fast pointer that skipped cells still connects every
// intermediate one. Each walked cell is drawn if new and force-linked to its
// predecessor; a refused link (cannot happen on a lattice path, kept as a
// guard) stops the extension early. Orphans are swept afterwards because
// forced eviction can strand a cell.
func (t *Tracker) extend(key string) {
	head := t.dragPath[len(t.dragPath)-1]
	steps := t.shortestPath(head, key)

	prev := head
	incoming := ""
	if len(t.dragPath) >= 2 {
		incoming = t.dragPath[len(t.dragPath)-2]
	}
	for _, step := range steps {
		if !t.board.Drawn(step) {
			t.board.MarkDrawn(step)
			t.added.Put(step)
		}
		if !t.forceLink(prev, step, incoming) {
			break
		}
		t.dragPath = append(t.dragPath, step)
		incoming = prev
		prev = step
	}
	t.board.CleanupOrphans()
}

// forceLink links a↔b, evicting an existing connection on either side when a
// cell is already at the degree cap. Eviction priority, per side:
//
//  1. keep the connection toward the cell the drag arrived from (incoming),
//     evicting the other;
//  2. else evict the connection geometrically opposite the new link, so the
//     rerouted path continues instead of reversing;
//  3. else evict an arbitrary existing connection.
//
// Returns false only for non-adjacent cells.
func (t *Tracker) forceLink(a, b, incoming string) bool {
	if !keysAdjacent(a, b) {
		return false
	}
	t.board.MarkDrawn(a)
	t.board.MarkDrawn(b)
	if t.board.Connected(a, b) {
		return true
	}
	if t.board.Degree(a) >= maxDegree {
		t.board.unlink(a, t.evictionVictim(a, b, incoming))
	}
	if t.board.Degree(b) >= maxDegree {
		// For the far side the drag arrives from a itself.
		t.board.unlink(b, t.evictionVictim(b, a, a))
	}

	return t.board.link(a, b)
}

// evictionVictim picks which existing connection of cell to drop so that a
// new link toward next fits. incoming is the drag predecessor of cell, or ""
// when no drag context exists.
func (t *Tracker) evictionVictim(cell, next, incoming string) string {
	links := t.board.conns[cell]

	// Keep the incoming drag connection: evict the other one.
	if incoming != "" {
		for _, n := range links {
			if n == incoming {
				for _, other := range links {
					if other != incoming {
						return other
					}
				}
			}
		}
	}

	// Evict the connection opposite the new link direction.
	if opp := oppositeKey(cell, next); opp != "" {
		for _, n := range links {
			if n == opp {
				return n
			}
		}
	}

	// Arbitrary fallback.
	return links[0]
}

// oppositeKey returns the key of the cell geometrically opposite next across
// cell (cell + (cell − next)), or "" for malformed keys.
func oppositeKey(cell, next string) string {
	c, errC := grid.ParseKey(cell)
	n, errN := grid.ParseKey(next)
	if errC != nil || errN != nil {
		return ""
	}

	return grid.Key(2*c.Row-n.Row, 2*c.Col-n.Col)
}

// shortestPath runs an unweighted breadth-first search over the full
// 4-neighbor lattice from the cell keyed from to the cell keyed to, and
// returns the cells after from, in order. Adjacent cells yield a single-step
// path. Every in-bounds pair is reachable, so the empty result only covers
// malformed keys.
func (t *Tracker) shortestPath(from, to string) []string {
	src, errS := grid.ParseKey(from)
	dst, errD := grid.ParseKey(to)
	if errS != nil || errD != nil || src == dst {
		return nil
	}
	size := t.board.Size()

	parent := make(map[grid.Coord]grid.Coord, size*size)
	parent[src] = src
	queue := []grid.Coord{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == dst {
			break
		}
		for _, n := range grid.Neighbors(cur.Row, cur.Col, size) {
			if _, seen := parent[n]; !seen {
				parent[n] = cur
				queue = append(queue, n)
			}
		}
	}
	if _, ok := parent[dst]; !ok {
		return nil
	}

	// Reconstruct dst←…←src, then reverse, dropping src itself.
	rev := make([]string, 0, 8)
	for cur := dst; cur != src; cur = parent[cur] {
		rev = append(rev, cur.Key())
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
