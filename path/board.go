package path

import (
	"sort"

	"github.com/bendworks/loopline/grid"
)

// maxDegree is the hard cap on connections per cell: a loop passes through,
// never branches.
const maxDegree = 2

// Board is the player-drawn graph: a set of drawn cells and a symmetric
// adjacency list between orthogonally adjacent drawn cells. Presence of a
// key means the cell is drawn; its slice holds at most maxDegree neighbors.
//
// All mutation goes through Board methods, which maintain two invariants at
// every return: the list is symmetric (a lists b iff b lists a) and no cell
// exceeds maxDegree connections.
type Board struct {
	size  int
	conns map[string][]string
}

// NewBoard returns an empty board for a size×size grid.
func NewBoard(size int) *Board {
	return &Board{size: size, conns: make(map[string][]string)}
}

// Size returns the grid side length.
func (b *Board) Size() int { return b.size }

// Drawn reports whether the cell is currently on the player path.
func (b *Board) Drawn(key string) bool {
	_, ok := b.conns[key]

	return ok
}

// DrawnCount returns the number of drawn cells.
func (b *Board) DrawnCount() int { return len(b.conns) }

// Degree returns the connection count of a cell (0 for undrawn cells).
func (b *Board) Degree(key string) int { return len(b.conns[key]) }

// Connected reports whether an edge a↔b exists.
func (b *Board) Connected(a, bKey string) bool {
	for _, n := range b.conns[a] {
		if n == bKey {
			return true
		}
	}

	return false
}

// MarkDrawn adds a cell with an empty connection set. Drawing an already
// drawn cell is a no-op.
func (b *Board) MarkDrawn(key string) {
	if _, ok := b.conns[key]; !ok {
		b.conns[key] = make([]string, 0, maxDegree)
	}
}

// link adds the symmetric edge a↔b. It refuses — returning false, mutating
// nothing — when the cells are not orthogonally adjacent or either side is
// already at maxDegree. Linking an existing edge succeeds as a no-op.
func (b *Board) link(a, bKey string) bool {
	if !keysAdjacent(a, bKey) {
		return false
	}
	if b.Connected(a, bKey) {
		return true
	}
	if len(b.conns[a]) >= maxDegree || len(b.conns[bKey]) >= maxDegree {
		return false
	}
	b.MarkDrawn(a)
	b.MarkDrawn(bKey)
	b.conns[a] = append(b.conns[a], bKey)
	b.conns[bKey] = append(b.conns[bKey], a)

	return true
}

// unlink removes the symmetric edge a↔b if present. Cells stay drawn even
// at degree zero; sweeping those is CleanupOrphans' job.
func (b *Board) unlink(a, bKey string) {
	b.conns[a] = removeOne(b.conns[a], bKey)
	b.conns[bKey] = removeOne(b.conns[bKey], a)
}

// Erase deletes a cell outright: every neighbor's back-link first, then the
// cell itself. Erasing an undrawn cell is a no-op.
func (b *Board) Erase(key string) {
	links, ok := b.conns[key]
	if !ok {
		return
	}
	for _, n := range links {
		b.conns[n] = removeOne(b.conns[n], key)
	}
	delete(b.conns, key)
}

// Clear empties the whole player graph. Solution and hints are untouched —
// they live outside the board.
func (b *Board) Clear() {
	b.conns = make(map[string][]string)
}

// CleanupOrphans deletes every drawn cell with zero connections, repeating
// until none remain: removing one orphan can transitively orphan a neighbor,
// so this runs to a fixed point. Idempotent.
func (b *Board) CleanupOrphans() {
	for {
		removed := false
		for key, links := range b.conns {
			if len(links) == 0 {
				delete(b.conns, key)
				removed = true
			}
		}
		if !removed {
			return
		}
	}
}

// DrawnCells returns the drawn cell keys in sorted order, for deterministic
// snapshots and rendering.
func (b *Board) DrawnCells() []string {
	out := make([]string, 0, len(b.conns))
	for key := range b.conns {
		out = append(out, key)
	}
	sort.Strings(out)

	return out
}

// Links returns a copy of one cell's connections (nil for undrawn cells).
func (b *Board) Links(key string) []string {
	links, ok := b.conns[key]
	if !ok {
		return nil
	}
	cp := make([]string, len(links))
	copy(cp, links)

	return cp
}

// Connections returns a deep copy of the adjacency list. Callers may hold it
// across later mutations; the board never aliases the returned slices.
func (b *Board) Connections() map[string][]string {
	out := make(map[string][]string, len(b.conns))
	for key, links := range b.conns {
		cp := make([]string, len(links))
		copy(cp, links)
		out[key] = cp
	}

	return out
}

// Restore replaces the whole graph with a previously snapshotted one. The
// persistence round-trip contract applies: the input is assumed well-formed
// (symmetric, degree ≤ 2, adjacent pairs), and a restored graph is
// indistinguishable from one built by gestures. Cells listed without a
// connection entry are redrawn with an empty set.
func (b *Board) Restore(cells []string, conns map[string][]string) {
	b.conns = make(map[string][]string, len(cells))
	for _, key := range cells {
		b.conns[key] = make([]string, 0, maxDegree)
	}
	for key, links := range conns {
		cp := make([]string, len(links))
		copy(cp, links)
		b.conns[key] = cp
	}
}

// keysAdjacent decodes two cell keys and tests orthogonal adjacency.
// Malformed keys are never adjacent.
func keysAdjacent(a, b string) bool {
	ca, errA := grid.ParseKey(a)
	cb, errB := grid.ParseKey(b)
	if errA != nil || errB != nil {
		return false
	}

	return grid.IsAdjacent(ca.Row, ca.Col, cb.Row, cb.Col)
}

// removeOne returns links without the first occurrence of key, in place.
func removeOne(links []string, key string) []string {
	for i, n := range links {
		if n == key {
			return append(links[:i], links[i+1:]...)
		}
	}

	return links
}
