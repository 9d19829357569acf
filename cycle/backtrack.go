package cycle

import (
	"math/rand"

	"github.com/bendworks/loopline/grid"
)

// btEngine holds the state of one budgeted backtracking search.
// A dedicated engine struct (instead of closures) keeps dependencies explicit
// and hot-path state predictable; the search uses an explicit frame stack
// rather than native recursion so an 8×8 worst case cannot touch any
// language recursion limit.
type btEngine struct {
	size, total int
	budget      int // iteration cap for this start
	steps       int
	rng         *rand.Rand

	visited []bool
	path    []grid.Coord
	stack   []btFrame
}

// btFrame tracks the branch state of one path position: the shuffled
// candidate neighbors of that cell and the next candidate index to try.
type btFrame struct {
	cands [4]grid.Coord
	n     int // populated candidates
	next  int
}

func newBtEngine(size, budget int, rng *rand.Rand) *btEngine {
	total := size * size

	return &btEngine{
		size:    size,
		total:   total,
		budget:  budget,
		rng:     rng,
		visited: make([]bool, total),
		path:    make([]grid.Coord, 0, total),
		stack:   make([]btFrame, 0, total),
	}
}

// run searches for a Hamiltonian cycle starting at start. It returns the
// cycle and true on success; (nil, false) when the search space under this
// start is exhausted or the iteration budget is hit.
//
// Complexity: O(budget) worst case; each loop iteration consumes one step.
func (e *btEngine) run(start grid.Coord) ([]grid.Coord, bool) {
	e.push(start)

	for len(e.stack) > 0 {
		e.steps++
		if e.steps > e.budget {
			// Budget exhausted: abandon this start entirely.
			return nil, false
		}

		if len(e.path) == e.total {
			last := e.path[e.total-1]
			if grid.IsAdjacent(last.Row, last.Col, start.Row, start.Col) {
				out := make([]grid.Coord, e.total)
				copy(out, e.path)

				return out, true
			}
			// Full path that cannot close: unwind and try siblings.
			e.pop()
			continue
		}

		top := &e.stack[len(e.stack)-1]
		advanced := false
		for top.next < top.n {
			cand := top.cands[top.next]
			top.next++
			if !e.visited[cand.Row*e.size+cand.Col] {
				e.push(cand)
				advanced = true
				break
			}
		}
		if !advanced {
			e.pop()
		}
	}

	return nil, false
}

// push appends c to the path and opens a frame with its neighbors in a
// freshly randomized order. Randomized branch order is what makes repeated
// generation produce different cycles.
func (e *btEngine) push(c grid.Coord) {
	e.visited[c.Row*e.size+c.Col] = true
	e.path = append(e.path, c)

	var f btFrame
	for _, n := range grid.Neighbors(c.Row, c.Col, e.size) {
		f.cands[f.n] = n
		f.n++
	}
	e.rng.Shuffle(f.n, func(i, j int) {
		f.cands[i], f.cands[j] = f.cands[j], f.cands[i]
	})
	e.stack = append(e.stack, f)
}

// pop unwinds the deepest path cell and its frame.
func (e *btEngine) pop() {
	last := e.path[len(e.path)-1]
	e.visited[last.Row*e.size+last.Col] = false
	e.path = e.path[:len(e.path)-1]
	e.stack = e.stack[:len(e.stack)-1]
}
