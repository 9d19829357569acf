package cycle

import (
	"math/rand"

	"github.com/bendworks/loopline/grid"
)

// fallbackRing deterministically constructs a closed Hamiltonian ring for any
// grid with an even side, then rotates it by a random offset for variety
// (rotation of a closed cycle preserves every adjacency, including the wrap).
//
// Construction: column 0 top-to-bottom, then a boustrophedon through rows
// 1..size-1 of the remaining columns, then row 0 right-to-left back to the
// start. Every junction is orthogonally adjacent when size is even.
//
// For odd sizes no Hamiltonian cycle exists (grid bipartite parity), so the
// returned sequence is a plain boustrophedon snake covering every cell: a
// valid open path whose ends do not close. The caller reports that anomaly;
// this function still returns the best available path rather than failing.
//
// Complexity: O(size²).
func fallbackRing(size int, rng *rand.Rand) (path []grid.Coord, closed bool) {
	total := size * size
	path = make([]grid.Coord, 0, total)

	if size%2 != 0 {
		// Open snake: rows top-to-bottom, alternating column direction.
		for r := 0; r < size; r++ {
			for i := 0; i < size; i++ {
				c := i
				if r%2 == 1 {
					c = size - 1 - i
				}
				path = append(path, grid.Coord{Row: r, Col: c})
			}
		}

		return path, false
	}

	// Column 0, top to bottom.
	for r := 0; r < size; r++ {
		path = append(path, grid.Coord{Row: r, Col: 0})
	}
	// Columns 1..size-1, serpentine over rows size-1..1.
	for c := 1; c < size; c++ {
		if c%2 == 1 {
			for r := size - 1; r >= 1; r-- {
				path = append(path, grid.Coord{Row: r, Col: c})
			}
		} else {
			for r := 1; r <= size-1; r++ {
				path = append(path, grid.Coord{Row: r, Col: c})
			}
		}
	}
	// Row 0, right to left, closing back onto (0,0).
	for c := size - 1; c >= 1; c-- {
		path = append(path, grid.Coord{Row: 0, Col: c})
	}

	return rotate(path, rng.Intn(total)), true
}

// rotate returns path shifted so index k becomes the first element.
func rotate(path []grid.Coord, k int) []grid.Coord {
	n := len(path)
	out := make([]grid.Coord, n)
	for i := 0; i < n; i++ {
		out[i] = path[(i+k)%n]
	}

	return out
}
