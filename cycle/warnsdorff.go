package cycle

import (
	"math/rand"

	"github.com/bendworks/loopline/grid"
)

// greedyAttempt runs one Warnsdorff walk: from a random start cell, always
// step to the unvisited neighbor with the fewest onward unvisited neighbors,
// breaking ties uniformly at random. Returns nil on a dead end or when the
// walk covers the grid but cannot close back to its start — both are normal;
// the caller simply retries.
//
// Complexity: O(size²) per attempt.
func greedyAttempt(size int, rng *rand.Rand) []grid.Coord {
	total := size * size
	visited := make([]bool, total)
	path := make([]grid.Coord, 0, total)

	cur := grid.Coord{Row: rng.Intn(size), Col: rng.Intn(size)}
	visited[cur.Row*size+cur.Col] = true
	path = append(path, cur)

	cands := make([]grid.Coord, 0, 4)
	for len(path) < total {
		// Collect the minimal-onward-degree unvisited neighbors of cur.
		cands = cands[:0]
		best := 5 // above any possible degree
		for _, n := range grid.Neighbors(cur.Row, cur.Col, size) {
			if visited[n.Row*size+n.Col] {
				continue
			}
			d := onwardDegree(n, size, visited)
			if d < best {
				best = d
				cands = cands[:0]
			}
			if d == best {
				cands = append(cands, n)
			}
		}
		if len(cands) == 0 {
			// Dead end mid-walk: the common failure mode of this phase.
			return nil
		}
		cur = cands[rng.Intn(len(cands))]
		visited[cur.Row*size+cur.Col] = true
		path = append(path, cur)
	}

	// Every cell visited; the walk is a cycle only if it can close.
	if grid.IsAdjacent(path[total-1].Row, path[total-1].Col, path[0].Row, path[0].Col) {
		return path
	}

	return nil
}

// onwardDegree counts the unvisited neighbors of c.
func onwardDegree(c grid.Coord, size int, visited []bool) int {
	d := 0
	for _, n := range grid.Neighbors(c.Row, c.Col, size) {
		if !visited[n.Row*size+n.Col] {
			d++
		}
	}

	return d
}
