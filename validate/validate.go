package validate

import (
	"github.com/bendworks/loopline/grid"
	"github.com/bendworks/loopline/path"
	"github.com/bendworks/loopline/turns"
)

// StructuralLoop reports whether the player graph is a single closed loop
// covering the entire size×size grid: size² drawn cells, every cell at
// degree 2, and one connected component.
func StructuralLoop(b *path.Board) bool {
	size := b.Size()
	if b.DrawnCount() != size*size {
		return false
	}

	return PartialStructuralLoop(b)
}

// PartialStructuralLoop reports whether the player graph is a single closed
// loop, with no coverage requirement: at least one cell drawn, every drawn
// cell at degree 2, and a traversal from any one cell reaching all of them.
func PartialStructuralLoop(b *path.Board) bool {
	cells := b.DrawnCells()
	if len(cells) == 0 {
		return false
	}
	for _, key := range cells {
		if b.Degree(key) != 2 {
			return false
		}
	}

	return reachableFrom(b, cells[0]) == len(cells)
}

// reachableFrom counts the drawn cells reachable from start over player
// connections, breadth-first.
func reachableFrom(b *path.Board, start string) int {
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range b.Links(cur) {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return len(visited)
}

// Hints reports whether every hint cell sees equal bend counts in its 3×3
// area on the solution and player turn maps. Only the keys of hintCells
// matter here; the stored expected values are display data.
func Hints(solutionTurns, playerTurns map[string]bool, hintCells map[string]int, size int) bool {
	for key := range hintCells {
		c, err := grid.ParseKey(key)
		if err != nil {
			return false
		}
		want := turns.CountInArea(c.Row, c.Col, size, solutionTurns)
		got := turns.CountInArea(c.Row, c.Col, size, playerTurns)
		if want != got {
			return false
		}
	}

	return true
}

// FullWin combines the structural check selected by the difficulty policy
// (full coverage or any single loop) with the hint check.
func FullWin(b *path.Board, solutionTurns map[string]bool, hintCells map[string]int, requireFullCover bool) bool {
	if requireFullCover {
		if !StructuralLoop(b) {
			return false
		}
	} else if !PartialStructuralLoop(b) {
		return false
	}

	return Hints(solutionTurns, turns.PlayerMap(b.Connections()), hintCells, b.Size())
}

// Score computes a 0–100 progress metric, defined even when the puzzle is
// not won. The hint component measures how close the summed absolute
// deviation |expected−actual| over all hint cells is to zero, against the
// empty-board baseline; the coverage component is the fraction of grid cells
// drawn. The blend is 80% hints, 20% coverage, so partial progress registers
// in modes that do not require full coverage.
func Score(b *path.Board, solutionTurns map[string]bool, hintCells map[string]int) int {
	size := b.Size()
	playerTurns := turns.PlayerMap(b.Connections())

	baseline := 0 // deviation of an empty board: every player count is zero
	deviation := 0
	for key := range hintCells {
		c, err := grid.ParseKey(key)
		if err != nil {
			continue
		}
		want := turns.CountInArea(c.Row, c.Col, size, solutionTurns)
		got := turns.CountInArea(c.Row, c.Col, size, playerTurns)
		baseline += want
		deviation += abs(want - got)
	}

	hintScore := 100
	switch {
	case baseline > 0:
		if deviation > baseline {
			deviation = baseline
		}
		hintScore = 100 * (baseline - deviation) / baseline
	case deviation > 0:
		// All expected counts are zero yet the player drew bends there.
		hintScore = 0
	}
	coverage := 100 * b.DrawnCount() / (size * size)

	return (80*hintScore + 20*coverage) / 100
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
