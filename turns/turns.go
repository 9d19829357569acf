package turns

import "github.com/bendworks/loopline/grid"

// SolutionMap derives the turn map of a closed path. For each index i the
// cyclic triple (path[i-1], path[i], path[i+1]) is straight only when all
// three share a row or all three share a column; every other cell is a turn.
//
// Complexity: O(len(path)).
func SolutionMap(path []grid.Coord) map[string]bool {
	n := len(path)
	out := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		prev := path[(i-1+n)%n]
		cur := path[i]
		next := path[(i+1)%n]
		straight := (prev.Row == cur.Row && cur.Row == next.Row) ||
			(prev.Col == cur.Col && cur.Col == next.Col)
		out[cur.Key()] = !straight
	}

	return out
}

// PlayerMap derives the turn map of a player adjacency graph, keyed by cell.
// A cell with anything other than exactly two connections is never a turn; a
// degree-2 cell is a turn unless its two neighbors lie on the same row or the
// same column as the cell itself (straight run through the cell).
//
// Malformed keys cannot arise from gesture input; if one appears in a
// restored graph it is simply recorded as a non-turn.
//
// Complexity: O(cells).
func PlayerMap(conns map[string][]string) map[string]bool {
	out := make(map[string]bool, len(conns))
	for key, links := range conns {
		out[key] = false
		if len(links) != 2 {
			continue
		}
		cell, err := grid.ParseKey(key)
		if err != nil {
			continue
		}
		a, errA := grid.ParseKey(links[0])
		b, errB := grid.ParseKey(links[1])
		if errA != nil || errB != nil {
			continue
		}
		straight := (a.Row == cell.Row && b.Row == cell.Row) ||
			(a.Col == cell.Col && b.Col == cell.Col)
		out[key] = !straight
	}

	return out
}

// CountInArea sums the turns inside the 3×3 neighborhood of (row, col) —
// the cell itself plus its eight surrounding cells, each clipped against the
// size×size grid boundary. Works on solution and player maps alike.
//
// Complexity: O(9).
func CountInArea(row, col, size int, turnMap map[string]bool) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := row+dr, col+dc
			if !grid.InBounds(r, c, size) {
				continue
			}
			if turnMap[grid.Key(r, c)] {
				count++
			}
		}
	}

	return count
}
