package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadKey indicates a cell key that does not decode to integer coordinates.
var ErrBadKey = errors.New("grid: malformed cell key")

// neighborOffsets lists the four orthogonal directions: N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Coord identifies a single cell by zero-based row and column.
type Coord struct {
	Row, Col int
}

// Key returns the canonical map key for c, formatted "row,col".
// Key and ParseKey are exact inverses for all integer coordinates.
// Complexity: O(1).
func (c Coord) Key() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Key formats the canonical cell key for (row, col).
// Complexity: O(1).
func Key(row, col int) string {
	return Coord{Row: row, Col: col}.Key()
}

// ParseKey decodes a canonical "row,col" key back into a Coord.
// Returns ErrBadKey when the key is not two comma-separated integers.
// Complexity: O(len(key)).
func ParseKey(key string) (Coord, error) {
	sep := strings.IndexByte(key, ',')
	if sep < 0 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	row, err := strconv.Atoi(key[:sep])
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadKey, key)
	}
	col, err := strconv.Atoi(key[sep+1:])
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadKey, key)
	}

	return Coord{Row: row, Col: col}, nil
}

// InBounds reports whether (row, col) lies inside a size×size grid.
// Complexity: O(1).
func InBounds(row, col, size int) bool {
	return row >= 0 && row < size && col >= 0 && col < size
}

// IsAdjacent reports whether two cells are orthogonal neighbors,
// i.e. their Manhattan distance is exactly 1. Pure function.
// Complexity: O(1).
func IsAdjacent(r1, c1, r2, c2 int) bool {
	dr, dc := abs(r1-r2), abs(c1-c2)

	return dr+dc == 1
}

// Neighbors returns the in-bounds orthogonal neighbors of (row, col)
// on a size×size grid, in N, E, S, W order. At most four results.
// Complexity: O(1).
func Neighbors(row, col, size int) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if InBounds(nr, nc, size) {
			out = append(out, Coord{Row: nr, Col: nc})
		}
	}

	return out
}

// Chebyshev returns the king-move distance between two cells:
// max(|Δrow|, |Δcol|). Used to enforce hint-cell spacing.
// Complexity: O(1).
func Chebyshev(a, b Coord) int {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	if dr > dc {
		return dr
	}

	return dc
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
