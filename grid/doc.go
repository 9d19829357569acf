// Package grid provides coordinate primitives for a square puzzle lattice:
// cell keys, adjacency tests, neighbor enumeration, and distance helpers.
//
// What:
//
//   - Coord identifies one cell by (Row, Col).
//   - Key / ParseKey encode a Coord as the canonical "row,col" map key and back.
//   - IsAdjacent reports orthogonal adjacency (Manhattan distance exactly 1).
//   - Neighbors enumerates the in-bounds orthogonal neighbors of a cell.
//   - Chebyshev measures king-move distance, used for hint-cell spacing.
//
// Why:
//
//   - Every other package (generator, turn maps, hints, player graph,
//     validators) shares these encodings; keeping them here guarantees that
//     a key written by one component round-trips exactly in another.
//
// Complexity: all operations are O(1) except Neighbors, which is O(4).
//
// Errors:
//
//   - ErrBadKey: a key does not parse back into in-range integer coordinates.
package grid
