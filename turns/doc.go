// Package turns derives bend ("turn") maps from loop paths and player graphs.
//
// A cell is a turn when a path does not run straight through it: the step in
// and the step out are not axis-aligned. Hints count turns, so both the
// solution cycle and the player's drawn graph reduce to the same shape here —
// a map from cell key to "is this cell a bend" — before they are compared.
//
// What:
//
//   - SolutionMap: turn map of a closed ordered path (cyclic triples).
//   - PlayerMap: turn map of a player adjacency graph; only degree-2 cells
//     can be turns, and a degree-2 cell is straight exactly when its two
//     neighbors are collinear with it (all three share a row or a column).
//   - CountInArea: turns inside the 3×3 neighborhood of a cell, clipped at
//     the grid border. This is the number a hint displays and checks.
//
// Complexity: SolutionMap and PlayerMap are O(n) in cells; CountInArea O(9).
package turns
