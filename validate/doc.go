// Package validate decides win state and progress for a puzzle instance.
//
// What:
//
//   - StructuralLoop: the player graph is one closed loop covering every
//     cell of the grid (degree 2 everywhere, single connected component,
//     size² cells drawn).
//   - PartialStructuralLoop: one closed loop, coverage not required. Used by
//     difficulty modes that accept any loop.
//   - Hints: every hint cell sees the same bend count in its 3×3 area on the
//     player turn map as on the solution turn map.
//   - FullWin: the structural check appropriate to the difficulty policy,
//     AND the hint check.
//   - Score: a 0–100 progress metric computed even before a win, blending
//     how close total hint deviation is to zero with a coverage bonus.
//
// The single-component property is established by breadth-first traversal
// over the player connections from an arbitrary drawn cell: degree-2
// everywhere plus one component is exactly "a single closed loop, not
// several disjoint ones".
//
// Complexity: every check is O(cells) over the drawn graph.
package validate
