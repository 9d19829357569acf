// Package hint samples the cells that display numeric bend constraints.
//
// What:
//
//   - Generate walks every cell of the grid in a randomized order and selects
//     it with a fixed probability, subject to two rejection rules: a selected
//     cell must keep a minimum Chebyshev spacing from every earlier selection
//     (overlapping 3×3 validation areas confuse players), and the total may
//     not exceed a per-difficulty cap. A candidate that violates spacing is
//     skipped outright, never re-drawn elsewhere.
//   - Each selected cell carries its expected bend count, read from the
//     solution turn map via turns.CountInArea.
//
// Determinism: selection order and coin flips come from one seeded stream, so
// the daily puzzle shows the same hints on every machine.
//
// Complexity: O(n × selected) for n = size² cells; selected is small.
//
// Errors:
//
//   - ErrGridSize: grid side below 2.
//   - ErrOptionViolation: probability outside [0,1] or negative cap/spacing.
package hint
