// Package path owns the player-drawn loop graph and the pointer-gesture
// state machine that mutates it.
//
// What:
//
//   - Board holds the drawn cells and their undirected connections — an
//     adjacency list capped at degree 2 per cell. The cap and the symmetry
//     of the list are enforced exclusively through Board's methods; no caller
//     can push a cell past two connections.
//   - Tracker interprets one pointer gesture at a time (down, move, up,
//     cancel) into Board mutations: drawing, shortest-path extension when the
//     pointer skips cells, backtracking along the drag, loop closing, redraw
//     rerouting via connection eviction, and deferred tap-erase.
//
// Gesture semantics, in the order they are checked on every move:
//
//  1. Backtrack: the pointer re-enters a cell already on the current drag.
//     Re-entering the drag's own start first attempts to close the loop;
//     otherwise the drag is truncated back to that cell, unlinking the
//     abandoned tail pair by pair, and orphans are swept.
//  2. Extension: the pointer reaches a new cell. A breadth-first shortest
//     path over the 4-neighbor lattice connects the drag head to it, so a
//     fast pointer can skip cells on a straight line and still connect every
//     intermediate one.
//
// Redrawing over an existing path works through the eviction heuristic: when
// a link would push a cell past degree 2, the cell keeps the connection the
// drag arrived on, otherwise drops the connection geometrically opposite the
// new one, otherwise drops an arbitrary one. The path reroutes instead of
// erroring.
//
// Failure semantics: every operation is a total function. Out-of-bounds
// pointer positions are ignored, non-adjacent link attempts are refused as
// no-ops, and nothing here panics or returns an error — pointer input is
// inherently noisy and untrusted.
//
// Concurrency: a Board and its Tracker belong to one event loop; all
// mutation happens synchronously inside a single pointer-event handler.
package path
