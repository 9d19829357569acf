// Package session ties one puzzle instance together: the generated solution
// loop, its turn map, the sampled hint cells, the player's board and gesture
// tracker, the game state machine, and the persistence snapshot.
//
// A Session is an explicit per-game object — there is no module-level state
// and no singleton; a view instantiates one and passes it to its handlers.
//
// State machine:
//
//	NEW → IN_PROGRESS → {WON | VIEWED_SOLUTION | MANUALLY_FINISHED}
//
// IN_PROGRESS is re-entrant from any terminal state via Restart. Win
// validation guards the IN_PROGRESS→WON edge: it runs after every
// graph-mutating gesture but is deferred while a drag is in flight, so no
// transient popup interrupts an unfinished stroke.
//
// Collaborator boundaries:
//
//   - Rendering reads snapshots (drawn cells, connections, hints, score) and
//     subscribes to change notifications via WithOnChange; it never mutates.
//   - Persistence calls Snapshot — cheap, synchronous, side-effect free, safe
//     at arbitrary times including tab-hide — and hands it back to Resume.
//     A resumed graph is indistinguishable from a gesture-built one.
//   - Daily mode passes a fixed seed; unlimited mode omits it, and the
//     session draws one from the system entropy source.
package session
