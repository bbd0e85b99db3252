// Package gate provides Gate, a single-slot serialization primitive: at most
// one unit of work runs under a given Gate at any instant, and every other
// caller waits until the slot is free.
//
// # Ordering
//
// A Gate guarantees mutual exclusion, not FIFO. A waiting caller watches the
// current occupant, and when it finishes, every waiter races to claim the
// slot. Whoever the scheduler lets in first wins; the others go back to
// waiting on the new occupant. There is no priority and no starvation bound.
//
// # Release
//
// The slot is cleared on every exit path of the work function: a returned
// value, a returned error, or a panic. A failing task therefore never leaves
// the gate locked. The error is handed back untouched inside the Result;
// context errors are reported as a cancel rather than a failure.
//
// # Cancellation
//
// There is none. The context passed to Run is forwarded to the work function
// and nothing else: a caller cannot be cancelled out of its wait, and running
// work cannot be aborted from outside. Work that needs a deadline must apply
// it itself, and the gate stays occupied until that work returns.
//
// # Reentrancy
//
// Calling Run on a Gate from inside work already running under the same Gate
// deadlocks, because the inner call waits for the outer one to finish.
package gate
