// Package scopeguard provides stateful scope guards for deterministic
// resource disposal.
//
// A guard owns a value and a mutable disposition state, and runs a
// caller-supplied finalizer exactly once when the guard finishes,
// passing the value and whichever state was last set. Multi-step
// acquisition sequences set the disposition as they progress, so a
// single deferred trigger rolls back exactly as far as the sequence
// got, with no cleanup bookkeeping at each early return.
//
// # Architecture Overview
//
// The library is organized into two packages:
//
//	scopeguard/          Root package with Guard, Dismissible, OnExit and Do
//	└── cleanup/         LIFO cleanup stack for variable-length sequences
//
// # Quick Start
//
// Bind a resource, an initial disposition and a finalizer, and arrange
// the trigger with defer. The finalizer branches on the disposition it
// receives; the guard itself never interprets it:
//
//	g := scopeguard.New(f, stateTemp, func(f *os.File, s installState) {
//	    switch s {
//	    case stateTemp:
//	        f.Close()
//	        os.Remove(f.Name())
//	    case stateInstalled:
//	        f.Close()
//	    }
//	})
//	defer g.Finish()
//
//	if err := copyPayload(f); err != nil {
//	    return err // deferred Finish reverts the temp file
//	}
//	g.SetState(stateInstalled)
//
// # Dismissible Guards
//
// When the only dispositions are "revert" and "keep", use Dismissible:
// construct it with the revert action, dismiss it once the work has
// committed:
//
//	d := scopeguard.NewDismissible(dir, func(dir string) {
//	    os.RemoveAll(dir)
//	})
//	defer d.Finish()
//
//	if err := populate(dir); err != nil {
//	    return err // directory is removed
//	}
//	d.Dismiss() // directory is kept
//
// OnExit is the value-less form for deferring a plain closure that may
// later be cancelled.
//
// # Escape Hatch
//
// Extract releases the guarded value without finalization and hands
// ownership back to the caller. The finalizer is permanently cancelled;
// the pending deferred Finish becomes a no-op.
//
// # Deterministic Finalization
//
// Go has no destructors, so the end-of-life trigger is explicit: pair
// every New with a deferred Finish in the same statement sequence, or
// use Do, which runs a function body with a guard and finishes it on
// every exit path including panics. Finish acts only once, so an early
// explicit Finish or Extract followed by the deferred one is safe.
// Guards finished by stacked defers run in reverse construction order.
//
// # Thread Safety
//
// Guards are NOT thread-safe. Each guard belongs to one goroutine;
// handing a guard to another goroutine is fine as long as exactly one
// uses it at a time. Share the guarded value, not the guard.
package scopeguard
