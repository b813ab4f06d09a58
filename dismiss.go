package scopeguard

// Dismissible guards a value with a single revert action that runs at
// end-of-life unless the guard is dismissed first. It covers the common
// "roll back on failure, keep on success" shape: arm the guard right
// after a step succeeds, dismiss it once the whole sequence has
// committed.
//
// Dismissible is a thin wrapper over Guard with a two-state disposition
// (armed or dismissed). The wrapper deliberately does not expose
// SetState: dismissal is final, a dismissed guard cannot be re-armed.
type Dismissible[T any] struct {
	g *Guard[T, bool]
}

// NewDismissible creates an armed guard holding value. revert runs with
// the value exactly once when the guard is finished, unless Dismiss or
// Extract is called first. Panics if revert is nil.
func NewDismissible[T any](value T, revert func(T)) *Dismissible[T] {
	if revert == nil {
		panic("scopeguard: NewDismissible with nil revert action")
	}
	return &Dismissible[T]{
		g: New(value, true, func(value T, armed bool) {
			if armed {
				revert(value)
			}
		}),
	}
}

// Value returns a pointer to the guarded value.
// Panics if the guard has already completed.
func (d *Dismissible[T]) Value() *T {
	return d.g.Value()
}

// Dismiss disarms the guard: the revert action will not run when the
// guard finishes. Dismissing more than once is allowed and changes
// nothing; there is no way back to the armed state.
// Panics if the guard has already completed.
func (d *Dismissible[T]) Dismiss() {
	d.g.mustAlive("Dismiss")
	d.g.state = false
}

// Dismissed reports whether the guard has been disarmed.
// Panics if the guard has already completed.
func (d *Dismissible[T]) Dismissed() bool {
	d.g.mustAlive("Dismissed")
	return !d.g.state
}

// Finish completes the guard, running the revert action if the guard is
// still armed. Like Guard.Finish it acts only once; later calls do
// nothing.
func (d *Dismissible[T]) Finish() {
	d.g.Finish()
}

// Extract releases the guarded value without running the revert action,
// regardless of whether the guard was dismissed.
// Panics if the guard has already completed.
func (d *Dismissible[T]) Extract() T {
	return d.g.Extract()
}

// OnExit returns an armed value-less guard that runs fn when finished.
// It turns any closure into a cancellable deferred action:
//
//	undo := scopeguard.OnExit(func() { svc.deregister(id) })
//	defer undo.Finish()
//	// ...
//	undo.Dismiss() // keep the registration
//
// Panics if fn is nil.
func OnExit(fn func()) *Dismissible[struct{}] {
	if fn == nil {
		panic("scopeguard: OnExit with nil function")
	}
	return NewDismissible(struct{}{}, func(struct{}) { fn() })
}
