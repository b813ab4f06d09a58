package scopeguard

// Finalizer consumes a guarded value at end-of-life together with the
// disposition state the value carried at that moment.
type Finalizer[T, S any] func(value T, state S)

// Guard owns a value of type T for a lexical scope and runs a finalizer
// over it exactly once when the scope ends. The finalizer receives the
// most recent disposition state of type S, so the outcome of the scope
// (committed, failed, partially done) can steer what finalization does.
//
// The zero Guard is not usable; construct one with New and arrange the
// trigger right at the construction site:
//
//	g := scopeguard.New(f, install, finalize)
//	defer g.Finish()
//
// Guard is NOT thread-safe. A guard belongs to the goroutine that created
// it; share the guarded value, not the guard.
type Guard[T, S any] struct {
	value     T
	state     S
	fin       Finalizer[T, S]
	completed bool
}

// New creates a guard holding value with the given initial disposition
// state. fin runs exactly once when the guard is finished, unless the
// value is released first with Extract. Panics if fin is nil.
func New[T, S any](value T, state S, fin Finalizer[T, S]) *Guard[T, S] {
	if fin == nil {
		panic("scopeguard: New with nil finalizer")
	}
	return &Guard[T, S]{value: value, state: state, fin: fin}
}

// mustAlive panics when the guard has already finished or been extracted.
func (g *Guard[T, S]) mustAlive(op string) {
	if g.completed {
		panic("scopeguard: " + op + " on completed guard")
	}
}

// Value returns a pointer to the guarded value. The pointer stays valid
// for reads and writes until the guard completes; the guard does not
// observe mutations, it only carries the value to the finalizer.
// Panics if the guard has already completed.
func (g *Guard[T, S]) Value() *T {
	g.mustAlive("Value")
	return &g.value
}

// State returns the current disposition state.
// Panics if the guard has already completed.
func (g *Guard[T, S]) State() S {
	g.mustAlive("State")
	return g.state
}

// SetState replaces the disposition state. The last state set before the
// guard finishes is the one the finalizer receives; earlier states leave
// no trace. Panics if the guard has already completed.
func (g *Guard[T, S]) SetState(state S) {
	g.mustAlive("SetState")
	g.state = state
}

// Finish runs the finalizer with the guarded value and its current
// disposition state, then releases the guard's storage. Only the first
// call acts; once the guard has completed, through Finish or Extract,
// further calls do nothing. That makes a deferred Finish safe to combine
// with an explicit early Finish or Extract on the success path.
//
// A panic inside the finalizer propagates to the caller; the guard still
// counts as completed, so an enclosing deferred Finish will not run the
// finalizer a second time during unwinding.
func (g *Guard[T, S]) Finish() {
	if g.completed {
		return
	}
	g.completed = true
	fin, value, state := g.fin, g.value, g.state
	g.release()
	fin(value, state)
}

// Extract releases the guarded value without running the finalizer and
// returns it. The guard completes immediately: the finalizer will never
// run, any pending deferred Finish becomes a no-op, and further access
// panics. Panics if the guard has already completed.
func (g *Guard[T, S]) Extract() T {
	g.mustAlive("Extract")
	g.completed = true
	value := g.value
	g.release()
	return value
}

// release zeroes the guard's storage so completed guards pin no memory.
func (g *Guard[T, S]) release() {
	var zeroT T
	var zeroS S
	g.value = zeroT
	g.state = zeroS
	g.fin = nil
}
