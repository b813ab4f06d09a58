package cleanup

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Func is one unit of deferred cleanup work.
type Func func() error

// Finisher completes pending work when finished. Both guard kinds of
// the root package satisfy it.
type Finisher interface {
	Finish()
}

// StepError reports one failed step from Close. Step is the name given
// at push time, empty for unnamed steps; Index is the push position.
type StepError struct {
	Err   error
	Step  string
	Index int
}

func (e *StepError) Error() string {
	if e.Step != "" {
		return fmt.Sprintf("cleanup step %q: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("cleanup step %d: %v", e.Index, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

type step struct {
	fn   Func
	name string
}

// Stack collects cleanup steps during a multi-step acquisition sequence
// and runs them in reverse push order on Close. A sequence pushes an
// undo step after each successful acquisition; if a later step fails,
// the deferred Close unwinds exactly what was done. Once the whole
// sequence commits, Dismiss drops the pending steps so Close does
// nothing.
//
// Every step runs even when earlier ones fail; the failures come back
// from Close as one combined error. Stack is NOT thread-safe; it
// belongs to the sequence that fills it.
type Stack struct {
	steps  []step
	closed bool
}

// NewStack creates an empty cleanup stack.
func NewStack() *Stack {
	return &Stack{steps: make([]step, 0, 8)}
}

// mustOpen panics when the stack has already been closed.
func (s *Stack) mustOpen(op string) {
	if s.closed {
		panic("cleanup: " + op + " on closed stack")
	}
}

// Push adds an unnamed cleanup step.
// Panics if fn is nil or the stack is closed.
func (s *Stack) Push(fn Func) {
	s.mustOpen("Push")
	s.push("", fn)
}

// PushNamed adds a cleanup step whose name appears in step failures
// reported by Close.
// Panics if fn is nil or the stack is closed.
func (s *Stack) PushNamed(name string, fn Func) {
	s.mustOpen("PushNamed")
	s.push(name, fn)
}

// PushFinisher adds a step that finishes f on Close. Finishing an
// already completed guard does nothing, so a guard may be both pushed
// and separately finished.
// Panics if f is nil or the stack is closed.
func (s *Stack) PushFinisher(name string, f Finisher) {
	s.mustOpen("PushFinisher")
	if f == nil {
		panic("cleanup: PushFinisher with nil finisher")
	}
	s.push(name, func() error {
		f.Finish()
		return nil
	})
}

func (s *Stack) push(name string, fn Func) {
	if fn == nil {
		panic("cleanup: push with nil step")
	}
	s.steps = append(s.steps, step{fn: fn, name: name})
	Logger().Debug("cleanup step pushed",
		zap.String("step", name),
		zap.Int("pending", len(s.steps)))
}

// Acquire runs acquire and, if it succeeds, pushes release as the undo
// step for it. On failure the acquire error comes back unchanged and
// nothing is pushed.
// Panics if either function is nil or the stack is closed.
func (s *Stack) Acquire(name string, acquire func() error, release Func) error {
	s.mustOpen("Acquire")
	if acquire == nil || release == nil {
		panic("cleanup: Acquire with nil function")
	}

	if err := acquire(); err != nil {
		return err
	}
	s.push(name, release)
	return nil
}

// Len returns the number of pending steps.
func (s *Stack) Len() int {
	return len(s.steps)
}

// Dismiss drops every pending step without running it. The stack stays
// open, so a sequence can commit one phase and keep collecting steps
// for the next.
// Panics if the stack is closed.
func (s *Stack) Dismiss() {
	s.mustOpen("Dismiss")

	dropped := len(s.steps)
	for i := range s.steps {
		s.steps[i] = step{}
	}
	s.steps = s.steps[:0]

	Logger().Debug("cleanup steps dismissed", zap.Int("dropped", dropped))
}

// Close runs every pending step in reverse push order and closes the
// stack. Step failures do not stop the unwind; each is wrapped in a
// StepError and all of them come back combined into one error. A panic
// inside a step propagates immediately and the steps below it do not
// run. Only the first Close acts; later calls return nil.
func (s *Stack) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	Logger().Debug("cleanup stack closing", zap.Int("steps", len(s.steps)))

	var err error
	for i := len(s.steps) - 1; i >= 0; i-- {
		st := s.steps[i]
		s.steps[i] = step{}
		if stepErr := st.fn(); stepErr != nil {
			err = multierr.Append(err, &StepError{Err: stepErr, Step: st.name, Index: i})
		}
	}
	s.steps = nil
	return err
}
