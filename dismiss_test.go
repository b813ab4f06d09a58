package scopeguard

import (
	"testing"
)

func TestDismissible_RevertOnFailure(t *testing.T) {
	var reverted []string

	func() {
		d := NewDismissible("staging-dir", func(v string) {
			reverted = append(reverted, v)
		})
		defer d.Finish()
		// No Dismiss: the sequence did not commit.
	}()

	if len(reverted) != 1 {
		t.Fatalf("Expected 1 revert call, got %d", len(reverted))
	}
	if reverted[0] != "staging-dir" {
		t.Fatalf("Expected revert of 'staging-dir', got %q", reverted[0])
	}
}

func TestDismissible_DismissSkipsRevert(t *testing.T) {
	calls := 0

	func() {
		d := NewDismissible(7, func(int) { calls++ })
		defer d.Finish()
		d.Dismiss()
	}()

	if calls != 0 {
		t.Fatalf("Expected no revert call after Dismiss, got %d", calls)
	}
}

func TestDismissible_DismissIdempotent(t *testing.T) {
	calls := 0

	d := NewDismissible(7, func(int) { calls++ })
	d.Dismiss()
	d.Dismiss()
	d.Dismiss()
	d.Finish()

	if calls != 0 {
		t.Fatalf("Expected no revert call after repeated Dismiss, got %d", calls)
	}
}

func TestDismissible_Dismissed(t *testing.T) {
	d := NewDismissible(1, func(int) {})

	if d.Dismissed() {
		t.Fatal("Expected a fresh guard to be armed")
	}

	d.Dismiss()
	if !d.Dismissed() {
		t.Fatal("Expected Dismissed() == true after Dismiss")
	}

	d.Finish()
}

func TestDismissible_ValueMutation(t *testing.T) {
	got := 0

	d := NewDismissible(1, func(v int) { got = v })
	*d.Value() = 99
	d.Finish()

	if got != 99 {
		t.Fatalf("Expected revert to see mutated value 99, got %d", got)
	}
}

func TestDismissible_Extract(t *testing.T) {
	calls := 0

	d := NewDismissible("res", func(string) { calls++ })
	v := d.Extract()

	if v != "res" {
		t.Fatalf("Expected extracted value 'res', got %q", v)
	}

	// The trigger is already cancelled.
	d.Finish()
	if calls != 0 {
		t.Fatalf("Expected no revert call after Extract, got %d", calls)
	}
}

func TestDismissible_MisuseAfterFinish(t *testing.T) {
	d := NewDismissible(1, func(int) {})
	d.Finish()

	expectPanic(t, "Dismiss after Finish", func() { d.Dismiss() })
	expectPanic(t, "Dismissed after Finish", func() { d.Dismissed() })
	expectPanic(t, "Value after Finish", func() { d.Value() })
	expectPanic(t, "Extract after Finish", func() { d.Extract() })
}

func TestNewDismissible_NilRevert(t *testing.T) {
	expectPanic(t, "NewDismissible with nil revert", func() {
		NewDismissible[int](1, nil)
	})
}

func TestOnExit_Runs(t *testing.T) {
	calls := 0

	func() {
		undo := OnExit(func() { calls++ })
		defer undo.Finish()
	}()

	if calls != 1 {
		t.Fatalf("Expected 1 call, got %d", calls)
	}
}

func TestOnExit_Dismissed(t *testing.T) {
	calls := 0

	func() {
		undo := OnExit(func() { calls++ })
		defer undo.Finish()
		undo.Dismiss()
	}()

	if calls != 0 {
		t.Fatalf("Expected no call after Dismiss, got %d", calls)
	}
}

func TestOnExit_NilFunc(t *testing.T) {
	expectPanic(t, "OnExit with nil function", func() {
		OnExit(nil)
	})
}
