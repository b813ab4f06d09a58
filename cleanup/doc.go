// Package cleanup provides a LIFO stack of cleanup steps for
// variable-length acquisition sequences.
//
// The guards in the root package bind one value each. When a sequence
// acquires an unknown number of resources, a Stack collects one undo
// step per acquisition and a single deferred Close unwinds whatever
// part of the sequence completed, in reverse order.
//
// # Acquisition Sequences
//
// Push an undo step after each successful acquisition; dismiss the
// stack once the whole sequence commits:
//
//	undo := cleanup.NewStack()
//	defer undo.Close()
//
//	for _, path := range paths {
//	    f, err := os.Create(path)
//	    if err != nil {
//	        return err // Close removes the files created so far
//	    }
//	    undo.PushNamed(path, func() error {
//	        f.Close()
//	        return os.Remove(path)
//	    })
//	}
//
//	undo.Dismiss() // all files created, keep them
//
// # Acquire Helper
//
// Acquire pairs the two halves in one call, pushing the release only
// when the acquisition succeeds:
//
//	err := undo.Acquire("listener",
//	    func() error { ln, err = net.Listen("tcp", addr); return err },
//	    func() error { return ln.Close() },
//	)
//
// # Error Reporting
//
// Close runs every step even when some fail, wraps each failure in a
// StepError and combines them into one error:
//
//	if err := undo.Close(); err != nil {
//	    var stepErr *cleanup.StepError
//	    if errors.As(err, &stepErr) {
//	        log.Printf("undo of %q failed: %v", stepErr.Step, stepErr.Err)
//	    }
//	}
//
// # Logging
//
// The package logs step lifecycle at debug level through a no-op
// logger by default. Route it into an application logger with
// SetLogger:
//
//	cleanup.SetLogger(appLogger.Named("cleanup"))
//
// Step failures are never logged on the caller's behalf; they only
// come back from Close.
//
// # Thread Safety
//
// A Stack belongs to the sequence that fills it and provides no
// internal synchronization.
package cleanup
