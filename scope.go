package scopeguard

// Do runs body with a freshly constructed guard and finishes the guard
// on every way out of body: normal return, error return, or panic. It
// is the block form of the New/defer pair for callers that want the
// trigger and the scope to be impossible to separate:
//
//	err := scopeguard.Do(batch, outcomeAbort, finalize,
//		func(g *scopeguard.Guard[Batch, Outcome]) error {
//			if err := g.Value().Add(change); err != nil {
//				return err // finalizer sees outcomeAbort
//			}
//			g.SetState(outcomeCommit)
//			return nil
//		})
//
// body may call Extract on the guard; the deferred trigger then does
// nothing. The error returned by body is returned unchanged. Panics if
// fin is nil.
func Do[T, S any](value T, state S, fin Finalizer[T, S], body func(*Guard[T, S]) error) error {
	g := New(value, state, fin)
	defer g.Finish()
	return body(g)
}
