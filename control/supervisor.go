package control

import "time"

// Supervisor races a timeout against a worker's own completion signal,
// and cancels the worker cooperatively if the timeout wins (§4.6, §5).
//
// A Supervisor is used for exactly one Run call; build a new one per
// search.
type Supervisor struct {
	cancel *CancelFlag
	done   *Signal
}

// NewSupervisor returns a fresh Supervisor with an unset CancelFlag and
// an unfired Signal.
func NewSupervisor() *Supervisor {
	return &Supervisor{cancel: &CancelFlag{}, done: NewSignal()}
}

// Cancel returns the cooperative cancel flag the worker function must
// poll. It is safe to read its IsSet() concurrently with Run.
func (s *Supervisor) Cancel() *CancelFlag { return s.cancel }

// Run starts fn on a background goroutine, passing it the CancelFlag it
// must poll. It blocks until fn returns (which fires the done signal) or
// timeout elapses, whichever comes first; on timeout it raises the CancelFlag
// and then blocks (unbounded) until fn actually returns, guaranteeing
// Run never returns while fn is still running.
//
// Run reports true if fn completed before the timeout (a "proven"
// outcome from the caller's point of view), false if the timeout fired
// first (a "cancelled" outcome).
func (s *Supervisor) Run(timeout time.Duration, fn func(cancel *CancelFlag)) bool {
	go func() {
		fn(s.cancel)
		s.done.NotifyDone()
	}()

	if s.done.WaitForDone(timeout) {
		return true
	}

	s.cancel.Set()
	s.done.Wait()

	return false
}
