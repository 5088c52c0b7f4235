package signal

import "sync"

// AsyncState is the tri-state of an asynchronous result.
type AsyncState int32

const (
	StatePending AsyncState = iota
	StateFulfilled
	StateRejected
)

// String returns the string representation of the AsyncState.
func (s AsyncState) String() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateFulfilled:
		return "Fulfilled"
	case StateRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Async is an asynchronous result with an explicit tri-state: pending
// until settled, then fulfilled with a value or rejected with an error.
// The settled outcome is stashed on the object itself, so a retried
// read against the same Async returns synchronously.
//
// Identity matters: a getter that produces a fresh Async on every read
// suspends its reader forever. Produce the Async once and hand out the
// same instance across retries.
type Async struct {
	mu       sync.Mutex
	state    AsyncState
	value    any
	err      error
	onSettle []func()
}

// NewAsync creates a pending Async settled later via Fulfill or Reject.
func NewAsync() *Async {
	return &Async{}
}

// Go runs fn on its own goroutine and returns an Async that settles
// with fn's outcome.
func Go(fn func() (any, error)) *Async {
	a := NewAsync()
	go func() {
		v, err := fn()
		if err != nil {
			a.Reject(err)
			return
		}
		a.Fulfill(v)
	}()
	return a
}

// Fulfill settles the Async with a value. Settling twice is a no-op.
func (a *Async) Fulfill(value any) {
	a.settle(StateFulfilled, value, nil)
}

// Reject settles the Async with a failure reason. Settling twice is a
// no-op.
func (a *Async) Reject(err error) {
	a.settle(StateRejected, nil, err)
}

func (a *Async) settle(state AsyncState, value any, err error) {
	a.mu.Lock()
	if a.state != StatePending {
		a.mu.Unlock()
		return
	}
	a.state = state
	a.value = value
	a.err = err
	callbacks := a.onSettle
	a.onSettle = nil
	a.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// State returns the current tri-state.
func (a *Async) State() AsyncState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Poll returns the settled value or failure. ok is false while pending.
func (a *Async) Poll() (value any, err error, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state == StatePending {
		return nil, nil, false
	}
	return a.value, a.err, true
}

// OnSettle registers fn to run once the Async settles. If it already
// settled, fn runs immediately on the calling goroutine.
func (a *Async) OnSettle(fn func()) {
	a.mu.Lock()
	if a.state == StatePending {
		a.onSettle = append(a.onSettle, fn)
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()
	fn()
}

// Suspension is the error returned from a read that touched a
// still-pending Async. The host renderer abandons the render pass,
// waits for Async to settle, and retries.
type Suspension struct {
	Async *Async
}

// Error implements the error interface.
func (s *Suspension) Error() string {
	return "signal: render suspended on pending asynchronous value"
}
