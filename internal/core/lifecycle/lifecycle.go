// Package lifecycle defines the request lifecycle every asynchronous
// store operation follows: idle -> pending -> (succeeded | failed).
package lifecycle

// State represents the lifecycle state of a tracked operation.
type State int

const (
	StateIdle State = iota
	StatePending
	StateSucceeded
	StateFailed
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Tracker records the lifecycle of a single operation kind. Each kind of
// operation (list, fetch, create, update, delete, login) owns its own
// Tracker so that concurrent operations cannot stomp each other's status.
//
// Begin tags every invocation with a monotonically increasing sequence
// number; only the most recently issued invocation may resolve the tracker.
// A stale resolution is discarded, which gives last-issued-wins semantics
// when several requests for the same operation are in flight.
//
// Trackers are not safe for concurrent use. All mutations must happen on
// the event loop that owns the store.
type Tracker struct {
	state State
	err   error
	seq   uint64
}

// Begin transitions the tracker to pending, clears any previous error, and
// returns the sequence number identifying this invocation.
func (t *Tracker) Begin() uint64 {
	t.seq++
	t.state = StatePending
	t.err = nil
	return t.seq
}

// Succeed resolves the invocation identified by seq as successful.
// Returns false if the invocation has been superseded by a newer Begin,
// in which case the tracker is left untouched.
func (t *Tracker) Succeed(seq uint64) bool {
	if seq != t.seq {
		return false
	}
	t.state = StateSucceeded
	t.err = nil
	return true
}

// Fail resolves the invocation identified by seq as failed.
// Returns false if the invocation has been superseded.
func (t *Tracker) Fail(seq uint64, err error) bool {
	if seq != t.seq {
		return false
	}
	t.state = StateFailed
	t.err = err
	return true
}

// Reset returns the tracker to idle with no error. The sequence counter
// advances so in-flight invocations from before the reset are superseded.
func (t *Tracker) Reset() {
	t.seq++
	t.state = StateIdle
	t.err = nil
}

// State returns the current lifecycle state.
func (t *Tracker) State() State {
	return t.state
}

// Err returns the error from the last failed resolution, or nil.
func (t *Tracker) Err() error {
	return t.err
}

// Pending returns true if an invocation is in flight.
func (t *Tracker) Pending() bool {
	return t.state == StatePending
}
