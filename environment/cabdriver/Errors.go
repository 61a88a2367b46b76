package cabdriver

import "errors"

// Errors returned by the cab driver MDP. Returned errors wrap one of
// these, so callers should compare using errors.Is.
var (
	// ErrInvalidState is returned when a component of a State lies
	// outside its declared range
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidAction is returned when an Action's pickup or dropoff
	// location lies outside its declared range, or when a ride picks up
	// and drops off at the same location
	ErrInvalidAction = errors.New("invalid action")

	// ErrSampling is returned when more distinct ride requests are
	// needed than there are ride actions
	ErrSampling = errors.New("cannot sample requests")

	// ErrInvalidTimeMatrix is returned when a time matrix reports a
	// negative travel time or has the wrong shape
	ErrInvalidTimeMatrix = errors.New("invalid time matrix")
)
