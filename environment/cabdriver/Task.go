package cabdriver

import (
	"github.com/samuelfneumann/cabdriver/environment"
	ts "github.com/samuelfneumann/cabdriver/timestep"
)

// DefaultShiftHours is the length of a shift covering 30 days
const DefaultShiftHours int = 30 * 24

// Shift implements the task of driving for a fixed number of hours.
// Starting states are drawn from the embedded Starter. Episodes end
// once the simulated hours driven reach the length of the shift, or
// once a step limit on the number of decisions is reached.
type Shift struct {
	environment.Starter
	hourEnder *environment.FunctionEnder
	stepEnder *environment.StepLimit
	hours     int
}

// NewShift returns a new Shift which lasts hours hours and at most
// steps decisions. A non-positive hours or steps disables the
// respective limit.
func NewShift(s environment.Starter, hours, steps int) *Shift {
	hourEnder := environment.NewFunctionEnder(func(t *ts.TimeStep) bool {
		return hours > 0 && t.Hours >= hours
	}, ts.ShiftEnded)

	return &Shift{
		Starter:   s,
		hourEnder: hourEnder,
		stepEnder: environment.NewStepLimit(steps),
		hours:     hours,
	}
}

// Hours returns the length of the shift in hours
func (s *Shift) Hours() int {
	return s.hours
}

// End determines if a timestep is the last timestep in the episode.
// If so, it changes the TimeStep's StepType to timestep.Last. The end
// of the shift takes precedence over the step limit.
func (s *Shift) End(t *ts.TimeStep) bool {
	if end := s.hourEnder.End(t); end {
		return true
	}
	return s.stepEnder.End(t)
}
