package cabdriver

import "fmt"

// State is the state of the cab driver: the driver's current location
// and the current hour of the day and day of the week
type State struct {
	Location int
	Hour     int
	Day      int
}

func (s State) String() string {
	return fmt.Sprintf("(location: %d, hour: %d, day: %d)", s.Location,
		s.Hour, s.Day)
}

// Action is a ride which picks up a customer at Pickup and drops them
// off at Dropoff. The zero Action is NoRide.
type Action struct {
	Pickup  int
	Dropoff int
}

// NoRide is the action of declining all requests for an hour
var NoRide = Action{0, 0}

// IsNoRide returns whether the action is the no-ride action
func (a Action) IsNoRide() bool {
	return a == NoRide
}

func (a Action) String() string {
	if a.IsNoRide() {
		return "no-ride"
	}
	return fmt.Sprintf("%d -> %d", a.Pickup, a.Dropoff)
}

// ValidateState returns an error wrapping ErrInvalidState if any
// component of s is out of range
func (c Config) ValidateState(s State) error {
	if s.Location < 0 || s.Location >= c.Locations {
		return fmt.Errorf("%w: location %d not in [0, %d)", ErrInvalidState,
			s.Location, c.Locations)
	}
	if s.Hour < 0 || s.Hour >= c.HoursPerDay {
		return fmt.Errorf("%w: hour %d not in [0, %d)", ErrInvalidState,
			s.Hour, c.HoursPerDay)
	}
	if s.Day < 0 || s.Day >= c.DaysPerWeek {
		return fmt.Errorf("%w: day %d not in [0, %d)", ErrInvalidState,
			s.Day, c.DaysPerWeek)
	}
	return nil
}

// ValidateAction returns an error wrapping ErrInvalidAction if a is
// neither NoRide nor a ride between two distinct locations
func (c Config) ValidateAction(a Action) error {
	if a.IsNoRide() {
		return nil
	}
	if a.Pickup < 0 || a.Pickup >= c.Locations {
		return fmt.Errorf("%w: pickup %d not in [0, %d)", ErrInvalidAction,
			a.Pickup, c.Locations)
	}
	if a.Dropoff < 0 || a.Dropoff >= c.Locations {
		return fmt.Errorf("%w: dropoff %d not in [0, %d)", ErrInvalidAction,
			a.Dropoff, c.Locations)
	}
	if a.Pickup == a.Dropoff {
		return fmt.Errorf("%w: ride %v picks up and drops off at the same "+
			"location", ErrInvalidAction, a)
	}
	return nil
}

// ActionSpace returns every ride (p, q) with p != q, ordered by pickup
// and then by dropoff, followed by NoRide as the last action
func ActionSpace(c Config) []Action {
	actions := make([]Action, 0, c.Rides()+1)
	for p := 0; p < c.Locations; p++ {
		for q := 0; q < c.Locations; q++ {
			if p != q {
				actions = append(actions, Action{p, q})
			}
		}
	}
	return append(actions, NoRide)
}

// StateSpace returns every state, ordered by location, then by day,
// then by hour
func StateSpace(c Config) []State {
	states := make([]State, 0, c.Locations*c.HoursPerDay*c.DaysPerWeek)
	for x := 0; x < c.Locations; x++ {
		for day := 0; day < c.DaysPerWeek; day++ {
			for hour := 0; hour < c.HoursPerDay; hour++ {
				states = append(states, State{x, hour, day})
			}
		}
	}
	return states
}
