package cabdriver

import "fmt"

// trip records the timing of a single ride. Both the reward and the
// next state of a ride are computed from a trip, so they always agree
// on when each leg of the ride was driven.
type trip struct {
	noRide bool

	// Hours driven to reach the pickup, starting at the original time
	toPickup int

	// Time at which the driver reaches the pickup location
	pickupHour, pickupDay int

	// Hours driven from pickup to dropoff, starting at the pickup time
	toDropoff int

	// Time at which the driver reaches the dropoff location
	dropoffHour, dropoffDay int
}

// ride computes the trip taken when performing action a in state s
func (m *MDP) ride(s State, a Action, tm TimeMatrix) (trip, error) {
	if err := m.cfg.ValidateState(s); err != nil {
		return trip{}, err
	}
	if err := m.cfg.ValidateAction(a); err != nil {
		return trip{}, err
	}
	if a.IsNoRide() {
		return trip{noRide: true}, nil
	}

	toPickup := tm.Travel(s.Location, a.Pickup, s.Hour, s.Day)
	if toPickup < 0 {
		return trip{}, fmt.Errorf("%w: travel time %d -> %d at (%d, %d) "+
			"is negative (%d)", ErrInvalidTimeMatrix, s.Location, a.Pickup,
			s.Hour, s.Day, toPickup)
	}
	pickupHour, pickupDay := m.cfg.Advance(s.Hour, s.Day, toPickup)

	// Congestion on the second leg depends on when it is actually driven
	toDropoff := tm.Travel(a.Pickup, a.Dropoff, pickupHour, pickupDay)
	if toDropoff < 0 {
		return trip{}, fmt.Errorf("%w: travel time %d -> %d at (%d, %d) "+
			"is negative (%d)", ErrInvalidTimeMatrix, a.Pickup, a.Dropoff,
			pickupHour, pickupDay, toDropoff)
	}
	dropoffHour, dropoffDay := m.cfg.Advance(pickupHour, pickupDay,
		toDropoff)

	return trip{
		toPickup:    toPickup,
		pickupHour:  pickupHour,
		pickupDay:   pickupDay,
		toDropoff:   toDropoff,
		dropoffHour: dropoffHour,
		dropoffDay:  dropoffDay,
	}, nil
}

// reward returns the reward for the trip. Rides are always charged at
// least one hour of operating cost.
func (t trip) reward(c Config) float64 {
	if t.noRide {
		return -c.Cost
	}

	hours := t.toPickup + t.toDropoff
	if hours < 1 {
		hours = 1
	}
	return c.Revenue*float64(t.toDropoff) - c.Cost*float64(hours)
}

// next returns the state reached at the end of the trip, which started
// in state s, along with the number of hours that elapsed. At least one
// hour always elapses.
func (t trip) next(c Config, s State, a Action) (State, int) {
	if t.noRide {
		hour, day := c.Advance(s.Hour, s.Day, 1)
		return State{s.Location, hour, day}, 1
	}

	hours := t.toPickup + t.toDropoff
	hour, day := t.dropoffHour, t.dropoffDay
	if hour == s.Hour && day == s.Day {
		hour, day = c.Advance(hour, day, 1)
		hours++
	}
	return State{a.Dropoff, hour, day}, hours
}

// Outcome is the result of taking an action in a state
type Outcome struct {
	Reward float64
	Next   State
	Hours  int // Simulated hours that elapsed
}

// Reward returns the reward for taking action a in state s, with
// travel times given by tm
func (m *MDP) Reward(s State, a Action, tm TimeMatrix) (float64, error) {
	t, err := m.ride(s, a, tm)
	if err != nil {
		return 0, fmt.Errorf("reward: %w", err)
	}
	return t.reward(m.cfg), nil
}

// NextState returns the state reached by taking action a in state s,
// with travel times given by tm. The clock always moves forward by at
// least one hour.
func (m *MDP) NextState(s State, a Action, tm TimeMatrix) (State, error) {
	t, err := m.ride(s, a, tm)
	if err != nil {
		return State{}, fmt.Errorf("nextState: %w", err)
	}
	next, _ := t.next(m.cfg, s, a)
	return next, nil
}

// Transition returns the reward, next state, and elapsed hours of
// taking action a in state s, with travel times given by tm
func (m *MDP) Transition(s State, a Action, tm TimeMatrix) (Outcome, error) {
	t, err := m.ride(s, a, tm)
	if err != nil {
		return Outcome{}, fmt.Errorf("transition: %w", err)
	}

	next, hours := t.next(m.cfg, s, a)
	return Outcome{
		Reward: t.reward(m.cfg),
		Next:   next,
		Hours:  hours,
	}, nil
}
