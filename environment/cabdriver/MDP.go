// Package cabdriver implements an MDP of a cab driver choosing between
// ride requests across a number of locations, hours of the day, and
// days of the week.
//
// Each hour, customers at the driver's location request rides. The
// driver may accept one of the requests, driving first to the pickup
// location and then to the dropoff location, or may decline all of them
// and wait for an hour. Travel times come from a TimeMatrix supplied by
// the caller, and depend on the hour and day at which each leg of a
// ride starts.
//
// The MDP type holds the fixed dynamics of the problem. The CabDriver
// type wraps an MDP and a TimeMatrix into an episodic
// environment.Environment.
package cabdriver

import "fmt"

// MDP holds the dynamics of the cab driver problem: its configuration,
// state and action spaces, and the source of customer requests. Apart
// from the random number stream used to draw requests, an MDP does not
// change after construction.
type MDP struct {
	cfg       Config
	actions   []Action
	states    []State
	actionIdx map[Action]int
	requester *Requester
}

// NewMDP returns a new MDP with configuration c, drawing requests from
// a source seeded with seed
func NewMDP(c Config, seed uint64) (*MDP, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newMDP: %v", err)
	}
	c = c.clone()

	requester, err := NewRequester(c, seed)
	if err != nil {
		return nil, fmt.Errorf("newMDP: could not create requester: %v", err)
	}

	actions := ActionSpace(c)
	actionIdx := make(map[Action]int, len(actions))
	for i, a := range actions {
		actionIdx[a] = i
	}

	return &MDP{
		cfg:       c,
		actions:   actions,
		states:    StateSpace(c),
		actionIdx: actionIdx,
		requester: requester,
	}, nil
}

// Config returns a copy of the configuration of the MDP
func (m *MDP) Config() Config {
	return m.cfg.clone()
}

// Actions returns the action space. The returned slice must not be
// modified.
func (m *MDP) Actions() []Action {
	return m.actions
}

// States returns the state space. The returned slice must not be
// modified.
func (m *MDP) States() []State {
	return m.states
}

// Action returns the action at index i of the action space
func (m *MDP) Action(i int) (Action, error) {
	if i < 0 || i >= len(m.actions) {
		return Action{}, fmt.Errorf("action: %w: index %d not in [0, %d)",
			ErrInvalidAction, i, len(m.actions))
	}
	return m.actions[i], nil
}

// IndexOf returns the index of a in the action space
func (m *MDP) IndexOf(a Action) (int, error) {
	i, ok := m.actionIdx[a]
	if !ok {
		return -1, fmt.Errorf("indexOf: %w: %v is not in the action space",
			ErrInvalidAction, a)
	}
	return i, nil
}

// NoRideIndex returns the index of the no-ride action in the action
// space
func (m *MDP) NoRideIndex() int {
	return len(m.actions) - 1
}

// Advance moves the clock at (hour, day) forward by hours
func (m *MDP) Advance(hour, day, hours int) (int, int) {
	return m.cfg.Advance(hour, day, hours)
}

// Requests draws the requests received by a driver in state s. It
// returns the indices of the requested actions in the action space and
// the actions themselves. The no-ride action is always the last
// element of both.
func (m *MDP) Requests(s State) ([]int, []Action, error) {
	if err := m.cfg.ValidateState(s); err != nil {
		return nil, nil, fmt.Errorf("requests: %w", err)
	}

	indices, err := m.requester.Sample(s.Location)
	if err != nil {
		return nil, nil, fmt.Errorf("requests: %w", err)
	}

	actions := make([]Action, len(indices))
	for i, idx := range indices {
		actions[i] = m.actions[idx]
	}
	return indices, actions, nil
}
