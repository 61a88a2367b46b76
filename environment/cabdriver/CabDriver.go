package cabdriver

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment"
	ts "github.com/samuelfneumann/cabdriver/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CabDriver implements the cab driver MDP as an episodic environment.
//
// Observations are the one-hot state encodings produced by
// MDP.EncodeState. Actions are 1-dimensional and hold the index of an
// action in the action space. Before each decision the environment
// draws the customer requests at the driver's location; the legal
// actions are the indices returned by Menu, which always include the
// no-ride action. Taking an action that is not on the menu causes a
// panic.
//
// The Task determines where each episode starts and when it ends.
// Starting states must have three dimensions: location, hour, and day.
//
// CabDriver implements the environment.Environment interface
type CabDriver struct {
	*MDP
	environment.Task
	tm       TimeMatrix
	discount float64

	state       State
	menu        []int
	currentStep ts.TimeStep
}

// New creates a new CabDriver environment with dynamics m, task t,
// travel times tm, and discount factor discount. The first timestep of
// the environment is returned along with it.
func New(m *MDP, t environment.Task, tm TimeMatrix,
	discount float64) (*CabDriver, ts.TimeStep, error) {
	if m.cfg.MaxRequests > m.cfg.Rides() {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w: up to %d requests "+
			"per hour but only %d rides exist", ErrSampling,
			m.cfg.MaxRequests, m.cfg.Rides())
	}
	if dense, ok := tm.(*DenseTimeMatrix); ok {
		from, to, hours, days := dense.Dims()
		if from != m.cfg.Locations || to != m.cfg.Locations ||
			hours != m.cfg.HoursPerDay || days != m.cfg.DaysPerWeek {
			return nil, ts.TimeStep{}, fmt.Errorf("new: %w: shape (%d, %d, "+
				"%d, %d) does not match configuration", ErrInvalidTimeMatrix,
				from, to, hours, days)
		}
	}

	c := &CabDriver{
		MDP:      m,
		Task:     t,
		tm:       tm,
		discount: discount,
	}

	step, err := c.reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %v", err)
	}
	return c, step, nil
}

// Reset resets the environment to a starting state drawn from the
// Task and returns the first timestep of the new episode
func (c *CabDriver) Reset() ts.TimeStep {
	step, err := c.reset()
	if err != nil {
		panic(fmt.Sprintf("reset: %v", err))
	}
	return step
}

func (c *CabDriver) reset() (ts.TimeStep, error) {
	start := c.Start()
	if start.Len() != 3 {
		return ts.TimeStep{}, fmt.Errorf("reset: starting states must have "+
			"3 dimensions, have %d", start.Len())
	}
	state := State{
		Location: int(start.AtVec(0)),
		Hour:     int(start.AtVec(1)),
		Day:      int(start.AtVec(2)),
	}

	obs, err := c.EncodeState(state)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: illegal starting state: %w",
			err)
	}
	menu, err := c.requester.Sample(state.Location)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %w", err)
	}

	c.state = state
	c.menu = menu
	c.currentStep = ts.New(ts.First, 0.0, c.discount, obs, 0, 0)
	return c.currentStep, nil
}

// Step takes one environmental step given action a and returns the next
// timestep as a timestep.TimeStep and a bool indicating whether or not
// the episode has ended. The action must hold the index of an action on
// the current menu, otherwise Step panics.
func (c *CabDriver) Step(a *mat.VecDense) (ts.TimeStep, bool) {
	if a.Len() != 1 {
		panic(fmt.Sprintf("step: actions should be 1-dimensional, have %d "+
			"dimensions", a.Len()))
	}

	index := int(a.AtVec(0))
	if !c.onMenu(index) {
		panic(fmt.Sprintf("step: illegal action %v ∉ %v", index, c.menu))
	}

	out, err := c.Transition(c.state, c.actions[index], c.tm)
	if err != nil {
		panic(fmt.Sprintf("step: %v", err))
	}

	obs, err := c.EncodeState(out.Next)
	if err != nil {
		panic(fmt.Sprintf("step: %v", err))
	}
	step := ts.New(ts.Mid, out.Reward, c.discount, obs,
		c.currentStep.Number+1, c.currentStep.Hours+out.Hours)
	last := c.End(&step)

	c.state = out.Next
	c.currentStep = step
	if !last {
		menu, err := c.requester.Sample(c.state.Location)
		if err != nil {
			panic(fmt.Sprintf("step: %v", err))
		}
		c.menu = menu
	} else {
		c.menu = nil
	}

	return step, last
}

// LastTimeStep returns the last timestep taken in the environment
func (c *CabDriver) LastTimeStep() ts.TimeStep {
	return c.currentStep
}

// State returns the current state of the driver
func (c *CabDriver) State() State {
	return c.state
}

// Menu returns the indices of the actions that can be taken in the
// current state. The last index is always that of the no-ride action.
// The menu is empty once an episode has ended.
func (c *CabDriver) Menu() []int {
	menu := make([]int, len(c.menu))
	copy(menu, c.menu)
	return menu
}

// Quote returns the reward that taking the action at index i would
// receive in the current state
func (c *CabDriver) Quote(i int) (float64, error) {
	a, err := c.Action(i)
	if err != nil {
		return 0, fmt.Errorf("quote: %w", err)
	}
	return c.Reward(c.state, a, c.tm)
}

// TimeMatrix returns the travel times used by the environment
func (c *CabDriver) TimeMatrix() TimeMatrix {
	return c.tm
}

// ActionSpec returns the action specification of the environment
func (c *CabDriver) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{float64(len(c.actions) - 1)})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (c *CabDriver) ObservationSpec() environment.Spec {
	features := c.cfg.StateFeatures()
	shape := mat.NewVecDense(features, nil)
	lowerBound := mat.NewVecDense(features, nil)

	upper := make([]float64, features)
	for i := range upper {
		upper[i] = 1.0
	}
	upperBound := mat.NewVecDense(features, upper)

	return environment.NewSpec(shape, environment.Observation, lowerBound,
		upperBound, environment.Discrete)
}

// DiscountSpec returns the discount specification of the environment
func (c *CabDriver) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{c.discount})

	return environment.NewSpec(shape, environment.Discount, bound, bound,
		environment.Continuous)
}

// RewardSpec returns the reward specification of the environment. The
// bounds are computed from the longest travel time in the time matrix.
func (c *CabDriver) RewardSpec() environment.Spec {
	longest := 0.0
	for _, s := range c.states {
		for to := 0; to < c.cfg.Locations; to++ {
			if hours := float64(c.tm.Travel(s.Location, to, s.Hour,
				s.Day)); hours > longest {
				longest = hours
			}
		}
	}

	// Rewards are linear in each leg's travel time except for the
	// one-hour minimum charge, so the extremes lie at the corners
	charge := func(hours float64) float64 {
		return c.cfg.Cost * floats.Max([]float64{1, hours})
	}
	corners := []float64{
		-c.cfg.Cost,
		-charge(longest),
		c.cfg.Revenue*longest - charge(longest),
		c.cfg.Revenue*longest - charge(2*longest),
	}

	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{floats.Min(corners)})
	upperBound := mat.NewVecDense(1, []float64{floats.Max(corners)})

	return environment.NewSpec(shape, environment.Reward, lowerBound,
		upperBound, environment.Continuous)
}

func (c *CabDriver) String() string {
	return fmt.Sprintf("CabDriver | At: %v  |  Step: %d  |  Hours: %d",
		c.state, c.currentStep.Number, c.currentStep.Hours)
}

func (c *CabDriver) onMenu(index int) bool {
	for _, i := range c.menu {
		if i == index {
			return true
		}
	}
	return false
}
