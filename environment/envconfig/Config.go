// Package envconfig provides configuration structs for configuring
// cab driver environments with default dynamics and tasks. Environment
// configurations in this package are JSON serializable.
package envconfig

import (
	"encoding/json"
	"fmt"
	"os"

	env "github.com/samuelfneumann/cabdriver/environment"
	"github.com/samuelfneumann/cabdriver/environment/cabdriver"
	ts "github.com/samuelfneumann/cabdriver/timestep"
)

// TaskName stores the tasks that can be configured with this package
type TaskName string

// Tasks available for configuration
const (
	// Shift drives for a fixed number of simulated hours
	Shift TaskName = "Shift"
)

// Default travel time bounds of the synthetic time matrix
const (
	DefaultMinTravel int = 1
	DefaultMaxTravel int = 11
)

// Config implements a specific configuration of the cab driver
// environment. The travel times of the environment are drawn uniformly
// between MinTravel and MaxTravel hours when the environment is
// created.
type Config struct {
	Task          TaskName
	MDP           cabdriver.Config
	ShiftHours    int
	EpisodeCutoff uint
	Discount      float64
	MinTravel     int
	MaxTravel     int
}

// NewConfig returns a new environment Config
func NewConfig(taskName TaskName, mdp cabdriver.Config, shiftHours int,
	episodeCutoff uint, discount float64, minTravel, maxTravel int) Config {
	return Config{
		Task:          taskName,
		MDP:           mdp,
		ShiftHours:    shiftHours,
		EpisodeCutoff: episodeCutoff,
		Discount:      discount,
		MinTravel:     minTravel,
		MaxTravel:     maxTravel,
	}
}

// Default returns the default environment Config: the default MDP
// driven over a 30 day shift with no discounting
func Default() Config {
	return NewConfig(Shift, cabdriver.DefaultConfig(),
		cabdriver.DefaultShiftHours, 0, 1.0, DefaultMinTravel,
		DefaultMaxTravel)
}

// Load reads a JSON Config from the file at path. Fields missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config: %v", err)
	}

	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("load: could not decode config: %v", err)
	}
	return c, nil
}

// Save writes the Config as JSON to the file at path
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return fmt.Errorf("save: could not encode config: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save: could not write config: %v", err)
	}
	return nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment. The dynamics, travel times,
// and starting states each use their own seed derived from seed.
func (c Config) Create(seed uint64) (*cabdriver.CabDriver, ts.TimeStep,
	error) {
	if c.Discount < 0 || c.Discount > 1 {
		return nil, ts.TimeStep{}, fmt.Errorf("create: discount must be in "+
			"[0, 1], have %v", c.Discount)
	}

	m, err := cabdriver.NewMDP(c.MDP, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	tm, err := cabdriver.NewUniformTimeMatrix(c.MDP, c.MinTravel,
		c.MaxTravel, seed+1)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	task, err := c.createTask(seed + 2)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %v", err)
	}

	e, step, err := cabdriver.New(m, task, tm, c.Discount)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}
	return e, step, nil
}

// createTask creates the task of the environment, with starting states
// drawn uniformly over the state space
func (c Config) createTask(seed uint64) (env.Task, error) {
	s, err := env.NewCategoricalStarter([]int{c.MDP.Locations,
		c.MDP.HoursPerDay, c.MDP.DaysPerWeek}, seed)
	if err != nil {
		return nil, err
	}

	switch c.Task {
	case Shift:
		return cabdriver.NewShift(s, c.ShiftHours, int(c.EpisodeCutoff)), nil
	}

	return nil, fmt.Errorf("createTask: no such task %v", c.Task)
}
