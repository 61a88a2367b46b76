// Package experiment implements functionality for running fixed
// policies on cab driver environments
package experiment

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment"
	"github.com/samuelfneumann/cabdriver/environment/envconfig"
	"github.com/samuelfneumann/cabdriver/experiment/tracker"
)

// Env is an environment which offers a menu of actions before each
// decision and quotes the immediate reward of each of them
type Env interface {
	environment.Environment
	Menu() []int
	Quote(i int) (float64, error)
}

// Interface Experiment outlines structs that can run experiments.
// Experiments will track environment TimeSteps, caching each TimeStep
// in RAM to be later saved to disk. The Save() function
// will then take all cached data and save it to disk. This is usually
// performed after an experiment has been run. The Run() method will
// run all episodes util the maximum timestep limit is reached. The
// RunEpisode() function will run a single episode.
//
// Experiments send each TimeStep to Trackers using the Tracker's
// Track() method. The Tracker then determines which data from the
// TimeStep it caches and saves. New Trackers can be registered with an
// Experiment through the constructor or through an Experiment's
// Register() function.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error)
	RunEpisodes(n int) error

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment
	Register(t tracker.Tracker)
}

type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment
type Config struct {
	Type
	MaxSteps uint
	EnvConf  envconfig.Config
	Policy   PolicyName
}

// CreateExp creates the experiment described by the Config. The
// environment is seeded with seed and the policy with seed+3, which
// the environment leaves unused.
func (c Config) CreateExp(seed uint64, t ...tracker.Tracker) (Experiment,
	error) {
	env, _, err := c.EnvConf.Create(seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: %w",
			err)
	}
	policy, err := NewPolicy(c.Policy, seed+3)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create policy: %v", err)
	}

	switch c.Type {
	case OnlineExp:
		return NewOnline(env, policy, c.MaxSteps, t...), nil
	}

	return nil, fmt.Errorf("createExp: no such experiment type %v", c.Type)
}
