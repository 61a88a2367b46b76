package experiment

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/experiment/tracker"
	ts "github.com/samuelfneumann/cabdriver/timestep"
)

// Online is an Experiment that runs a fixed policy online
type Online struct {
	env          Env
	policy       Policy
	maxSteps     uint
	currentSteps uint
	trackers     []tracker.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given policy. The steps parameter determines how
// many timesteps the experiment is run for, with 0 meaning no limit,
// and the t parameter
// is a slice of tracker.Tracker which determine what data is saved.
func NewOnline(e Env, p Policy, steps uint, t ...tracker.Tracker) *Online {
	return &Online{
		env:      e,
		policy:   p,
		maxSteps: steps,
		trackers: t,
	}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment. It returns
// whether or not the maximum number of timesteps has been reached.
func (o *Online) RunEpisode() (bool, error) {
	step := o.env.Reset()
	o.track(step)

	for !step.Last() && !o.done() {
		o.currentSteps++

		a, err := o.policy.Act(o.env)
		if err != nil {
			return false, fmt.Errorf("runEpisode: %v", err)
		}
		step, _ = o.env.Step(actionVec(a))

		o.track(step)
	}

	return o.done(), nil
}

func (o *Online) done() bool {
	return o.maxSteps > 0 && o.currentSteps >= o.maxSteps
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() error {
	if o.maxSteps == 0 {
		return fmt.Errorf("run: experiment has no step limit")
	}
	for ended := false; !ended; {
		var err error
		if ended, err = o.RunEpisode(); err != nil {
			return fmt.Errorf("run: %v", err)
		}
	}
	return nil
}

// RunEpisodes runs n episodes of the experiment, stopping early if
// the maximum number of timesteps is reached
func (o *Online) RunEpisodes(n int) error {
	for i := 0; i < n; i++ {
		ended, err := o.RunEpisode()
		if err != nil {
			return fmt.Errorf("runEpisodes: %v", err)
		}
		if ended {
			return nil
		}
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %v", err)
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each
// Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}
