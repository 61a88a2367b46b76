package tracker

import (
	"fmt"

	ts "github.com/samuelfneumann/cabdriver/timestep"
)

// EpisodeLength tracks and saves the number of decisions taken in each
// episode of an experiment.
// Note that an episode must finish for this Tracker to save its data.
// If the last episode in an experiment does not finish, that episode's
// length will not be saved.
type EpisodeLength struct {
	episodeLengths []int
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength tracker which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the episode length if the timestep passed to it is the
// last timestep in the episode
func (e *EpisodeLength) Track(t ts.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, t.Number)
	}
}

// Lengths returns the lengths of all finished episodes
func (e *EpisodeLength) Lengths() []int {
	lengths := make([]int, len(e.episodeLengths))
	copy(lengths, e.episodeLengths)
	return lengths
}

// Save saves the data tracked by the EpisodeLength Tracker to disk
func (e *EpisodeLength) Save() error {
	if err := save(e.filename, e.episodeLengths); err != nil {
		return fmt.Errorf("save: %v", err)
	}
	return nil
}

// EpisodeHours tracks and saves the number of simulated hours driven in
// each episode of an experiment. Like EpisodeLength, only finished
// episodes are saved.
type EpisodeHours struct {
	episodeHours []int
	filename     string
}

// NewEpisodeHours returns a new EpisodeHours tracker which will save
// its data at the specified location filename
func NewEpisodeHours(filename string) *EpisodeHours {
	return &EpisodeHours{filename: filename}
}

// Track caches the hours driven if the timestep passed to it is the
// last timestep in the episode
func (e *EpisodeHours) Track(t ts.TimeStep) {
	if t.Last() {
		e.episodeHours = append(e.episodeHours, t.Hours)
	}
}

// Hours returns the hours driven in all finished episodes
func (e *EpisodeHours) Hours() []int {
	hours := make([]int, len(e.episodeHours))
	copy(hours, e.episodeHours)
	return hours
}

// Save saves the data tracked by the EpisodeHours Tracker to disk
func (e *EpisodeHours) Save() error {
	if err := save(e.filename, e.episodeHours); err != nil {
		return fmt.Errorf("save: %v", err)
	}
	return nil
}
