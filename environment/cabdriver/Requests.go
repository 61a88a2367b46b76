package cabdriver

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Requester draws the customer requests a driver receives in one hour.
//
// The number of requests at a location is Poisson distributed with the
// location's rate and capped at a maximum. That many distinct rides
// are then drawn uniformly without replacement from the action space,
// excluding the no-ride action, which is always appended last.
//
// A Requester owns its source of randomness and is not safe for
// concurrent use. Concurrent simulations should each use their own
// Requester with its own seed.
type Requester struct {
	src    rand.Source
	counts []distuv.Poisson
	max    int

	// Ride actions occupy indices [0, rides) of the action space and
	// the no-ride action sits at index rides
	rides int
}

// NewRequester returns a new Requester for the argument Config, seeded
// with seed
func NewRequester(c Config, seed uint64) (*Requester, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newRequester: %v", err)
	}

	src := rand.NewSource(seed)
	counts := make([]distuv.Poisson, c.Locations)
	for i, rate := range c.RequestRates {
		counts[i] = distuv.Poisson{Lambda: rate, Src: src}
	}

	return &Requester{
		src:    src,
		counts: counts,
		max:    c.MaxRequests,
		rides:  c.Rides(),
	}, nil
}

// Count draws the number of requests received at location in one hour
func (r *Requester) Count(location int) int {
	n := int(r.counts[location].Rand())
	if n > r.max {
		return r.max
	}
	return n
}

// Sample draws the request menu for a driver at location. The returned
// action indices are distinct, and the last index is always that of
// the no-ride action. Sample returns an error wrapping ErrSampling if
// more requests are drawn than there are ride actions.
func (r *Requester) Sample(location int) ([]int, error) {
	if location < 0 || location >= len(r.counts) {
		return nil, fmt.Errorf("sample: %w: location %d not in [0, %d)",
			ErrInvalidState, location, len(r.counts))
	}

	n := r.Count(location)
	if n > r.rides {
		return nil, fmt.Errorf("sample: %w: %d requests drawn but only %d "+
			"distinct rides exist", ErrSampling, n, r.rides)
	}

	indices := make([]int, n, n+1)
	if n > 0 {
		sampleuv.WithoutReplacement(indices, r.rides, r.src)
	}

	return append(indices, r.rides), nil
}
