package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states as vectors sampled from
// a multi-dimensional uniform categorical distribution. Dimension i of
// each starting state is sampled from (0, 1, 2, ... bounds[i]-1).
//
// All dimensions share a single seeded source, so two starters created
// with the same bounds and seed produce the same sequence of starting
// states.
type CategoricalStarter struct {
	seed uint64
	rand []distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// dimension i from (0, 1, 2, ... bounds[i]-1)
func NewCategoricalStarter(bounds []int,
	seed uint64) (*CategoricalStarter, error) {
	if len(bounds) == 0 {
		return nil, fmt.Errorf("newCategoricalStarter: no dimensions to " +
			"sample")
	}

	source := rand.NewSource(seed)
	dists := make([]distuv.Categorical, len(bounds))
	for i, bound := range bounds {
		if bound <= 0 {
			return nil, fmt.Errorf("newCategoricalStarter: dimension %d "+
				"must have at least one category, have %d", i, bound)
		}

		// Create the weights for the uniform categorical distribution
		weights := make([]float64, bound)
		for j := range weights {
			weights[j] = 1.0
		}
		dists[i] = distuv.NewCategorical(weights, source)
	}

	return &CategoricalStarter{seed, dists}, nil
}

// Start returns a starting state vector
func (c *CategoricalStarter) Start() *mat.VecDense {
	start := make([]float64, len(c.rand))
	for i := range start {
		start[i] = c.rand[i].Rand()
	}

	return mat.NewVecDense(len(start), start)
}

// Seed returns the seed used to create the starter
func (c *CategoricalStarter) Seed() uint64 {
	return c.seed
}
