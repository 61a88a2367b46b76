package experiment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// PolicyName stores the names of policies that can be configured
type PolicyName string

// Policies available for configuration
const (
	RandomPolicy PolicyName = "random"
	GreedyPolicy PolicyName = "greedy"
)

// Policy selects which request on an environment's menu to accept
type Policy interface {
	// Act returns the index of the selected action in the action space
	Act(e Env) (int, error)
}

// NewPolicy returns the policy named name, seeded with seed if the
// policy is stochastic
func NewPolicy(name PolicyName, seed uint64) (Policy, error) {
	switch name {
	case RandomPolicy:
		return NewRandom(seed), nil
	case GreedyPolicy:
		return Greedy{}, nil
	}
	return nil, fmt.Errorf("newPolicy: no such policy %v", name)
}

// Random accepts a request uniformly at random from the menu,
// including the no-ride action
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a new Random policy seeded with seed
func NewRandom(seed uint64) *Random {
	return &Random{rand.New(rand.NewSource(seed))}
}

// Act implements the Policy interface
func (r *Random) Act(e Env) (int, error) {
	menu := e.Menu()
	if len(menu) == 0 {
		return -1, fmt.Errorf("act: no actions on the menu")
	}
	return menu[r.rng.Intn(len(menu))], nil
}

// Greedy accepts the request on the menu with the highest immediate
// reward. Ties go to the request listed first.
type Greedy struct{}

// Act implements the Policy interface
func (Greedy) Act(e Env) (int, error) {
	menu := e.Menu()
	if len(menu) == 0 {
		return -1, fmt.Errorf("act: no actions on the menu")
	}

	quotes := make([]float64, len(menu))
	for i, action := range menu {
		q, err := e.Quote(action)
		if err != nil {
			return -1, fmt.Errorf("act: %v", err)
		}
		quotes[i] = q
	}
	return menu[floats.MaxIdx(quotes)], nil
}

// actionVec returns the environment action selecting the action at
// index i of the action space
func actionVec(i int) *mat.VecDense {
	return mat.NewVecDense(1, []float64{float64(i)})
}
