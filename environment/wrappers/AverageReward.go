// Package wrappers implements environment wrappers which modify the
// TimeSteps of the environments they wrap
package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment"
	ts "github.com/samuelfneumann/cabdriver/timestep"
	"gonum.org/v1/gonum/mat"
)

// menuEnvironment is an Environment which offers a menu of actions
// and quotes their rewards
type menuEnvironment interface {
	environment.Environment
	Menu() []int
	Quote(i int) (float64, error)
}

// AverageReward wraps an environment and alters rewards so that the
// differential reward is returned for each action. This turns a long
// or never ending shift into a continuing task whose rewards do not
// need discounting.
//
// Actions may take several simulated hours, so the average is kept as
// a reward rate per hour. Given a reward r over h hours, the
// differential reward is
//
//	r - rate * h
//
// and the rate estimate is then updated as an exponential moving
// average:
//
//	rate <- rate + learningRate * (r - rate * h) / h
//
// Menu and Quote are those of the wrapped environment, so quotes are
// not differential.
type AverageReward struct {
	menuEnvironment
	rate         float64
	learningRate float64
	lastStep     ts.TimeStep
}

// NewAverageReward creates and returns a new AverageReward Environment
// wrapper. The init parameter is the initial value for the reward
// rate, usually set to 0.
func NewAverageReward(env menuEnvironment, init,
	learningRate float64) (*AverageReward, ts.TimeStep, error) {
	if learningRate <= 0 || learningRate > 1 {
		return nil, ts.TimeStep{}, fmt.Errorf("newAverageReward: learning "+
			"rate must be in (0, 1], have %v", learningRate)
	}

	step := env.Reset()
	step.Discount = 1.0

	a := &AverageReward{
		menuEnvironment: env,
		rate:            init,
		learningRate:    learningRate,
		lastStep:        step,
	}
	return a, step, nil
}

// Reset resets the environment and returns a starting state drawn from
// the environment Starter. The rate estimate carries over.
func (a *AverageReward) Reset() ts.TimeStep {
	step := a.menuEnvironment.Reset()
	step.Discount = 1.0
	a.lastStep = step
	return step
}

// Step takes one environmental step given action action and returns
// the next timestep as a timestep.TimeStep and a bool indicating
// whether or not the episode has ended.
func (a *AverageReward) Step(action *mat.VecDense) (ts.TimeStep, bool) {
	step, last := a.menuEnvironment.Step(action)

	hours := float64(step.Hours - a.lastStep.Hours)
	if hours < 1 {
		hours = 1
	}
	differential := step.Reward - a.rate*hours
	a.rate += a.learningRate * differential / hours

	step.Reward = differential
	step.Discount = 1.0
	a.lastStep = step

	return step, last
}

// LastTimeStep returns the last timestep taken in the environment,
// with its differential reward
func (a *AverageReward) LastTimeStep() ts.TimeStep {
	return a.lastStep
}

// Rate returns the current estimate of the reward per hour
func (a *AverageReward) Rate() float64 {
	return a.rate
}

// RewardSpec returns the reward specification for the environment.
// Bounds depend on the policy, so they are left unset.
func (a *AverageReward) RewardSpec() environment.Spec {
	rewardSpec := a.menuEnvironment.RewardSpec()
	rewardSpec.LowerBound = nil
	rewardSpec.UpperBound = nil
	rewardSpec.Type = environment.AverageReward
	return rewardSpec
}

// DiscountSpec returns the discount specification for the environment.
// Average reward does not use discounting, so the discount is always
// 1.0.
func (a *AverageReward) DiscountSpec() environment.Spec {
	discountSpec := a.menuEnvironment.DiscountSpec()

	bounds := make([]float64, discountSpec.Shape.Len())
	for i := range bounds {
		bounds[i] = 1.0
	}
	vecBounds := mat.NewVecDense(len(bounds), bounds)
	discountSpec.LowerBound = vecBounds
	discountSpec.UpperBound = vecBounds

	return discountSpec
}

// String returns a string representation of the AverageReward
// environment
func (a *AverageReward) String() string {
	return fmt.Sprintf("Average Reward (%.3f/h): %v", a.rate,
		a.menuEnvironment)
}
