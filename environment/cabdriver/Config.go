package cabdriver

import (
	"fmt"
	"math"
)

// Default configuration constants
const (
	DefaultLocations   int     = 5
	DefaultHoursPerDay int     = 24
	DefaultDaysPerWeek int     = 7
	DefaultCost        float64 = 5 // Fuel and other costs per hour
	DefaultRevenue     float64 = 9 // Revenue per hour with a passenger
	DefaultMaxRequests int     = 15
)

// DefaultRequestRates are the expected customer requests per hour at
// each of the default locations
var DefaultRequestRates = []float64{2, 12, 4, 7, 8}

// Config holds the fixed constants of a cab driver MDP. A Config is
// copied when an MDP is constructed, so changing a Config after
// construction does not affect MDPs created from it.
type Config struct {
	Locations   int
	HoursPerDay int
	DaysPerWeek int

	Cost    float64 // Cost per hour of operating the cab
	Revenue float64 // Revenue per hour of carrying a passenger

	// RequestRates holds the Poisson rate of customer requests per hour
	// at each location
	RequestRates []float64

	// MaxRequests caps the number of customer requests offered to the
	// driver in a single hour
	MaxRequests int
}

// DefaultConfig returns the default configuration: 5 locations, 24
// hours per day, 7 days per week, a cost of 5 and revenue of 9 per
// hour, and at most 15 requests per hour.
func DefaultConfig() Config {
	rates := make([]float64, len(DefaultRequestRates))
	copy(rates, DefaultRequestRates)

	return Config{
		Locations:    DefaultLocations,
		HoursPerDay:  DefaultHoursPerDay,
		DaysPerWeek:  DefaultDaysPerWeek,
		Cost:         DefaultCost,
		Revenue:      DefaultRevenue,
		RequestRates: rates,
		MaxRequests:  DefaultMaxRequests,
	}
}

// Validate returns an error if the Config cannot describe an MDP
func (c Config) Validate() error {
	if c.Locations <= 0 {
		return fmt.Errorf("validate: locations must be positive, have %d",
			c.Locations)
	}
	if c.HoursPerDay <= 0 {
		return fmt.Errorf("validate: hours per day must be positive, "+
			"have %d", c.HoursPerDay)
	}
	if c.DaysPerWeek <= 0 {
		return fmt.Errorf("validate: days per week must be positive, "+
			"have %d", c.DaysPerWeek)
	}
	if invalidFloat(c.Cost) || invalidFloat(c.Revenue) {
		return fmt.Errorf("validate: cost (%v) and revenue (%v) must be "+
			"finite", c.Cost, c.Revenue)
	}
	if len(c.RequestRates) != c.Locations {
		return fmt.Errorf("validate: need one request rate per location, "+
			"have %d rates for %d locations", len(c.RequestRates),
			c.Locations)
	}
	for i, rate := range c.RequestRates {
		if !(rate > 0) || math.IsInf(rate, 1) {
			return fmt.Errorf("validate: request rate at location %d must "+
				"be positive and finite, have %v", i, rate)
		}
	}
	if c.MaxRequests < 0 {
		return fmt.Errorf("validate: max requests must be non-negative, "+
			"have %d", c.MaxRequests)
	}
	return nil
}

// Rides returns the number of ride actions, that is the number of
// actions other than the no-ride action
func (c Config) Rides() int {
	return c.Locations * (c.Locations - 1)
}

// Advance moves the clock at (hour, day) forward by hours, wrapping
// around the end of the day and the end of the week. Advance panics if
// hours is negative.
func (c Config) Advance(hour, day, hours int) (int, int) {
	if hours < 0 {
		panic(fmt.Sprintf("advance: cannot move the clock back %d hours",
			-hours))
	}

	days := hours / c.HoursPerDay
	hour += hours % c.HoursPerDay
	if hour >= c.HoursPerDay {
		hour -= c.HoursPerDay
		days++
	}

	return hour, (day + days) % c.DaysPerWeek
}

// clone returns a deep copy of the Config
func (c Config) clone() Config {
	rates := make([]float64, len(c.RequestRates))
	copy(rates, c.RequestRates)
	c.RequestRates = rates
	return c
}

func invalidFloat(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
