package cabdriver

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// TimeMatrix reports the number of whole hours needed to drive from
// one location to another when leaving at a given hour and day. Travel
// times must be non-negative. The MDP only reads from a TimeMatrix.
type TimeMatrix interface {
	Travel(from, to, hour, day int) int
}

// DenseTimeMatrix is a TimeMatrix backed by a flat slice indexed by
// (from, to, hour, day) in row-major order
type DenseTimeMatrix struct {
	locations, hours, days int
	data                   []int
}

// NewDenseTimeMatrix returns a new DenseTimeMatrix shaped for the
// argument Config. If data is nil, a zero matrix is allocated.
// Otherwise data must have Locations*Locations*HoursPerDay*DaysPerWeek
// non-negative entries and is used as the backing slice.
func NewDenseTimeMatrix(c Config, data []int) (*DenseTimeMatrix, error) {
	size := c.Locations * c.Locations * c.HoursPerDay * c.DaysPerWeek
	if data == nil {
		data = make([]int, size)
	}

	if len(data) != size {
		return nil, fmt.Errorf("newDenseTimeMatrix: %w: need %d entries "+
			"for shape (%d, %d, %d, %d), have %d", ErrInvalidTimeMatrix,
			size, c.Locations, c.Locations, c.HoursPerDay, c.DaysPerWeek,
			len(data))
	}
	for i, hours := range data {
		if hours < 0 {
			return nil, fmt.Errorf("newDenseTimeMatrix: %w: entry %d is "+
				"negative (%d)", ErrInvalidTimeMatrix, i, hours)
		}
	}

	return &DenseTimeMatrix{c.Locations, c.HoursPerDay, c.DaysPerWeek,
		data}, nil
}

// NewUniformTimeMatrix returns a synthetic DenseTimeMatrix whose travel
// times between distinct locations are drawn uniformly from
// [min, max]. Travel from a location to itself takes no time.
func NewUniformTimeMatrix(c Config, min, max int,
	seed uint64) (*DenseTimeMatrix, error) {
	if min < 0 || max < min {
		return nil, fmt.Errorf("newUniformTimeMatrix: illegal travel time "+
			"bounds [%d, %d]", min, max)
	}

	m, err := NewDenseTimeMatrix(c, nil)
	if err != nil {
		return nil, fmt.Errorf("newUniformTimeMatrix: %v", err)
	}

	rng := rand.New(rand.NewSource(seed))
	for from := 0; from < m.locations; from++ {
		for to := 0; to < m.locations; to++ {
			if from == to {
				continue
			}
			for hour := 0; hour < m.hours; hour++ {
				for day := 0; day < m.days; day++ {
					m.Set(from, to, hour, day, min+rng.Intn(max-min+1))
				}
			}
		}
	}

	return m, nil
}

// Dims returns the shape of the matrix
func (m *DenseTimeMatrix) Dims() (from, to, hours, days int) {
	return m.locations, m.locations, m.hours, m.days
}

// Travel returns the travel time from one location to another when
// leaving at the given hour and day
func (m *DenseTimeMatrix) Travel(from, to, hour, day int) int {
	return m.data[m.index(from, to, hour, day)]
}

// Set sets the travel time from one location to another when leaving
// at the given hour and day. Set panics if hours is negative.
func (m *DenseTimeMatrix) Set(from, to, hour, day, hours int) {
	if hours < 0 {
		panic(fmt.Sprintf("set: travel time must be non-negative, have %d",
			hours))
	}
	m.data[m.index(from, to, hour, day)] = hours
}

// Max returns the longest travel time in the matrix
func (m *DenseTimeMatrix) Max() int {
	max := 0
	for _, hours := range m.data {
		if hours > max {
			max = hours
		}
	}
	return max
}

func (m *DenseTimeMatrix) index(from, to, hour, day int) int {
	if from < 0 || from >= m.locations || to < 0 || to >= m.locations ||
		hour < 0 || hour >= m.hours || day < 0 || day >= m.days {
		panic(fmt.Sprintf("index: (%d, %d, %d, %d) out of range for "+
			"shape (%d, %d, %d, %d)", from, to, hour, day, m.locations,
			m.locations, m.hours, m.days))
	}
	return ((from*m.locations+to)*m.hours+hour)*m.days + day
}
