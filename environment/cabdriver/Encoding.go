package cabdriver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StateFeatures returns the length of a state encoding
func (c Config) StateFeatures() int {
	return c.Locations + c.HoursPerDay + c.DaysPerWeek
}

// StateActionFeatures returns the length of a state-action encoding
func (c Config) StateActionFeatures() int {
	return c.StateFeatures() + 2*c.Locations
}

// EncodeState returns the one-hot encoding of s. The encoding consists
// of three one-hot blocks: the location, the hour, and the day.
func (m *MDP) EncodeState(s State) (*mat.VecDense, error) {
	if err := m.cfg.ValidateState(s); err != nil {
		return nil, fmt.Errorf("encodeState: %w", err)
	}

	vec := mat.NewVecDense(m.cfg.StateFeatures(), nil)
	m.setState(vec, s)
	return vec, nil
}

// EncodeStateAction returns the one-hot encoding of the state-action
// pair (s, a). The encoding is the state encoding followed by a
// one-hot block for the pickup location and a one-hot block for the
// dropoff location. NoRide is encoded as a ride from location 0 to
// location 0.
func (m *MDP) EncodeStateAction(s State, a Action) (*mat.VecDense, error) {
	if err := m.cfg.ValidateState(s); err != nil {
		return nil, fmt.Errorf("encodeStateAction: %w", err)
	}
	if err := m.cfg.ValidateAction(a); err != nil {
		return nil, fmt.Errorf("encodeStateAction: %w", err)
	}

	vec := mat.NewVecDense(m.cfg.StateActionFeatures(), nil)
	m.setState(vec, s)

	offset := m.cfg.StateFeatures()
	vec.SetVec(offset+a.Pickup, 1.0)
	vec.SetVec(offset+m.cfg.Locations+a.Dropoff, 1.0)
	return vec, nil
}

// DecodeState returns the state whose encoding is v
func (m *MDP) DecodeState(v mat.Vector) (State, error) {
	if v.Len() != m.cfg.StateFeatures() {
		return State{}, fmt.Errorf("decodeState: %w: encoding has length "+
			"%d, expected %d", ErrInvalidState, v.Len(),
			m.cfg.StateFeatures())
	}

	blocks := []int{m.cfg.Locations, m.cfg.HoursPerDay, m.cfg.DaysPerWeek}
	values := make([]int, len(blocks))
	offset := 0
	for b, size := range blocks {
		values[b] = -1
		for i := 0; i < size; i++ {
			switch v.AtVec(offset + i) {
			case 0.0:
			case 1.0:
				if values[b] >= 0 {
					return State{}, fmt.Errorf("decodeState: %w: block %d "+
						"has more than one bit set", ErrInvalidState, b)
				}
				values[b] = i
			default:
				return State{}, fmt.Errorf("decodeState: %w: encoding is "+
					"not one-hot at position %d", ErrInvalidState, offset+i)
			}
		}
		if values[b] < 0 {
			return State{}, fmt.Errorf("decodeState: %w: block %d has no "+
				"bit set", ErrInvalidState, b)
		}
		offset += size
	}

	return State{values[0], values[1], values[2]}, nil
}

func (m *MDP) setState(vec *mat.VecDense, s State) {
	vec.SetVec(s.Location, 1.0)
	vec.SetVec(m.cfg.Locations+s.Hour, 1.0)
	vec.SetVec(m.cfg.Locations+m.cfg.HoursPerDay+s.Day, 1.0)
}
