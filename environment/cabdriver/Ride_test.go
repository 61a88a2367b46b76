package cabdriver

import (
	"errors"
	"testing"
)

// matrixFunc adapts a function to the TimeMatrix interface
type matrixFunc func(from, to, hour, day int) int

func (f matrixFunc) Travel(from, to, hour, day int) int {
	return f(from, to, hour, day)
}

func constant(hours int) TimeMatrix {
	return matrixFunc(func(_, _, _, _ int) int { return hours })
}

func newTestMDP(t testing.TB) *MDP {
	m, err := NewMDP(DefaultConfig(), 42)
	if err != nil {
		t.Fatalf("could not create MDP: %v", err)
	}
	return m
}

func TestNoRideWrapsDay(t *testing.T) {
	m := newTestMDP(t)
	s := State{0, 23, 3}

	reward, err := m.Reward(s, NoRide, constant(4))
	if err != nil {
		t.Fatal(err)
	}
	if reward != -5 {
		t.Errorf("reward = %v, expected -5", reward)
	}

	next, err := m.NextState(s, NoRide, constant(4))
	if err != nil {
		t.Fatal(err)
	}
	if want := (State{0, 0, 4}); next != want {
		t.Errorf("next state = %v, expected %v", next, want)
	}
}

func TestZeroTravelRide(t *testing.T) {
	m := newTestMDP(t)
	s := State{2, 10, 1}
	a := Action{3, 4}

	out, err := m.Transition(s, a, constant(0))
	if err != nil {
		t.Fatal(err)
	}
	if out.Reward != -5 {
		t.Errorf("reward = %v, expected -5", out.Reward)
	}
	if want := (State{4, 11, 1}); out.Next != want {
		t.Errorf("next state = %v, expected %v", out.Next, want)
	}
	if out.Hours != 1 {
		t.Errorf("hours = %d, expected 1", out.Hours)
	}
}

func TestSecondLegUsesPickupTime(t *testing.T) {
	m := newTestMDP(t)

	cases := []struct {
		state   State
		action  Action
		tm      TimeMatrix
		reward  float64
		next    State
		elapsed int
	}{
		{
			state:  State{2, 10, 1},
			action: Action{3, 4},
			tm: matrixFunc(func(from, to, hour, day int) int {
				switch {
				case from == 2 && to == 3 && hour == 10 && day == 1:
					return 3
				case from == 3 && to == 4 && hour == 13 && day == 1:
					return 2
				}
				return 7
			}),
			reward:  9*2 - 5*5,
			next:    State{4, 15, 1},
			elapsed: 5,
		},
		{
			// The drive to the pickup crosses into the next week
			state:  State{0, 22, 6},
			action: Action{1, 2},
			tm: matrixFunc(func(from, to, hour, day int) int {
				switch {
				case from == 0 && to == 1 && hour == 22 && day == 6:
					return 3
				case from == 1 && to == 2 && hour == 1 && day == 0:
					return 4
				}
				return 9
			}),
			reward:  9*4 - 5*7,
			next:    State{2, 5, 0},
			elapsed: 7,
		},
		{
			// Picking up at the current location
			state:  State{1, 20, 2},
			action: Action{1, 0},
			tm: matrixFunc(func(from, to, hour, day int) int {
				if from == to {
					return 0
				}
				if hour == 20 && day == 2 {
					return 6
				}
				return 1
			}),
			reward:  9*6 - 5*6,
			next:    State{0, 2, 3},
			elapsed: 6,
		},
	}

	for i, test := range cases {
		out, err := m.Transition(test.state, test.action, test.tm)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if out.Reward != test.reward {
			t.Errorf("case %d: reward = %v, expected %v", i, out.Reward,
				test.reward)
		}
		if out.Next != test.next {
			t.Errorf("case %d: next state = %v, expected %v", i, out.Next,
				test.next)
		}
		if out.Hours != test.elapsed {
			t.Errorf("case %d: hours = %v, expected %v", i, out.Hours,
				test.elapsed)
		}
	}
}

func TestNoRideRewardIndependentOfState(t *testing.T) {
	m := newTestMDP(t)
	tm, err := NewUniformTimeMatrix(m.Config(), 0, 12, 7)
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range m.States() {
		for _, table := range []TimeMatrix{tm, constant(0), constant(30)} {
			reward, err := m.Reward(s, NoRide, table)
			if err != nil {
				t.Fatal(err)
			}
			if reward != -m.Config().Cost {
				t.Fatalf("no-ride reward in %v = %v, expected %v", s, reward,
					-m.Config().Cost)
			}

			next, err := m.NextState(s, NoRide, table)
			if err != nil {
				t.Fatal(err)
			}
			h, d := m.Advance(s.Hour, s.Day, 1)
			if want := (State{s.Location, h, d}); next != want {
				t.Fatalf("no-ride next state from %v = %v, expected %v", s,
					next, want)
			}
		}
	}
}

func TestRideCostFloor(t *testing.T) {
	m := newTestMDP(t)
	c := m.Config()

	for _, s := range m.States() {
		for _, a := range m.Actions() {
			if a.IsNoRide() {
				continue
			}
			out, err := m.Transition(s, a, constant(0))
			if err != nil {
				t.Fatal(err)
			}
			if out.Reward != -c.Cost {
				t.Fatalf("zero travel ride %v in %v: reward = %v, expected "+
					"%v", a, s, out.Reward, -c.Cost)
			}
			if out.Next.Location != a.Dropoff {
				t.Fatalf("ride %v should end at %d, ended at %v", a,
					a.Dropoff, out.Next)
			}
			if out.Next.Hour == s.Hour && out.Next.Day == s.Day {
				t.Fatalf("ride %v in %v did not advance the clock", a, s)
			}
		}
	}
}

func TestTransitionAgreesWithRewardAndNextState(t *testing.T) {
	m := newTestMDP(t)
	tm, err := NewUniformTimeMatrix(m.Config(), 0, 5, 3)
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range m.States() {
		for _, a := range m.Actions() {
			out, err := m.Transition(s, a, tm)
			if err != nil {
				t.Fatal(err)
			}
			reward, err := m.Reward(s, a, tm)
			if err != nil {
				t.Fatal(err)
			}
			next, err := m.NextState(s, a, tm)
			if err != nil {
				t.Fatal(err)
			}

			if out.Reward != reward || out.Next != next {
				t.Fatalf("transition (%v, %v) in %v disagrees with reward %v "+
					"and next state %v", out.Reward, out.Next, s, reward, next)
			}
			if next == s {
				t.Fatalf("taking %v in %v did not change the state", a, s)
			}
			if out.Hours < 1 {
				t.Fatalf("taking %v in %v took %d hours", a, s, out.Hours)
			}

			// Elapsed hours must match the clock
			h, d := m.Advance(s.Hour, s.Day, out.Hours)
			if h != next.Hour || d != next.Day {
				t.Fatalf("taking %v in %v took %d hours but reached %v", a, s,
					out.Hours, next)
			}
		}
	}
}

func TestFullWeekRideAdvances(t *testing.T) {
	m := newTestMDP(t)
	c := m.Config()
	week := c.HoursPerDay * c.DaysPerWeek

	// The drive to the pickup takes exactly one week, the ride itself
	// takes no time
	tm := matrixFunc(func(from, to, _, _ int) int {
		if from == 1 && to == 0 {
			return week
		}
		return 0
	})

	s := State{1, 5, 2}
	out, err := m.Transition(s, Action{0, 1}, tm)
	if err != nil {
		t.Fatal(err)
	}
	if want := (State{1, 6, 2}); out.Next != want {
		t.Errorf("next state = %v, expected %v", out.Next, want)
	}
	if out.Hours != week+1 {
		t.Errorf("hours = %d, expected %d", out.Hours, week+1)
	}
	if want := -c.Cost * float64(week); out.Reward != want {
		t.Errorf("reward = %v, expected %v", out.Reward, want)
	}
}

func TestTransitionErrors(t *testing.T) {
	m := newTestMDP(t)

	states := []State{{-1, 0, 0}, {5, 0, 0}, {0, 24, 0}, {0, -1, 0},
		{0, 0, 7}, {0, 0, -2}}
	for _, s := range states {
		if _, err := m.Transition(s, Action{0, 1}, constant(1)); !errors.Is(
			err, ErrInvalidState) {
			t.Errorf("state %v: expected ErrInvalidState, got %v", s, err)
		}
	}

	actions := []Action{{1, 1}, {4, 4}, {-1, 2}, {0, 5}, {7, 1}}
	for _, a := range actions {
		if _, err := m.Reward(State{0, 0, 0}, a, constant(1)); !errors.Is(
			err, ErrInvalidAction) {
			t.Errorf("action %v: expected ErrInvalidAction, got %v", a, err)
		}
		if _, err := m.NextState(State{0, 0, 0}, a, constant(1)); !errors.Is(
			err, ErrInvalidAction) {
			t.Errorf("action %v: expected ErrInvalidAction, got %v", a, err)
		}
	}

	if _, err := m.Transition(State{0, 0, 0}, Action{1, 2}, constant(-1)); !errors.Is(
		err, ErrInvalidTimeMatrix) {
		t.Errorf("expected ErrInvalidTimeMatrix, got %v", err)
	}
}

func BenchmarkTransition(b *testing.B) {
	m := newTestMDP(b)
	tm, err := NewUniformTimeMatrix(m.Config(), 1, 11, 1)
	if err != nil {
		b.Fatal(err)
	}
	s := State{3, 17, 5}
	a := Action{1, 4}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Transition(s, a, tm); err != nil {
			b.Fatal(err)
		}
	}
}
