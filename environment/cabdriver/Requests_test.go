package cabdriver

import (
	"errors"
	"math"
	"testing"
)

func TestRequestsMenu(t *testing.T) {
	m := newTestMDP(t)
	c := m.Config()

	for location := 0; location < c.Locations; location++ {
		for i := 0; i < 500; i++ {
			s := State{location, i % c.HoursPerDay, i % c.DaysPerWeek}
			indices, actions, err := m.Requests(s)
			if err != nil {
				t.Fatal(err)
			}

			if len(indices) != len(actions) {
				t.Fatalf("%d indices but %d actions", len(indices),
					len(actions))
			}
			if n := len(indices); n < 1 || n > c.MaxRequests+1 {
				t.Fatalf("menu has %d entries, expected between 1 and %d", n,
					c.MaxRequests+1)
			}

			last := len(indices) - 1
			if indices[last] != m.NoRideIndex() || !actions[last].IsNoRide() {
				t.Fatalf("last request should be no-ride, have %v (%d)",
					actions[last], indices[last])
			}

			seen := make(map[int]bool)
			for j, idx := range indices {
				if seen[idx] {
					t.Fatalf("request %d drawn twice in %v", idx, indices)
				}
				seen[idx] = true

				if m.Actions()[idx] != actions[j] {
					t.Fatalf("index %d does not match action %v", idx,
						actions[j])
				}
				if j != last && actions[j].IsNoRide() {
					t.Fatalf("no-ride drawn as a customer request")
				}
			}
		}
	}
}

func TestRequestsCountMean(t *testing.T) {
	m := newTestMDP(t)
	const draws = 5000

	// Rates small enough that the cap is almost never reached
	for _, location := range []int{0, 2} {
		total := 0
		for i := 0; i < draws; i++ {
			indices, _, err := m.Requests(State{location, 0, 0})
			if err != nil {
				t.Fatal(err)
			}
			total += len(indices) - 1
		}

		mean := float64(total) / draws
		rate := DefaultRequestRates[location]
		if math.Abs(mean-rate) > 0.15 {
			t.Errorf("location %d: mean request count %v, expected about %v",
				location, mean, rate)
		}
	}
}

func TestRequestsUniform(t *testing.T) {
	m := newTestMDP(t)
	c := m.Config()
	counts := make([]int, c.Rides())

	total := 0
	for i := 0; i < 2000; i++ {
		indices, _, err := m.Requests(State{1, 0, 0})
		if err != nil {
			t.Fatal(err)
		}
		for _, idx := range indices[:len(indices)-1] {
			counts[idx]++
			total++
		}
	}

	expected := float64(total) / float64(len(counts))
	for idx, count := range counts {
		if math.Abs(float64(count)-expected) > 0.15*expected {
			t.Errorf("ride %v requested %d times, expected about %.0f",
				m.Actions()[idx], count, expected)
		}
	}
}

func TestRequestsReproducible(t *testing.T) {
	first, err := NewMDP(DefaultConfig(), 2021)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewMDP(DefaultConfig(), 2021)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		s := State{i % 5, i % 24, i % 7}
		a, _, err := first.Requests(s)
		if err != nil {
			t.Fatal(err)
		}
		b, _, err := second.Requests(s)
		if err != nil {
			t.Fatal(err)
		}

		if len(a) != len(b) {
			t.Fatalf("draw %d: menus %v and %v differ", i, a, b)
		}
		for j := range a {
			if a[j] != b[j] {
				t.Fatalf("draw %d: menus %v and %v differ", i, a, b)
			}
		}
	}
}

func TestRequestsNoneAllowed(t *testing.T) {
	c := DefaultConfig()
	c.MaxRequests = 0
	m, err := NewMDP(c, 3)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 50; i++ {
		indices, actions, err := m.Requests(State{1, 0, 0})
		if err != nil {
			t.Fatal(err)
		}
		if len(indices) != 1 || !actions[0].IsNoRide() {
			t.Fatalf("expected only the no-ride action, have %v", actions)
		}
	}
}

func TestRequestsSamplingError(t *testing.T) {
	c := DefaultConfig()
	c.Locations = 2
	c.RequestRates = []float64{50, 50}
	m, err := NewMDP(c, 3)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := m.Requests(State{0, 0, 0}); !errors.Is(err, ErrSampling) {
		t.Errorf("expected ErrSampling, got %v", err)
	}
}

func TestRequestsInvalidState(t *testing.T) {
	m := newTestMDP(t)
	if _, _, err := m.Requests(State{5, 0, 0}); !errors.Is(err,
		ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func BenchmarkRequests(b *testing.B) {
	m := newTestMDP(b)
	s := State{1, 8, 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := m.Requests(s); err != nil {
			b.Fatal(err)
		}
	}
}
