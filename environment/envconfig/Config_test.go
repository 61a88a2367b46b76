package envconfig

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/samuelfneumann/cabdriver/environment/cabdriver"
	ts "github.com/samuelfneumann/cabdriver/timestep"
	"gonum.org/v1/gonum/mat"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"ShiftHours": 48, "MDP": {"Locations": 3, ` +
		`"RequestRates": [1, 2, 3], "MaxRequests": 4}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if c.ShiftHours != 48 {
		t.Errorf("shift hours = %d, expected 48", c.ShiftHours)
	}
	if c.MDP.Locations != 3 || c.MDP.MaxRequests != 4 {
		t.Errorf("MDP not loaded: %+v", c.MDP)
	}
	if c.MDP.HoursPerDay != cabdriver.DefaultHoursPerDay {
		t.Errorf("missing fields should keep defaults, hours per day = %d",
			c.MDP.HoursPerDay)
	}
	if c.Task != Shift || c.Discount != 1.0 {
		t.Errorf("missing fields should keep defaults: %+v", c)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := Default()
	c.EpisodeCutoff = 100
	c.MaxTravel = 5

	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c, loaded) {
		t.Errorf("loaded %+v, saved %+v", loaded, c)
	}
}

func TestCreate(t *testing.T) {
	c := Default()
	c.ShiftHours = 24

	e, step, err := c.Create(1)
	if err != nil {
		t.Fatal(err)
	}
	if !step.First() {
		t.Errorf("expected a first timestep, have %v", step)
	}
	if step.Discount != 1.0 {
		t.Errorf("discount = %v, expected 1", step.Discount)
	}

	other, _, err := c.Create(1)
	if err != nil {
		t.Fatal(err)
	}
	if e.State() != other.State() {
		t.Errorf("environments with the same seed start in different "+
			"states: %v and %v", e.State(), other.State())
	}
	if !reflect.DeepEqual(e.Menu(), other.Menu()) {
		t.Errorf("environments with the same seed draw different menus")
	}

	noRide := mat.NewVecDense(1, []float64{float64(e.NoRideIndex())})
	last := false
	for !last {
		step, last = e.Step(noRide)
	}
	if step.Hours != 24 || step.EndType() != ts.ShiftEnded {
		t.Errorf("expected the shift to end after 24 hours, have %v", step)
	}
}

func TestCreateErrors(t *testing.T) {
	c := Default()
	c.MDP.Locations = 0
	if _, _, err := c.Create(1); err == nil {
		t.Error("expected an error for an invalid MDP")
	}

	c = Default()
	c.Task = "Commute"
	if _, _, err := c.Create(1); err == nil {
		t.Error("expected an error for an unknown task")
	}

	c = Default()
	c.MinTravel, c.MaxTravel = 3, 2
	if _, _, err := c.Create(1); err == nil {
		t.Error("expected an error for illegal travel time bounds")
	}

	c = Default()
	c.MDP.Locations = 2
	c.MDP.RequestRates = []float64{1, 1}
	if _, _, err := c.Create(1); !errors.Is(err, cabdriver.ErrSampling) {
		t.Errorf("expected ErrSampling, got %v", err)
	}
}
