package flight

import (
	"math"
	"testing"

	"github.com/san-kum/battedball/internal/aero"
)

// zeroTable returns a coefficient table that produces no aerodynamic force,
// reducing the integrator to a pure ballistic problem with a closed form.
func zeroTable(t *testing.T) *aero.Table {
	t.Helper()
	zeros := [][]float64{{0, 0}, {0, 0}}
	tbl, err := aero.NewTable(zeros, zeros)
	if err != nil {
		t.Fatalf("building zero table: %v", err)
	}
	return tbl
}

func vacuumParams(t *testing.T) *Params {
	return &Params{
		AirDensity: 1.225,
		CrossArea:  0.0043,
		Table:      zeroTable(t),
	}
}

func TestStepRK4BallisticExact(t *testing.T) {
	// RK4 integrates polynomials up to degree 4 exactly; with zero drag the
	// trajectory is quadratic in time, so each step must match the closed
	// form to machine precision.
	p := vacuumParams(t)
	s := State{0, 0, 1.0, 5, 40, 20}
	dt := 0.01

	for i := 0; i < 100; i++ {
		s = StepRK4(s, dt, p)
	}

	tEnd := 1.0
	wantX := 5 * tEnd
	wantY := 40 * tEnd
	wantZ := 1.0 + 20*tEnd - 0.5*Gravity*tEnd*tEnd
	wantVZ := 20 - Gravity*tEnd

	if math.Abs(s[0]-wantX) > 1e-9 {
		t.Errorf("x = %v, want %v", s[0], wantX)
	}
	if math.Abs(s[1]-wantY) > 1e-9 {
		t.Errorf("y = %v, want %v", s[1], wantY)
	}
	if math.Abs(s[2]-wantZ) > 1e-9 {
		t.Errorf("z = %v, want %v", s[2], wantZ)
	}
	if math.Abs(s[5]-wantVZ) > 1e-9 {
		t.Errorf("vz = %v, want %v", s[5], wantVZ)
	}
}

func TestStepRK4DragSlowsBall(t *testing.T) {
	p := &Params{
		SpinAxis:   aero.Vec3{1, 0, 0},
		SpinRPM:    1800,
		AirDensity: 1.225,
		CrossArea:  0.0043,
		Table:      aero.DefaultTable(),
	}

	s := State{0, 0, 1.0, 0, 45, 0}
	next := StepRK4(s, 0.01, p)

	if next[4] >= s[4] {
		t.Errorf("horizontal speed grew under drag: %v -> %v", s[4], next[4])
	}
	if !next.IsValid() {
		t.Errorf("step produced invalid state: %v", next)
	}
}

func TestNilWindEqualsStill(t *testing.T) {
	tbl := aero.DefaultTable()
	base := Params{
		SpinAxis:   aero.Vec3{1, 0, 0},
		SpinRPM:    2000,
		AirDensity: 1.225,
		CrossArea:  0.0043,
		Table:      tbl,
	}

	withNil := base
	withStill := base
	withStill.Wind = aero.Still{}

	s := State{0, 0, 1.0, 0, 40, 25}
	a := StepRK4(s, 0.01, &withNil)
	b := StepRK4(s, 0.01, &withStill)

	if a != b {
		t.Errorf("nil wind differs from Still: %v vs %v", a, b)
	}
}

func TestZeroWindShearEqualsStill(t *testing.T) {
	// A shear model with a zero base vector multiplies zero and must be
	// indistinguishable from still air.
	tbl := aero.DefaultTable()
	still := Params{
		SpinRPM: 1500, SpinAxis: aero.Vec3{1, 0, 0},
		AirDensity: 1.225, CrossArea: 0.0043, Table: tbl,
		Wind: aero.Still{},
	}
	shear := still
	shear.Wind = aero.NewShear(aero.Vec3{})

	s := State{0, 0, 1.0, 0, 40, 25}
	a := StepRK4(s, 0.01, &still)
	b := StepRK4(s, 0.01, &shear)

	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			t.Fatalf("component %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestTailwindCarriesBall(t *testing.T) {
	tbl := aero.DefaultTable()
	calm := Params{
		SpinAxis: aero.Vec3{1, 0, 0}, SpinRPM: 1800,
		AirDensity: 1.225, CrossArea: 0.0043, Table: tbl,
	}
	tail := calm
	tail.Wind = aero.NewShear(aero.Vec3{0, 8, 0})

	s0 := State{0, 0, 1.0, 0, 40, 25}

	calmSamples, err := Integrate(s0, 0.01, 15, 0, &calm)
	if err != nil {
		t.Fatalf("calm integration: %v", err)
	}
	tailSamples, err := Integrate(s0, 0.01, 15, 0, &tail)
	if err != nil {
		t.Fatalf("tailwind integration: %v", err)
	}

	calmDist := Summarize(calmSamples).Distance
	tailDist := Summarize(tailSamples).Distance
	if tailDist <= calmDist {
		t.Errorf("tailwind distance %v not beyond calm distance %v", tailDist, calmDist)
	}
}
