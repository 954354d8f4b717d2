package aero

import "math"

// Wind shear model constants. Wind strengthens with altitude following a
// power law; the reference measurement height is 10 m.
const (
	WindRefHeight     = 10.0 // m
	WindShearExponent = 0.20 // open terrain
	WindMinHeight     = 1.0  // m, floor to avoid degenerate exponents
	WindMaxMultiplier = 1.7
)

// WindModel supplies the effective wind vector at a given height. The
// integrator queries it once per RK4 stage using that stage's altitude.
type WindModel interface {
	At(height float64) Vec3
}

// Still is the zero-wind provider. Integrating with Still degenerates to the
// wind-free trajectory with no shear lookups.
type Still struct{}

func (Still) At(height float64) Vec3 { return Vec3{} }

// Shear scales a reference wind vector by a power-law altitude multiplier.
// Direction is unchanged; only magnitude is amplified.
type Shear struct {
	Base Vec3 // wind at WindRefHeight, m/s
}

func NewShear(base Vec3) Shear { return Shear{Base: base} }

func (w Shear) At(height float64) Vec3 {
	return w.Base.Scale(ShearMultiplier(height))
}

// ShearMultiplier returns the altitude amplification factor, always in
// [1.0, WindMaxMultiplier] and non-decreasing in height.
func ShearMultiplier(height float64) float64 {
	h := math.Max(height, WindMinHeight)
	m := math.Pow(h/WindRefHeight, WindShearExponent)
	return clamp(m, 1.0, WindMaxMultiplier)
}
