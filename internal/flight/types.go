package flight

import (
	"math"

	"github.com/san-kum/battedball/internal/aero"
)

// Physical constants.
const (
	Gravity  = 9.81  // m/s^2
	BallMass = 0.145 // kg, MLB baseball
)

// State is the kinematic state [x, y, z, vx, vy, vz] in meters and m/s.
// Steps produce new states; a State is never mutated in place.
type State [6]float64

func (s State) Position() aero.Vec3 { return aero.Vec3{s[0], s[1], s[2]} }
func (s State) Velocity() aero.Vec3 { return aero.Vec3{s[3], s[4], s[5]} }

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sample is one emitted trajectory point.
type Sample struct {
	Pos aero.Vec3
	Vel aero.Vec3
	T   float64
}

// Params are the per-trajectory aerodynamic inputs. Spin and wind are
// constant for the duration of one trajectory; the coefficient table is
// shared read-only across trajectories.
type Params struct {
	SpinAxis   aero.Vec3
	SpinRPM    float64
	AirDensity float64 // kg/m^3
	CrossArea  float64 // m^2
	Table      *aero.Table
	Wind       aero.WindModel // nil means still air
}

func (p *Params) wind() aero.WindModel {
	if p.Wind == nil {
		return aero.Still{}
	}
	return p.Wind
}
