// Package groundball models a batted ball after it reaches the ground:
// a short coefficient-of-restitution bounce phase followed by decelerating,
// spin-curved rolling. This subsystem works in feet and mph, the native
// units of the fielding model; conversions from the metric airborne phase
// happen at the boundary.
package groundball

import "math"

// Surface parameters and shared ground-physics constants.
const (
	CORGrass      = 0.45
	CORDirt       = 0.50
	FrictionGrass = 0.30
	FrictionDirt  = 0.25

	AirResistance    = 3.0  // ft/s^2, constant rolling air drag
	SpinEffectFactor = 0.08 // curve effect per 1000 rpm

	gravityMS   = 9.81
	feetPerM    = 3.28084
	fpsPerMPH   = 5280.0 / 3600.0
	maxBounces  = 3
	bounceStopV = 1.0 // ft/s, vertical speed below which bouncing ends
)

// Surface selects the restitution and friction parameters.
type Surface int

const (
	Grass Surface = iota
	Dirt
)

func (s Surface) String() string {
	if s == Dirt {
		return "dirt"
	}
	return "grass"
}

func (s Surface) cor() float64 {
	if s == Dirt {
		return CORDirt
	}
	return CORGrass
}

// Friction returns the surface's rolling friction coefficient.
func (s Surface) Friction() float64 {
	if s == Dirt {
		return FrictionDirt
	}
	return FrictionGrass
}

// State captures the ball at the moment rolling begins. It is immutable:
// position and speed at any later time are pure functions of this state
// plus elapsed time.
type State struct {
	Landing      [2]float64 // ft
	LandingSpeed float64    // mph
	Direction    [2]float64 // unit travel direction
	LandingTime  float64    // s, absolute time bouncing ended
	Friction     float64
	SpinEffect   float64
}

// Simulate runs the bounce phase from launch conditions (positions in feet,
// velocities in mph) and returns the rolling state.
//
// Up to three bounces are modeled. An upward-moving ball takes a symmetric
// parabolic hop, losing vertical speed to restitution and a sliver of
// horizontal speed to friction; a downward-moving first impact only reflects
// the vertical speed without advancing position or time.
func Simulate(x0, y0, vxMPH, vyMPH, vzMPH, spinRPM float64, surface Surface) State {
	cor := surface.cor()
	friction := surface.Friction()

	vx := vxMPH * fpsPerMPH
	vy := vyMPH * fpsPerMPH
	vz := vzMPH * fpsPerMPH

	vh := math.Hypot(vx, vy)
	spinEffect := (spinRPM / 1000.0) * SpinEffectFactor

	dirMag := vh
	if dirMag <= 1e-6 {
		dirMag = 1.0
	}
	dir := [2]float64{vx / dirMag, vy / dirMag}

	pos := [2]float64{x0, y0}
	time := 0.0
	g := gravityMS * feetPerM

	for bounces := 0; bounces < maxBounces && math.Abs(vz) > bounceStopV; bounces++ {
		if vz > 0 {
			// Symmetric up-and-down hop.
			tAir := 2 * vz / g
			dist := vh * tAir
			pos[0] += dist * dir[0]
			pos[1] += dist * dir[1]
			time += tAir

			vz *= cor
			vh *= 1.0 - friction*0.1
		} else {
			// First impact while descending: reflect through the COR.
			vz = -vz * cor
		}
	}

	return State{
		Landing:      pos,
		LandingSpeed: vh / fpsPerMPH,
		Direction:    dir,
		LandingTime:  time,
		Friction:     friction,
		SpinEffect:   spinEffect,
	}
}

// decel is the total rolling deceleration in ft/s^2.
func (s State) decel() float64 {
	return gravityMS*feetPerM*s.Friction + AirResistance
}

// StopTime returns seconds of rolling until the ball is at rest.
func (s State) StopTime() float64 {
	return s.LandingSpeed * fpsPerMPH / s.decel()
}

// PositionAt returns the ball's position (ft) and speed (mph) elapsed
// seconds after rolling began. Speed decreases monotonically to zero and is
// never negative; spin curves the travel direction slightly over time.
func (s State) PositionAt(elapsed float64) (pos [2]float64, speedMPH float64) {
	if elapsed <= 0 {
		return s.Landing, s.LandingSpeed
	}

	decel := s.decel()
	v0 := s.LandingSpeed * fpsPerMPH

	t := math.Min(elapsed, v0/decel)
	distance := v0*t - 0.5*decel*t*t

	// Spin bends the path; renormalize so distance stays arc length.
	curve := s.SpinEffect * t * 0.1
	dir := [2]float64{
		s.Direction[0] - curve*s.Direction[1],
		s.Direction[1] + curve*s.Direction[0],
	}
	if mag := math.Hypot(dir[0], dir[1]); mag > 1e-6 {
		dir[0] /= mag
		dir[1] /= mag
	} else {
		dir = s.Direction
	}

	pos = [2]float64{
		s.Landing[0] + distance*dir[0],
		s.Landing[1] + distance*dir[1],
	}
	speedMPH = math.Max(0, v0-decel*elapsed) / fpsPerMPH
	return pos, speedMPH
}

// TimeToDistance solves the rolling kinematics for the time at which the
// ball has traveled the given distance (ft) from its landing point. ok is
// false when the ball stops short.
func (s State) TimeToDistance(distance float64) (t float64, ok bool) {
	if distance <= 0 {
		return 0, true
	}

	decel := s.decel()
	v0 := s.LandingSpeed * fpsPerMPH

	maxDistance := v0 * v0 / (2 * decel)
	if distance > maxDistance {
		return 0, false
	}

	disc := v0*v0 - 2*decel*distance
	if disc < 0 {
		return 0, false
	}
	return math.Max(0, (v0-math.Sqrt(disc))/decel), true
}
