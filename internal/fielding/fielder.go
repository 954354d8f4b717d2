// Package fielding finds where and when a fielder can cut off a rolling
// ground ball. Distances are feet, speeds ft/s (ball speeds mph), times
// seconds.
package fielding

import "math"

// Fielder kinematic defaults.
const (
	DefaultAcceleration = 28.0 // ft/s^2
	MaxSprintSpeed      = 30.0 // ft/s, elite
	MaxChargeBonus      = 20.0 // ft
)

// Profile is a fielder's starting position and kinematic capabilities.
// Acceleration falls back to DefaultAcceleration when zero.
type Profile struct {
	X, Y         float64 // ft
	SprintSpeed  float64 // ft/s
	ReactionTime float64 // s
	Acceleration float64 // ft/s^2
}

func (p Profile) acceleration() float64 {
	if p.Acceleration > 0 {
		return p.Acceleration
	}
	return DefaultAcceleration
}

// TravelTime returns the time for the fielder to cover distanceFt: a
// reaction delay, then constant acceleration up to sprint speed, then
// constant speed for whatever remains.
func TravelTime(distanceFt float64, p Profile) float64 {
	if distanceFt <= 0 {
		return p.ReactionTime
	}

	accel := p.acceleration()
	maxSpeed := math.Min(p.SprintSpeed, MaxSprintSpeed)

	accelDistance := maxSpeed * maxSpeed / (2 * accel)

	var travel float64
	if distanceFt <= accelDistance {
		// Never reaches top speed: d = a*t^2/2.
		travel = math.Sqrt(2 * distanceFt / accel)
	} else {
		travel = maxSpeed/accel + (distanceFt-accelDistance)/maxSpeed
	}

	return p.ReactionTime + travel
}

// ChargeBonus is the effective distance a fielder closes while the ball is
// still in the air or bouncing. Harder-hit balls allow less charging;
// distance and raw speed allow more. Capped at MaxChargeBonus.
func ChargeBonus(exitVelocityMPH, distanceToLanding, sprintSpeedFPS float64) float64 {
	velocityFactor := clamp(1.0-(exitVelocityMPH-60.0)/60.0, 0.2, 1.0)
	distanceFactor := clamp(distanceToLanding/150.0, 0.3, 1.0)
	speedFactor := sprintSpeedFPS / 27.0 // 27 ft/s is average

	return math.Min(MaxChargeBonus*velocityFactor*distanceFactor*speedFactor, MaxChargeBonus)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
