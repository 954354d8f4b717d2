package flight

import "github.com/san-kum/battedball/internal/aero"

// derivative evaluates dState/dt at s. Velocity components pass through;
// acceleration is aerodynamic force over ball mass with gravity subtracted
// from the vertical component. The wind is re-evaluated at this state's own
// altitude so shear tracks every RK4 stage.
func derivative(s State, p *Params) State {
	wind := p.wind().At(s[2])
	f := aero.Force(s.Velocity(), wind, p.SpinAxis, p.SpinRPM, p.AirDensity, p.CrossArea, p.Table)
	return State{
		s[3], s[4], s[5],
		f[0] / BallMass,
		f[1] / BallMass,
		f[2]/BallMass - Gravity,
	}
}

func addScaled(s, k State, scale float64) State {
	var out State
	for i := range s {
		out[i] = s[i] + scale*k[i]
	}
	return out
}

// StepRK4 advances the state by dt with a classic 4-stage Runge-Kutta step.
// Each stage recomputes the altitude-adjusted wind from that stage's height.
func StepRK4(s State, dt float64, p *Params) State {
	k1 := derivative(s, p)
	k2 := derivative(addScaled(s, k1, 0.5*dt), p)
	k3 := derivative(addScaled(s, k2, 0.5*dt), p)
	k4 := derivative(addScaled(s, k3, dt), p)

	dt6 := dt / 6.0
	var out State
	for i := range s {
		out[i] = s[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out
}
