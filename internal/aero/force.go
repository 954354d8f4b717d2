package aero

const nearZero = 1e-6

// Force returns the net aerodynamic force on the ball in Newtons: drag
// opposing the relative airflow plus the spin-induced Magnus force. Gravity
// is not included; the state derivative adds it.
//
// wind must already be altitude-adjusted (see WindModel).
func Force(velocity, wind, spinAxis Vec3, spinRPM, airDensity, crossArea float64, tbl *Table) Vec3 {
	rel := velocity.Sub(wind)
	relMag := rel.Norm()
	if relMag < nearZero {
		return Vec3{}
	}

	relUnit := rel.Scale(1 / relMag)
	cd, cl := tbl.Lookup(relMag, spinRPM)

	// F_d = 0.5 * Cd * rho * A * v_rel^2, opposing relative motion.
	dyn := 0.5 * airDensity * crossArea * relMag * relMag
	force := relUnit.Scale(-cd * dyn)

	if spinRPM > 1.0 {
		spinMag := spinAxis.Norm()
		if spinMag > nearZero {
			spinUnit := spinAxis.Scale(1 / spinMag)
			dir := relUnit.Cross(spinUnit)
			dirMag := dir.Norm()
			// Velocity parallel to spin axis contributes no Magnus force.
			if dirMag > nearZero {
				force = force.Add(dir.Scale(cl * dyn / dirMag))
			}
		}
	}

	return force
}
