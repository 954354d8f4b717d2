package flight

import (
	"fmt"
	"math"
)

// Integrate drives the ball from s0 at t=0 until it crosses groundLevel or
// maxTime elapses, emitting a sample per step. When the ball crosses ground
// level the final sample is linearly interpolated to sit exactly at ground
// level; the sequence is strictly time-increasing. Sample count is capped at
// maxTime/dt+10 so pathological inputs still terminate.
func Integrate(s0 State, dt, maxTime, groundLevel float64, p *Params) ([]Sample, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("dt must be positive, got %f", dt)
	}
	if maxTime <= 0 {
		return nil, fmt.Errorf("max time must be positive, got %f", maxTime)
	}
	if p.Table == nil {
		return nil, fmt.Errorf("coefficient table is required")
	}

	maxSteps := int(maxTime/dt) + 10
	samples := make([]Sample, 0, maxSteps)

	s := s0
	t := 0.0
	samples = append(samples, Sample{Pos: s.Position(), Vel: s.Velocity(), T: 0})

	for t < maxTime && len(samples) < maxSteps {
		prev := s
		s = StepRK4(s, dt, p)
		t += dt
		samples = append(samples, Sample{Pos: s.Position(), Vel: s.Velocity(), T: t})

		if s[2] <= groundLevel {
			zPrev, zCurr := prev[2], s[2]
			if math.Abs(zCurr-zPrev) > 1e-10 {
				// Replace the below-ground sample with the interpolated
				// landing point so the final sample sits exactly at ground
				// level and times stay increasing.
				frac := (groundLevel - zPrev) / (zCurr - zPrev)
				landing := Sample{
					Pos: lerp3(prev.Position(), s.Position(), frac),
					Vel: lerp3(prev.Velocity(), s.Velocity(), frac),
					T:   t - dt + frac*dt,
				}
				landing.Pos[2] = groundLevel
				samples[len(samples)-1] = landing
				return samples, nil
			}
			// Height barely changed; keep the raw sample and keep going.
		}
	}

	return samples, nil
}

func lerp3(a, b [3]float64, frac float64) [3]float64 {
	return [3]float64{
		a[0] + frac*(b[0]-a[0]),
		a[1] + frac*(b[1]-a[1]),
		a[2] + frac*(b[2]-a[2]),
	}
}

// Summary condenses a trajectory into the scalar results batch callers
// consume.
type Summary struct {
	Landing     [3]float64
	LandingTime float64
	Distance    float64 // horizontal distance from origin
	Apex        float64 // peak height
}

func Summarize(samples []Sample) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	last := samples[len(samples)-1]
	apex := 0.0
	for _, s := range samples {
		apex = math.Max(apex, s.Pos[2])
	}

	return Summary{
		Landing:     last.Pos,
		LandingTime: last.T,
		Distance:    math.Hypot(last.Pos[0], last.Pos[1]),
		Apex:        apex,
	}
}
