package fielding

import (
	"math"
	"sync"

	"github.com/san-kum/battedball/internal/groundball"
)

// Grid-search parameters for the rolling-ball sweep.
const (
	searchStep    = 0.05 // s
	searchHorizon = 6.0  // s
	stopSpeedMPH  = 0.1
)

// Outcome reports the best interception found along a rolling ball's path.
// Margin is ballTime - fielderTime; positive means the fielder arrives
// first. BallTime is absolute (includes the ball's landing time) and never
// precedes it.
type Outcome struct {
	CanIntercept bool
	Point        [2]float64 // ft
	FielderTime  float64    // s
	BallTime     float64    // s
	Margin       float64    // s
	BallSpeedMPH float64
}

// FindInterception sweeps the ball's rolling path at 50 ms resolution and
// returns the sample with the greatest time margin for this fielder. A
// non-reachable ball still returns the best-effort margin rather than an
// error.
func FindInterception(gb groundball.State, p Profile, exitVelocityMPH float64) Outcome {
	dx := gb.Landing[0] - p.X
	dy := gb.Landing[1] - p.Y
	bonus := ChargeBonus(exitVelocityMPH, math.Hypot(dx, dy), p.SprintSpeed)
	return findInterception(gb, p, bonus)
}

func findInterception(gb groundball.State, p Profile, chargeBonus float64) Outcome {
	// The sentinel keeps BallTime at the landing time so even a ball that
	// stopped immediately never reports an arrival before it landed.
	best := Outcome{
		Point:       gb.Landing,
		FielderTime: math.MaxFloat64,
		BallTime:    gb.LandingTime,
		Margin:      -math.MaxFloat64,
	}

	for t := 0.0; t <= searchHorizon; t += searchStep {
		ballPos, ballSpeed := gb.PositionAt(t)
		if ballSpeed < stopSpeedMPH {
			break
		}

		distance := math.Hypot(ballPos[0]-p.X, ballPos[1]-p.Y)
		effective := math.Max(0, distance-chargeBonus)
		fielderTime := TravelTime(effective, p)

		ballTime := gb.LandingTime + t
		margin := ballTime - fielderTime

		if margin > best.Margin {
			best = Outcome{
				CanIntercept: margin >= 0,
				Point:        ballPos,
				FielderTime:  fielderTime,
				BallTime:     ballTime,
				Margin:       margin,
				BallSpeedMPH: ballSpeed,
			}
		}
	}

	return best
}

// FindBestInterception evaluates every fielder independently in parallel and
// returns the index and outcome with the greatest margin. The index is -1
// when no fielders are given.
func FindBestInterception(gb groundball.State, fielders []Profile, exitVelocityMPH float64) (int, Outcome) {
	outcomes := make([]Outcome, len(fielders))

	var wg sync.WaitGroup
	for i, f := range fielders {
		wg.Add(1)
		go func(idx int, p Profile) {
			defer wg.Done()
			outcomes[idx] = FindInterception(gb, p, exitVelocityMPH)
		}(i, f)
	}
	wg.Wait()

	bestIdx := -1
	best := Outcome{FielderTime: math.MaxFloat64, Margin: -math.MaxFloat64}
	for i, o := range outcomes {
		if o.Margin > best.Margin {
			bestIdx = i
			best = o
		}
	}
	return bestIdx, best
}
