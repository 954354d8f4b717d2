// Package batch fans independent trajectory evaluations out across a fixed
// worker pool and collects per-trajectory scalar summaries. Results are
// keyed by input index, never by completion order.
package batch

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/san-kum/battedball/internal/aero"
	"github.com/san-kum/battedball/internal/flight"
)

// Pool is an explicitly sized set of workers for data-parallel evaluations.
// There is no package-level pool; callers construct and share one.
type Pool struct {
	workers int
}

// NewPool returns a pool with the given worker count; zero or negative
// selects the available hardware parallelism.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

func (p *Pool) Workers() int { return p.workers }

// Spin is the per-trajectory spin input for batch runs.
type Spin struct {
	Axis aero.Vec3
	RPM  float64
}

// Job describes one batch of independent trajectory evaluations. Everything
// except the states and spins is shared; the coefficient table is read-only
// across workers.
type Job struct {
	States      []flight.State
	Spins       []Spin
	Dt          float64
	MaxTime     float64
	GroundLevel float64
	AirDensity  float64
	CrossArea   float64
	Table       *aero.Table
	Wind        aero.WindModel // nil means still air
}

func (j *Job) validate() error {
	if len(j.States) != len(j.Spins) {
		return fmt.Errorf("got %d states but %d spin params", len(j.States), len(j.Spins))
	}
	if j.Table == nil {
		return fmt.Errorf("coefficient table is required")
	}
	if j.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", j.Dt)
	}
	if j.MaxTime <= 0 {
		return fmt.Errorf("max time must be positive, got %f", j.MaxTime)
	}
	return nil
}

// Integrate runs every trajectory in the job and returns summaries in input
// order. Input validation happens before any integration work begins.
func (p *Pool) Integrate(job Job) ([]flight.Summary, error) {
	if err := job.validate(); err != nil {
		return nil, err
	}

	n := len(job.States)
	summaries := make([]flight.Summary, n)
	if n == 0 {
		return summaries, nil
	}

	workers := p.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			start := worker * chunk
			end := start + chunk
			if end > n {
				end = n
			}

			for i := start; i < end; i++ {
				params := flight.Params{
					SpinAxis:   job.Spins[i].Axis,
					SpinRPM:    job.Spins[i].RPM,
					AirDensity: job.AirDensity,
					CrossArea:  job.CrossArea,
					Table:      job.Table,
					Wind:       job.Wind,
				}
				samples, err := flight.Integrate(job.States[i], job.Dt, job.MaxTime, job.GroundLevel, &params)
				if err != nil {
					// Inputs were validated up front; per-trajectory errors
					// cannot occur past this point.
					continue
				}
				summaries[i] = flight.Summarize(samples)
			}
		}(w)
	}
	wg.Wait()

	return summaries, nil
}
