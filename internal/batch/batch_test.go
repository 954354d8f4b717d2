package batch

import (
	"math"
	"testing"

	"github.com/san-kum/battedball/internal/aero"
	"github.com/san-kum/battedball/internal/flight"
)

func testJob(n int) Job {
	states := make([]flight.State, n)
	spins := make([]Spin, n)
	for i := 0; i < n; i++ {
		vy := 30.0 + float64(i%10)
		vz := 15.0 + float64(i%7)
		states[i] = flight.State{0, 0, 1.0, 0, vy, vz}
		spins[i] = Spin{Axis: aero.Vec3{1, 0, 0}, RPM: 1000 + 100*float64(i%15)}
	}
	return Job{
		States:     states,
		Spins:      spins,
		Dt:         0.01,
		MaxTime:    15,
		AirDensity: 1.225,
		CrossArea:  0.0043,
		Table:      aero.DefaultTable(),
	}
}

func TestPoolMatchesSequential(t *testing.T) {
	job := testJob(40)

	parallel, err := NewPool(4).Integrate(job)
	if err != nil {
		t.Fatalf("parallel run failed: %v", err)
	}

	for i := range job.States {
		params := flight.Params{
			SpinAxis:   job.Spins[i].Axis,
			SpinRPM:    job.Spins[i].RPM,
			AirDensity: job.AirDensity,
			CrossArea:  job.CrossArea,
			Table:      job.Table,
		}
		samples, err := flight.Integrate(job.States[i], job.Dt, job.MaxTime, 0, &params)
		if err != nil {
			t.Fatalf("sequential run %d failed: %v", i, err)
		}
		want := flight.Summarize(samples)
		if parallel[i] != want {
			t.Errorf("trajectory %d: parallel %+v != sequential %+v", i, parallel[i], want)
		}
	}
}

func TestPoolOrderStable(t *testing.T) {
	job := testJob(25)

	first, err := NewPool(8).Integrate(job)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := NewPool(3).Integrate(job)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("trajectory %d differs across worker counts", i)
		}
	}
}

func TestPoolMoreWorkersThanJobs(t *testing.T) {
	job := testJob(2)
	summaries, err := NewPool(16).Integrate(job)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	for i, s := range summaries {
		if s.Distance <= 0 {
			t.Errorf("trajectory %d has zero distance", i)
		}
	}
}

func TestPoolEmptyJob(t *testing.T) {
	job := testJob(0)
	summaries, err := NewPool(4).Integrate(job)
	if err != nil {
		t.Fatalf("empty job failed: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("got %d summaries, want 0", len(summaries))
	}
}

func TestJobValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Job)
	}{
		{"mismatched lengths", func(j *Job) { j.Spins = j.Spins[:1] }},
		{"nil table", func(j *Job) { j.Table = nil }},
		{"zero dt", func(j *Job) { j.Dt = 0 }},
		{"negative max time", func(j *Job) { j.MaxTime = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := testJob(5)
			tt.mutate(&job)
			if _, err := NewPool(2).Integrate(job); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNewPoolDefaults(t *testing.T) {
	if NewPool(0).Workers() < 1 {
		t.Error("zero-worker pool has no workers")
	}
	if NewPool(-3).Workers() < 1 {
		t.Error("negative-worker pool has no workers")
	}
	if NewPool(6).Workers() != 6 {
		t.Errorf("workers = %d, want 6", NewPool(6).Workers())
	}
}

func TestSummarizeStats(t *testing.T) {
	summaries := []flight.Summary{
		{Distance: 90, LandingTime: 4.0, Apex: 20},
		{Distance: 110, LandingTime: 5.0, Apex: 30},
		{Distance: 100, LandingTime: 4.5, Apex: 25},
	}

	stats := Summarize(summaries)
	if math.Abs(stats.MeanDistance-100) > 1e-9 {
		t.Errorf("mean distance = %v, want 100", stats.MeanDistance)
	}
	if stats.MaxDistance != 110 {
		t.Errorf("max distance = %v, want 110", stats.MaxDistance)
	}
	if math.Abs(stats.MeanHangTime-4.5) > 1e-9 {
		t.Errorf("mean hang time = %v, want 4.5", stats.MeanHangTime)
	}
	if math.Abs(stats.MeanApex-25) > 1e-9 {
		t.Errorf("mean apex = %v, want 25", stats.MeanApex)
	}
	if stats.MaxApex != 30 {
		t.Errorf("max apex = %v, want 30", stats.MaxApex)
	}
}

func TestSummarizeStatsEmpty(t *testing.T) {
	if got := Summarize(nil); got != (Stats{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", got)
	}
}
