package batch

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/battedball/internal/flight"
)

// Stats aggregates a batch of trajectory summaries.
type Stats struct {
	MeanDistance float64
	MaxDistance  float64
	MeanHangTime float64
	MeanApex     float64
	MaxApex      float64
}

func Summarize(summaries []flight.Summary) Stats {
	if len(summaries) == 0 {
		return Stats{}
	}

	distances := make([]float64, len(summaries))
	hangTimes := make([]float64, len(summaries))
	apexes := make([]float64, len(summaries))
	for i, s := range summaries {
		distances[i] = s.Distance
		hangTimes[i] = s.LandingTime
		apexes[i] = s.Apex
	}

	return Stats{
		MeanDistance: stat.Mean(distances, nil),
		MaxDistance:  floats.Max(distances),
		MeanHangTime: stat.Mean(hangTimes, nil),
		MeanApex:     stat.Mean(apexes, nil),
		MaxApex:      floats.Max(apexes),
	}
}
