// Package storage persists simulation runs as a metadata JSON plus a
// samples CSV per run directory, so past trajectories can be listed,
// plotted and exported from the CLI.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/battedball/internal/flight"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Timestamp   time.Time `json:"timestamp"`
	Dt          float64   `json:"dt"`
	MaxTime     float64   `json:"max_time"`
	SpinRPM     float64   `json:"spin_rpm"`
	AirDensity  float64   `json:"air_density"`
	WindSpeed   float64   `json:"wind_speed"`
	LandingTime float64   `json:"landing_time"`
	Distance    float64   `json:"distance"`
	Apex        float64   `json:"apex"`
}

func (s *Store) Save(meta RunMetadata, samples []flight.Sample) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time", "x", "y", "z", "vx", "vy", "vz"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, sample := range samples {
		row := make([]string, 0, 7)
		row = append(row, strconv.FormatFloat(sample.T, 'f', 6, 64))
		for _, v := range sample.Pos {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		for _, v := range sample.Vel {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSamples(runID string) ([]flight.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	samples := make([]flight.Sample, 0, len(records))
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 7 {
			continue
		}

		vals := make([]float64, 7)
		bad := false
		for j := 0; j < 7; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				bad = true
				break
			}
			vals[j] = v
		}
		if bad {
			continue
		}

		samples = append(samples, flight.Sample{
			T:   vals[0],
			Pos: [3]float64{vals[1], vals[2], vals[3]},
			Vel: [3]float64{vals[4], vals[5], vals[6]},
		})
	}

	return samples, nil
}
