package config

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/san-kum/battedball/internal/groundball"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt != DefaultDt {
		t.Errorf("dt = %v, want %v", cfg.Dt, DefaultDt)
	}
	if cfg.MaxTime != DefaultMaxTime {
		t.Errorf("max time = %v, want %v", cfg.MaxTime, DefaultMaxTime)
	}
	if cfg.AirDensity != DefaultAirDensity {
		t.Errorf("air density = %v, want %v", cfg.AirDensity, DefaultAirDensity)
	}
	if cfg.CrossArea != DefaultCrossArea {
		t.Errorf("cross area = %v, want %v", cfg.CrossArea, DefaultCrossArea)
	}
	if cfg.Launch.Z <= 0 {
		t.Errorf("launch height = %v, want positive", cfg.Launch.Z)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dt = 0.005
	cfg.Surface = "dirt"
	cfg.Launch.VY = 44.5
	cfg.Launch.SpinRPM = 2600
	cfg.Wind.Y = 7.5

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip changed config:\ngot  %+v\nwant %+v", loaded, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("dt: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("dt: 0.002\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Dt != 0.002 {
		t.Errorf("dt = %v, want 0.002", cfg.Dt)
	}
	if cfg.MaxTime != DefaultMaxTime {
		t.Errorf("unset max time = %v, want default %v", cfg.MaxTime, DefaultMaxTime)
	}
}

func TestLaunchState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Launch = LaunchConfig{X: 1, Y: 2, Z: 3, VX: 4, VY: 5, VZ: 6}

	s := cfg.LaunchState()
	want := [6]float64{1, 2, 3, 4, 5, 6}
	if [6]float64(s) != want {
		t.Errorf("launch state = %v, want %v", s, want)
	}
}

func TestSurfaceType(t *testing.T) {
	tests := []struct {
		name    string
		surface string
		want    groundball.Surface
		wantErr bool
	}{
		{"grass", "grass", groundball.Grass, false},
		{"dirt", "dirt", groundball.Dirt, false},
		{"empty defaults to grass", "", groundball.Grass, false},
		{"unknown", "turf", groundball.Grass, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Surface = tt.surface
			got, err := cfg.SurfaceType()
			if tt.wantErr != (err != nil) {
				t.Fatalf("error = %v, wantErr = %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("surface = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("no presets registered")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("preset names not sorted: %v", names)
	}

	for _, name := range names {
		p := GetPreset(name)
		if p == nil {
			t.Fatalf("listed preset %q not retrievable", name)
		}
		if p.Dt <= 0 || p.MaxTime <= 0 {
			t.Errorf("preset %q has invalid timing: dt=%v max=%v", name, p.Dt, p.MaxTime)
		}
		if _, err := p.SurfaceType(); err != nil {
			t.Errorf("preset %q surface: %v", name, err)
		}
	}

	if GetPreset("no-such-preset") != nil {
		t.Error("unknown preset returned a config")
	}
}
