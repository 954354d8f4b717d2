package config

import "sort"

// Presets are named launch scenarios for the CLI. Velocities are m/s;
// 45 m/s is roughly a 100 mph exit velocity.
var Presets = map[string]*Config{
	"line-drive": {
		Dt: 0.01, MaxTime: 10.0, AirDensity: DefaultAirDensity, CrossArea: DefaultCrossArea,
		Surface: "grass",
		Launch: LaunchConfig{
			Z: 1.0, VY: 42.0, VZ: 11.0,
			SpinAxisX: 1.0, SpinRPM: 1200,
		},
	},
	"fly-ball": {
		Dt: 0.01, MaxTime: 12.0, AirDensity: DefaultAirDensity, CrossArea: DefaultCrossArea,
		Surface: "grass",
		Launch: LaunchConfig{
			Z: 1.0, VY: 36.0, VZ: 28.0,
			SpinAxisX: 1.0, SpinRPM: 2200,
		},
	},
	"popup": {
		Dt: 0.01, MaxTime: 12.0, AirDensity: DefaultAirDensity, CrossArea: DefaultCrossArea,
		Surface: "dirt",
		Launch: LaunchConfig{
			Z: 1.0, VY: 8.0, VZ: 33.0,
			SpinAxisX: 1.0, SpinRPM: 3000,
		},
	},
	"grounder": {
		Dt: 0.005, MaxTime: 4.0, AirDensity: DefaultAirDensity, CrossArea: DefaultCrossArea,
		Surface: "grass",
		Launch: LaunchConfig{
			Z: 0.8, VY: 35.0, VZ: -3.0,
			SpinAxisZ: 1.0, SpinRPM: 1500,
		},
	},
	"wind-blown": {
		Dt: 0.01, MaxTime: 12.0, AirDensity: DefaultAirDensity, CrossArea: DefaultCrossArea,
		Surface: "grass",
		Launch: LaunchConfig{
			Z: 1.0, VY: 34.0, VZ: 30.0,
			SpinAxisX: 1.0, SpinRPM: 2400,
		},
		Wind: WindConfig{Y: 8.0},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
