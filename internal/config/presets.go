package config

var Presets = map[string]map[string]*Config{
	"sine": {
		"near": {
			Problem: "sine", Strategy: "inverse", Tolerance: 1e-12, MaxIter: 100,
			InitGuess: []float64{0.5},
		},
		"far": {
			Problem: "sine", Strategy: "inverse", Tolerance: 1e-12, MaxIter: 1000,
			InitGuess: []float64{1.5},
		},
	},
	"coupled2": {
		"default": {
			Problem: "coupled2", Strategy: "inverse", Tolerance: 1e-10, MaxIter: 1000,
			InitGuess: []float64{1, 1},
		},
		"lstsq": {
			Problem: "coupled2", Strategy: "lstsq", Tolerance: 1e-10, MaxIter: 1000,
			InitGuess: []float64{1, 1},
		},
		"compiled": {
			Problem: "coupled2", Strategy: "inverse", Tolerance: 1e-10, MaxIter: 1000,
			Compiled: true, InitGuess: []float64{1, 1},
		},
	},
	"linear2": {
		"default": {
			Problem: "linear2", Strategy: "inverse", Tolerance: 1e-10, MaxIter: 10,
			InitGuess: []float64{0, 0},
		},
	},
	"rosenbrock": {
		"valley": {
			Problem: "rosenbrock", Strategy: "lstsq", Tolerance: 1e-10, MaxIter: 1000,
			InitGuess: []float64{1.2, 1.2},
		},
	},
}

func GetPreset(problem, preset string) *Config {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	cfg, ok := problemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(problem string) []string {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(problemPresets))
	for name := range problemPresets {
		names = append(names, name)
	}
	return names
}
