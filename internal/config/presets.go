package config

import "sort"

var Presets = map[string]*Config{
	"lj": {
		Potential: &Node{Form: "lj"},
		Scan:      ScanConfig{Rmin: 0.9, Rmax: 3.0, Points: 200},
		Mode:      "value",
	},
	"lj-soft": {
		Potential: &Node{Form: "lj", Epsilon: 0.25, Sigma: 1.1},
		Scan:      ScanConfig{Rmin: 0.9, Rmax: 3.0, Points: 200},
		Mode:      "value",
	},
	"lj-tapered": {
		Potential: &Node{
			Op:    "mul",
			Left:  &Node{Form: "lj"},
			Right: &Node{Form: "taper", On: 2.0, Off: 2.5},
		},
		Scan: ScanConfig{Rmin: 0.9, Rmax: 2.6, Points: 200},
		Mode: "value",
	},
	"morse": {
		Potential: &Node{Form: "morse"},
		Scan:      ScanConfig{Rmin: 0.6, Rmax: 3.0, Points: 200},
		Mode:      "value",
	},
	"morse-lj": {
		Potential: &Node{
			Op:    "add",
			Left:  &Node{Form: "morse", Depth: 0.5},
			Right: &Node{Form: "lj", Epsilon: 0.5},
		},
		Scan: ScanConfig{Rmin: 0.9, Rmax: 3.0, Points: 200},
		Mode: "value",
	},
	"bondorder-tapered": {
		Potential: &Node{
			Op:    "mul",
			Left:  &Node{Form: "bondorder"},
			Right: &Node{Form: "taper", On: 2.2, Off: 2.8},
		},
		Scan: ScanConfig{Rmin: 0.5, Rmax: 2.9, Points: 200},
		Mode: "value",
	},
	"harmonic-well": {
		Potential: &Node{Form: "harmonic", K: 25.0, R0: 1.1},
		Scan:      ScanConfig{Rmin: 0.5, Rmax: 1.9, Points: 150},
		Mode:      "value",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
