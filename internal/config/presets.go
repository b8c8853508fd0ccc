package config

import (
	"sort"

	"github.com/san-kum/dbmsviz/internal/field"
)

// Presets are named field tunings layered over DefaultConfig.
var Presets = map[string]func(*field.Params){
	"reference": func(p *field.Params) {},
	"classic": func(p *field.Params) {
		*p = field.StaticParams()
	},
	"dense": func(p *field.Params) {
		p.Density = 8000
		p.ConnectDistance = 90
	},
	"sparse": func(p *field.Params) {
		p.Density = 30000
		p.ConnectDistance = 160
	},
	"calm": func(p *field.Params) {
		p.MaxSpeed = 0.1
		p.ShimmerPeriod = 3000
		p.PulsePeriod = 1400
	},
}

// GetPreset returns a fresh config with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(&cfg.Field)
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
