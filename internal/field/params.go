package field

import (
	"fmt"
	"image/color"
	"math"
)

const (
	DefaultDensity         = 15000.0
	DefaultMaxSpeed        = 0.25
	DefaultConnectDistance = 120.0
	DefaultRadiusMin       = 1.5
	DefaultRadiusSpread    = 1.5
	DefaultPulseAmplitude  = 1.5
	DefaultPulsePeriod     = 700.0
	DefaultShimmerPeriod   = 1500.0
	DefaultShimmerSpatial  = 50.0
	DefaultEdgeAlpha       = 0.4
	DefaultNodeAlpha       = 0.4
	DefaultLineWidth       = 0.5
)

// Tint is the fixed RGB of every edge and node. Only alpha varies.
var Tint = color.NRGBA{R: 59, G: 130, B: 246, A: 255}

// Params tunes the simulation. Periods are millisecond divisors applied to
// elapsed time before it enters a sine.
type Params struct {
	Density         float64 `yaml:"density"`
	MaxSpeed        float64 `yaml:"max_speed"`
	ConnectDistance float64 `yaml:"connect_distance"`
	RadiusMin       float64 `yaml:"radius_min"`
	RadiusSpread    float64 `yaml:"radius_spread"`
	PulseAmplitude  float64 `yaml:"pulse_amplitude"`
	PulsePeriod     float64 `yaml:"pulse_period"`
	ShimmerPeriod   float64 `yaml:"shimmer_period"`
	ShimmerSpatial  float64 `yaml:"shimmer_spatial"`
	EdgeAlpha       float64 `yaml:"edge_alpha"`
	NodeAlpha       float64 `yaml:"node_alpha"`
	LineWidth       float64 `yaml:"line_width"`
	Shimmer         bool    `yaml:"shimmer"`
	Pulse           bool    `yaml:"pulse"`
}

// DefaultParams returns the enhanced variant: shimmering edges, pulsing nodes.
func DefaultParams() Params {
	return Params{
		Density:         DefaultDensity,
		MaxSpeed:        DefaultMaxSpeed,
		ConnectDistance: DefaultConnectDistance,
		RadiusMin:       DefaultRadiusMin,
		RadiusSpread:    DefaultRadiusSpread,
		PulseAmplitude:  DefaultPulseAmplitude,
		PulsePeriod:     DefaultPulsePeriod,
		ShimmerPeriod:   DefaultShimmerPeriod,
		ShimmerSpatial:  DefaultShimmerSpatial,
		EdgeAlpha:       DefaultEdgeAlpha,
		NodeAlpha:       DefaultNodeAlpha,
		LineWidth:       DefaultLineWidth,
		Shimmer:         true,
		Pulse:           true,
	}
}

// StaticParams returns the plain variant: linear edge fade, constant radius.
func StaticParams() Params {
	p := DefaultParams()
	p.Shimmer = false
	p.Pulse = false
	p.EdgeAlpha = 1
	return p
}

func (p Params) Validate() error {
	if !(p.Density > 0) || math.IsInf(p.Density, 0) {
		return fmt.Errorf("%w: density must be positive, got %v", ErrInvalidParams, p.Density)
	}
	if !(p.ConnectDistance > 0) {
		return fmt.Errorf("%w: connect distance must be positive, got %v", ErrInvalidParams, p.ConnectDistance)
	}
	if p.MaxSpeed < 0 {
		return fmt.Errorf("%w: max speed must not be negative, got %v", ErrInvalidParams, p.MaxSpeed)
	}
	if p.RadiusMin < 0 || p.RadiusSpread < 0 || p.PulseAmplitude < 0 {
		return fmt.Errorf("%w: radius terms must not be negative", ErrInvalidParams)
	}
	if p.Pulse && p.PulsePeriod == 0 {
		return fmt.Errorf("%w: pulse period must be non-zero", ErrInvalidParams)
	}
	if p.Shimmer && (p.ShimmerPeriod == 0 || p.ShimmerSpatial == 0) {
		return fmt.Errorf("%w: shimmer divisors must be non-zero", ErrInvalidParams)
	}
	return nil
}
