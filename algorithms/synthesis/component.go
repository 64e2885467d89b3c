// Package synthesis builds composite time-domain waveforms from parametric
// periodic components.
package synthesis

import "math"

// Kind identifies the waveform shape of a component
type Kind int

const (
	KindSine Kind = iota
	KindSquare
	KindSawtooth
)

// String returns the display name of the kind
func (k Kind) String() string {
	switch k {
	case KindSine:
		return "Sine"
	case KindSquare:
		return "Square"
	case KindSawtooth:
		return "Sawtooth"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the defined waveform kinds
func (k Kind) Valid() bool {
	switch k {
	case KindSine, KindSquare, KindSawtooth:
		return true
	default:
		return false
	}
}

// Component is a single periodic generator. Frequency is in Hz and must be
// positive, Amplitude must be non-negative, and Phase is a fractional offset
// into one period in [0, 1). Values are validated at the mutation boundary;
// Sample itself is total.
type Component struct {
	Kind      Kind    `json:"kind"`
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
	Phase     float64 `json:"phase"`
}

// Sample evaluates the component at time t in seconds. Unknown kinds
// contribute nothing.
func (c Component) Sample(t float64) float64 {
	x := c.Frequency*t + c.Phase
	switch c.Kind {
	case KindSine:
		return c.Amplitude * math.Sin(2*math.Pi*x)
	case KindSquare:
		// Sign of the underlying sine, taken from the period fraction so the
		// flip lands exactly on the half-period sample. math.Sin rounds
		// sin(pi) to +1.2e-16, which puts that sample on the wrong side.
		if frac(x) < 0.5 {
			return c.Amplitude
		}
		return -c.Amplitude
	case KindSawtooth:
		return c.Amplitude * (2*frac(x) - 1)
	default:
		return 0
	}
}

// WrapPhase folds a phase offset into [0, 1): 1.25 becomes 0.25 and -0.25
// becomes 0.75. Inputs a hair below an integer can round up to 1.0, which
// wraps to 0.
func WrapPhase(phase float64) float64 {
	f := frac(phase)
	if f >= 1 {
		return 0
	}
	return f
}

// frac returns the fractional part of x, negative inputs included
func frac(x float64) float64 {
	return x - math.Floor(x)
}
