// Package spectral derives band-limited magnitude spectra from sampled
// waveforms via a forward discrete Fourier transform.
package spectral

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/spitfire05/go-waves/logging"
)

// DefaultCutoffDivisor bounds the emitted spectrum to frequencies strictly
// below sampleRate/2.56. The margin is wider than Nyquist (2.0) so the bins
// nearest the folding frequency, which alias visibly, never reach the
// display. Changing it changes every emitted spectrum length.
const DefaultCutoffDivisor = 2.56

var (
	// ErrEmptyInput reports an analysis request over zero samples.
	ErrEmptyInput = errors.New("spectral: empty input")
	// ErrInvalidSampleRate reports a non-positive or NaN sample rate.
	ErrInvalidSampleRate = errors.New("spectral: sample rate must be positive")
)

// Bin is one frequency-indexed entry of a magnitude spectrum
type Bin struct {
	Frequency float64 `json:"frequency"` // Hz, bin center
	Magnitude float64 `json:"magnitude"` // |X[i]|/n, >= 0
}

// Config holds analyzer settings
type Config struct {
	// CutoffDivisor sets the truncation frequency sampleRate/CutoffDivisor.
	// Divisors below 2 would admit aliased mirror bins, so anything not
	// >= 2 falls back to DefaultCutoffDivisor.
	CutoffDivisor float64 `json:"cutoff_divisor"`
	// Planner supplies reusable transform plans. Nil means a fresh
	// transform per call, which is correct but slower when the sample
	// count repeats across calls.
	Planner *Planner `json:"-"`
}

// DefaultConfig returns the analyzer configuration sessions use: the
// standard cutoff and the process-wide shared planner.
func DefaultConfig() *Config {
	return &Config{
		CutoffDivisor: DefaultCutoffDivisor,
		Planner:       SharedPlanner(),
	}
}

// Analyzer computes normalized, frequency-labeled magnitude spectra
type Analyzer struct {
	config *Config
	logger logging.Logger
}

// NewAnalyzer creates a new analyzer. A nil config selects DefaultConfig.
func NewAnalyzer(config *Config) *Analyzer {
	var cfg Config
	if config != nil {
		cfg = *config
	} else {
		cfg = *DefaultConfig()
	}
	if !(cfg.CutoffDivisor >= 2) {
		cfg.CutoffDivisor = DefaultCutoffDivisor
	}

	return &Analyzer{
		config: &cfg,
		logger: logging.WithFields(logging.Fields{
			"component": "spectral_analyzer",
		}),
	}
}

// Analyze transforms samples into the magnitude spectrum prefix strictly
// below sampleRate/CutoffDivisor. Bin i carries frequency i*(sampleRate/n)
// and magnitude |X[i]|/n with n = len(samples); no window is applied. The
// emitted sequence starts at DC and stops at the first bin whose frequency
// meets the cutoff. An empty result is valid.
func (a *Analyzer) Analyze(samples []float64, sampleRate float64) ([]Bin, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	if !(sampleRate > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSampleRate, sampleRate)
	}

	n := len(samples)
	logger := a.logger.WithFields(logging.Fields{
		"function":    "Analyze",
		"samples":     n,
		"sample_rate": sampleRate,
	})
	logger.Debug("Computing spectrum")

	var coeffs []complex128
	if a.config.Planner != nil {
		coeffs = a.config.Planner.Coefficients(nil, samples)
	} else {
		coeffs = fft.FFTReal(samples)
	}

	fmax := sampleRate / a.config.CutoffDivisor
	resolution := sampleRate / float64(n)

	bins := make([]Bin, 0, min(len(coeffs), int(float64(n)/a.config.CutoffDivisor)+1))
	for i, c := range coeffs {
		frequency := float64(i) * resolution
		if frequency >= fmax {
			break
		}
		bins = append(bins, Bin{
			Frequency: frequency,
			Magnitude: cmplx.Abs(c) / float64(n),
		})
	}

	logger.Debug("Spectrum computation completed", logging.Fields{
		"bins":       len(bins),
		"resolution": resolution,
	})

	return bins, nil
}

// CutoffFrequency returns the exclusive upper bound of emitted bin
// frequencies for the given sample rate
func (a *Analyzer) CutoffFrequency(sampleRate float64) float64 {
	return sampleRate / a.config.CutoffDivisor
}

// PeakBin returns the bin with the greatest magnitude, for spectrum
// readouts and marker placement. The first of equal magnitudes wins.
// ok is false for an empty spectrum.
func PeakBin(bins []Bin) (peak Bin, ok bool) {
	if len(bins) == 0 {
		return Bin{}, false
	}
	peak = bins[0]
	for _, b := range bins[1:] {
		if b.Magnitude > peak.Magnitude {
			peak = b
		}
	}
	return peak, true
}
