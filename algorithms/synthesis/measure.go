package synthesis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WaveformStats summarizes a synthesized waveform for display readouts
type WaveformStats struct {
	Mean float64 `json:"mean"`
	RMS  float64 `json:"rms"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Peak float64 `json:"peak"` // max absolute amplitude
}

// Measure computes summary statistics over a waveform. An empty waveform
// yields zero stats.
func Measure(samples []Sample) WaveformStats {
	if len(samples) == 0 {
		return WaveformStats{}
	}

	amps := Amplitudes(samples)
	minAmp := floats.Min(amps)
	maxAmp := floats.Max(amps)

	return WaveformStats{
		Mean: stat.Mean(amps, nil),
		RMS:  floats.Norm(amps, 2) / math.Sqrt(float64(len(amps))),
		Min:  minAmp,
		Max:  maxAmp,
		Peak: math.Max(math.Abs(minAmp), math.Abs(maxAmp)),
	}
}
