package synthesis

// Sample is one point of a synthesized waveform
type Sample struct {
	Time      float64 `json:"time"`      // seconds, index/sampleRate
	Amplitude float64 `json:"amplitude"` // composite amplitude at Time
}

// Synthesize renders n samples of the composite signal formed by summing the
// given components at the instants t_i = i/sampleRate. Components are summed
// in slice order; callers pass enabled components only, so exclusion happens
// before summation. An empty component list yields an all-zero waveform and
// a non-positive n yields an empty slice.
func Synthesize(components []Component, sampleRate float64, n int) []Sample {
	if n <= 0 {
		return []Sample{}
	}

	samples := make([]Sample, n)
	for i := range n {
		t := float64(i) / sampleRate
		sum := 0.0
		for _, c := range components {
			sum += c.Sample(t)
		}
		samples[i] = Sample{Time: t, Amplitude: sum}
	}
	return samples
}

// Amplitudes projects the amplitude column of a waveform, e.g. for handing
// to a spectral analyzer
func Amplitudes(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Amplitude
	}
	return out
}
