package spectral_test

import (
	"fmt"
	"math"

	"github.com/spitfire05/go-waves/algorithms/spectral"
)

func ExampleAnalyzer_Analyze() {
	samples := make([]float64, 100)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 100 * float64(i) / 1000)
	}

	analyzer := spectral.NewAnalyzer(nil)
	bins, err := analyzer.Analyze(samples, 1000)
	if err != nil {
		fmt.Println("analyze:", err)
		return
	}

	peak, _ := spectral.PeakBin(bins)
	fmt.Printf("bins: %d\n", len(bins))
	fmt.Printf("peak: %g Hz magnitude %.2f\n", peak.Frequency, peak.Magnitude)
	// Output:
	// bins: 40
	// peak: 100 Hz magnitude 0.50
}
