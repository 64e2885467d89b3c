package synthesis_test

import (
	"fmt"

	"github.com/spitfire05/go-waves/algorithms/synthesis"
)

// ExampleSynthesize renders one period of a square wave and prints samples
// on both sides of the half-period flip.
func ExampleSynthesize() {
	comps := []synthesis.Component{
		{Kind: synthesis.KindSquare, Frequency: 50, Amplitude: 2},
	}
	wf := synthesis.Synthesize(comps, 1000, 20)

	fmt.Printf("samples: %d\n", len(wf))
	fmt.Printf("first: %+.1f at t=%.3fs\n", wf[0].Amplitude, wf[0].Time)
	fmt.Printf("after flip: %+.1f at t=%.3fs\n", wf[10].Amplitude, wf[10].Time)
	// Output:
	// samples: 20
	// first: +2.0 at t=0.000s
	// after flip: -2.0 at t=0.010s
}

// ExampleComponent_Sample evaluates a sawtooth ramp at period landmarks.
func ExampleComponent_Sample() {
	saw := synthesis.Component{Kind: synthesis.KindSawtooth, Frequency: 1, Amplitude: 1}

	fmt.Printf("start: %.1f\n", saw.Sample(0))
	fmt.Printf("middle: %.1f\n", saw.Sample(0.5))
	fmt.Printf("wrapped: %.1f\n", saw.Sample(1))
	// Output:
	// start: -1.0
	// middle: 0.0
	// wrapped: -1.0
}
