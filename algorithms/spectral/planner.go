package spectral

import (
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Planner hands out forward real-input transform plans keyed by input
// length, building each length's plan once. Plans carry internal scratch
// and are not goroutine-safe, so the planner executes the transform while
// still holding its lock; concurrent callers serialize here.
type Planner struct {
	mu    sync.Mutex
	plans map[int]*fourier.FFT
}

// NewPlanner creates an empty planner
func NewPlanner() *Planner {
	return &Planner{plans: make(map[int]*fourier.FFT)}
}

// Coefficients computes the forward transform of seq, reusing the plan for
// len(seq) when one exists. dst is passed through to fourier.FFT; nil
// allocates. The result holds the len(seq)/2+1 non-redundant coefficients.
func (p *Planner) Coefficients(dst []complex128, seq []float64) []complex128 {
	p.mu.Lock()
	defer p.mu.Unlock()

	plan, ok := p.plans[len(seq)]
	if !ok {
		plan = fourier.NewFFT(len(seq))
		p.plans[len(seq)] = plan
	}
	return plan.Coefficients(dst, seq)
}

// PlanCount returns the number of distinct input lengths planned so far
func (p *Planner) PlanCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.plans)
}

var sharedPlanner = sync.OnceValue(NewPlanner)

// SharedPlanner returns the process-wide planner used by sessions that do
// not bring their own
func SharedPlanner() *Planner {
	return sharedPlanner()
}
