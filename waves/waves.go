// Package waves exposes the signal composition engine. A Session owns an
// ordered set of named periodic components plus the global sampling
// parameters, synthesizes their composite waveform, derives its magnitude
// spectrum, and caches the pair until a parameter changes.
package waves

import (
	"fmt"
	"math"

	"github.com/spitfire05/go-waves/algorithms/spectral"
	"github.com/spitfire05/go-waves/algorithms/synthesis"
	"github.com/spitfire05/go-waves/logging"
	"github.com/spitfire05/go-waves/waves/config"
)

// Component defaults applied by AddComponent
const (
	DefaultFrequency = 100.0
	DefaultAmplitude = 1.0
	DefaultPhase     = 0.0
)

// ComponentID identifies a component within its session. IDs are never
// reused after removal.
type ComponentID int64

// PlotData is the derived pair a session hands to its collaborator for
// plotting. It has no independent state: it is a pure function of the
// component set, sample rate, and sample count at computation time.
type PlotData struct {
	Waveform []synthesis.Sample `json:"waveform"`
	Spectrum []spectral.Bin     `json:"spectrum"`
}

// ComponentView is a read-only snapshot of one component list entry
type ComponentView struct {
	ID        ComponentID    `json:"id"`
	Kind      synthesis.Kind `json:"kind"`
	Label     string         `json:"label"`
	Enabled   bool           `json:"enabled"`
	Frequency float64        `json:"frequency"`
	Amplitude float64        `json:"amplitude"`
	Phase     float64        `json:"phase"`
}

// Marker is the spectrum overlay entry for one component: its label, its
// nominal frequency, and whether that frequency lies beyond what the
// truncated spectrum can display
type Marker struct {
	Label       string  `json:"label"`
	Frequency   float64 `json:"frequency"`
	AboveCutoff bool    `json:"above_cutoff"`
}

type componentEntry struct {
	id      ComponentID
	comp    synthesis.Component
	label   string
	enabled bool
}

// Session owns one component set and its derived results. Sessions are not
// goroutine-safe: they are built for a single render loop that mutates
// parameters and then asks for plot data. The transform planner is the only
// state shared between sessions.
type Session struct {
	sampleRate     float64
	sampleCount    int
	components     []componentEntry
	nextID         ComponentID
	cache          Cache[*PlotData]
	recomputations uint64
	analyzer       *spectral.Analyzer
	logger         logging.Logger
}

type sessionOptions struct {
	logger  logging.Logger
	planner *spectral.Planner
}

// Option adjusts session wiring at construction time
type Option func(*sessionOptions)

// WithLogger installs a session logger. Nil silences the session.
func WithLogger(logger logging.Logger) Option {
	return func(o *sessionOptions) {
		if logger == nil {
			logger = &logging.NoOpLogger{}
		}
		o.logger = logger
	}
}

// WithPlanner installs the transform planner the session's analyzer uses.
// Nil disables plan reuse: every recomputation plans its transform afresh.
func WithPlanner(planner *spectral.Planner) Option {
	return func(o *sessionOptions) {
		o.planner = planner
	}
}

// NewSession creates a session with the given sampling parameters. A nil
// config selects DefaultSessionConfig (3000 Hz, 1000 samples). The cache
// starts invalid, so the first GetPlotData computes.
func NewSession(cfg *config.SessionConfig, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultSessionConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid session config: %w", err)
	}

	options := sessionOptions{
		logger:  logging.WithFields(logging.Fields{"component": "waves_session"}),
		planner: spectral.SharedPlanner(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	s := &Session{
		sampleRate:  cfg.SampleRate,
		sampleCount: cfg.SampleCount,
		nextID:      1,
		analyzer: spectral.NewAnalyzer(&spectral.Config{
			CutoffDivisor: spectral.DefaultCutoffDivisor,
			Planner:       options.planner,
		}),
		logger: options.logger,
	}

	s.logger.Debug("Session created", logging.Fields{
		"sample_rate":  s.sampleRate,
		"sample_count": s.sampleCount,
	})

	return s, nil
}

// AddComponent appends a generator of the given kind with the standard
// defaults: 100 Hz, amplitude 1.0, phase 0.0, labeled after the kind,
// enabled. It invalidates the cache and returns the new component's id.
func (s *Session) AddComponent(kind synthesis.Kind) (ComponentID, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	id := s.nextID
	s.nextID++
	s.components = append(s.components, componentEntry{
		id: id,
		comp: synthesis.Component{
			Kind:      kind,
			Frequency: DefaultFrequency,
			Amplitude: DefaultAmplitude,
			Phase:     DefaultPhase,
		},
		label:   kind.String(),
		enabled: true,
	})
	s.cache.Invalidate()

	s.logger.Debug("Component added", logging.Fields{
		"component_id": id,
		"kind":         kind.String(),
	})

	return id, nil
}

// RemoveComponent drops the component with the given id. The entry is
// disabled and the cache invalidated before the entry is purged, so no read
// between the two can observe stale derived data.
func (s *Session) RemoveComponent(id ComponentID) error {
	for i := range s.components {
		if s.components[i].id != id {
			continue
		}
		s.components[i].enabled = false
		s.cache.Invalidate()
		s.components = append(s.components[:i], s.components[i+1:]...)

		s.logger.Debug("Component removed", logging.Fields{
			"component_id": id,
		})
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownComponent, id)
}

// find returns a pointer into the component list, or ErrUnknownComponent
func (s *Session) find(id ComponentID) (*componentEntry, error) {
	for i := range s.components {
		if s.components[i].id == id {
			return &s.components[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownComponent, id)
}

// SetEnabled includes or excludes a component from synthesis. A disabled
// component keeps its entry and marker but contributes nothing to the
// composite, exactly as if absent. Invalidates the cache.
func (s *Session) SetEnabled(id ComponentID, enabled bool) error {
	entry, err := s.find(id)
	if err != nil {
		return err
	}
	entry.enabled = enabled
	s.cache.Invalidate()
	return nil
}

// SetLabel renames a component. Labels feed markers and never influence
// synthesis, so the cache stays valid.
func (s *Session) SetLabel(id ComponentID, label string) error {
	entry, err := s.find(id)
	if err != nil {
		return err
	}
	entry.label = label
	return nil
}

// SetFrequency updates a component's frequency in Hz. Non-positive and NaN
// values are rejected, leaving state and cache untouched.
func (s *Session) SetFrequency(id ComponentID, hz float64) error {
	entry, err := s.find(id)
	if err != nil {
		return err
	}
	if !(hz > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidFrequency, hz)
	}
	entry.comp.Frequency = hz
	s.cache.Invalidate()
	return nil
}

// SetAmplitude updates a component's amplitude. Negative and NaN values are
// rejected, leaving state and cache untouched.
func (s *Session) SetAmplitude(id ComponentID, amplitude float64) error {
	entry, err := s.find(id)
	if err != nil {
		return err
	}
	if !(amplitude >= 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidAmplitude, amplitude)
	}
	entry.comp.Amplitude = amplitude
	s.cache.Invalidate()
	return nil
}

// SetPhase updates a component's phase offset, wrapping into [0, 1): 1.25
// becomes 0.25. Non-finite values are rejected, leaving state and cache
// untouched.
func (s *Session) SetPhase(id ComponentID, phase float64) error {
	entry, err := s.find(id)
	if err != nil {
		return err
	}
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidPhase, phase)
	}
	entry.comp.Phase = synthesis.WrapPhase(phase)
	s.cache.Invalidate()
	return nil
}

// SetSampleRate updates the global sample rate in Hz. Non-positive and NaN
// values are rejected, leaving state and cache untouched.
func (s *Session) SetSampleRate(hz float64) error {
	if !(hz > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSampleRate, hz)
	}
	s.sampleRate = hz
	s.cache.Invalidate()
	return nil
}

// SetSampleCount updates the number of samples synthesized per
// recomputation. Non-positive values are rejected, leaving state and cache
// untouched.
func (s *Session) SetSampleCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleCount, n)
	}
	s.sampleCount = n
	s.cache.Invalidate()
	return nil
}

// GetPlotData returns the derived waveform/spectrum pair, recomputing only
// when a mutation invalidated the cache since the last call. Repeated calls
// without an intervening mutation return the same *PlotData.
func (s *Session) GetPlotData() (*PlotData, error) {
	return s.cache.GetOrCompute(s.recompute)
}

func (s *Session) recompute() (*PlotData, error) {
	s.recomputations++

	logger := s.logger.WithFields(logging.Fields{
		"function":     "GetPlotData",
		"sample_rate":  s.sampleRate,
		"sample_count": s.sampleCount,
		"components":   len(s.components),
	})
	logger.Debug("Recomputing plot data")

	waveform := synthesis.Synthesize(s.enabledComponents(), s.sampleRate, s.sampleCount)
	spectrum, err := s.analyzer.Analyze(synthesis.Amplitudes(waveform), s.sampleRate)
	if err != nil {
		logger.Error(err, "Spectrum analysis failed")
		return nil, fmt.Errorf("analyze waveform: %w", err)
	}

	logger.Debug("Plot data recomputed", logging.Fields{
		"waveform_samples": len(waveform),
		"spectrum_bins":    len(spectrum),
	})

	return &PlotData{Waveform: waveform, Spectrum: spectrum}, nil
}

// enabledComponents projects the components that participate in synthesis,
// in display order
func (s *Session) enabledComponents() []synthesis.Component {
	comps := make([]synthesis.Component, 0, len(s.components))
	for _, entry := range s.components {
		if entry.enabled {
			comps = append(comps, entry.comp)
		}
	}
	return comps
}

// Components returns a snapshot of the component list in display order
func (s *Session) Components() []ComponentView {
	views := make([]ComponentView, len(s.components))
	for i, entry := range s.components {
		views[i] = ComponentView{
			ID:        entry.id,
			Kind:      entry.comp.Kind,
			Label:     entry.label,
			Enabled:   entry.enabled,
			Frequency: entry.comp.Frequency,
			Amplitude: entry.comp.Amplitude,
			Phase:     entry.comp.Phase,
		}
	}
	return views
}

// Markers returns one spectrum overlay marker per component, enabled or
// not, in display order. AboveCutoff flags components whose frequency the
// truncated spectrum cannot show.
func (s *Session) Markers() []Marker {
	cutoff := s.analyzer.CutoffFrequency(s.sampleRate)
	markers := make([]Marker, len(s.components))
	for i, entry := range s.components {
		markers[i] = Marker{
			Label:       entry.label,
			Frequency:   entry.comp.Frequency,
			AboveCutoff: entry.comp.Frequency > cutoff,
		}
	}
	return markers
}

// MeasureWaveform returns summary statistics of the current composite
// waveform, computing it first if the cache is invalid
func (s *Session) MeasureWaveform() (synthesis.WaveformStats, error) {
	pd, err := s.GetPlotData()
	if err != nil {
		return synthesis.WaveformStats{}, err
	}
	return synthesis.Measure(pd.Waveform), nil
}

// SampleRate returns the session sample rate in Hz
func (s *Session) SampleRate() float64 { return s.sampleRate }

// SampleCount returns the number of samples per recomputation
func (s *Session) SampleCount() int { return s.sampleCount }

// CacheValid reports whether the next GetPlotData will be served from cache
func (s *Session) CacheValid() bool { return s.cache.Valid() }

// Recomputations returns how many times the session has recomputed derived
// data. Reads with no mutation between them leave it unchanged.
func (s *Session) Recomputations() uint64 { return s.recomputations }
