package waves

import "errors"

// Sentinel errors returned by session mutations. Callers match them with
// errors.Is; the returned errors wrap them with the offending value.
var (
	// ErrUnknownComponent reports an id that is not in the component list.
	ErrUnknownComponent = errors.New("waves: unknown component id")
	// ErrUnknownKind reports an AddComponent call with an undefined kind.
	ErrUnknownKind = errors.New("waves: unknown component kind")
	// ErrInvalidFrequency reports a frequency that is not positive.
	ErrInvalidFrequency = errors.New("waves: frequency must be positive")
	// ErrInvalidAmplitude reports a negative amplitude.
	ErrInvalidAmplitude = errors.New("waves: amplitude must be non-negative")
	// ErrInvalidPhase reports a phase that is not a finite number.
	ErrInvalidPhase = errors.New("waves: phase must be finite")
	// ErrInvalidSampleRate reports a sample rate that is not positive.
	ErrInvalidSampleRate = errors.New("waves: sample rate must be positive")
	// ErrInvalidSampleCount reports a sample count that is not positive.
	ErrInvalidSampleCount = errors.New("waves: sample count must be positive")
)
