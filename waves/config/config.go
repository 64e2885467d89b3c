// Package config defines session configuration for the waves engine.
package config

import "fmt"

// SessionConfig holds the global sampling parameters of a session
type SessionConfig struct {
	// SampleRate is the synthesis sample rate in Hz. Must be positive.
	SampleRate float64 `json:"sample_rate"`
	// SampleCount is the number of samples synthesized and transformed per
	// recomputation. Must be positive.
	SampleCount int `json:"sample_count"`
}

// DefaultSessionConfig returns the parameters a fresh session starts with
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		SampleRate:  3000,
		SampleCount: 1000,
	}
}

// Validate checks the configuration for values the engine must reject
func (c *SessionConfig) Validate() error {
	if !(c.SampleRate > 0) {
		return fmt.Errorf("sample rate must be positive, got %v", c.SampleRate)
	}
	if c.SampleCount <= 0 {
		return fmt.Errorf("sample count must be positive, got %d", c.SampleCount)
	}
	return nil
}
