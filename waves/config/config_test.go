package config_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spitfire05/go-waves/waves/config"
)

// TestDefaultSessionConfig_Values checks the stock sampling parameters.
func TestDefaultSessionConfig_Values(t *testing.T) {
	cfg := config.DefaultSessionConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, 3000.0, cfg.SampleRate)
	assert.Equal(t, 1000, cfg.SampleCount)
	assert.NoError(t, cfg.Validate(), "defaults must validate")
}

// TestSessionConfig_Validate covers accepted and rejected sampling
// parameters.
func TestSessionConfig_Validate(t *testing.T) {
	valid := config.SessionConfig{SampleRate: 44100, SampleCount: 1024}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name    string
		cfg     config.SessionConfig
		wantMsg string
	}{
		{"zero rate", config.SessionConfig{SampleRate: 0, SampleCount: 100}, "sample rate"},
		{"negative rate", config.SessionConfig{SampleRate: -1, SampleCount: 100}, "sample rate"},
		{"NaN rate", config.SessionConfig{SampleRate: math.NaN(), SampleCount: 100}, "sample rate"},
		{"zero count", config.SessionConfig{SampleRate: 1000, SampleCount: 0}, "sample count"},
		{"negative count", config.SessionConfig{SampleRate: 1000, SampleCount: -1}, "sample count"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantMsg)
		})
	}
}
