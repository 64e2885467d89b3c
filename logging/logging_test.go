package logging_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spitfire05/go-waves/logging"
)

// TestLevel_String checks the level names used in log line prefixes.
func TestLevel_String(t *testing.T) {
	cases := []struct {
		level logging.Level
		want  string
	}{
		{logging.DebugLevel, "DEBUG"},
		{logging.InfoLevel, "INFO"},
		{logging.WarnLevel, "WARN"},
		{logging.ErrorLevel, "ERROR"},
		{logging.FatalLevel, "FATAL"},
		{logging.Level(99), "UNKNOWN"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.level.String())
	}
}

// TestDefaultLogger_LevelFiltering verifies messages below the configured
// level are suppressed and show up again after lowering it.
func TestDefaultLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := logging.NewDefaultLoggerWithWriters(&out, &errOut)

	logger.Debug("hidden")
	assert.Empty(t, out.String(), "debug is below the default info level")

	logger.Info("shown")
	assert.Contains(t, out.String(), "[INFO] shown")

	logger.SetLevel(logging.DebugLevel)
	logger.Debug("visible", logging.Fields{"n": 1})
	assert.Contains(t, out.String(), "[DEBUG] visible")
	assert.Contains(t, out.String(), "n:1")
}

// TestDefaultLogger_ErrorGoesToErrWriter checks errors land on the error
// writer with the wrapped cause appended.
func TestDefaultLogger_ErrorGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := logging.NewDefaultLoggerWithWriters(&out, &errOut)

	logger.Error(errors.New("boom"), "failed")
	assert.Contains(t, errOut.String(), "[ERROR] failed: boom")
	assert.Empty(t, out.String())
}

// TestDefaultLogger_WithFieldsAccumulates verifies derived loggers carry
// their preset fields on every line while the parent stays clean.
func TestDefaultLogger_WithFieldsAccumulates(t *testing.T) {
	var out, errOut bytes.Buffer
	base := logging.NewDefaultLoggerWithWriters(&out, &errOut)

	derived := base.WithFields(logging.Fields{"component": "session"})
	derived = derived.WithFields(logging.Fields{"id": 7})
	derived.Info("stacked")
	assert.Contains(t, out.String(), "component:session")
	assert.Contains(t, out.String(), "id:7")

	out.Reset()
	base.Info("plain")
	assert.NotContains(t, out.String(), "component:session", "preset fields must not leak back to the parent")
}

// TestWithContext_ExtractsFields checks fields stored on a context reappear
// on loggers derived from it.
func TestWithContext_ExtractsFields(t *testing.T) {
	fields := logging.Fields{"request_id": "r1"}
	ctx := logging.ContextWithFields(context.Background(), fields)

	got, ok := logging.FieldsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "r1", got["request_id"])

	_, ok = logging.FieldsFromContext(context.Background())
	assert.False(t, ok, "a bare context carries no fields")

	var out, errOut bytes.Buffer
	logger := logging.NewDefaultLoggerWithWriters(&out, &errOut).WithContext(ctx)
	logger.Info("handling")
	assert.Contains(t, out.String(), "request_id:r1")
}

// TestNoOpLogger_DoesNothing confirms the silent logger swallows every call
// and derivation returns itself.
func TestNoOpLogger_DoesNothing(t *testing.T) {
	noop := &logging.NoOpLogger{}

	noop.Debug("a")
	noop.Info("b", logging.Fields{"k": "v"})
	noop.Warn("c")
	noop.Error(errors.New("x"), "d")
	noop.Fatal(errors.New("y"), "e")
	noop.SetLevel(logging.DebugLevel)

	assert.Same(t, noop, noop.WithFields(logging.Fields{"k": "v"}))
	assert.Same(t, noop, noop.WithContext(context.Background()))
}

// TestSetGlobalLogger verifies the package-level functions route through the
// installed global logger and that nil installs the silent one.
func TestSetGlobalLogger(t *testing.T) {
	old := logging.GetGlobalLogger()
	defer logging.SetGlobalLogger(old)

	var out, errOut bytes.Buffer
	logging.SetGlobalLogger(logging.NewDefaultLoggerWithWriters(&out, &errOut))

	logging.Info("through global")
	assert.Contains(t, out.String(), "[INFO] through global")

	logging.SetGlobalLogger(nil)
	assert.IsType(t, &logging.NoOpLogger{}, logging.GetGlobalLogger())
}
