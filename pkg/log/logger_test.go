package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	lg := New("test")
	require.NotNil(t, lg)

	// With and Named return independent loggers.
	child := lg.With("component", "keys").Named("sub")
	require.NotNil(t, child)
	assert.NotSame(t, lg, child)

	// Logging must not panic, including odd key/value arities.
	child.Debug("debug message", "key", "value")
	child.Info("info message")
	child.Warn("warn message", "count", 3)
	child.Error("error message", "danglingKey")
}

func TestContextRoundTrip(t *testing.T) {
	lg := New("ctx-test")
	ctx := WithContext(context.Background(), lg)

	got := FromContext(ctx)
	assert.Same(t, lg, got)

	// A bare context yields a usable default logger.
	fallback := FromContext(context.Background())
	require.NotNil(t, fallback)
	fallback.Debug("fallback logger works")
}
