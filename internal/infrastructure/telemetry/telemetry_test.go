package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techoutlet/storefront-api/internal/infrastructure/config"
)

func TestNewNoOpTelemetry(t *testing.T) {
	cfg := &config.OTLPConfig{
		ServiceName: "storefront-api-test",
		Environment: "test",
	}

	telem := NewNoOpTelemetry(cfg)

	require.NotNil(t, telem.TracerProvider)
	require.NotNil(t, telem.MeterProvider)
	require.NotNil(t, telem.Logger)

	// Providers must be usable without a collector.
	_, span := telem.TracerProvider.Tracer("test").Start(context.Background(), "op")
	span.End()
	counter, err := telem.MeterProvider.Meter("test").Int64Counter("ops")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	assert.NoError(t, telem.Shutdown(context.Background()))
}

func TestNewTelemetryDisabled(t *testing.T) {
	cfg := &config.OTLPConfig{
		ServiceName: "storefront-api-test",
		Environment: "test",
		Disabled:    true,
	}

	telem, err := NewTelemetry(cfg)
	require.NoError(t, err)
	require.NotNil(t, telem)
	assert.NoError(t, telem.Shutdown(context.Background()))
}
