package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "storefront-api", cfg.OTLP.ServiceName)
	assert.False(t, cfg.OTLP.Disabled)
	assert.Equal(t, 1500*time.Millisecond, cfg.Checkout.ProcessingDelay)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OTEL_SDK_DISABLED", "true")
	t.Setenv("CHECKOUT_PROCESSING_DELAY", "250ms")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.OTLP.Disabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Checkout.ProcessingDelay)
}

func TestGetBoolEnvInvalidValue(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "definitely")

	cfg := LoadConfig()

	assert.False(t, cfg.OTLP.Disabled)
}
