package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	OTLP     OTLPConfig
	Store    StoreConfig
	Checkout CheckoutConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type OTLPConfig struct {
	Endpoint    string
	ServiceName string
	Environment string
	// Disabled switches the SDK to non-exporting providers for runs
	// without a collector.
	Disabled bool
}

type StoreConfig struct {
	// DataDir holds the JSON blobs for the cart and order history.
	DataDir string
	// CatalogPath points at the product catalog file; empty means the
	// embedded demo catalog.
	CatalogPath string
}

type CheckoutConfig struct {
	// ProcessingDelay simulates the payment provider round-trip.
	ProcessingDelay time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
		},
		OTLP: OTLPConfig{
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "storefront-api"),
			Environment: getEnv("OTEL_ENVIRONMENT", "development"),
			Disabled:    getBoolEnv("OTEL_SDK_DISABLED", false),
		},
		Store: StoreConfig{
			DataDir:     getEnv("DATA_DIR", "./data"),
			CatalogPath: getEnv("CATALOG_PATH", ""),
		},
		Checkout: CheckoutConfig{
			ProcessingDelay: getDurationEnv("CHECKOUT_PROCESSING_DELAY", 1500*time.Millisecond),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
