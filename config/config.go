package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	Port           string        `envconfig:"PORT" default:"3000"`
	GeminiAPIKey   string        `envconfig:"GEMINI_API_KEY"`
	OrdersAPIURL   string        `envconfig:"ORDERS_API_URL" default:"https://sandbox.mkonnekt.net/ch-portal/api/v1/orders/recent"`
	OrdersCacheTTL time.Duration `envconfig:"ORDERS_CACHE_TTL" default:"60s"`
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load populates AppConfig from environment variables.
func Load() error {
	return envconfig.Process("", &AppConfig)
}
