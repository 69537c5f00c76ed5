// Package config provides centralized configuration management for the
// application. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import "time"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	AI       AIConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 2m,
	// long enough for a generation round trip)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"2m"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 2m)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"2m"`
}

// UploadConfig holds file upload settings.
type UploadConfig struct {
	// MaxFileSize is the maximum allowed file size in bytes (default: 10MB)
	MaxFileSize int64 `env:"UPLOAD_MAX_FILE_SIZE" default:"10485760"`

	// Dir is where uploaded files are stored (default: uploads)
	Dir string `env:"UPLOAD_DIR" default:"uploads"`
}

// AIConfig holds generation backend settings. Backend is an explicit mode,
// not inferred from the presence of an API key.
type AIConfig struct {
	// Backend selects the generation implementation: "openai" or "mock"
	// (default: mock, so the server runs without credentials)
	Backend string `env:"AI_BACKEND" default:"mock"`

	// Model is the completion model name (default: gpt-4o)
	Model string `env:"AI_MODEL" default:"gpt-4o"`

	// APIKey authenticates against the completion endpoint.
	// Required when Backend is "openai".
	APIKey string `env:"AI_API_KEY" envAlt:"OPENAI_API_KEY"`

	// BaseURL overrides the completion endpoint for OpenAI-compatible gateways.
	BaseURL string `env:"AI_BASE_URL"`

	// Temperature is the sampling temperature for completions (default 0.7,
	// stored as an int percentage because the loader has no float support)
	TemperaturePct int `env:"AI_TEMPERATURE_PCT" default:"70"`

	// Timeout is the maximum duration of one generation call (default: 2m)
	Timeout time.Duration `env:"AI_TIMEOUT" default:"2m"`

	// MaxConcurrent is the maximum number of parallel generations (default: 4)
	MaxConcurrent int `env:"AI_MAX_CONCURRENT" default:"4"`

	// MaxWait is how long to wait for a generation slot (default: 15s)
	MaxWait time.Duration `env:"AI_MAX_WAIT" default:"15s"`
}

// Temperature returns the sampling temperature as a float.
func (c *AIConfig) Temperature() float32 {
	return float32(c.TemperaturePct) / 100
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
