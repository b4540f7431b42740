package config

import "time"

// DefaultPort is the port the API listens on when nothing overrides it.
const DefaultPort = 3000

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".sampleapi.yml"

// DefaultAllowedOrigins are the CORS origins accepted when allow_all_origins is off.
var DefaultAllowedOrigins = []string{
	"http://localhost:*",
	"http://127.0.0.1:*",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Host:              "",
		Port:              DefaultPort,
		AllowAllOrigins:   true,
		AllowedOrigins:    append([]string(nil), DefaultAllowedOrigins...),
		RequestTimeout:    30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		LogLevel:          "info",
		LogFormat:         "text",
	}
}
