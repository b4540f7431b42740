package config

import "time"

// Config is the top-level sampleapi configuration, corresponding to .sampleapi.yml.
type Config struct {
	Host              string        `yaml:"host" koanf:"host"`
	Port              int           `yaml:"port" koanf:"port"`
	AllowAllOrigins   bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	AllowedOrigins    []string      `yaml:"allowed_origins" koanf:"allowed_origins"`
	RequestTimeout    time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout" koanf:"write_timeout"`
	IdleTimeout       time.Duration `yaml:"idle_timeout" koanf:"idle_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
	LogLevel          string        `yaml:"log_level" koanf:"log_level"`
	LogFormat         string        `yaml:"log_format" koanf:"log_format"`
}
