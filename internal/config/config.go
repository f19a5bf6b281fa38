package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Emission loop bounds. Each tick waits a uniform random duration in
	// [TickMin, TickMax] before emitting the next event.
	TickMin       time.Duration `env:"TICK_MIN" envDefault:"2s"`
	TickMax       time.Duration `env:"TICK_MAX" envDefault:"5s"`
	LiveDataRatio float64       `env:"LIVE_DATA_RATIO" envDefault:"0.6"`

	EnableCyberEvents bool `env:"ENABLE_CYBER_EVENTS" envDefault:"false"`

	USGSBaseURL      string        `env:"USGS_BASE_URL" envDefault:"https://earthquake.usgs.gov/fdsnws/event/1/query"`
	OpenMeteoBaseURL string        `env:"OPEN_METEO_BASE_URL" envDefault:"https://api.open-meteo.com/v1/forecast"`
	APITimeout       time.Duration `env:"API_TIMEOUT" envDefault:"10s"`

	// Optional Kafka export. Leaving the topic empty disables the sink.
	KafkaBrokers     []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaExportTopic string   `env:"KAFKA_EXPORT_TOPIC"`

	// WSURL is the upstream endpoint dialed by the feedwatch client.
	WSURL string `env:"WS_URL" envDefault:"ws://localhost:8080/ws"`
}

// KafkaExportEnabled reports whether events should also be published to Kafka.
func (c *Config) KafkaExportEnabled() bool {
	return c.KafkaExportTopic != ""
}

// Load reads configuration from environment variables, applying defaults
// where unset, and validates cross-field constraints.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.TickMin <= 0 {
		return nil, errors.New("TICK_MIN must be positive")
	}
	if cfg.TickMax < cfg.TickMin {
		return nil, errors.New("TICK_MAX must be >= TICK_MIN")
	}
	if cfg.LiveDataRatio < 0 || cfg.LiveDataRatio > 1 {
		return nil, errors.New("LIVE_DATA_RATIO must be between 0 and 1")
	}
	if cfg.APITimeout <= 0 {
		return nil, errors.New("API_TIMEOUT must be positive")
	}
	if cfg.KafkaExportTopic != "" && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_EXPORT_TOPIC is set but KAFKA_BROKERS is empty")
	}

	return cfg, nil
}
