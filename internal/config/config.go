// Package config loads the moodmix service configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables (a .env file is loaded into the environment by main).
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root configuration for the API process.
type Config struct {
	Spotify  SpotifyConfig  `koanf:"spotify"`
	Emotion  EmotionConfig  `koanf:"emotion"`
	Server   ServerConfig   `koanf:"server"`
	Pipeline PipelineConfig `koanf:"pipeline"`
	Warmup   WarmupConfig   `koanf:"warmup"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// SpotifyConfig configures the catalog client.
type SpotifyConfig struct {
	ClientID        string        `koanf:"client_id" validate:"required"`
	ClientSecret    string        `koanf:"client_secret" validate:"required"`
	APIURL          string        `koanf:"api_url" validate:"required,url"`
	TokenURL        string        `koanf:"token_url" validate:"required,url"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0s"`
	RateLimit       float64       `koanf:"rate_limit" validate:"gt=0"`
	BreakerFailures uint32        `koanf:"breaker_failures" validate:"min=1"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout" validate:"gt=0s"`
}

// EmotionConfig configures the remote facial-emotion estimator.
// An empty URL disables the estimator and leaves only the colour heuristic.
type EmotionConfig struct {
	URL     string        `koanf:"url" validate:"omitempty,url"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0s"`
}

// ServerConfig configures the HTTP shell.
type ServerConfig struct {
	Port              int           `koanf:"port" validate:"min=1,max=65535"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout" validate:"gt=0s"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0s"`
	CORSOrigins       []string      `koanf:"cors_origins" validate:"min=1"`
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"min=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0s"`
	MaxUploadBytes    int64         `koanf:"max_upload_bytes" validate:"min=1024"`
}

// PipelineConfig tunes the analyze pipeline.
type PipelineConfig struct {
	PoolSize int `koanf:"pool_size" validate:"min=1"`
	// ShuffleSeed fixes the shuffle order when non-zero.
	ShuffleSeed int64 `koanf:"shuffle_seed"`
}

// WarmupConfig controls the background artist-ID warm-up.
type WarmupConfig struct {
	Enabled   bool `koanf:"enabled"`
	Workers   int  `koanf:"workers" validate:"min=1"`
	QueueSize int  `koanf:"queue_size" validate:"min=1"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

func defaultConfig() *Config {
	return &Config{
		Spotify: SpotifyConfig{
			APIURL:          "https://api.spotify.com/v1",
			TokenURL:        "https://accounts.spotify.com/api/token",
			Timeout:         25 * time.Second,
			RateLimit:       10,
			BreakerFailures: 5,
			BreakerTimeout:  30 * time.Second,
		},
		Emotion: EmotionConfig{
			URL:     "",
			Timeout: 20 * time.Second,
		},
		Server: ServerConfig{
			Port:              5050,
			ReadHeaderTimeout: 15 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 60,
			RateLimitWindow:   time.Minute,
			MaxUploadBytes:    10 << 20,
		},
		Pipeline: PipelineConfig{
			PoolSize: 80,
		},
		Warmup: WarmupConfig{
			Enabled:   false,
			Workers:   2,
			QueueSize: 256,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks struct constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
