package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/moodmix/config.yaml",
}

// envMappings maps environment variable names to koanf paths.
var envMappings = map[string]string{
	"spotify_client_id":        "spotify.client_id",
	"spotify_client_secret":    "spotify.client_secret",
	"spotify_api_url":          "spotify.api_url",
	"spotify_token_url":        "spotify.token_url",
	"spotify_timeout":          "spotify.timeout",
	"spotify_rate_limit":       "spotify.rate_limit",
	"spotify_breaker_failures": "spotify.breaker_failures",
	"spotify_breaker_timeout":  "spotify.breaker_timeout",
	"emotion_url":              "emotion.url",
	"emotion_timeout":          "emotion.timeout",
	"http_port":                "server.port",
	"http_read_header_timeout": "server.read_header_timeout",
	"http_shutdown_timeout":    "server.shutdown_timeout",
	"cors_origins":             "server.cors_origins",
	"rate_limit_requests":      "server.rate_limit_requests",
	"rate_limit_window":        "server.rate_limit_window",
	"max_upload_bytes":         "server.max_upload_bytes",
	"pool_size":                "pipeline.pool_size",
	"shuffle_seed":             "pipeline.shuffle_seed",
	"warmup_enabled":           "warmup.enabled",
	"warmup_workers":           "warmup.workers",
	"warmup_queue_size":        "warmup.queue_size",
	"log_level":                "logging.level",
	"log_format":               "logging.format",
}

// sliceConfigPaths are split on commas when they arrive as strings from the environment.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// Load builds the configuration from defaults, an optional YAML file and the environment.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envTransformFunc returns "" for variables that are not ours so koanf skips them.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		raw, ok := k.Get(path).(string)
		if !ok || raw == "" {
			continue
		}
		parts := strings.Split(raw, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("config: set %s: %w", path, err)
		}
	}
	return nil
}
