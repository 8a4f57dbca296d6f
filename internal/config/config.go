// Package config loads service configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "archwize.yaml"

// Config holds all service settings.
type Config struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	Debug       bool     `yaml:"debug"`
	CORSOrigins []string `yaml:"cors_origins"`

	HuggingFace HuggingFaceConfig `yaml:"huggingface"`
	Redis       RedisConfig       `yaml:"redis"`
}

// HuggingFaceConfig configures the upstream text-generation call.
type HuggingFaceConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

// RedisConfig configures the optional response cache. An empty Addr disables
// caching entirely.
type RedisConfig struct {
	Addr     string   `yaml:"addr"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	TTL      Duration `yaml:"ttl"`
}

// Duration wraps time.Duration so YAML strings like "10m" decode directly.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Host:        "0.0.0.0",
		Port:        8000,
		CORSOrigins: []string{"*"},
		Redis:       RedisConfig{TTL: Duration(time.Hour)},
	}
}

// Load reads the YAML file at path (missing file is not an error) and applies
// environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No file is fine; env and defaults carry the config.
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("DEBUG"); v != "" {
		cfg.Debug = strings.EqualFold(v, "true")
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("HUGGINGFACE_API_TOKEN"); v != "" {
		cfg.HuggingFace.Token = v
	}
	if v := os.Getenv("HUGGINGFACE_API_URL"); v != "" {
		cfg.HuggingFace.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
}

// Addr joins host and port for net/http.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
