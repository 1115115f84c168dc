package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ServerConfig represents the tab search server configuration.
type ServerConfig struct {
	Port            string         `yaml:"port"`              // Port to listen on
	LogLevel        string         `yaml:"log_level"`         // debug, info, warn, error
	LogFormat       string         `yaml:"log_format"`        // text or json
	MaxRequestBytes int64          `yaml:"max_request_bytes"` // Request body limit
	MetricsPath     string         `yaml:"metrics_path"`      // Prometheus scrape path
	Search          SearchSettings `yaml:"search"`
}

const (
	defaultPort            = "8080"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMaxRequestBytes = 10 << 20
	defaultMetricsPath     = "/metrics"
)

// DefaultServerConfig returns the configuration used when no file is given.
func DefaultServerConfig() *ServerConfig {
	cfg := &ServerConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields.
func (cfg *ServerConfig) ApplyDefaults() {
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaultLogFormat
	}
	if cfg.MaxRequestBytes == 0 {
		cfg.MaxRequestBytes = defaultMaxRequestBytes
	}
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = defaultMetricsPath
	}
	cfg.Search.ApplyDefaults()
}

// Validate returns every problem found in the configuration.
func (cfg *ServerConfig) Validate() []string {
	var problems []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port <= 0 || port > 65535 {
		problems = append(problems, "port must be a number between 1 and 65535")
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, "Invalid log_level '"+cfg.LogLevel+"'")
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "text", "json":
	default:
		problems = append(problems, "Invalid log_format '"+cfg.LogFormat+"' (must be 'text' or 'json')")
	}

	if cfg.MaxRequestBytes < 0 {
		problems = append(problems, "max_request_bytes cannot be negative")
	}

	if !strings.HasPrefix(cfg.MetricsPath, "/") {
		problems = append(problems, "metrics_path must start with '/'")
	}

	problems = append(problems, cfg.Search.Validate()...)
	return problems
}

// LoadServerConfig reads a YAML configuration file. A missing path returns the defaults.
func LoadServerConfig(path string) (*ServerConfig, error) {
	if path == "" {
		return DefaultServerConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultServerConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	return ParseServerConfig(data)
}

// ParseServerConfig decodes YAML configuration bytes and applies defaults.
func ParseServerConfig(data []byte) (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}
