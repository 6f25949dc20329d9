package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
//
// Environment variables (SPOTGATE_ prefix) override file values.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Spotify SpotifyConfig `toml:"spotify"`
	Limits  LimitsConfig  `toml:"limits"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host      string `toml:"host" env:"SPOTGATE_HOST"`
	Port      int    `toml:"port" env:"SPOTGATE_PORT"`
	PublicURL string `toml:"public_url" env:"SPOTGATE_PUBLIC_URL"`
}

// SpotifyConfig contains Spotify API endpoints and OAuth application credentials.
type SpotifyConfig struct {
	BaseURL       string `toml:"base_url" env:"SPOTGATE_SPOTIFY_BASE_URL"`
	TokenEndpoint string `toml:"token_endpoint" env:"SPOTGATE_SPOTIFY_TOKEN_ENDPOINT"`
	ClientID      string `toml:"client_id" env:"SPOTGATE_SPOTIFY_CLIENT_ID"`
	ClientSecret  string `toml:"client_secret" env:"SPOTGATE_SPOTIFY_CLIENT_SECRET"`
	RedirectURI   string `toml:"redirect_uri" env:"SPOTGATE_SPOTIFY_REDIRECT_URI"`
}

// LimitsConfig contains outbound rate limiting settings.
type LimitsConfig struct {
	RateLimit float64 `toml:"rate_limit" env:"SPOTGATE_RATE_LIMIT"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `toml:"level" env:"SPOTGATE_LOG_LEVEL"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path, then applies environment variable overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
//
// Environment variable overrides still apply.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	if err := env.Parse(&config); err != nil {
		panic(fmt.Sprintf("failed to parse environment overrides: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SaveConfig writes the configuration to a TOML file at the specified path.
func SaveConfig(path string, config *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// Addr returns the host:port address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
