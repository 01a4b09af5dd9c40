// Package config loads salute-bridge configuration from an optional YAML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for the SaluteSpeech deployment.
const (
	DefaultScope        = "SALUTE_SPEECH_PERS"
	DefaultOAuthURL     = "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"
	DefaultEndpoint     = "smartspeech.sber.ru:443"
	DefaultAuthority    = "smartspeech.sber.ru"
	DefaultPort         = 3000
	DefaultLogLevel     = "info"
	DefaultOAuthTimeout = 10 * time.Second
)

// Config is the complete service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	OAuth   OAuthConfig   `yaml:"oauth"`
	Salute  SaluteConfig  `yaml:"salute"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the inbound HTTP/WebSocket listener.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// OAuthConfig configures the identity-provider client.
type OAuthConfig struct {
	ClientID     string        `yaml:"client_id"`
	ClientSecret string        `yaml:"client_secret"`
	Scope        string        `yaml:"scope"`
	URL          string        `yaml:"url"`
	Timeout      time.Duration `yaml:"timeout"`

	// CABundle extends the trust store for the OAuth host. The deployment's
	// regulatory chain is usually absent from system stores.
	CABundle string `yaml:"ca_bundle"`

	// InsecureSkipVerify disables TLS validation for the OAuth host only.
	// A deployment-risk flag, never a default.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify"`
}

// SaluteConfig configures the outbound gRPC connection to the provider.
type SaluteConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Authority string `yaml:"authority"`
	CABundle  string `yaml:"ca_bundle"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads the YAML file at path (if it exists), applies environment
// overrides on top, fills defaults, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Env-only deployments are fine.
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a configuration from environment variables only.
func FromEnv() (*Config, error) {
	return Load("")
}

func (c *Config) applyEnv() {
	setString(&c.OAuth.ClientID, "SALUTE_CLIENT_ID")
	setString(&c.OAuth.ClientSecret, "SALUTE_CLIENT_SECRET")
	setString(&c.OAuth.Scope, "SALUTE_SCOPE")
	setString(&c.OAuth.URL, "SALUTE_OAUTH_URL")
	setString(&c.OAuth.CABundle, "SALUTE_OAUTH_CA_BUNDLE")
	setBool(&c.OAuth.InsecureSkipVerify, "SALUTE_OAUTH_INSECURE")
	setString(&c.Salute.Endpoint, "SALUTE_ENDPOINT")
	setString(&c.Salute.Authority, "SALUTE_AUTHORITY")
	setString(&c.Salute.CABundle, "SALUTE_CA_BUNDLE")
	setString(&c.Logging.Level, "LOG_LEVEL")
	setInt(&c.Server.Port, "PORT")
}

func (c *Config) applyDefaults() {
	if c.OAuth.Scope == "" {
		c.OAuth.Scope = DefaultScope
	}
	if c.OAuth.URL == "" {
		c.OAuth.URL = DefaultOAuthURL
	}
	if c.OAuth.Timeout <= 0 {
		c.OAuth.Timeout = DefaultOAuthTimeout
	}
	if c.Salute.Endpoint == "" {
		c.Salute.Endpoint = DefaultEndpoint
	}
	if c.Salute.Authority == "" {
		c.Salute.Authority = DefaultAuthority
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

// Validate checks that required configuration is present and consistent.
func (c *Config) Validate() error {
	if c.OAuth.ClientID == "" {
		return fmt.Errorf("config: SALUTE_CLIENT_ID is required")
	}
	if c.OAuth.ClientSecret == "" {
		return fmt.Errorf("config: SALUTE_CLIENT_SECRET is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Server.Port)
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
