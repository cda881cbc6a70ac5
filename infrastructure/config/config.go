// Package config provides configuration management and dependency injection for the Stride notifier.
// It handles loading configuration from files and environment variables, and sets up the DI container.
package config

import (
	"net/url"
	"strings"
	"time"

	domainerrors "seyren-stride/domain/errors"
	"seyren-stride/infrastructure/notifier"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "SEYREN"

// Config represents the application configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// BaseURL is the Seyren web UI used for check back-links.
	BaseURL string `mapstructure:"base_url"`

	Stride StrideConfig `mapstructure:"stride"`
	Server ServerConfig `mapstructure:"server"`

	// Timeouts and limits.
	HTTPTimeout    time.Duration `mapstructure:"http_timeout"`
	MaxConcurrency int           `mapstructure:"max_concurrency"`
}

// StrideConfig represents the Stride API configuration.
type StrideConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	AuthURL              string `mapstructure:"auth_url"`
	Audience             string `mapstructure:"audience"`
	ClientID             string `mapstructure:"client_id"`
	ClientSecret         string `mapstructure:"client_secret"`
	CloudID              string `mapstructure:"cloud_id"`
	Notify               bool   `mapstructure:"notify"`
	ResolveConversations bool   `mapstructure:"resolve_conversations"`
}

// ServerConfig represents the HTTP routing adapter configuration.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// LoadConfig loads configuration from file and environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("http_timeout", "10s")
	v.SetDefault("max_concurrency", notifier.DefaultMaxConcurrency)
	v.SetDefault("stride.base_url", "https://api.atlassian.com")
	v.SetDefault("stride.auth_url", notifier.DefaultAuthURL)
	v.SetDefault("stride.audience", notifier.DefaultAudience)
	v.SetDefault("stride.client_id", "")
	v.SetDefault("stride.client_secret", "")
	v.SetDefault("stride.cloud_id", "")
	v.SetDefault("stride.notify", true)
	v.SetDefault("stride.resolve_conversations", false)
	v.SetDefault("server.addr", ":8081")

	// Set config file.
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/seyren-stride")
	}

	// Enable environment variables, SEYREN_STRIDE_CLIENT_ID style.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file.
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	// Validate configuration.
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &config, nil
}

// Validate validates the configuration. Credentials are checked separately
// by ValidateCredentials since commands such as version never use them.
func (c *Config) Validate() error {
	validationErr := &domainerrors.ValidationError{}

	if c.MaxConcurrency <= 0 {
		validationErr.AddFieldError("max_concurrency", "max_concurrency must be positive")
	}

	if c.HTTPTimeout <= 0 {
		validationErr.AddFieldError("http_timeout", "http_timeout must be positive")
	}

	for field, raw := range map[string]string{
		"base_url":        c.BaseURL,
		"stride.base_url": c.Stride.BaseURL,
		"stride.auth_url": c.Stride.AuthURL,
	} {
		if !isAbsoluteURL(raw) {
			validationErr.AddFieldError(field, "must be an absolute http(s) URL")
		}
	}

	if validationErr.HasErrors() {
		return validationErr
	}

	return nil
}

// ValidateCredentials checks the settings needed to talk to the Stride API.
func (c *Config) ValidateCredentials() error {
	validationErr := &domainerrors.ValidationError{}

	if c.Stride.ClientID == "" {
		validationErr.AddFieldError("stride.client_id", "stride.client_id is required")
	}
	if c.Stride.ClientSecret == "" {
		validationErr.AddFieldError("stride.client_secret", "stride.client_secret is required")
	}
	if c.Stride.ResolveConversations && c.Stride.CloudID == "" {
		validationErr.AddFieldError("stride.cloud_id", "stride.cloud_id is required to resolve conversations")
	}

	if validationErr.HasErrors() {
		return validationErr
	}

	return nil
}

// NotifierConfig maps the configuration onto the Stride channel settings.
func (c *Config) NotifierConfig() notifier.StrideConfig {
	return notifier.StrideConfig{
		BaseURL:              c.Stride.BaseURL,
		AuthURL:              c.Stride.AuthURL,
		Audience:             c.Stride.Audience,
		ClientID:             c.Stride.ClientID,
		ClientSecret:         c.Stride.ClientSecret,
		CloudID:              c.Stride.CloudID,
		PlatformBaseURL:      c.BaseURL,
		Notify:               c.Stride.Notify,
		ResolveConversations: c.Stride.ResolveConversations,
		MaxConcurrency:       c.MaxConcurrency,
	}
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
