package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/rowjay/countdown-token-service/internal/constants"
	"github.com/spf13/viper"
)

type Config struct {
	Environment        string
	CORSAllowedOrigins []string
	Port               string
	BaseURL            string
	MaxTitleLength     int
	RateLimitRPS       float64
	RateLimitBurst     int
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	v.SetDefault("port", constants.DefaultPort)
	v.SetDefault("app_env", constants.DefaultEnvironment)
	v.SetDefault("cors_allowed_origins", []string{"*"})
	v.SetDefault("max_title_length", constants.DefaultMaxTitleLength)
	v.SetDefault("rate_limit_rps", constants.DefaultRateLimitRPS)
	v.SetDefault("rate_limit_burst", constants.DefaultRateLimitBurst)

	if err := v.ReadInConfig(); err != nil {
		log.Info().Err(err).Msg("Error reading config file, using defaults")
	}

	corsAllowedOrigins := v.GetStringSlice("cors_allowed_origins")
	if len(corsAllowedOrigins) == 0 {
		corsAllowedOrigins = []string{"*"}
	}

	cfg := &Config{
		Environment:        v.GetString("app_env"),
		CORSAllowedOrigins: corsAllowedOrigins,
		Port:               v.GetString("port"),
		BaseURL:            strings.TrimRight(v.GetString("base_url"), "/"),
		MaxTitleLength:     v.GetInt("max_title_length"),
		RateLimitRPS:       v.GetFloat64("rate_limit_rps"),
		RateLimitBurst:     v.GetInt("rate_limit_burst"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if !slices.Contains(constants.ValidEnvironments, c.Environment) {
		return fmt.Errorf("invalid environment %q (must be one of %s)", c.Environment, strings.Join(constants.ValidEnvironments, ", "))
	}
	if c.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	if c.MaxTitleLength <= 0 {
		return fmt.Errorf("max_title_length must be positive, got %d", c.MaxTitleLength)
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit settings cannot be negative")
	}
	if c.RateLimitEnabled() && c.RateLimitBurst < 1 {
		return fmt.Errorf("rate_limit_burst must be at least 1 when rate_limit_rps is set, got %d", c.RateLimitBurst)
	}
	for _, origin := range c.CORSAllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("cors origin %q must be \"*\" or start with http:// or https://", origin)
		}
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// RateLimitEnabled is false when rate_limit_rps is set to 0.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}
