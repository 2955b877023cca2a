// Package config loads anyonfuse CLI settings from viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/anyonfuse/model"
)

// EnvPrefix is the prefix of environment overrides, e.g. ANYONFUSE_MODEL.
const EnvPrefix = "ANYONFUSE"

// ErrInvalid indicates a setting outside its allowed values.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds all runtime configuration for the CLI.
// Values are populated from .anyonfuse.yaml, ANYONFUSE_* env vars and flags.
type Config struct {
	Model             string `mapstructure:"model"`
	StrictTotalCharge bool   `mapstructure:"strict_total_charge"`
	LogLevel          string `mapstructure:"log_level"`
	LogFormat         string `mapstructure:"log_format" validate:"oneof=auto text json"`
	EnumerateLimit    int    `mapstructure:"enumerate_limit" validate:"gte=0"`
}

var validate = validator.New()

// Defaults registers the built-in default of every key on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("model", "ising")
	v.SetDefault("strict_total_charge", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "auto")
	v.SetDefault("enumerate_limit", 64)
}

// New returns a viper instance with defaults and ANYONFUSE_* env overrides.
func New() *viper.Viper {
	v := viper.New()
	Defaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	return v
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	if _, err := c.Category(); err != nil {
		return fmt.Errorf("%w: model %q", ErrInvalid, c.Model)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	c.LogFormat = strings.ToLower(c.LogFormat)
	if err := validate.Struct(c); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			f := fields[0]
			return fmt.Errorf("%w: %s %v (%s %s)", ErrInvalid, f.Field(), f.Value(), f.Tag(), f.Param())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Category parses Model.
func (c Config) Category() (model.Category, error) { return model.ParseCategory(c.Model) }

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return lvl, nil
}
