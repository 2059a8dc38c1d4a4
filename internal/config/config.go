// SPDX-License-Identifier: MIT

// Package config resolves the constellation CLI settings from built-in
// defaults, an optional .constellation.yaml/.toml file, CONSTELLATION_*
// environment variables and bound command-line flags, in increasing
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/constellation/centrality"
	"github.com/katalvlaran/constellation/health"
	"github.com/katalvlaran/constellation/network"
)

// EnvPrefix prefixes every environment override, e.g. CONSTELLATION_DATA_DIR.
const EnvPrefix = "CONSTELLATION"

// ErrInvalidConfig wraps validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the runtime configuration of one CLI invocation.
type Config struct {
	DataDir     string  `mapstructure:"data_dir" validate:"required"`
	Format      string  `mapstructure:"format" validate:"oneof=json toml table"`
	Top         int     `mapstructure:"top" validate:"gte=0"`
	StartYear   int     `mapstructure:"start_year" validate:"ltefield=CurrentYear"`
	CurrentYear int     `mapstructure:"current_year"`
	Seed        int64   `mapstructure:"seed"`
	SampleSize  int     `mapstructure:"sample_size" validate:"gte=1"`
	Damping     float64 `mapstructure:"damping"`
	Iterations  int     `mapstructure:"iterations"`
	Verbose     bool    `mapstructure:"verbose"`
}

// New returns a viper instance carrying the defaults, the env binding and
// the config-file search path. file, when set, replaces the search.
func New(file string) *viper.Viper {
	v := viper.New()

	v.SetDefault("data_dir", "data")
	v.SetDefault("format", "table")
	v.SetDefault("top", 10)
	v.SetDefault("start_year", network.DefaultStartYear)
	v.SetDefault("current_year", network.DefaultCurrentYear)
	v.SetDefault("seed", 0)
	v.SetDefault("sample_size", health.DefaultSampleSize)
	v.SetDefault("damping", centrality.DefaultDamping)
	v.SetDefault("iterations", centrality.DefaultIterations)
	v.SetDefault("verbose", false)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(".constellation")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if one exists, unmarshals v and validates the
// result. A missing file is not an error when no explicit file was given.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks cfg against its field rules.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, len(fieldErrs))
			for i, fe := range fieldErrs {
				msgs[i] = fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
