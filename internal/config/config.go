package config

import (
	"fmt"

	"github.com/Veraticus/fancy-numbers/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds every setting fancy reads from file, env or flags.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Output     OutputConfig     `mapstructure:"output"`
	Categorize CategorizeConfig `mapstructure:"categorize"`
	Cache      CacheConfig      `mapstructure:"cache"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=console json"`
}

// OutputConfig selects how commands render results.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=table json yaml"`
}

// CategorizeConfig tunes batch categorization.
type CategorizeConfig struct {
	Workers  int  `mapstructure:"workers" validate:"min=0,max=256"`
	Limit    int  `mapstructure:"limit" validate:"min=0"`
	Progress bool `mapstructure:"progress"`
}

// CacheConfig sizes the classification memo. Zero disables it.
type CacheConfig struct {
	Size int `mapstructure:"size" validate:"min=0,max=1000000"`
}

var validate = validator.New()

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("output.format", "table")
	v.SetDefault("categorize.workers", 0)
	v.SetDefault("categorize.limit", 20)
	v.SetDefault("categorize.progress", false)
	v.SetDefault("cache.size", 0)
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	return &cfg, nil
}
