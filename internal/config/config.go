// Package config resolves runtime settings from TEXIDOR_* environment
// variables and command-line flags. No config file is read.
package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// TEXIDOR_PROMPT_MAX_ATTEMPTS.
const EnvPrefix = "TEXIDOR"

// Config root configuration
type Config struct {
	Prompt PromptConfig `mapstructure:"prompt"`
	Files  FilesConfig  `mapstructure:"files"`
	Log    LogConfig    `mapstructure:"log"`
}

// PromptConfig prompt loop settings
type PromptConfig struct {
	// MaxAttempts bounds each prompt; 0 prompts until a valid answer.
	MaxAttempts int `mapstructure:"max_attempts"`
}

// FilesConfig file resolver settings
type FilesConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig debug logging settings
type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// DefaultConfig returns config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Prompt: PromptConfig{MaxAttempts: 0},
		Files:  FilesConfig{Dir: ""},
		Log:    LogConfig{Debug: false},
	}
}

// Load reads settings into a Config. Flags should already be bound to v
// under their dotted keys; environment variables override defaults and
// explicitly set flags override both.
func Load(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about.
	v.SetDefault("prompt.max_attempts", cfg.Prompt.MaxAttempts)
	v.SetDefault("files.dir", cfg.Files.Dir)
	v.SetDefault("log.debug", cfg.Log.Debug)
	// TEXIDOR_DEBUG is accepted as a shorthand.
	_ = v.BindEnv("log.debug", EnvPrefix+"_LOG_DEBUG", EnvPrefix+"_DEBUG")

	if err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.MatchName = func(mapKey, fieldName string) bool {
			return normalizeKey(mapKey) == normalizeKey(fieldName)
		}
	}); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func normalizeKey(input string) string {
	input = strings.ReplaceAll(input, "_", "")
	input = strings.ReplaceAll(input, "-", "")
	return strings.ToLower(input)
}

// Validate checks that the configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if c.Prompt.MaxAttempts < 0 {
		return fmt.Errorf("prompt.max_attempts must not be negative, got %d", c.Prompt.MaxAttempts)
	}
	c.Files.Dir = strings.TrimSpace(c.Files.Dir)
	return nil
}
