package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/wb-go/wbf/zlog"
)

// DefaultPath is where the optional config file is looked up.
const DefaultPath = "./config/config.yml"

// envPrefix namespaces environment overrides, e.g. NR_RESIZER_PROMPT_ASSUME_YES.
const envPrefix = "NR_RESIZER"

// Config holds the main configuration for the application.
type Config struct {
	Resize Resize `mapstructure:"resize"`
	Source Source `mapstructure:"source"`
	Prompt Prompt `mapstructure:"prompt"`
}

// Resize holds the resize pipeline settings.
type Resize struct {
	Extensions  []string `mapstructure:"extensions"`  // Allowed file extensions, matched case-insensitively
	OutputDir   string   `mapstructure:"output_dir"`  // Directory resized images are written to
	MaxHeight   int      `mapstructure:"max_height"`  // Maximum output height in pixels
	Percentages []int    `mapstructure:"percentages"` // Target width percentages, in processing order
}

// Source holds settings for the directory scanned for images.
type Source struct {
	Dir string `mapstructure:"dir"` // Directory to scan, the working directory by default
}

// Prompt holds confirmation settings.
type Prompt struct {
	AssumeYes bool `mapstructure:"assume_yes"` // Skip the interactive y/n question
}

// setDefaults registers the built-in values used when no config file is present.
func setDefaults(v *viper.Viper) {
	v.SetDefault("resize.extensions", []string{".png", ".jpg", ".jpeg"})
	v.SetDefault("resize.output_dir", "dist")
	v.SetDefault("resize.max_height", 80)
	v.SetDefault("resize.percentages", []int{33, 50})
	v.SetDefault("source.dir", ".")
	v.SetDefault("prompt.assume_yes", false)
}

// Load reads the configuration from path on top of the built-in defaults.
//
// Both overlays are opt-in: the file at path and NR_RESIZER_* environment
// variables. A missing file is not an error, and with neither present the
// result is exactly the built-in defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad loads the configuration from the specified file path.
// It panics if the configuration cannot be read, unmarshaled or validated.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to load config")
	}

	return cfg
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if len(c.Resize.Extensions) == 0 {
		return errors.New("resize.extensions must not be empty")
	}
	for _, ext := range c.Resize.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("invalid extension %q (expected a leading dot, e.g. .png)", ext)
		}
	}

	if c.Resize.OutputDir == "" {
		return errors.New("resize.output_dir must not be empty")
	}
	if c.Resize.MaxHeight < 1 {
		return fmt.Errorf("resize.max_height must be positive (got %d)", c.Resize.MaxHeight)
	}

	if len(c.Resize.Percentages) == 0 {
		return errors.New("resize.percentages must not be empty")
	}
	seen := make(map[int]bool, len(c.Resize.Percentages))
	for _, p := range c.Resize.Percentages {
		// Below 7% the candidate width 600*p/100-40 is not positive.
		if p < 7 {
			return fmt.Errorf("percentage %d is too small (minimum 7)", p)
		}
		if seen[p] {
			return fmt.Errorf("duplicate percentage %d", p)
		}
		seen[p] = true
	}

	if c.Source.Dir == "" {
		c.Source.Dir = "."
	}

	return nil
}
