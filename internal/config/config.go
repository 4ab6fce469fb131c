// Package config loads palettesweep settings from defaults, an optional .env
// file and PALETTESWEEP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"

	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/params"
	"github.com/jmylchreest/palettesweep/internal/picker"
	"github.com/jmylchreest/palettesweep/internal/sweep"
)

// Environment keys.
const (
	EnvColour      = "PALETTESWEEP_COLOUR"
	EnvModel       = "PALETTESWEEP_MODEL"
	EnvVary        = "PALETTESWEEP_VARY"
	EnvCount       = "PALETTESWEEP_COUNT"
	EnvFormat      = "PALETTESWEEP_FORMAT"
	EnvLogLevel    = "PALETTESWEEP_LOG_LEVEL"
	EnvTemplateDir = "PALETTESWEEP_TEMPLATE_DIR"
	EnvDebounce    = "PALETTESWEEP_DEBOUNCE"
)

// DefaultEnvFile is the .env file read when WithEnvFile is given no path.
const DefaultEnvFile = ".env"

// Config holds the resolved settings.
type Config struct {
	Colour      string
	Model       params.Model
	Vary        sweep.Vary
	Count       int
	Format      colour.Format
	LogLevel    hclog.Level
	TemplateDir string
	Debounce    time.Duration
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Colour:   picker.DefaultColour,
		Model:    params.ModelHSL,
		Vary:     sweep.DefaultVary(params.ModelHSL),
		Count:    picker.DefaultCount,
		Format:   colour.FormatHex,
		LogLevel: hclog.Warn,
		Debounce: picker.DefaultDebounce,
	}
}

// Builder provides a fluent interface for constructing a Config.
type Builder struct {
	config  Config
	envFile string
	useEnv  bool
	lookup  func(string) (string, bool)
}

// NewBuilder creates a builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		lookup: os.LookupEnv,
	}
}

// WithConfig replaces the starting settings.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvFile reads settings from a .env file. A missing file is ignored.
func (b *Builder) WithEnvFile(path string) *Builder {
	if path == "" {
		path = DefaultEnvFile
	}
	b.envFile = path
	return b
}

// WithEnvConfig reads settings from PALETTESWEEP_* environment variables.
// They take precedence over the .env file.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces the environment lookup function.
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	if lookup != nil {
		b.lookup = lookup
	}
	return b
}

// Build resolves the configuration. Malformed values are reported with the
// key that carried them.
func (b *Builder) Build() (Config, error) {
	values := map[string]string{}

	if b.envFile != "" {
		fileValues, err := godotenv.Read(b.envFile)
		switch {
		case err == nil:
			for k, v := range fileValues {
				if strings.HasPrefix(k, "PALETTESWEEP_") {
					values[k] = v
				}
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return b.config, fmt.Errorf("failed to read %s: %w", b.envFile, err)
		}
	}

	if b.useEnv {
		for _, key := range []string{EnvColour, EnvModel, EnvVary, EnvCount, EnvFormat, EnvLogLevel, EnvTemplateDir, EnvDebounce} {
			if v, ok := b.lookup(key); ok && v != "" {
				values[key] = v
			}
		}
	}

	return apply(b.config, values)
}

func apply(cfg Config, values map[string]string) (Config, error) {
	if v, ok := values[EnvColour]; ok {
		cfg.Colour = v
	}

	if v, ok := values[EnvModel]; ok {
		m, err := params.ParseModel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvModel, err)
		}
		if m != cfg.Model {
			cfg.Model = m
			cfg.Vary = sweep.DefaultVary(m)
		}
	}

	if v, ok := values[EnvVary]; ok {
		vary, err := sweep.ParseVary(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvVary, err)
		}
		if !vary.AvailableFor(cfg.Model) {
			return cfg, fmt.Errorf("%s: %w: %s cannot be varied in %s", EnvVary, sweep.ErrUnknownVary, vary, cfg.Model)
		}
		cfg.Vary = vary
	}

	if v, ok := values[EnvCount]; ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvCount, err)
		}
		cfg.Count = max(1, min(picker.MaxCount, n))
	}

	if v, ok := values[EnvFormat]; ok {
		f, err := colour.ParseFormat(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvFormat, err)
		}
		cfg.Format = f
	}

	if v, ok := values[EnvLogLevel]; ok {
		level := hclog.LevelFromString(v)
		if level == hclog.NoLevel {
			return cfg, fmt.Errorf("%s: unknown log level %q", EnvLogLevel, v)
		}
		cfg.LogLevel = level
	}

	if v, ok := values[EnvTemplateDir]; ok {
		cfg.TemplateDir = v
	}

	if v, ok := values[EnvDebounce]; ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvDebounce, err)
		}
		if d < 0 {
			return cfg, fmt.Errorf("%s: negative duration %s", EnvDebounce, d)
		}
		cfg.Debounce = d
	}

	return cfg, nil
}
