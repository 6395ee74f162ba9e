// Package config loads gradecheck settings from defaults, a YAML file,
// GRADECHECK_ environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/brianc020801/INFO-340-Problem-4/internal/diagnostic"
	"github.com/brianc020801/INFO-340-Problem-4/internal/grader"
	"github.com/brianc020801/INFO-340-Problem-4/internal/log"
	"github.com/brianc020801/INFO-340-Problem-4/internal/problems"
	"github.com/brianc020801/INFO-340-Problem-4/internal/report"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes the environment variables read as configuration
const EnvPrefix = "GRADECHECK_"

// DefaultFiles are looked up in the working directory when no config file
// is given
var DefaultFiles = []string{"gradecheck.yaml", "gradecheck.yml"}

// ErrInvalid wraps every configuration error
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings of a gradecheck run
type Config struct {
	// Problem forces a rubric instead of inferring it from directory names
	Problem  string `koanf:"problem"`
	Format   string `koanf:"format"`
	Jobs     int    `koanf:"jobs"`
	LogLevel string `koanf:"log_level"`
	Verbose  bool   `koanf:"verbose"`
	NoColor  bool   `koanf:"no_color"`

	HTMLFile string `koanf:"html_file"`
	CSSFile  string `koanf:"css_file"`

	// HTMLLint and CSSLint are merged over the rc files and the problem's
	// own lint options
	HTMLLint    map[string]any `koanf:"htmllint"`
	CSSLint     map[string]any `koanf:"csslint"`
	HTMLLintRC  string         `koanf:"htmllintrc"`
	StylelintRC string         `koanf:"stylelintrc"`

	// File is the config file that was read, if any
	File string `koanf:"-"`
}

func defaults() map[string]any {
	return map[string]any{
		"format":    string(report.FormatText),
		"jobs":      grader.DefaultJobs,
		"log_level": log.LevelWarn.String(),
		"verbose":   false,
		"no_color":  false,
	}
}

// Load reads the configuration. cfgFile may be empty, in which case the
// first of DefaultFiles that exists is used. Only flags that were set on
// the command line override other sources.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path, err := findFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: error reading %s: %w", ErrInvalid, path, err)
		}
		log.Debug("using config file %s", path)
	}

	// GRADECHECK_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cfg.File = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: config file: %w", ErrInvalid, err)
		}
		return explicit, nil
	}
	for _, name := range DefaultFiles {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	return "", nil
}

// Validate checks the values that have a fixed set of choices
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalid, c.Jobs)
	}
	if c.Problem != "" {
		if _, err := problems.Lookup(c.Problem); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// OutputFormat returns the validated output format
func (c *Config) OutputFormat() report.Format {
	f, _ := report.ParseFormat(c.Format)
	return f
}

// Level returns the log level; --verbose forces debug
func (c *Config) Level() log.Level {
	if c.Verbose {
		return log.LevelDebug
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.LevelWarn
	}
	return level
}

// Color reports whether output may be styled
func (c *Config) Color() bool {
	return !c.NoColor && os.Getenv("NO_COLOR") == ""
}

// Lint returns the configured HTML and CSS lint options: the rc files with
// the inline option maps applied on top
func (c *Config) Lint() (html, css diagnostic.Options, err error) {
	html, err = loadRC(c.HTMLLintRC)
	if err != nil {
		return nil, nil, err
	}
	css, err = loadRC(c.StylelintRC)
	if err != nil {
		return nil, nil, err
	}
	return overlay(html, c.HTMLLint), overlay(css, c.CSSLint), nil
}

func loadRC(path string) (diagnostic.Options, error) {
	if path == "" {
		return nil, nil
	}
	opts, err := diagnostic.LoadOptions(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return opts, nil
}

func overlay(base diagnostic.Options, over map[string]any) diagnostic.Options {
	if len(over) == 0 {
		return base
	}
	return diagnostic.Merge(base, over)
}

// Overrides returns the problem overrides the configuration asks for
func (c *Config) Overrides() (problems.Overrides, error) {
	html, css, err := c.Lint()
	if err != nil {
		return problems.Overrides{}, err
	}
	return problems.Overrides{
		HTMLFile: c.HTMLFile,
		CSSFile:  c.CSSFile,
		HTMLLint: html,
		CSSLint:  css,
	}, nil
}

// Grader returns the grader settings
func (c *Config) Grader() (grader.Config, error) {
	o, err := c.Overrides()
	if err != nil {
		return grader.Config{}, err
	}
	return grader.Config{Problem: c.Problem, Jobs: c.Jobs, Overrides: o}, nil
}
