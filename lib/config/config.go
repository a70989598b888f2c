// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bearcode/lib/bearcodec"
	"github.com/bureau-foundation/bearcode/lib/dictionary"
	"github.com/bureau-foundation/bearcode/lib/translate"
)

// EnvironmentVariable names the config file when --config is absent.
const EnvironmentVariable = "BEARCODE_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for interactive use on a workstation.
	Development Environment = "development"
	// Production is for scripted or service use.
	Production Environment = "production"
)

// Config is the complete bearcode configuration.
type Config struct {
	// Environment selects which override section applies.
	Environment Environment `yaml:"environment"`

	// Dictionary configures the phrase table.
	Dictionary DictionaryConfig `yaml:"dictionary"`

	// Codec configures the binary codec alphabet and separator.
	Codec CodecConfig `yaml:"codec"`

	// Detection configures the auto-mode heuristic.
	Detection DetectionConfig `yaml:"detection"`

	// Reload configures dictionary hot reloading.
	Reload ReloadConfig `yaml:"reload"`

	Development *ConfigOverrides `yaml:"development,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Dictionary *DictionaryConfig `yaml:"dictionary,omitempty"`
	Reload     *ReloadConfig     `yaml:"reload,omitempty"`
}

// DictionaryConfig configures the phrase table.
type DictionaryConfig struct {
	// Path is the dictionary file (JSON, JSONC, YAML or compiled
	// snapshot). Empty means codec-only.
	Path string `yaml:"path"`

	// Elide lists single characters dropped from forward input and
	// from the dictionary at build time.
	// Default: ["了"]
	Elide []string `yaml:"elide"`

	// Required turns a dictionary load failure into an error instead
	// of a fallback to codec-only conversion.
	// Default: false (development), true (production)
	Required bool `yaml:"required"`
}

// CodecConfig configures the binary codec.
type CodecConfig struct {
	// Alphabet is four distinct symbols for bit pairs 00, 01, 10, 11.
	// Default: 啊哒.。
	Alphabet string `yaml:"alphabet"`

	// Separator is the single character between consecutive codec
	// units. It must not be an alphabet symbol.
	// Default: +
	Separator string `yaml:"separator"`
}

// DetectionConfig configures which characters count as source script
// and which as bear language in auto mode.
type DetectionConfig struct {
	// SourceRanges are hexadecimal codepoint ranges such as
	// "4e00-9fa5".
	SourceRanges []string `yaml:"source_ranges"`

	// ExtraSignals are characters counted as bear language in
	// addition to the alphabet and separator.
	// Default: ~
	ExtraSignals string `yaml:"extra_signals"`
}

// ReloadConfig configures dictionary hot reloading in long-running
// commands.
type ReloadConfig struct {
	// Enabled turns on polling of the dictionary file.
	// Default: true (development), false (production)
	Enabled bool `yaml:"enabled"`

	// Interval is the poll interval as a Go duration string.
	// Default: 2s
	Interval string `yaml:"interval"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Environment: Development,
		Dictionary: DictionaryConfig{
			Path:  "${HOME}/.config/bearcode/dictionary.json",
			Elide: []string{"了"},
		},
		Codec: CodecConfig{
			Alphabet:  string(bearcodec.DefaultSymbols[:]),
			Separator: string(translate.DefaultSeparator),
		},
		Detection: DetectionConfig{
			SourceRanges: []string{"4e00-9fa5"},
			ExtraSignals: "~",
		},
		Reload: ReloadConfig{
			Enabled:  true,
			Interval: "2s",
		},
	}
}

// Load loads configuration from the file named by BEARCODE_CONFIG, or
// returns the expanded defaults when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		cfg := Default()
		cfg.applyEnvironmentOverrides()
		cfg.expandVariables()
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the section for c.Environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Production:
		overrides = c.Production
		// Production defaults: fail loudly, no background polling.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Dictionary: &DictionaryConfig{Required: true},
				Reload:     &ReloadConfig{Enabled: false},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Dictionary != nil {
		if overrides.Dictionary.Path != "" {
			c.Dictionary.Path = overrides.Dictionary.Path
		}
		if overrides.Dictionary.Elide != nil {
			c.Dictionary.Elide = overrides.Dictionary.Elide
		}
		// Required is a bool, so it is always applied.
		c.Dictionary.Required = overrides.Dictionary.Required
	}

	if overrides.Reload != nil {
		c.Reload.Enabled = overrides.Reload.Enabled
		if overrides.Reload.Interval != "" {
			c.Reload.Interval = overrides.Reload.Interval
		}
	}
}

func (c *Config) expandVariables() {
	c.Dictionary.Path = expandVars(c.Dictionary.Path, map[string]string{
		"HOME": os.Getenv("HOME"),
	})
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		name, defaultValue := parts[1], parts[2]
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks every field that the engine would otherwise reject
// at construction time, reporting all problems together.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}
	if _, err := c.EngineOptions(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ReloadInterval(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// singleRune returns the only rune in s.
func singleRune(field, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// EngineOptions converts the codec, detection and elision settings into
// translate.Options.
func (c *Config) EngineOptions() (translate.Options, error) {
	var errs []error

	alphabet, err := bearcodec.Parse(c.Codec.Alphabet)
	if err != nil {
		errs = append(errs, fmt.Errorf("codec.alphabet: %w", err))
	}
	separator, err := singleRune("codec.separator", c.Codec.Separator)
	if err != nil {
		errs = append(errs, err)
	} else if alphabet != nil {
		if err := alphabet.CheckSeparator(separator); err != nil {
			errs = append(errs, fmt.Errorf("codec.separator: %w", err))
		}
	}

	var elide []rune
	for _, text := range c.Dictionary.Elide {
		r, err := singleRune("dictionary.elide entry", text)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		elide = append(elide, r)
	}

	var ranges []translate.Range
	for _, text := range c.Detection.SourceRanges {
		sourceRange, err := translate.ParseRange(text)
		if err != nil {
			errs = append(errs, fmt.Errorf("detection.source_ranges: %w", err))
			continue
		}
		ranges = append(ranges, sourceRange)
	}

	if len(errs) > 0 {
		return translate.Options{}, errors.Join(errs...)
	}

	signals := translate.BearSignals(alphabet, separator, []rune(c.Detection.ExtraSignals))
	return translate.Options{
		Alphabet:  alphabet,
		Separator: separator,
		Elide:     elide,
		Detector:  translate.NewDetector(ranges, signals),
	}, nil
}

// DictionaryOptions returns the store build options. The separator is
// left zero if the codec settings are invalid; Validate reports that.
func (c *Config) DictionaryOptions() dictionary.Options {
	options := dictionary.Options{Skip: c.Dictionary.Elide}
	if separator, err := singleRune("codec.separator", c.Codec.Separator); err == nil {
		options.Separator = separator
	}
	return options
}

// ReloadInterval parses Reload.Interval.
func (c *Config) ReloadInterval() (time.Duration, error) {
	interval, err := time.ParseDuration(c.Reload.Interval)
	if err != nil {
		return 0, fmt.Errorf("reload.interval: %w", err)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("reload.interval must be positive, got %s", c.Reload.Interval)
	}
	return interval, nil
}
