// ============================================================================
// textkit - Text shaping toolkit
// ============================================================================
//
// Package:     config
// Description: Typed configuration loaded from TOML or YAML files
// Author:      msto63
// Created:     2026-10-07
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/core/validation"
	"github.com/msto63/textkit/foundation/utils/filex"
	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/foundation/utils/validationx"
)

// EnvConfigPath names the environment variable LoadFromEnv reads first
const EnvConfigPath = "TEXTKIT_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Truncate TruncateConfig `toml:"truncate" yaml:"truncate"`
	URL      URLConfig      `toml:"url" yaml:"url"`
	Linkify  LinkifyConfig  `toml:"linkify" yaml:"linkify"`
	Watch    WatchConfig    `toml:"watch" yaml:"watch"`
}

// GeneralConfig holds logging and locale settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	Locale    string `toml:"locale" yaml:"locale"`
}

// TruncateConfig holds the defaults of the shorten and cut commands
type TruncateConfig struct {
	Glue      string `toml:"glue" yaml:"glue"`
	CutAppend string `toml:"cut_append" yaml:"cut_append"`
}

// URLConfig holds URL normalization and display settings
type URLConfig struct {
	DefaultScheme string `toml:"default_scheme" yaml:"default_scheme"`
	MaxPathLen    int    `toml:"max_path_len" yaml:"max_path_len"`
}

// LinkifyConfig holds extra anchor attributes; empty values are omitted
type LinkifyConfig struct {
	Target string `toml:"target" yaml:"target"`
	Rel    string `toml:"rel" yaml:"rel"`
	Class  string `toml:"class" yaml:"class"`
}

// WatchConfig holds file watching settings
type WatchConfig struct {
	Debounce Duration `toml:"debounce" yaml:"debounce"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// AnchorOptions returns the linkify settings in the form stringx expects
func (c *Config) AnchorOptions() stringx.AnchorOptions {
	return stringx.AnchorOptions{
		Scheme:     c.URL.DefaultScheme,
		MaxPathLen: c.URL.MaxPathLen,
		Target:     c.Linkify.Target,
		Rel:        c.Linkify.Rel,
		Class:      c.Linkify.Class,
	}
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Parse decodes configuration data. format is "toml" or "yaml"; unknown
// keys are rejected by both decoders.
func Parse(data []byte, format string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(format) {
	case "toml":
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %s", undecoded[0])
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// a document without content decodes to io.EOF
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Load loads and validates configuration from a TOML or YAML file; the
// extension selects the decoder.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if !filex.Exists(path) {
		return nil, mdwerrors.NotFound(mdwerrors.ModuleConfig, "load", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerrors.ConfigReadFailed(path, err)
	}

	cfg, err := Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, mdwerrors.ConfigParseError(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths lists the locations searched when TEXTKIT_CONFIG is unset
func DefaultPaths() []string {
	paths := []string{"./textkit.toml", "./textkit.yaml", "./textkit.yml"}

	if dir, err := os.UserConfigDir(); err == nil {
		for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
			paths = append(paths, filepath.Join(dir, "textkit", name))
		}
	}
	return paths
}

// FindConfigFile returns TEXTKIT_CONFIG if set, otherwise the first of
// DefaultPaths that exists, or "".
func FindConfigFile() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	for _, p := range DefaultPaths() {
		if filex.IsFile(p) {
			return p
		}
	}
	return ""
}

// LoadFromEnv loads the file named by TEXTKIT_CONFIG or the first existing
// default location.
func LoadFromEnv() (*Config, error) {
	path := FindConfigFile()
	if path == "" {
		return nil, mdwerrors.NotFound(mdwerrors.ModuleConfig, "load",
			fmt.Sprintf("set %s or create textkit.toml", EnvConfigPath))
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Truncate.Glue == "" {
		c.Truncate.Glue = stringx.DefaultGlue
	}
	if c.Truncate.CutAppend == "" {
		c.Truncate.CutAppend = stringx.DefaultAppend
	}

	if c.URL.DefaultScheme == "" {
		c.URL.DefaultScheme = stringx.DefaultScheme
	}
	if c.URL.MaxPathLen == 0 {
		c.URL.MaxPathLen = stringx.DefaultMaxPathLen
	}

	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = filex.DefaultDebounce
	}
}

// Validate checks every setting and reports all failures at once
func (c *Config) Validate() error {
	checks := []struct {
		chain *validation.ValidatorChain
		value interface{}
	}{
		{validation.NewValidatorChain("general.log_level").
			AddFunc(logSetting(checkLevel)), c.General.LogLevel},
		{validation.NewValidatorChain("general.log_format").
			AddFunc(logSetting(checkFormat)), c.General.LogFormat},
		{validation.NewValidatorChain("general.locale").
			Add(validationx.Locale), c.General.Locale},
		{validation.NewValidatorChain("truncate.glue").
			Add(validationx.MaxLength(16)), c.Truncate.Glue},
		{validation.NewValidatorChain("truncate.cut_append").
			Add(validationx.MaxLength(16)), c.Truncate.CutAppend},
		{validation.NewValidatorChain("url.default_scheme").
			Add(validationx.Scheme), c.URL.DefaultScheme},
		{validation.NewValidatorChain("url.max_path_len").
			Add(validationx.Range(1, 4096)), c.URL.MaxPathLen},
		{validation.NewValidatorChain("watch.debounce").
			Add(validationx.Range(int64(time.Millisecond), int64(time.Minute))), int64(c.Watch.Debounce.Duration)},
	}

	results := make([]validation.ValidationResult, 0, len(checks))
	for _, check := range checks {
		results = append(results, check.chain.Validate(check.value))
	}

	if err := validation.Combine(results...).ToError(); err != nil {
		return mdwerrors.ConfigInvalid(err)
	}
	return nil
}

// logSetting accepts strings the foundation logger can parse
func logSetting(parse func(string) error) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		s, _ := value.(string)
		if err := parse(s); err != nil {
			return validation.NewValidationError(validation.CodeOneOf, err.Error())
		}
		return validation.NewValidationResult()
	}
}

func checkLevel(s string) error {
	_, err := mdwlog.ParseLevel(s)
	return err
}

func checkFormat(s string) error {
	_, err := mdwlog.ParseFormat(s)
	return err
}

// Watch reloads the file at path whenever it changes and passes the result
// to onChange. A file that fails to load is reported through the error
// argument; the previous configuration stays with the caller. Watching stops
// when ctx ends or the returned watcher is closed.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func(*Config, error)) (*filex.Watcher, error) {
	path = os.ExpandEnv(path)
	return filex.WatchFile(ctx, path, debounce, func() {
		onChange(Load(path))
	})
}
