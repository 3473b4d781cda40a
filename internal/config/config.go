// Package config loads scificmdr settings from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/scificmdr/scificmdr/internal/logging"
	"github.com/scificmdr/scificmdr/internal/ui"
)

const (
	// EnvPrefix prefixes every environment override, e.g. SCIFICMDR_THEME
	EnvPrefix = "SCIFICMDR"
	// EnvConfigFile points at an explicit config file
	EnvConfigFile = "SCIFICMDR_CONFIG"

	FrontendTUI    = "tui"
	FrontendScript = "script"

	// StdinScript reads the event script from standard input
	StdinScript = "-"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config holds application configuration.
type Config struct {
	Title         string    `mapstructure:"title"`
	Theme         string    `mapstructure:"theme"`
	Frontend      string    `mapstructure:"frontend"`
	Script        string    `mapstructure:"script"`
	Catalog       string    `mapstructure:"catalog"`
	AllowUnlisted bool      `mapstructure:"allow_unlisted"`
	MaxVisible    int       `mapstructure:"max_visible"`
	Copy          bool      `mapstructure:"copy"`
	Run           bool      `mapstructure:"run"`
	Trace         bool      `mapstructure:"trace"`
	Log           LogConfig `mapstructure:"log"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// flagKeys maps command line flags to config keys
var flagKeys = map[string]string{
	"title":          "title",
	"theme":          "theme",
	"frontend":       "frontend",
	"script":         "script",
	"catalog":        "catalog",
	"allow-unlisted": "allow_unlisted",
	"max-visible":    "max_visible",
	"copy":           "copy",
	"run":            "run",
	"trace":          "trace",
	"log-file":       "log.file",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

// NewFlagSet declares the command line flags
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("title", "SciFiCmdr", "Title shown above the query")
	fs.String("theme", "charm", "Theme to use ("+strings.Join(ui.AvailableThemes(), ", ")+")")
	fs.String("frontend", FrontendTUI, "Front end: tui or script")
	fs.String("script", StdinScript, "Event script for the script front end (- for stdin)")
	fs.String("catalog", "", "YAML command catalog (default: built-in demo commands)")
	fs.Bool("allow-unlisted", true, "Accept query text that is not a registered command")
	fs.Int("max-visible", 5, "Options shown before the list scrolls")
	fs.Bool("copy", false, "Copy the chosen command to the clipboard")
	fs.Bool("run", false, "Run the chosen command's handlers")
	fs.Bool("trace", false, "Print every script front end frame to stderr")
	fs.String("log-file", "", "Log file path (empty disables logging)")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.String("log-format", string(logging.FormatText), "Log format (text or json)")
	return fs
}

// Load parses args and merges them over env vars, the config file and
// defaults. Env var overrides use prefix SCIFICMDR_. pflag.ErrHelp is
// returned as is when -h is given.
func Load(args []string) (Config, error) {
	fs := NewFlagSet("scificmdr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return load(fs)
}

func load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("title", "SciFiCmdr")
	v.SetDefault("theme", "charm")
	v.SetDefault("frontend", FrontendTUI)
	v.SetDefault("script", StdinScript)
	v.SetDefault("catalog", "")
	v.SetDefault("allow_unlisted", true)
	v.SetDefault("max_visible", 5)
	v.SetDefault("copy", false)
	v.SetDefault("run", false)
	v.SetDefault("trace", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", string(logging.FormatText))
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetConfigType("yaml")

	cfgPath := os.Getenv(EnvConfigFile)
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "scificmdr"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	// A missing default config file is fine, a broken one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that defaults cannot guarantee
func (c Config) Validate() error {
	if c.MaxVisible < 1 {
		return fmt.Errorf("%w: max_visible must be at least 1, got %d", ErrInvalid, c.MaxVisible)
	}
	if c.Frontend != FrontendTUI && c.Frontend != FrontendScript {
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalid, c.Frontend)
	}
	if !ui.IsTheme(c.Theme) {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalid, c.Theme)
	}
	if !slices.Contains([]string{string(logging.FormatText), string(logging.FormatJSON)}, c.Log.Format) {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Logging converts the log settings for logging.Init
func (c Config) Logging() logging.Config {
	return logging.Config{
		FilePath:   c.Log.File,
		Level:      logging.ParseLevel(c.Log.Level),
		Format:     logging.ParseFormat(c.Log.Format),
		MaxSizeMB:  c.Log.MaxSizeMB,
		MaxBackups: c.Log.MaxBackups,
	}
}
