// Package config provides configuration management for the styleguide CLI.
//
// Configuration is layered with koanf: built-in defaults, then the
// styleguide.yaml file, then STYLEGUIDE_* environment variables, then
// explicitly set command-line flags.
package config

import (
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
)

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool         `koanf:"verbose"`
	OutputFormat string       `koanf:"output"`
	Parallel     int          `koanf:"parallel"`
	Options      lint.Options `koanf:"options"`
	Lint         LintConfig   `koanf:"lint"`
	Log          LogConfig    `koanf:"log"`

	// ConfigDir is the directory of the config file in use, or the working
	// directory when there is none.
	ConfigDir string `koanf:"-"`
}

// LintConfig selects which violations are reported and how severe they are.
type LintConfig struct {
	// Disabled lists violation codes, e.g. "WPS223" or "223".
	Disabled []string `koanf:"disabled"`
	// DisabledRules lists rule IDs, e.g. "complexity.elifs".
	DisabledRules []string `koanf:"disabled_rules"`
	// Select, when set, restricts reports to these codes.
	Select []string `koanf:"select"`
	// Severity maps violation codes to error, warning, info or hint.
	Severity map[string]string `koanf:"severity"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	Level      string `koanf:"level"`
	File       string `koanf:"file"`
	MaxSize    int    `koanf:"max_size"` // megabytes
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// Default configuration values.
const (
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultParallel      = 0      // one worker per CPU
	DefaultLogLevel      = "warn"
	DefaultLogMaxSize    = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28
	DefaultLogCompress   = true
)

// ConfigFileNames are the file names searched for, in order.
var ConfigFileNames = []string{"styleguide.yaml", "styleguide.yml"}

func defaults() map[string]any {
	m := map[string]any{
		"verbose":         false,
		"output":          DefaultOutput,
		"parallel":        DefaultParallel,
		"log.level":       DefaultLogLevel,
		"log.file":        "",
		"log.max_size":    DefaultLogMaxSize,
		"log.max_backups": DefaultLogMaxBackups,
		"log.max_age":     DefaultLogMaxAge,
		"log.compress":    DefaultLogCompress,
	}
	for key, value := range lint.DefaultOptions().Map() {
		m["options."+key] = value
	}
	return m
}
