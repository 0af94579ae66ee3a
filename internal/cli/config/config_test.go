package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
)

const sampleConfig = `output: markdown
parallel: 3
options:
  max_decorators: 2
  max_try_body_length: 4
lint:
  disabled: [WPS202]
  disabled_rules: [classes.shadowed_attributes]
  severity:
    WPS223: error
log:
  level: info
`

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestLoadConfig_Defaults tests loading with no config file present.
func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultParallel, cfg.Parallel)
	assert.Equal(t, lint.DefaultOptions(), cfg.Options)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogMaxBackups, cfg.Log.MaxBackups)
	assert.True(t, cfg.Log.Compress)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

// TestLoadConfig_File tests values read from styleguide.yaml.
func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := writeConfig(t, dir, "styleguide.yaml", sampleConfig)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, path, GetConfigFileUsed())
	assert.Equal(t, "markdown", cfg.OutputFormat)
	assert.Equal(t, 3, cfg.Parallel)
	assert.Equal(t, 2, cfg.Options.MaxDecorators)
	assert.Equal(t, 4, cfg.Options.MaxTryBodyLength)
	assert.Equal(t, lint.DefaultOptions().MaxModuleMembers, cfg.Options.MaxModuleMembers, "unset options keep defaults")
	assert.Equal(t, []string{"WPS202"}, cfg.Lint.Disabled)
	assert.Equal(t, map[string]string{"WPS223": "error"}, cfg.Lint.Severity)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestLoadConfig_UpwardSearch tests that the file is found from a subdirectory.
func TestLoadConfig_UpwardSearch(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	writeConfig(t, root, "styleguide.yml", "parallel: 5\n")
	nested := filepath.Join(root, "src", "pkg")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Parallel)
	assert.Equal(t, "styleguide.yml", filepath.Base(GetConfigFileUsed()))
	resolved, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	configDir, err := filepath.EvalSymlinks(cfg.ConfigDir)
	require.NoError(t, err)
	assert.Equal(t, resolved, configDir)
}

// TestLoadConfig_Precedence tests that flags override env vars and config file.
func TestLoadConfig_Precedence(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := writeConfig(t, dir, "styleguide.yaml", sampleConfig)

	t.Setenv("STYLEGUIDE_OUTPUT", "json")
	t.Setenv("STYLEGUIDE_PARALLEL", "6")
	t.Setenv("STYLEGUIDE_OPTIONS__MAX_DECORATORS", "9")
	t.Setenv("STYLEGUIDE_LOG__LEVEL", "debug")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("parallel", 0, "workers")
	flags.String("output", "", "output format")
	flags.String("format", "", "not a config key")
	require.NoError(t, flags.Set("parallel", "8"))
	require.NoError(t, flags.Set("format", "text"))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Parallel, "flag wins over env")
	assert.Equal(t, "json", cfg.OutputFormat, "env wins over file; unset flag is ignored")
	assert.Equal(t, 9, cfg.Options.MaxDecorators)
	assert.Equal(t, 4, cfg.Options.MaxTryBodyLength, "file value survives")
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestLoadConfig_Errors tests invalid configuration sources.
func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{name: "unknown output", content: "output: xml\n", errSubstr: "unknown format"},
		{name: "negative parallel", content: "parallel: -1\n", errSubstr: "parallel"},
		{name: "negative option", content: "options:\n  max_elifs_typo: 1\n  max_decorators: -2\n", errSubstr: "options.max_decorators"},
		{name: "bad code", content: "lint:\n  disabled: [WPSX]\n", errSubstr: "invalid violation code"},
		{name: "bad severity", content: "lint:\n  severity:\n    WPS223: fatal\n", errSubstr: "unknown severity"},
		{name: "malformed yaml", content: "output: [\n", errSubstr: "error reading config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			path := writeConfig(t, t.TempDir(), "styleguide.yaml", tt.content)

			_, err := LoadConfig(path, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		ResetConfig()
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

// TestConfig_LintConfig tests translation into the analyzer configuration.
func TestConfig_LintConfig(t *testing.T) {
	cfg := &Config{
		Options: lint.DefaultOptions(),
		Lint: LintConfig{
			Disabled:      []string{"WPS202, 216"},
			DisabledRules: []string{"complexity.elifs"},
			Select:        []string{"wps601"},
			Severity:      map[string]string{"WPS601": "error", "oops": "error"},
		},
	}
	cfg.Options.MaxDecorators = 1

	lintCfg := cfg.LintConfig()

	assert.True(t, lintCfg.DisabledCodes[202])
	assert.True(t, lintCfg.DisabledCodes[216])
	assert.True(t, lintCfg.DisabledRules["complexity.elifs"])
	assert.True(t, lintCfg.Selected[601])
	assert.True(t, lintCfg.IsDisabled(223), "unselected codes are dropped")
	assert.Equal(t, lint.SeverityError, lintCfg.GetSeverity(601, lint.SeverityWarning))
	assert.Len(t, lintCfg.SeverityOverrides, 1)
	assert.Equal(t, 1, lintCfg.Options.MaxDecorators)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"", slog.LevelWarn},
		{"loud", slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in, slog.LevelWarn))
		})
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styleguide.log")
	cfg := &Config{Log: LogConfig{Level: "info", File: path, MaxSize: 1}}

	logger, closer := NewLogger(cfg, nil)
	logger.Debug("hidden")
	logger.Info("visible", "files", 2)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
	assert.Contains(t, string(data), "files=2")
	assert.NotContains(t, string(data), "hidden")
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "falls back to a discard logger")

	logger := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
