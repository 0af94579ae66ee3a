package commands

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MIXgleb/wemake-python-styleguide/internal/cli/config"
	"github.com/MIXgleb/wemake-python-styleguide/internal/cli/output"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a renderer for the
// configured output mode. A non-empty format overrides that mode.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	if format != "" {
		mode = output.Mode(strings.ToLower(format))
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, or defaults when the
// command runs without the root command's config loading.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		OutputFormat: config.DefaultOutput,
		Parallel:     config.DefaultParallel,
		Options:      lint.DefaultOptions(),
	}
}
