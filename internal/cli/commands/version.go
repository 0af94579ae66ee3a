package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	_ "github.com/MIXgleb/wemake-python-styleguide/pkg/lint/rules" // register rules
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the styleguide version and the size of its rule catalog.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "styleguide v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d rules, %d violation codes\n", lint.Count(), len(lint.AllViolations()))
		},
	}
}
