package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MIXgleb/wemake-python-styleguide/internal/cli/config"
	"github.com/MIXgleb/wemake-python-styleguide/internal/cli/output"
	"github.com/MIXgleb/wemake-python-styleguide/internal/runner"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	_ "github.com/MIXgleb/wemake-python-styleguide/pkg/lint/rules" // register rules
)

// ErrLintIssues is returned when a lint run reports violations or
// unreadable files.
var ErrLintIssues = errors.New("lint issues found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Format   string         // Output format: text, markdown, json
	Disable  []string       // Violation codes or rule IDs to disable
	Select   []string       // Report only these violation codes
	Severity string         // Minimum severity: error, warning, info, hint
	Option   map[string]int // Threshold overrides, e.g. max_module_members=10
	Parallel int            // Files analyzed at once; 0 means one per CPU
	Watch    bool           // Re-lint files as they change
	ExitZero bool           // Succeed even when issues are found
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check syntax trees against the style rules",
		Long: `Analyze Python syntax trees for style violations.

Each path is a tree document (YAML or JSON) or a directory that is scanned
recursively for .yaml, .yml and .json files. Thresholds, disabled codes and
severities can be configured in styleguide.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Lint every tree under the current directory
  styleguide lint

  # Lint specific files
  styleguide lint build/trees/app.yaml build/trees/models.json

  # Output as JSON
  styleguide lint --format json

  # Disable a code and a whole rule
  styleguide lint --disable WPS202,classes.shadowed_attributes

  # Report only elif chains
  styleguide lint --select WPS223

  # Raise a threshold for this run
  styleguide lint --option max_module_members=10

  # Re-lint on change
  styleguide lint --watch ./trees`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Violation codes or rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Select, "select", nil, "Report only these violation codes")
	cmd.Flags().StringToIntVar(&opts.Option, "option", nil, "Threshold overrides as key=value, e.g. max_module_members=10")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity: error, warning, info, hint")
	cmd.Flags().IntVarP(&opts.Parallel, "parallel", "j", 0, "Files analyzed at once (0 = one per CPU)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-lint files as they change")
	cmd.Flags().BoolVar(&opts.ExitZero, "exit-zero", false, "Exit with status 0 even when issues are found")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("severity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning", "info", "hint"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runLint(cmd *cobra.Command, paths []string, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	minSeverity, ok := lint.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("unknown severity %q (want error, warning, info or hint)", opts.Severity)
	}

	lintCfg, err := buildLintConfig(cfg, opts)
	if err != nil {
		return err
	}

	parallel := cfg.Parallel
	if cmd.Flags().Changed("parallel") {
		parallel = opts.Parallel
	}

	analyzer := lint.NewAnalyzer(lintCfg, lint.WithLogger(logger))
	logger.Debug("starting lint",
		"paths", paths,
		"rules", len(analyzer.Rules()),
		"parallel", parallel,
	)
	run := runner.New(analyzer,
		runner.WithParallel(parallel),
		runner.WithLogger(logger),
	)

	results, err := run.Run(cmd.Context(), paths)
	if err != nil {
		return err
	}
	hasIssues, err := renderLintResults(r, results, minSeverity)
	if err != nil {
		return err
	}

	if opts.Watch {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchLint(ctx, run, r, paths, minSeverity)
	}

	if hasIssues && !opts.ExitZero {
		return ErrLintIssues
	}
	return nil
}

func watchLint(ctx context.Context, run *runner.Runner, r *output.Renderer, paths []string, minSeverity lint.Severity) error {
	r.Muted("Watching for changes. Press Ctrl+C to stop.")
	return run.Watch(ctx, paths, func(results []runner.FileResult) {
		r.Println("")
		if _, err := renderLintResults(r, results, minSeverity); err != nil {
			r.Error(err.Error())
		}
	})
}

// buildLintConfig merges the config file settings with command-line
// overrides, which take precedence.
func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	lintCfg := cfg.LintConfig()

	for _, entry := range opts.Disable {
		for _, item := range strings.Split(entry, ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			if code, ok := lint.ParseCode(item); ok {
				lintCfg.Disable(code)
				continue
			}
			if _, ok := lint.GetRule(item); !ok {
				return nil, fmt.Errorf("--disable: %q is neither a violation code nor a rule ID", item)
			}
			lintCfg.DisableRule(item)
		}
	}

	if len(opts.Select) > 0 {
		// Command-line selection replaces any selection from config.
		lintCfg.Selected = make(map[lint.Code]bool)
		for _, entry := range opts.Select {
			for _, item := range strings.Split(entry, ",") {
				item = strings.TrimSpace(item)
				if item == "" {
					continue
				}
				code, ok := lint.ParseCode(item)
				if !ok {
					return nil, fmt.Errorf("--select: invalid violation code %q", item)
				}
				lintCfg.Select(code)
			}
		}
	}

	if len(opts.Option) > 0 {
		known := lintCfg.Options.Map()
		overrides := make(map[string]any, len(opts.Option))
		for key, value := range opts.Option {
			if _, ok := known[key]; !ok {
				return nil, fmt.Errorf("--option: unknown threshold %q", key)
			}
			if value < 0 {
				return nil, fmt.Errorf("--option: %s must not be negative, got %d", key, value)
			}
			overrides[key] = value
		}
		lintCfg.Options = lintCfg.Options.Apply(overrides)
	}

	return lintCfg, nil
}

// buildLintReport converts runner results into the report structure,
// keeping violations at or above minSeverity.
func buildLintReport(results []runner.FileResult, minSeverity lint.Severity) output.LintOutput {
	report := output.LintOutput{
		RunID: uuid.NewString(),
		Files: make([]output.LintFileResult, 0, len(results)),
	}
	report.Summary.FilesAnalyzed = len(results)

	for _, res := range results {
		file := output.LintFileResult{Path: res.Path, Diagnostics: []output.LintDiagnostic{}}
		if res.Err != nil {
			file.Error = res.Err.Error()
			report.Summary.FilesFailed++
			report.Files = append(report.Files, file)
			continue
		}

		for _, v := range res.Result.Violations {
			if !v.Severity.AtLeast(minSeverity) {
				continue
			}
			file.Diagnostics = append(file.Diagnostics, output.LintDiagnostic{
				Code:             v.Code.String(),
				Name:             v.Name,
				RuleID:           v.RuleID,
				Severity:         v.Severity.String(),
				Message:          v.Message,
				Line:             v.Pos.Line,
				Column:           v.Pos.Column,
				EndLine:          v.Pos.EndLine,
				EndColumn:        v.Pos.EndColumn,
				DocumentationURL: v.DocumentationURL,
			})
			report.Summary.TotalIssues++
			switch v.Severity {
			case lint.SeverityError:
				report.Summary.Errors++
			case lint.SeverityWarning:
				report.Summary.Warnings++
			case lint.SeverityInfo:
				report.Summary.Info++
			case lint.SeverityHint:
				report.Summary.Hints++
			}
		}
		for _, f := range res.Result.Failures() {
			file.Failures = append(file.Failures, output.RuleFailure{
				RuleID: f.RuleID,
				Phase:  f.Phase,
				Error:  fmt.Sprint(f.Cause),
			})
		}
		report.Files = append(report.Files, file)
	}
	return report
}

// renderLintResults renders results and reports whether any issue was found.
func renderLintResults(r *output.Renderer, results []runner.FileResult, minSeverity lint.Severity) (bool, error) {
	report := buildLintReport(results, minSeverity)
	summary := report.Summary
	hasIssues := summary.TotalIssues > 0 || summary.FilesFailed > 0

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return hasIssues, r.JSON(report)
	case output.ModeMarkdown:
		renderLintMarkdown(r, report)
	default:
		renderLintText(r, report)
	}
	return hasIssues, nil
}

func renderLintText(r *output.Renderer, report output.LintOutput) {
	styles := r.Styles()

	for _, file := range report.Files {
		if file.Error == "" && len(file.Diagnostics) == 0 && len(file.Failures) == 0 {
			continue
		}
		r.Println(styles.FilePath.Render(file.Path))
		if file.Error != "" {
			r.Printf("  %s  %s\n", styles.Error.Render("failed "), file.Error)
		}
		for _, d := range file.Diagnostics {
			r.Printf("  %s  %s  %s  %s\n",
				styles.Muted.Render(fmt.Sprintf("%-7s", location(d))),
				severityLabel(styles, d.Severity),
				styles.Bold.Render(d.Code),
				d.Message,
			)
		}
		for _, f := range file.Failures {
			r.Printf("  %s  %s  %s\n",
				styles.Error.Render("crashed"),
				styles.Bold.Render(f.RuleID),
				styles.Muted.Render(f.Phase+": "+f.Error),
			)
		}
		r.Println("")
	}

	summary := report.Summary
	if summary.TotalIssues == 0 && summary.FilesFailed == 0 {
		r.Success(fmt.Sprintf("No lint issues found in %d files", summary.FilesAnalyzed))
		return
	}
	r.Printf("Summary: %s in %d files\n", summaryText(summary), summary.FilesAnalyzed)
}

func renderLintMarkdown(r *output.Renderer, report output.LintOutput) {
	r.Println(output.FormatHeader(1, "Lint Results"))
	r.Println("")

	for _, file := range report.Files {
		if file.Error == "" && len(file.Diagnostics) == 0 && len(file.Failures) == 0 {
			continue
		}
		r.Println(output.FormatHeader(2, "`"+file.Path+"`"))
		r.Println("")
		if file.Error != "" {
			r.Printf("- **failed:** %s\n", file.Error)
		}
		for _, d := range file.Diagnostics {
			r.Printf("- `%s` **%s** (%s): %s\n", location(d), d.Code, d.Severity, d.Message)
		}
		for _, f := range file.Failures {
			r.Printf("- **crashed:** `%s` during %s: %s\n", f.RuleID, f.Phase, f.Error)
		}
		r.Println("")
	}

	summary := report.Summary
	r.Println(output.FormatHeader(2, "Summary"))
	r.Println("")
	r.Println(output.FormatKeyValue("Files", fmt.Sprintf("%d", summary.FilesAnalyzed)))
	r.Println(output.FormatKeyValue("Issues", summaryText(summary)))
}

func location(d output.LintDiagnostic) string {
	if d.Line == 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%d", d.Line, d.Column)
}

func summaryText(s output.LintSummary) string {
	parts := []string{fmt.Sprintf("%d issues", s.TotalIssues)}
	if s.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", s.Errors))
	}
	if s.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", s.Warnings))
	}
	if s.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", s.Info))
	}
	if s.Hints > 0 {
		parts = append(parts, fmt.Sprintf("%d hints", s.Hints))
	}
	if s.FilesFailed > 0 {
		parts = append(parts, fmt.Sprintf("%d unreadable files", s.FilesFailed))
	}
	return strings.Join(parts, ", ")
}

func severityLabel(styles *output.Styles, sev string) string {
	label := fmt.Sprintf("%-7s", sev)
	switch sev {
	case lint.SeverityError.String():
		return styles.Error.Render(label)
	case lint.SeverityWarning.String():
		return styles.Warning.Render(label)
	case lint.SeverityInfo.String():
		return styles.Info.Render(label)
	default:
		return styles.Muted.Render(label)
	}
}
