package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MIXgleb/wemake-python-styleguide/internal/cli/output"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	_ "github.com/MIXgleb/wemake-python-styleguide/pkg/lint/rules" // register rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [code|rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules and the violation codes they report.

Rules are organized by group (e.g., classes, complexity). Pass a violation
code or a rule ID to see its full documentation.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  styleguide rules

  # Show details for a violation code
  styleguide rules WPS223

  # Show details for a rule
  styleguide rules complexity.try_except

  # List rules in the complexity group
  styleguide rules --group complexity

  # Output as JSON
  styleguide rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	_ = cmd.RegisterFlagCompletionFunc("group", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return lint.Groups(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

var titleCaser = cases.Title(language.English)

func groupTitle(group string) string {
	return titleCaser.String(strings.ReplaceAll(group, "_", " "))
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	rules := lint.AllRules()
	if opts.Group != "" {
		rules = lint.RulesByGroup(opts.Group)
		if len(rules) == 0 {
			return fmt.Errorf("unknown rule group %q (available: %s)", opts.Group, strings.Join(lint.Groups(), ", "))
		}
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, rules)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, rules, opts.Verbose)
	default:
		return listRulesText(r, rules, opts.Verbose)
	}
}

// listRulesText outputs one table per group.
func listRulesText(r *output.Renderer, rules []lint.RuleDef, verbose bool) error {
	styles := r.Styles()

	codes := 0
	for _, rule := range rules {
		codes += len(rule.Violations)
	}

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Lint Rules (%d rules, %d codes)", len(rules), codes)))
	r.Println("")

	for _, group := range groupsOf(rules) {
		r.Println(styles.Header2.Render(groupTitle(group)))

		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		header := table.Row{"Code", "Rule", "Severity", "Message"}
		if verbose {
			header = append(header, "Description")
		}
		t.AppendHeader(header)

		for _, rule := range rules {
			if rule.Group != group {
				continue
			}
			for _, v := range rule.Violations {
				row := table.Row{v.Code.String(), rule.ID, v.Severity.String(), v.Template}
				if verbose {
					row = append(row, v.Description)
				}
				t.AppendRow(row)
			}
		}
		t.Render()
		r.Println("")
	}

	r.Println(styles.Muted.Render("Use 'styleguide rules <code>' for detailed documentation"))
	r.Println("")
	return nil
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, rules []lint.RuleDef, verbose bool) error {
	r.Println(output.FormatHeader(1, "Lint Rules"))
	r.Println("")

	for _, group := range groupsOf(rules) {
		r.Println(output.FormatHeader(2, groupTitle(group)))
		r.Println("")
		for _, rule := range rules {
			if rule.Group != group {
				continue
			}
			r.Printf("### %s\n\n", rule.ID)
			if verbose {
				r.Println(rule.Description)
				r.Println("")
			}
			for _, v := range rule.Violations {
				r.Printf("- **%s** `%s` (`%s`)\n", v.Code, v.Template, v.Severity)
				if verbose && v.Description != "" {
					r.Println("  " + v.Description)
				}
			}
			r.Println("")
		}
	}
	return nil
}

// listRulesJSON outputs rules in JSON format.
func listRulesJSON(r *output.Renderer, rules []lint.RuleDef) error {
	out := output.RulesOutput{Rules: make([]output.RuleDoc, 0, len(rules))}
	for _, rule := range rules {
		out.Rules = append(out.Rules, ruleDoc(rule))
		out.Count += len(rule.Violations)
	}
	return r.JSON(out)
}

func showRule(cmd *cobra.Command, key string, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	rule, code, err := findRule(key)
	if err != nil {
		return err
	}

	doc := ruleDoc(rule)
	if code != 0 {
		for _, v := range doc.Violations {
			if v.Code == code.String() {
				doc.Violations = []output.ViolationDoc{v}
				break
			}
		}
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(doc)
	case output.ModeMarkdown:
		return showRuleMarkdown(r, doc)
	default:
		return showRuleText(r, doc)
	}
}

// findRule resolves a violation code or rule ID. The returned code is
// zero when key named a rule.
func findRule(key string) (lint.RuleDef, lint.Code, error) {
	if rule, ok := lint.GetRule(key); ok {
		return rule, 0, nil
	}
	if code, ok := lint.ParseCode(key); ok {
		if _, ruleID, found := lint.LookupCode(code); found {
			rule, _ := lint.GetRule(ruleID)
			return rule, code, nil
		}
	}
	return lint.RuleDef{}, 0, fmt.Errorf("rule %q not found", key)
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, doc output.RuleDoc) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", doc.ID, doc.Name)))
	r.Println("")
	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), groupTitle(doc.Group))
	if len(doc.ConfigKeys) > 0 {
		r.Printf("  %s: %s\n", styles.Bold.Render("Options"), strings.Join(doc.ConfigKeys, ", "))
	}
	r.Println("  " + doc.Description)
	r.Println("")

	for _, v := range doc.Violations {
		r.Println(styles.Header2.Render(fmt.Sprintf("%s  %s", v.Code, v.Name)))
		r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), v.Severity)
		r.Printf("  %s: %s\n", styles.Bold.Render("Message"), v.Message)
		r.Println("  " + v.Description)
		r.Println("")

		if v.Rationale != "" {
			r.Println(styles.Bold.Render("Why This Matters"))
			r.Println(indent(v.Rationale, "  "))
			r.Println("")
		}
		if v.BadExample != "" {
			r.Println(styles.Bold.Render("Bad Example"))
			r.Println(styles.Muted.Render(indent(v.BadExample, "  ")))
			r.Println("")
		}
		if v.GoodExample != "" {
			r.Println(styles.Bold.Render("Good Example"))
			r.Println(styles.Success.Render(indent(v.GoodExample, "  ")))
			r.Println("")
		}
		if v.Fix != "" {
			r.Println(styles.Bold.Render("How to Fix"))
			r.Println("  " + v.Fix)
			r.Println("")
		}
		r.Println(styles.Muted.Render("  " + v.DocumentationURL))
		r.Println("")
	}
	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, doc output.RuleDoc) error {
	r.Printf("# %s - %s\n\n", doc.ID, doc.Name)
	r.Printf("**Group:** %s", groupTitle(doc.Group))
	if len(doc.ConfigKeys) > 0 {
		r.Printf(" | **Options:** `%s`", strings.Join(doc.ConfigKeys, "`, `"))
	}
	r.Println("")
	r.Println("")
	r.Println(doc.Description)
	r.Println("")

	for _, v := range doc.Violations {
		r.Printf("## %s %s\n\n", v.Code, v.Name)
		r.Printf("**Severity:** `%s` | **Message:** `%s`\n\n", v.Severity, v.Message)
		r.Println(v.Description)
		r.Println("")
		if v.Rationale != "" {
			r.Println("### Why This Matters")
			r.Println("")
			r.Println(v.Rationale)
			r.Println("")
		}
		if v.BadExample != "" {
			r.Println("### Bad Example")
			r.Println("")
			r.Println("```python")
			r.Println(v.BadExample)
			r.Println("```")
			r.Println("")
		}
		if v.GoodExample != "" {
			r.Println("### Good Example")
			r.Println("")
			r.Println("```python")
			r.Println(v.GoodExample)
			r.Println("```")
			r.Println("")
		}
		if v.Fix != "" {
			r.Println("### How to Fix")
			r.Println("")
			r.Println(v.Fix)
			r.Println("")
		}
		r.Printf("[Documentation](%s)\n\n", v.DocumentationURL)
	}
	return nil
}

func ruleDoc(rule lint.RuleDef) output.RuleDoc {
	doc := output.RuleDoc{
		ID:          rule.ID,
		Name:        rule.Name,
		Group:       rule.Group,
		Description: rule.Description,
		ConfigKeys:  rule.ConfigKeys,
		Violations:  make([]output.ViolationDoc, 0, len(rule.Violations)),
	}
	for _, v := range rule.Violations {
		doc.Violations = append(doc.Violations, output.ViolationDoc{
			Code:             v.Code.String(),
			Name:             v.Name,
			Severity:         v.Severity.String(),
			Message:          v.Template,
			Description:      v.Description,
			Rationale:        v.Rationale,
			BadExample:       v.BadExample,
			GoodExample:      v.GoodExample,
			Fix:              v.Fix,
			DocumentationURL: lint.BuildDocURL(v.Code),
		})
	}
	return doc
}

// groupsOf returns the groups of rules in first-seen order. Rules come
// sorted by ID, so groups come out sorted too.
func groupsOf(rules []lint.RuleDef) []string {
	seen := make(map[string]bool)
	var groups []string
	for _, rule := range rules {
		if !seen[rule.Group] {
			seen[rule.Group] = true
			groups = append(groups, rule.Group)
		}
	}
	return groups
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
