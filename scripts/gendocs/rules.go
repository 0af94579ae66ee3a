package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	_ "github.com/MIXgleb/wemake-python-styleguide/pkg/lint/rules"
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"classes":    "Rules about class bodies and the attributes their instances set.",
	"complexity": "Rules that bound how much a module, statement or expression may hold.",
}

var titleCaser = cases.Title(language.English)

// generateRuleDocs writes an index of every violation code plus one page
// per rule group.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := generateRulesIndex(outDir); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, group := range lint.Groups() {
		if err := generateGroupPage(outDir, group, lint.RulesByGroup(group)); err != nil {
			return err
		}
		log.Printf("  Generated %s.md", group)
	}

	return nil
}

func generateRulesIndex(outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Violations", "Every violation code styleguide reports")
	w.GeneratedMarker()

	w.Header(1, "Violations")
	w.Paragraph(fmt.Sprintf("styleguide ships **%d rules** reporting **%d violation codes**.",
		lint.Count(), len(lint.AllViolations())))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "Critical issue that should be fixed"},
			{InlineCode("warning"), "Potential issue that should be reviewed"},
			{InlineCode("info"), "Informational feedback"},
			{InlineCode("hint"), "Suggestion for improvement"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Codes, rules and thresholds are configured in `styleguide.yaml`:")
	w.CodeBlock("yaml", `lint:
  disabled: [WPS202]                 # drop a code
  disabled_rules: [classes.shadowed_attributes]
  severity:
    WPS223: error                    # override severity
options:
  max_module_members: 10             # raise a threshold`)

	w.Header(2, "Codes")
	var rows [][]string
	for _, v := range lint.AllViolations() {
		_, ruleID, _ := lint.LookupCode(v.Code)
		rule, _ := lint.GetRule(ruleID)
		link := fmt.Sprintf("[%s](/violations/%s#%s)", v.Code, rule.Group, strings.ToLower(v.Code.String()))
		rows = append(rows, []string{link, InlineCode(ruleID), InlineCode(v.Severity.String()), cleanDescription(v.Description)})
	}
	w.Table([]string{"Code", "Rule", "Severity", "Description"}, rows)

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

func generateGroupPage(outDir, group string, rules []lint.RuleDef) error {
	w := NewMarkdownWriter()
	title := titleCaser.String(group)

	w.Frontmatter(title+" Violations", groupDescriptions[group])
	w.GeneratedMarker()

	w.Header(1, title)
	if desc, ok := groupDescriptions[group]; ok {
		w.Paragraph(desc)
	}

	for _, rule := range rules {
		w.Header(2, fmt.Sprintf("%s - %s", rule.ID, rule.Name))
		w.Paragraph(rule.Description)
		if len(rule.ConfigKeys) > 0 {
			w.Paragraph(fmt.Sprintf("This rule reads the options %s.", InlineCode(strings.Join(rule.ConfigKeys, ", "))))
		}
		for _, v := range rule.Violations {
			writeViolationDoc(w, v)
		}
	}

	return os.WriteFile(filepath.Join(outDir, group+".md"), w.Bytes(), 0600)
}

// writeViolationDoc writes detailed documentation for a single code.
func writeViolationDoc(w *MarkdownWriter, v lint.ViolationDef) {
	// ### WPS223 complexity.too_many_elifs {#wps223}
	w.Line(fmt.Sprintf("### %s %s {#%s}", v.Code, v.Name, strings.ToLower(v.Code.String())))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s | **Message:** %s", InlineCode(v.Severity.String()), InlineCode(v.Template)))
	w.Newline()

	w.Paragraph(cleanDescription(v.Description))

	if v.Rationale != "" {
		w.Header(4, "Why This Matters")
		w.Paragraph(v.Rationale)
	}
	if v.BadExample != "" {
		w.Header(4, "Bad")
		w.CodeBlock("python", v.BadExample)
	}
	if v.GoodExample != "" {
		w.Header(4, "Good")
		w.CodeBlock("python", v.GoodExample)
	}
	if v.Fix != "" {
		w.Header(4, "How to Fix")
		w.Paragraph(v.Fix)
	}

	w.Line("---")
	w.Newline()
}
