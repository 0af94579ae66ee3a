package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/MIXgleb/wemake-python-styleguide/internal/cli/config"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
	Category    string // "general", "lint", "options", "log"
}

// optionDescriptions documents the thresholds in lint.Options.
var optionDescriptions = map[string]string{
	lint.OptMaxDecorators:        "Decorators allowed on one class or function (WPS216)",
	lint.OptMaxModuleMembers:     "Classes and functions allowed at module level (WPS202)",
	lint.OptMaxTryBodyLength:     "Statements allowed in a `try` body (WPS229)",
	lint.OptMaxFinallyLength:     "Statements allowed in a `finally` body (WPS243)",
	lint.OptMaxExceptExceptions:  "Exception types allowed in one `except` tuple (WPS239)",
	lint.OptMaxTupleUnpackLength: "Names allowed on the left of a tuple unpacking (WPS236)",
	lint.OptMaxTypeParams:        "Type parameters allowed on a declaration (WPS240)",
}

// getConfigSchema returns the configuration schema definition,
// mirroring internal/cli/config/types.go.
func getConfigSchema() []ConfigField {
	fields := []ConfigField{
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: auto, text, markdown or json", Category: "general"},
		{Name: "parallel", Type: "int", Default: strconv.Itoa(config.DefaultParallel), Description: "Files analyzed at once; 0 means one per CPU", Category: "general"},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Log at debug level", Category: "general"},

		{Name: "lint.disabled", Type: "[]string", Description: "Violation codes never reported", Category: "lint"},
		{Name: "lint.disabled_rules", Type: "[]string", Description: "Rule IDs that never run", Category: "lint"},
		{Name: "lint.select", Type: "[]string", Description: "When set, only these codes are reported", Category: "lint"},
		{Name: "lint.severity", Type: "map[string]string", Description: "Severity override per violation code", Category: "lint"},

		{Name: "log.level", Type: "string", Default: config.DefaultLogLevel, Description: "debug, info, warn or error", Category: "log"},
		{Name: "log.file", Type: "string", Description: "Rotating log file; logs go to stderr when empty", Category: "log"},
		{Name: "log.max_size", Type: "int", Default: strconv.Itoa(config.DefaultLogMaxSize), Description: "Megabytes before the log file rotates", Category: "log"},
		{Name: "log.max_backups", Type: "int", Default: strconv.Itoa(config.DefaultLogMaxBackups), Description: "Rotated files kept", Category: "log"},
		{Name: "log.max_age", Type: "int", Default: strconv.Itoa(config.DefaultLogMaxAge), Description: "Days rotated files are kept", Category: "log"},
		{Name: "log.compress", Type: "bool", Default: strconv.FormatBool(config.DefaultLogCompress), Description: "Gzip rotated files", Category: "log"},
	}

	defaults := lint.DefaultOptions().Map()
	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fields = append(fields, ConfigField{
			Name:        "options." + key,
			Type:        "int",
			Default:     fmt.Sprint(defaults[key]),
			Description: optionDescriptions[key],
			Category:    "options",
		})
	}
	return fields
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating configuration docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "styleguide configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("styleguide reads %s from the working directory or the nearest parent that has one.",
		strings.Join(quoteAll(config.ConfigFileNames), " or ")))

	sections := []struct {
		category string
		title    string
		intro    string
	}{
		{"general", "General", "Top-level settings:"},
		{"lint", "Lint", "Which violations are reported, under the `lint` key:"},
		{"options", "Thresholds", "Limits handed to the rules, under the `options` key:"},
		{"log", "Logging", "Diagnostic logging, under the `log` key:"},
	}

	fields := getConfigSchema()
	for _, section := range sections {
		w.Header(2, section.title)
		w.Paragraph(section.intro)

		var rows [][]string
		for _, f := range fields {
			if f.Category != section.category {
				continue
			}
			defVal := "-"
			if f.Default != "" {
				defVal = InlineCode(f.Default)
			}
			rows = append(rows, []string{InlineCode(f.Name), f.Type, defVal, f.Description})
		}
		w.Table([]string{"Field", "Type", "Default", "Description"}, rows)
	}

	w.Header(2, "Example")
	w.CodeBlock("yaml", `output: text
parallel: 4

lint:
  disabled: [WPS202]
  severity:
    WPS223: error

options:
  max_module_members: 10
  max_try_body_length: 2

log:
  level: info
  file: .styleguide/styleguide.log`)

	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = InlineCode(n)
	}
	return out
}
