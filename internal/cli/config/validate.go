package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
)

// validOutputs are the accepted values of the output key.
var validOutputs = map[string]bool{
	"":         true,
	"auto":     true,
	"text":     true,
	"markdown": true,
	"json":     true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if !validOutputs[strings.ToLower(c.OutputFormat)] {
		errs = append(errs, fmt.Errorf("output: unknown format %q (want auto, text, markdown or json)", c.OutputFormat))
	}
	if c.Parallel < 0 {
		errs = append(errs, fmt.Errorf("parallel: must not be negative, got %d", c.Parallel))
	}
	for key, value := range c.Options.Map() {
		if n, _ := value.(int); n < 0 {
			errs = append(errs, fmt.Errorf("options.%s: must not be negative, got %d", key, n))
		}
	}
	for _, entry := range append(append([]string{}, c.Lint.Disabled...), c.Lint.Select...) {
		for _, code := range splitList(entry) {
			if _, ok := lint.ParseCode(code); !ok {
				errs = append(errs, fmt.Errorf("lint: invalid violation code %q", code))
			}
		}
	}
	for code, sev := range c.Lint.Severity {
		if _, ok := lint.ParseCode(code); !ok {
			errs = append(errs, fmt.Errorf("lint.severity: invalid violation code %q", code))
		}
		if _, ok := lint.ParseSeverity(sev); !ok {
			errs = append(errs, fmt.Errorf("lint.severity.%s: unknown severity %q", code, sev))
		}
	}

	return errors.Join(errs...)
}

// LintConfig builds the analyzer configuration. Values are assumed to have
// passed Validate; unparsable entries are skipped.
func (c *Config) LintConfig() *lint.Config {
	lintCfg := lint.NewConfig().WithOptions(c.Options)

	for _, entry := range c.Lint.Disabled {
		for _, s := range splitList(entry) {
			if code, ok := lint.ParseCode(s); ok {
				lintCfg.Disable(code)
			}
		}
	}
	for _, entry := range c.Lint.DisabledRules {
		for _, id := range splitList(entry) {
			lintCfg.DisableRule(id)
		}
	}
	for _, entry := range c.Lint.Select {
		for _, s := range splitList(entry) {
			if code, ok := lint.ParseCode(s); ok {
				lintCfg.Select(code)
			}
		}
	}
	for s, sev := range c.Lint.Severity {
		code, ok := lint.ParseCode(s)
		if !ok {
			continue
		}
		if severity, ok := lint.ParseSeverity(sev); ok {
			lintCfg.SetSeverity(code, severity)
		}
	}

	return lintCfg
}

// splitList splits a comma-separated entry, so lists may come from
// environment variables as a single string.
func splitList(entry string) []string {
	var out []string
	for _, part := range strings.Split(entry, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
