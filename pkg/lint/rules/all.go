package rules

// Blank imports register every rule group with the global registry.
import (
	_ "github.com/MIXgleb/wemake-python-styleguide/pkg/lint/rules/classes"
	_ "github.com/MIXgleb/wemake-python-styleguide/pkg/lint/rules/complexity"
)
