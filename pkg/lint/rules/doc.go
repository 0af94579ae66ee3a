// Package rules registers the rule catalog.
//
// Rules are organized by category:
//   - classes: class structure (WPS6xx)
//   - complexity: size and branching limits (WPS2xx)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/MIXgleb/wemake-python-styleguide/pkg/lint/rules"
//
// Individual rule categories can also be imported:
//
//	import _ "github.com/MIXgleb/wemake-python-styleguide/pkg/lint/rules/complexity"
package rules
