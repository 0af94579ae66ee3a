// Package lint provides the rule-evaluation engine of the style guide.
//
// # Architecture
//
// An analysis of one tree runs in three steps:
//
//  1. ResolveScopes maps every node to its enclosing module, class or function.
//  2. Every enabled rule builds a fresh Checker, which registers handlers for
//     the node kinds it inspects. A single pre-order walk dispatches each node
//     to every interested handler.
//  3. Checkers implementing Finalizer report once the walk is over.
//
// Checkers never share state, so results do not depend on rule order. A
// panic inside a checker is recovered and recorded as a RuleFailure; the
// other rules complete normally.
//
// # Rule Registration
//
// Rules are registered via init() functions when their packages are imported:
//
//	import _ "github.com/MIXgleb/wemake-python-styleguide/pkg/lint/rules"
//
// # Rule Groups
//
//   - classes: object-oriented structure (shadowed class attributes)
//   - complexity: threshold counters and elif chains
//
// # Configuration
//
// Use Config to control which violations are reported and their severity:
//
//	config := lint.NewConfig()
//	config.Disable(223)
//	config.SetSeverity(601, lint.SeverityError)
//	config.Options.MaxModuleMembers = 10
//
// Thresholds in Options may be overridden by users; the values in the
// Max* constants are compiled in.
//
// # Creating Custom Rules
//
//	var TooManyThings = lint.ViolationDef{
//		Code:     999,
//		Name:     "custom.too_many_things",
//		Template: "Found too many things: {0} > {1}",
//	}
//
//	type thingsChecker struct{}
//
//	func (c *thingsChecker) Register(d *lint.Dispatch) {
//		d.On(c.visit, syntax.KindCall)
//	}
//
//	func init() {
//		lint.Register(lint.RuleDef{
//			ID:         "custom.things",
//			Group:      "custom",
//			Violations: []lint.ViolationDef{TooManyThings},
//			New:        func(lint.Options) lint.Checker { return &thingsChecker{} },
//		})
//	}
package lint
