package complexity

import (
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint/internal/ast"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

func init() {
	lint.Register(ModuleMembers)
}

// overloadMarker marks typing stubs that share one implementation.
const overloadMarker = "overload"

// TooManyModuleMembers is reported once per module.
var TooManyModuleMembers = lint.ViolationDef{
	Code:        202,
	Name:        "complexity.too_many_module_members",
	Template:    "Found too many module members: {0} > {1}",
	Severity:    lint.SeverityWarning,
	Description: "Module declares too many classes and functions.",

	Rationale: `A module with many top-level classes and functions has too many
responsibilities. It is hard to navigate and usually splits into smaller,
cohesive modules.`,

	Fix: "Move related classes and functions into their own modules.",
}

// TooManyDecorators is reported for each over-decorated declaration.
var TooManyDecorators = lint.ViolationDef{
	Code:        216,
	Name:        "complexity.too_many_decorators",
	Template:    "Found too many decorators: {0} > {1}",
	Severity:    lint.SeverityWarning,
	Description: "Class or function has too many decorators.",

	Rationale: `Every decorator wraps the declaration in another layer of behavior.
Long decorator stacks hide what a function actually does and make its call
path hard to follow.`,

	BadExample: `@first
@second
@third
@fourth
@fifth
@sixth
def handler(): ...`,

	Fix: "Combine related decorators into one, or move the behavior into the function body.",
}

// ModuleMembers counts module-level declarations and decorators.
var ModuleMembers = lint.RuleDef{
	ID:          "complexity.module_members",
	Name:        "ModuleMembers",
	Group:       "complexity",
	Description: "Modules and declarations must stay small.",
	ConfigKeys:  []string{lint.OptMaxModuleMembers, lint.OptMaxDecorators},
	Violations:  []lint.ViolationDef{TooManyModuleMembers, TooManyDecorators},
	New: func(opts lint.Options) lint.Checker {
		return &moduleMembersChecker{opts: opts}
	},
}

type moduleMembersChecker struct {
	opts    lint.Options
	members int
}

func (c *moduleMembersChecker) Register(d *lint.Dispatch) {
	d.On(c.visitDeclaration,
		syntax.KindClassDef,
		syntax.KindFunctionDef,
		syntax.KindAsyncFunctionDef,
	)
}

func (c *moduleMembersChecker) visitDeclaration(p *lint.Pass, id syntax.NodeID) bool {
	if n := len(p.Node(id).Decorators); n > c.opts.MaxDecorators {
		p.ReportCount(TooManyDecorators, id, n, c.opts.MaxDecorators)
	}

	if !p.Scopes.IsModuleLevel(id) {
		return true
	}
	if p.Tree.Kind(id).IsFunction() && ast.HasDecorator(p.Tree, id, overloadMarker) {
		return true
	}
	c.members++
	return true
}

func (c *moduleMembersChecker) Finish(p *lint.Pass) {
	if c.members > c.opts.MaxModuleMembers {
		p.ReportCount(TooManyModuleMembers, p.Tree.Root(), c.members, c.opts.MaxModuleMembers)
	}
}
