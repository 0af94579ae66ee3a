package complexity

import (
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint/internal/ast"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

func init() {
	lint.Register(Conditions)
}

// TooManyConditions is reported for boolean expressions with too many operands.
var TooManyConditions = lint.ViolationDef{
	Code:        222,
	Name:        "complexity.too_many_conditions",
	Template:    "Found a condition with too much logic: {0} > {1}",
	Severity:    lint.SeverityWarning,
	Description: "Boolean expression combines too many operands.",

	Rationale: `Conditions chaining many "and" and "or" operands are hard to read and
harder to get right. Nested boolean expressions count towards the same total.`,

	BadExample: `if a and b or c and d or e:
    ...`,

	GoodExample: `is_ready = a and b
is_forced = c and d
if is_ready or is_forced or e:
    ...`,

	Fix: "Extract parts of the condition into well-named variables or functions.",
}

// TooLongCompare is reported for comparison chains with too many operators.
var TooLongCompare = lint.ViolationDef{
	Code:        228,
	Name:        "complexity.too_long_compare",
	Template:    "Found too long compare: {0} > {1}",
	Severity:    lint.SeverityWarning,
	Description: "Comparison chain has too many operators.",

	Rationale: `Long comparison chains such as "a < b < c < d" are hard to reason about.
A chain using only "==" or only "!=" reads as a simple all-equal check and is
allowed one more link.`,

	BadExample:  `if 0 < x <= y < z:`,
	GoodExample: `if 0 < x <= y and y < z:`,
}

// Conditions limits the size of boolean expressions and comparisons.
var Conditions = lint.RuleDef{
	ID:          "complexity.conditions",
	Name:        "Conditions",
	Group:       "complexity",
	Description: "Conditions and comparisons must stay short.",
	Violations:  []lint.ViolationDef{TooManyConditions, TooLongCompare},
	New: func(lint.Options) lint.Checker {
		return &conditionsChecker{}
	},
}

type conditionsChecker struct{}

func (c *conditionsChecker) Register(d *lint.Dispatch) {
	d.On(c.visitBoolOp, syntax.KindBoolOp)
	d.On(c.visitCompare, syntax.KindCompare)
}

func (c *conditionsChecker) visitBoolOp(p *lint.Pass, id syntax.NodeID) bool {
	if n := ast.CountLeaves(p.Tree, id); n > lint.MaxConditions {
		p.ReportCount(TooManyConditions, id, n, lint.MaxConditions)
	}
	return true
}

func (c *conditionsChecker) visitCompare(p *lint.Pass, id syntax.NodeID) bool {
	ops := p.Node(id).Ops
	threshold := lint.MaxCompares
	if uniform(ops, "==") || uniform(ops, "!=") {
		threshold++
	}
	if len(ops) > threshold {
		p.ReportCount(TooLongCompare, id, len(ops), threshold)
	}
	return true
}

// uniform reports whether ops is non-empty and every operator is op.
func uniform(ops []string, op string) bool {
	if len(ops) == 0 {
		return false
	}
	for _, o := range ops {
		if o != op {
			return false
		}
	}
	return true
}
