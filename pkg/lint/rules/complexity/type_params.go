package complexity

import (
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

func init() {
	lint.Register(TypeParams)
}

// TooManyTypeParams is reported for generic declarations with too many
// type parameters.
var TooManyTypeParams = lint.ViolationDef{
	Code:        240,
	Name:        "complexity.too_many_type_params",
	Template:    "Found too many type params: {0} > {1}",
	Severity:    lint.SeverityWarning,
	Description: "Generic declaration has too many type parameters.",

	Rationale: `Every type parameter is another axis the reader has to track when
instantiating or calling the generic.`,

	BadExample: `class Registry[A, B, C, D, E, F, G]: ...`,
}

// TypeParams limits PEP 695 type parameter lists.
var TypeParams = lint.RuleDef{
	ID:          "complexity.type_params",
	Name:        "TypeParams",
	Group:       "complexity",
	Description: "Generic declarations must take few type parameters.",
	ConfigKeys:  []string{lint.OptMaxTypeParams},
	Violations:  []lint.ViolationDef{TooManyTypeParams},
	New: func(opts lint.Options) lint.Checker {
		return &typeParamsChecker{max: opts.MaxTypeParams}
	},
}

type typeParamsChecker struct {
	max int
}

func (c *typeParamsChecker) Register(d *lint.Dispatch) {
	d.On(c.visitGeneric,
		syntax.KindClassDef,
		syntax.KindFunctionDef,
		syntax.KindAsyncFunctionDef,
		syntax.KindTypeAlias,
	)
}

func (c *typeParamsChecker) visitGeneric(p *lint.Pass, id syntax.NodeID) bool {
	if n := len(p.Node(id).TypeParams); n > c.max {
		p.ReportCount(TooManyTypeParams, id, n, c.max)
	}
	return true
}
