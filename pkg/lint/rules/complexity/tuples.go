package complexity

import (
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

func init() {
	lint.Register(OutputTuple)
	lint.Register(TupleUnpack)
}

// TooLongOutputTuple is reported for returned or yielded tuples with too
// many elements.
var TooLongOutputTuple = lint.ViolationDef{
	Code:        227,
	Name:        "complexity.too_long_output_tuple",
	Template:    "Found too long function output tuple: {0} > {1}",
	Severity:    lint.SeverityWarning,
	Description: "Function returns or yields a tuple with too many elements.",

	Rationale: `Callers of a function returning a long tuple have to remember what each
position means. Past a few elements a named structure documents itself.`,

	BadExample:  `return name, age, email, phone, city, country`,
	GoodExample: `return UserInfo(name, age, email, phone, city, country)`,
	Fix:         "Return a dataclass or named tuple instead.",
}

// TooLongTupleUnpack is reported for assignments unpacking too many names.
var TooLongTupleUnpack = lint.ViolationDef{
	Code:        236,
	Name:        "complexity.too_long_tuple_unpack",
	Template:    "Found too long tuple unpacking: {0} > {1}",
	Severity:    lint.SeverityWarning,
	Description: "Assignment unpacks a tuple into too many targets.",

	Rationale: `Unpacking into many names couples the assignment to the exact shape
and order of the value, which is easy to get wrong silently.`,

	BadExample: `a, b, c, d, e = values`,
	Fix:        "Unpack fewer names, or use attribute access on a structured value.",
}

// OutputTuple limits the length of returned and yielded tuples.
var OutputTuple = lint.RuleDef{
	ID:          "complexity.output_tuple",
	Name:        "OutputTuple",
	Group:       "complexity",
	Description: "Returned and yielded tuples must stay short.",
	Violations:  []lint.ViolationDef{TooLongOutputTuple},
	New: func(lint.Options) lint.Checker {
		return &outputTupleChecker{}
	},
}

// TupleUnpack limits the number of targets unpacked in one assignment.
var TupleUnpack = lint.RuleDef{
	ID:          "complexity.tuple_unpack",
	Name:        "TupleUnpack",
	Group:       "complexity",
	Description: "Tuple unpacking must stay short.",
	ConfigKeys:  []string{lint.OptMaxTupleUnpackLength},
	Violations:  []lint.ViolationDef{TooLongTupleUnpack},
	New: func(opts lint.Options) lint.Checker {
		return &tupleUnpackChecker{max: opts.MaxTupleUnpackLength}
	},
}

type outputTupleChecker struct{}

func (c *outputTupleChecker) Register(d *lint.Dispatch) {
	d.On(c.visitOutput, syntax.KindReturn, syntax.KindYield)
}

func (c *outputTupleChecker) visitOutput(p *lint.Pass, id syntax.NodeID) bool {
	value := p.Node(p.Node(id).Value)
	if value.Kind != syntax.KindTuple {
		return true
	}
	if n := len(value.Elts); n > lint.MaxLenTupleOutput {
		p.ReportCount(TooLongOutputTuple, id, n, lint.MaxLenTupleOutput)
	}
	return true
}

type tupleUnpackChecker struct {
	max int
}

func (c *tupleUnpackChecker) Register(d *lint.Dispatch) {
	d.On(c.visitAssign, syntax.KindAssign)
}

func (c *tupleUnpackChecker) visitAssign(p *lint.Pass, id syntax.NodeID) bool {
	targets := p.Node(id).Targets
	if len(targets) == 0 {
		return true
	}
	target := p.Node(targets[0])
	if target.Kind != syntax.KindTuple {
		return true
	}
	if n := len(target.Elts); n > c.max {
		p.ReportCount(TooLongTupleUnpack, id, n, c.max)
	}
	return true
}
