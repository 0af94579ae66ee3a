package complexity

import (
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

func init() {
	lint.Register(TryExcept)
}

// TooManyExceptCases is reported for try statements with too many handlers.
var TooManyExceptCases = lint.ViolationDef{
	Code:        225,
	Name:        "complexity.too_many_except_cases",
	Template:    "Found too many `except` cases: {0} > {1}",
	Severity:    lint.SeverityWarning,
	Description: "Try statement has too many except handlers.",

	Rationale: `A try block that can fail in many distinct ways does too much. Each
handler is another branch the reader has to keep in mind.`,

	Fix: "Split the try body, or group exceptions handled the same way.",
}

// TooLongTryBody is reported for try bodies with too many statements.
var TooLongTryBody = lint.ViolationDef{
	Code:        229,
	Name:        "complexity.too_long_try_body",
	Template:    "Found too long ``try`` body length: {0} > {1}",
	Severity:    lint.SeverityWarning,
	Description: "Try body has too many statements.",

	Rationale: `The longer the try body, the less obvious it is which statement raises
the handled exception. Keep only the statements that can raise it.`,

	BadExample: `try:
    user = fetch_user(uid)
    send_email(user)
except UserNotFound:
    ...`,

	GoodExample: `try:
    user = fetch_user(uid)
except UserNotFound:
    ...
send_email(user)`,
}

// TooManyExceptExceptions is reported for handlers catching too many types.
var TooManyExceptExceptions = lint.ViolationDef{
	Code:        239,
	Name:        "complexity.too_many_except_exceptions",
	Template:    "Found too many exceptions in `except` case: {0} > {1}",
	Severity:    lint.SeverityWarning,
	Description: "Except handler lists too many exception types.",

	Rationale: `A handler catching many unrelated exception types usually hides
distinct failure modes behind one recovery path.`,

	BadExample: `except (ValueError, TypeError, KeyError, IndexError):`,
	Fix:        "Catch a common base class, or split the handler.",
}

// TooLongFinallyBody is reported for finally blocks with too many statements.
var TooLongFinallyBody = lint.ViolationDef{
	Code:        243,
	Name:        "complexity.too_long_finally_body",
	Template:    "Found too long ``finally`` body length: {0} > {1}",
	Severity:    lint.SeverityWarning,
	Description: "Finally block has too many statements.",

	Rationale: `Code in finally runs on every exit path, including while an exception
propagates. It should do as little as possible.`,

	Fix: "Move cleanup into a context manager or a dedicated function.",
}

// TryExcept limits the size of try statements.
var TryExcept = lint.RuleDef{
	ID:          "complexity.try_except",
	Name:        "TryExcept",
	Group:       "complexity",
	Description: "Try statements must stay small.",
	ConfigKeys: []string{
		lint.OptMaxTryBodyLength,
		lint.OptMaxFinallyLength,
		lint.OptMaxExceptExceptions,
	},
	Violations: []lint.ViolationDef{
		TooManyExceptCases,
		TooLongTryBody,
		TooManyExceptExceptions,
		TooLongFinallyBody,
	},
	New: func(opts lint.Options) lint.Checker {
		return &tryChecker{opts: opts}
	},
}

type tryChecker struct {
	opts lint.Options
}

func (c *tryChecker) Register(d *lint.Dispatch) {
	d.On(c.visitTry, syntax.KindTry, syntax.KindTryStar)
}

func (c *tryChecker) visitTry(p *lint.Pass, id syntax.NodeID) bool {
	n := p.Node(id)

	if count := len(n.Handlers); count > lint.MaxExceptCases {
		p.ReportCount(TooManyExceptCases, id, count, lint.MaxExceptCases)
	}
	if count := len(n.Body); count > c.opts.MaxTryBodyLength {
		p.ReportCount(TooLongTryBody, id, count, c.opts.MaxTryBodyLength)
	}
	if count := len(n.FinalBody); count > c.opts.MaxFinallyLength {
		p.ReportCount(TooLongFinallyBody, id, count, c.opts.MaxFinallyLength)
	}

	for _, handler := range n.Handlers {
		typ := p.Node(p.Node(handler).Type)
		if typ.Kind != syntax.KindTuple {
			continue
		}
		if count := len(typ.Elts); count > c.opts.MaxExceptExceptions {
			p.ReportCount(TooManyExceptExceptions, handler, count, c.opts.MaxExceptExceptions)
		}
	}
	return true
}
