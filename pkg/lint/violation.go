package lint

import (
	"strconv"
	"strings"

	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

// Code is the stable numeric identifier of a violation kind.
// Codes are never reused, even after a violation is retired.
type Code int

// String formats the code the way reports print it, e.g. "WPS223".
func (c Code) String() string {
	return CodePrefix + strconv.Itoa(int(c))
}

// CodePrefix is prepended to numeric codes in reports.
const CodePrefix = "WPS"

// ParseCode accepts "223" or "WPS223".
func ParseCode(s string) (Code, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToUpper(s), CodePrefix)
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return Code(n), true
}

// =============================================================================
// Violation definitions
// =============================================================================

// ViolationDef describes one kind of violation a rule can emit.
type ViolationDef struct {
	Code     Code
	Name     string // e.g. "complexity.too_many_elifs"
	Template string // {0} is the substitution text, {1} the baseline
	Severity Severity

	Description string

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// Format renders the template with the substitution text and, when
// hasBaseline is set, the baseline.
func (d ViolationDef) Format(text string, baseline int, hasBaseline bool) string {
	msg := strings.ReplaceAll(d.Template, "{0}", text)
	if hasBaseline {
		msg = strings.ReplaceAll(msg, "{1}", strconv.Itoa(baseline))
	}
	return msg
}

// =============================================================================
// Violations
// =============================================================================

// Violation is a single finding anchored at a node.
type Violation struct {
	Code     Code
	Name     string
	RuleID   string
	Severity Severity
	Message  string

	// Text is the substitution that was rendered into the template.
	Text string
	// Baseline is the threshold that was exceeded, when HasBaseline is set.
	Baseline    int
	HasBaseline bool

	Node syntax.NodeID
	Pos  syntax.Position

	DocumentationURL string
}

// Less orders violations by position, then code, then message.
func (v Violation) Less(other Violation) bool {
	if v.Pos.Line != other.Pos.Line {
		return v.Pos.Line < other.Pos.Line
	}
	if v.Pos.Column != other.Pos.Column {
		return v.Pos.Column < other.Pos.Column
	}
	if v.Code != other.Code {
		return v.Code < other.Code
	}
	return v.Message < other.Message
}
