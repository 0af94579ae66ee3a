package lint

import (
	"strconv"

	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is the registration record of a rule.
// The definition itself is stateless; New builds the per-tree Checker
// that holds whatever state the rule accumulates during a walk.
type RuleDef struct {
	ID          string // Unique identifier, e.g. "complexity.elifs"
	Name        string // Human-readable name, e.g. "ElifChain"
	Group       string // Category, e.g. "complexity", "classes"
	Description string // Human-readable description
	ConfigKeys  []string

	// Violations lists every violation kind the rule can emit.
	Violations []ViolationDef

	// New constructs a fresh checker for one tree.
	New func(opts Options) Checker
}

// Codes returns the violation codes the rule can emit.
func (r RuleDef) Codes() []Code {
	codes := make([]Code, len(r.Violations))
	for i, v := range r.Violations {
		codes[i] = v.Code
	}
	return codes
}

// =============================================================================
// Checkers
// =============================================================================

// Checker is one rule's state over one tree.
// Register binds the checker's handlers to the node kinds it inspects.
type Checker interface {
	Register(d *Dispatch)
}

// Finalizer is implemented by checkers that report once the whole tree
// has been visited.
type Finalizer interface {
	Finish(p *Pass)
}

// Handler inspects one node. Returning false skips the node's subtree for
// the handler's checker only.
type Handler func(p *Pass, id syntax.NodeID) bool

// Dispatch is a checker's handler table keyed by node kind.
type Dispatch struct {
	handlers map[syntax.Kind][]Handler
}

func newDispatch() *Dispatch {
	return &Dispatch{handlers: make(map[syntax.Kind][]Handler)}
}

// On registers h for every kind in kinds. Kinds listed together are
// treated as interchangeable by the handler.
func (d *Dispatch) On(h Handler, kinds ...syntax.Kind) {
	for _, k := range kinds {
		d.handlers[k] = append(d.handlers[k], h)
	}
}

// =============================================================================
// Pass
// =============================================================================

// Pass is the view of the analysis handed to one checker: the tree, the
// resolved scopes, the thresholds and the checker's own violation buffer.
type Pass struct {
	Tree    *syntax.Tree
	Scopes  *Scopes
	Options Options

	rule       *RuleDef
	config     *Config
	violations []Violation
}

// Node returns the node for id.
func (p *Pass) Node(id syntax.NodeID) *syntax.Node {
	return p.Tree.Node(id)
}

// Report records a violation rendered with text only.
func (p *Pass) Report(def ViolationDef, anchor syntax.NodeID, text string) {
	p.report(def, anchor, text, 0, false)
}

// ReportCount records a "count > baseline" violation.
func (p *Pass) ReportCount(def ViolationDef, anchor syntax.NodeID, count, baseline int) {
	p.report(def, anchor, strconv.Itoa(count), baseline, true)
}

func (p *Pass) report(def ViolationDef, anchor syntax.NodeID, text string, baseline int, hasBaseline bool) {
	p.violations = append(p.violations, Violation{
		Code:             def.Code,
		Name:             def.Name,
		RuleID:           p.rule.ID,
		Severity:         p.config.GetSeverity(def.Code, def.Severity),
		Message:          def.Format(text, baseline, hasBaseline),
		Text:             text,
		Baseline:         baseline,
		HasBaseline:      hasBaseline,
		Node:             anchor,
		Pos:              p.Tree.Node(anchor).Pos,
		DocumentationURL: BuildDocURL(def.Code),
	})
}
