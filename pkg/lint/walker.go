package lint

import (
	"fmt"
	"log/slog"

	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

// RuleFailure records a rule that panicked while checking a tree.
// The rule's partial results are discarded; other rules are unaffected.
type RuleFailure struct {
	RuleID string
	Node   syntax.NodeID
	Kind   syntax.Kind
	Phase  string // "register", "visit" or "finish"
	Cause  any
}

func (f *RuleFailure) Error() string {
	if !f.Node.IsValid() {
		return fmt.Sprintf("rule %s failed during %s: %v", f.RuleID, f.Phase, f.Cause)
	}
	return fmt.Sprintf("rule %s failed on %s node %d: %v", f.RuleID, f.Kind, f.Node, f.Cause)
}

// checkerRun is one checker attached to a walk.
type checkerRun struct {
	pass    *Pass
	checker Checker
	failure *RuleFailure
	muted   bool
}

type binding struct {
	run     *checkerRun
	handler Handler
}

// walker drives a single pre-order traversal shared by every checker.
type walker struct {
	tree   *syntax.Tree
	runs   []*checkerRun
	table  map[syntax.Kind][]binding
	logger *slog.Logger
}

func newWalker(tree *syntax.Tree, runs []*checkerRun, logger *slog.Logger) *walker {
	w := &walker{
		tree:   tree,
		runs:   runs,
		table:  make(map[syntax.Kind][]binding),
		logger: logger,
	}
	for _, run := range runs {
		d := newDispatch()
		ok := w.safely(run, syntax.NoNode, "register", func() {
			run.checker = run.pass.rule.New(run.pass.Options)
			run.checker.Register(d)
		})
		if !ok {
			continue
		}
		for kind, handlers := range d.handlers {
			for _, h := range handlers {
				w.table[kind] = append(w.table[kind], binding{run: run, handler: h})
			}
		}
	}
	return w
}

// run visits the tree, then finalizes every healthy checker.
func (w *walker) run() {
	if w.tree.Contains(w.tree.Root()) {
		w.visit(w.tree.Root())
	}
	for _, run := range w.runs {
		if run.failure != nil {
			continue
		}
		fin, ok := run.checker.(Finalizer)
		if !ok {
			continue
		}
		w.safely(run, syntax.NoNode, "finish", func() { fin.Finish(run.pass) })
	}
}

func (w *walker) visit(id syntax.NodeID) {
	var mutedHere []*checkerRun
	for _, b := range w.table[w.tree.Kind(id)] {
		if b.run.failure != nil || b.run.muted {
			continue
		}
		cont := true
		w.safely(b.run, id, "visit", func() { cont = b.handler(b.run.pass, id) })
		if !cont {
			mutedHere = append(mutedHere, b.run)
		}
	}
	for _, run := range mutedHere {
		run.muted = true
	}

	for _, child := range w.tree.Children(id) {
		w.visit(child)
	}

	for _, run := range mutedHere {
		run.muted = false
	}
}

// safely runs fn, converting a panic into a RuleFailure on run.
func (w *walker) safely(run *checkerRun, id syntax.NodeID, phase string, fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			run.failure = &RuleFailure{
				RuleID: run.pass.rule.ID,
				Node:   id,
				Kind:   w.tree.Kind(id),
				Phase:  phase,
				Cause:  r,
			}
			run.pass.violations = nil
			w.logger.Warn("rule failed, results discarded",
				"rule", run.pass.rule.ID,
				"phase", phase,
				"node", int(id),
				"error", fmt.Sprint(r))
			ok = false
		}
	}()
	fn()
	return true
}
