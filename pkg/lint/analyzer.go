package lint

import (
	"log/slog"
	"sort"

	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

// RuleResult holds the violations one rule produced for one tree, in the
// order the rule emitted them.
type RuleResult struct {
	RuleID     string
	Violations []Violation
	Failure    *RuleFailure
}

// Result is the outcome of analyzing one tree.
type Result struct {
	// Rules holds one entry per rule that ran, sorted by rule ID.
	Rules []RuleResult
	// Violations merges every rule's violations in source order.
	Violations []Violation
}

// Failures returns the rules that faulted.
func (r *Result) Failures() []*RuleFailure {
	var failures []*RuleFailure
	for _, rr := range r.Rules {
		if rr.Failure != nil {
			failures = append(failures, rr.Failure)
		}
	}
	return failures
}

// ByCode returns the violations with the given code.
func (r *Result) ByCode(code Code) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Code == code {
			out = append(out, v)
		}
	}
	return out
}

// Analyzer runs rules against trees.
type Analyzer struct {
	config *Config
	rules  []RuleDef
	logger *slog.Logger
}

// AnalyzerOption configures an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithRules replaces the registered rule set, in the given order.
func WithRules(rules ...RuleDef) AnalyzerOption {
	return func(a *Analyzer) {
		a.rules = rules
	}
}

// WithLogger sets the logger used to report rule failures.
func WithLogger(logger *slog.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewAnalyzer creates an analyzer over the registered rules.
func NewAnalyzer(config *Config, opts ...AnalyzerOption) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	a := &Analyzer{
		config: config,
		rules:  AllRules(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Rules returns the rules the analyzer will run, after configuration.
func (a *Analyzer) Rules() []RuleDef {
	rules := make([]RuleDef, 0, len(a.rules))
	for _, rule := range a.rules {
		if !a.config.IsRuleDisabled(rule) {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Analyze resolves scopes, builds a fresh checker for every enabled rule
// and walks the tree once. It is safe to call concurrently for different
// trees.
func (a *Analyzer) Analyze(tree *syntax.Tree) *Result {
	scopes := ResolveScopes(tree)

	rules := a.Rules()
	runs := make([]*checkerRun, 0, len(rules))
	for i := range rules {
		pass := &Pass{
			Tree:    tree,
			Scopes:  scopes,
			Options: a.config.Options,
			rule:    &rules[i],
			config:  a.config,
		}
		runs = append(runs, &checkerRun{pass: pass})
	}

	newWalker(tree, runs, a.logger).run()

	result := &Result{Rules: make([]RuleResult, 0, len(runs))}
	for _, run := range runs {
		rr := RuleResult{RuleID: run.pass.rule.ID, Failure: run.failure}
		for _, v := range run.pass.violations {
			if !a.config.IsDisabled(v.Code) {
				rr.Violations = append(rr.Violations, v)
			}
		}
		result.Rules = append(result.Rules, rr)
		result.Violations = append(result.Violations, rr.Violations...)
	}

	sort.SliceStable(result.Rules, func(i, j int) bool {
		return result.Rules[i].RuleID < result.Rules[j].RuleID
	})
	sort.SliceStable(result.Violations, func(i, j int) bool {
		return result.Violations[i].Less(result.Violations[j])
	})
	return result
}
