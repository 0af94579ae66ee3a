package lint_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MIXgleb/wemake-python-styleguide/internal/testutil"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

var (
	nameFound = lint.ViolationDef{
		Code:     9001,
		Name:     "test.name_found",
		Template: "Found name: {0}",
		Severity: lint.SeverityInfo,
	}
	namesCounted = lint.ViolationDef{
		Code:     9002,
		Name:     "test.too_many_names",
		Template: "Found too many names: {0} > {1}",
		Severity: lint.SeverityWarning,
	}
	neverReported = lint.ViolationDef{
		Code:     9003,
		Name:     "test.panics",
		Template: "unreachable",
	}
)

// nameChecker reports every Name and, at the end, the total count.
type nameChecker struct {
	count int
	limit int
}

func (c *nameChecker) Register(d *lint.Dispatch) {
	d.On(c.visitName, syntax.KindName)
}

func (c *nameChecker) visitName(p *lint.Pass, id syntax.NodeID) bool {
	c.count++
	p.Report(nameFound, id, p.Node(id).Name)
	return true
}

func (c *nameChecker) Finish(p *lint.Pass) {
	if c.count > c.limit {
		p.ReportCount(namesCounted, p.Tree.Root(), c.count, c.limit)
	}
}

var namesRule = lint.RuleDef{
	ID:         "test.names",
	Group:      "test",
	Violations: []lint.ViolationDef{nameFound, namesCounted},
	New: func(opts lint.Options) lint.Checker {
		return &nameChecker{limit: opts.MaxDecorators}
	},
}

// panicChecker blows up on the first node of the configured kind.
type panicChecker struct {
	kind   syntax.Kind
	finish bool
}

func (c *panicChecker) Register(d *lint.Dispatch) {
	d.On(func(p *lint.Pass, id syntax.NodeID) bool {
		p.Report(neverReported, id, "partial")
		if !c.finish {
			panic("boom")
		}
		return true
	}, c.kind)
}

func (c *panicChecker) Finish(*lint.Pass) {
	if c.finish {
		panic("boom at finish")
	}
}

func panicRule(id string, finish bool) lint.RuleDef {
	return lint.RuleDef{
		ID:         id,
		Group:      "test",
		Violations: []lint.ViolationDef{neverReported},
		New: func(lint.Options) lint.Checker {
			return &panicChecker{kind: syntax.KindName, finish: finish}
		},
	}
}

// a = b
// class C:
//     c = d
const namesSource = `
kind: Module
body:
  - kind: Assign
    line: 1
    targets: [{kind: Name, id: a, line: 1, col: 0}]
    value: {kind: Name, id: b, line: 1, col: 4}
  - kind: ClassDef
    name: C
    line: 2
    body:
      - kind: Assign
        line: 3
        col: 4
        targets: [{kind: Name, id: c, line: 3, col: 4}]
        value: {kind: Name, id: d, line: 3, col: 8}
`

func messages(vs []lint.Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Message)
	}
	return out
}

func TestAnalyzer_ReportsInSourceOrder(t *testing.T) {
	tree := parse(t, namesSource)
	config := lint.NewConfig()
	config.Options.MaxDecorators = 3

	result := lint.NewAnalyzer(config, lint.WithRules(namesRule)).Analyze(tree)

	assert.Equal(t, []string{
		"Found too many names: 4 > 3",
		"Found name: a",
		"Found name: b",
		"Found name: c",
		"Found name: d",
	}, messages(result.Violations))

	first := result.Violations[1]
	assert.Equal(t, lint.Code(9001), first.Code)
	assert.Equal(t, "test.names", first.RuleID)
	assert.Equal(t, lint.SeverityInfo, first.Severity)
	assert.Equal(t, syntax.Position{Line: 1, Column: 0}, first.Pos)
	assert.Equal(t, "a", first.Text)
	assert.False(t, first.HasBaseline)

	counted := result.ByCode(9002)
	require.Len(t, counted, 1)
	assert.Equal(t, 3, counted[0].Baseline)
	assert.Equal(t, "4", counted[0].Text)
	assert.Equal(t, tree.Root(), counted[0].Node)
}

func TestAnalyzer_FreshCheckerPerTree(t *testing.T) {
	analyzer := lint.NewAnalyzer(lint.NewConfig(), lint.WithRules(namesRule))
	tree := parse(t, namesSource)

	// The shipped threshold is 5; four names per tree must never add up.
	for range 3 {
		result := analyzer.Analyze(tree)
		assert.Empty(t, result.ByCode(9002))
		assert.Len(t, result.ByCode(9001), 4)
	}
}

func TestAnalyzer_Deterministic(t *testing.T) {
	tree := parse(t, namesSource)
	analyzer := lint.NewAnalyzer(lint.NewConfig(), lint.WithRules(namesRule))

	first := analyzer.Analyze(tree)
	second := analyzer.Analyze(tree)
	assert.Equal(t, first, second)
}

func TestAnalyzer_RuleOrderIndependent(t *testing.T) {
	tree := parse(t, namesSource)

	prune := lint.RuleDef{
		ID:         "test.outside_classes",
		Group:      "test",
		Violations: []lint.ViolationDef{{Code: 9004, Template: "outside class: {0}"}},
		New:        func(lint.Options) lint.Checker { return &pruneChecker{} },
	}
	rules := []lint.RuleDef{namesRule, prune, panicRule("test.panics", false)}

	base := lint.NewAnalyzer(lint.NewConfig(), lint.WithRules(rules...)).Analyze(tree)

	rng := rand.New(rand.NewSource(7))
	for range 5 {
		shuffled := append([]lint.RuleDef(nil), rules...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := lint.NewAnalyzer(lint.NewConfig(), lint.WithRules(shuffled...)).Analyze(tree)
		assert.Equal(t, base.Violations, got.Violations)
		require.Len(t, got.Rules, len(base.Rules))
		for i := range base.Rules {
			assert.Equal(t, base.Rules[i].RuleID, got.Rules[i].RuleID)
			assert.Equal(t, base.Rules[i].Violations, got.Rules[i].Violations)
		}
	}
}

// pruneChecker reports names but never descends into classes.
type pruneChecker struct{}

func (c *pruneChecker) Register(d *lint.Dispatch) {
	d.On(func(*lint.Pass, syntax.NodeID) bool { return false }, syntax.KindClassDef)
	d.On(func(p *lint.Pass, id syntax.NodeID) bool {
		p.Report(lint.ViolationDef{Code: 9004, Template: "outside class: {0}"}, id, p.Node(id).Name)
		return true
	}, syntax.KindName)
}

func TestAnalyzer_PruneIsPerChecker(t *testing.T) {
	tree := parse(t, namesSource)
	prune := lint.RuleDef{
		ID:  "test.outside_classes",
		New: func(lint.Options) lint.Checker { return &pruneChecker{} },
	}

	result := lint.NewAnalyzer(lint.NewConfig(), lint.WithRules(prune, namesRule)).Analyze(tree)

	assert.Equal(t, []string{"outside class: a", "outside class: b"}, messages(result.ByCode(9004)))
	assert.Len(t, result.ByCode(9001), 4, "pruning must not affect other checkers")
}

func TestAnalyzer_IsolatesFailures(t *testing.T) {
	tests := []struct {
		name  string
		rule  lint.RuleDef
		phase string
	}{
		{name: "panic while visiting", rule: panicRule("test.panics", false), phase: "visit"},
		{name: "panic while finishing", rule: panicRule("test.panics", true), phase: "finish"},
		{
			name: "panic while constructing",
			rule: lint.RuleDef{
				ID:  "test.panics",
				New: func(lint.Options) lint.Checker { panic("no checker") },
			},
			phase: "register",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(t, namesSource)
			analyzer := lint.NewAnalyzer(lint.NewConfig(),
				lint.WithRules(tt.rule, namesRule),
				lint.WithLogger(testutil.NewTestLogger(t)),
			)

			result := analyzer.Analyze(tree)

			failures := result.Failures()
			require.Len(t, failures, 1)
			assert.Equal(t, "test.panics", failures[0].RuleID)
			assert.Equal(t, tt.phase, failures[0].Phase)
			assert.Contains(t, failures[0].Error(), "test.panics")

			assert.Empty(t, result.ByCode(9003), "partial results of a failed rule are discarded")
			assert.Len(t, result.ByCode(9001), 4, "healthy rules complete")
		})
	}
}

func TestAnalyzer_Config(t *testing.T) {
	tree := parse(t, namesSource)

	t.Run("disabled code", func(t *testing.T) {
		config := lint.NewConfig().Disable(9001)
		config.Options.MaxDecorators = 1
		result := lint.NewAnalyzer(config, lint.WithRules(namesRule)).Analyze(tree)
		assert.Empty(t, result.ByCode(9001))
		assert.Len(t, result.ByCode(9002), 1)
	})

	t.Run("select", func(t *testing.T) {
		config := lint.NewConfig().Select(9002)
		config.Options.MaxDecorators = 1
		result := lint.NewAnalyzer(config, lint.WithRules(namesRule)).Analyze(tree)
		assert.Equal(t, []string{"Found too many names: 4 > 1"}, messages(result.Violations))
	})

	t.Run("disabled rule is never constructed", func(t *testing.T) {
		config := lint.NewConfig().DisableRule("test.panics")
		result := lint.NewAnalyzer(config, lint.WithRules(panicRule("test.panics", false))).Analyze(tree)
		assert.Empty(t, result.Failures())
		assert.Empty(t, result.Rules)
	})

	t.Run("all codes disabled skips the rule", func(t *testing.T) {
		config := lint.NewConfig().Disable(9003)
		analyzer := lint.NewAnalyzer(config, lint.WithRules(panicRule("test.panics", false), namesRule))
		require.Len(t, analyzer.Rules(), 1)
		assert.Equal(t, "test.names", analyzer.Rules()[0].ID)
	})

	t.Run("severity override", func(t *testing.T) {
		config := lint.NewConfig().SetSeverity(9001, lint.SeverityError)
		result := lint.NewAnalyzer(config, lint.WithRules(namesRule)).Analyze(tree)
		for _, v := range result.ByCode(9001) {
			assert.Equal(t, lint.SeverityError, v.Severity)
		}
	})
}
