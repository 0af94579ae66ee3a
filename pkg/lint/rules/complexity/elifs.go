package complexity

import (
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

func init() {
	lint.Register(Elifs)
}

// TooManyElifs is reported at the head of an if/elif chain.
var TooManyElifs = lint.ViolationDef{
	Code:        223,
	Name:        "complexity.too_many_elifs",
	Template:    "Found too many `elif` branches: {0} > {1}",
	Severity:    lint.SeverityWarning,
	Description: "If statement has too many elif branches.",

	Rationale: `Long if/elif chains are a sign of dispatch written by hand. They grow
without bound and every new branch has to be read against all the others.`,

	BadExample: `if x == 1:
    ...
elif x == 2:
    ...
elif x == 3:
    ...
elif x == 4:
    ...
elif x == 5:
    ...`,

	Fix: "Use a mapping from keys to handlers, or a match statement.",
}

// Elifs reconstructs if/elif chains and limits their length.
var Elifs = lint.RuleDef{
	ID:          "complexity.elifs",
	Name:        "ElifChains",
	Group:       "complexity",
	Description: "If/elif chains must stay short.",
	Violations:  []lint.ViolationDef{TooManyElifs},
	New: func(lint.Options) lint.Checker {
		return &elifChecker{
			chains: make(map[syntax.NodeID][]syntax.NodeID),
			rootOf: make(map[syntax.NodeID]syntax.NodeID),
		}
	},
}

// elifChecker groups every If of a chain under the outermost If.
//
// The tree has no elif node: "elif" is an If that is the sole statement of
// its parent's orelse. Walking pre-order, a parent is always seen before
// its orelse, so members are attached to the root before they are visited.
type elifChecker struct {
	roots  []syntax.NodeID // in discovery order
	chains map[syntax.NodeID][]syntax.NodeID
	rootOf map[syntax.NodeID]syntax.NodeID
}

func (c *elifChecker) Register(d *lint.Dispatch) {
	d.On(c.visitIf, syntax.KindIf)
}

func (c *elifChecker) visitIf(p *lint.Pass, id syntax.NodeID) bool {
	orelse := p.Node(id).OrElse
	for _, branch := range orelse {
		if p.Tree.Kind(branch) != syntax.KindIf {
			return true
		}
	}

	root, ok := c.rootOf[id]
	if !ok {
		root = id
		if _, known := c.chains[root]; !known {
			c.roots = append(c.roots, root)
			c.chains[root] = nil
		}
	} else {
		c.chains[root] = append(c.chains[root], id)
	}

	for _, branch := range orelse {
		if _, claimed := c.rootOf[branch]; claimed {
			continue
		}
		c.rootOf[branch] = root
		c.chains[root] = append(c.chains[root], branch)
	}
	return true
}

func (c *elifChecker) Finish(p *lint.Pass) {
	for _, root := range c.roots {
		if n := distinct(c.chains[root]); n > lint.MaxElifs {
			p.ReportCount(TooManyElifs, root, n, lint.MaxElifs)
		}
	}
}

func distinct(ids []syntax.NodeID) int {
	seen := make(map[syntax.NodeID]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen)
}
