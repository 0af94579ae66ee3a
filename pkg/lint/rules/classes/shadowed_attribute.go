package classes

import (
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint/internal/ast"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

func init() {
	lint.Register(ShadowedAttributes)
}

// dataclassMarker exempts a class from the shadowing check: dataclass
// fields are declared at class level and become instance attributes.
const dataclassMarker = "dataclass"

// ShadowedClassAttribute is reported when an instance attribute is
// assigned under the name of a class attribute that has a value.
var ShadowedClassAttribute = lint.ViolationDef{
	Code:        601,
	Name:        "oop.shadowed_class_attribute",
	Template:    "Found shadowed class attribute: {0}",
	Severity:    lint.SeverityWarning,
	Description: "Instance attribute shadows a class attribute that has a value.",

	Rationale: `A class attribute with a value is shared by every instance. Assigning an
instance attribute with the same name hides it for that instance only, so reads
through the class and through the instance silently disagree.`,

	BadExample: `class Test:
    x = 0

    def __init__(self, x: int) -> None:
        self.x = x`,

	GoodExample: `class Test:
    x: int

    def __init__(self, x: int) -> None:
        self.x = x`,

	Fix: "Declare the class attribute with an annotation only, or rename one of the two attributes.",
}

// ShadowedAttributes finds instance attributes shadowing class attributes.
var ShadowedAttributes = lint.RuleDef{
	ID:          "classes.shadowed_attributes",
	Name:        "ShadowedAttributes",
	Group:       "classes",
	Description: "Instance attributes must not shadow class attributes with values.",
	Violations:  []lint.ViolationDef{ShadowedClassAttribute},
	New: func(lint.Options) lint.Checker {
		return &shadowChecker{}
	},
}

type shadowChecker struct{}

func (c *shadowChecker) Register(d *lint.Dispatch) {
	d.On(c.visitClass, syntax.KindClassDef)
}

func (c *shadowChecker) visitClass(p *lint.Pass, id syntax.NodeID) bool {
	if ast.HasDecorator(p.Tree, id, dataclassMarker) {
		return true
	}

	valued := classAttributesWithValues(p.Tree, id)
	if len(valued) == 0 {
		return true
	}

	first := make(map[string]syntax.NodeID)
	for _, target := range instanceAssignments(p.Tree, id) {
		name := p.Node(target).Name
		if _, seen := first[name]; !seen {
			first[name] = target
		}
	}

	for _, name := range valued {
		if target, ok := first[name]; ok {
			p.Report(ShadowedClassAttribute, target, name)
		}
	}
	return true
}

// classAttributesWithValues returns, in declaration order and without
// duplicates, the bare names bound with a value in the class body. Bare
// annotations declare a name without a value and are left out.
func classAttributesWithValues(tree *syntax.Tree, class syntax.NodeID) []string {
	var names []string
	seen := make(map[string]bool)
	ast.WalkStatements(tree, tree.Node(class).Body, func(stmt syntax.NodeID) {
		n := tree.Node(stmt)
		if n.Kind == syntax.KindAnnAssign && !n.Value.IsValid() {
			return
		}
		for _, target := range ast.FlattenTargets(tree, ast.AssignTargets(tree, stmt)) {
			t := tree.Node(target)
			if t.Kind != syntax.KindName || seen[t.Name] {
				continue
			}
			seen[t.Name] = true
			names = append(names, t.Name)
		}
	})
	return names
}

// instanceAssignments returns the attribute targets `<first param>.<name>`
// assigned by any method declared directly in the class body.
func instanceAssignments(tree *syntax.Tree, class syntax.NodeID) []syntax.NodeID {
	var targets []syntax.NodeID
	for _, stmt := range tree.Node(class).Body {
		method := tree.Node(stmt)
		if !method.Kind.IsFunction() || len(method.Params) == 0 {
			continue
		}
		receiver := tree.Node(method.Params[0]).Name
		if receiver == "" {
			continue
		}
		ast.WalkStatements(tree, method.Body, func(id syntax.NodeID) {
			for _, target := range ast.FlattenTargets(tree, ast.AssignTargets(tree, id)) {
				t := tree.Node(target)
				if t.Kind == syntax.KindAttribute && tree.IsName(t.Value, receiver) {
					targets = append(targets, target)
				}
			}
		})
	}
	return targets
}
