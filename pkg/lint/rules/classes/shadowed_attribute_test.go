package classes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MIXgleb/wemake-python-styleguide/internal/testutil"
	"github.com/MIXgleb/wemake-python-styleguide/internal/testutil/py"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint"
	"github.com/MIXgleb/wemake-python-styleguide/pkg/lint/rules/classes"
)

// runRule analyzes src with the shadowing rule only.
func runRule(t *testing.T, src string) []lint.Violation {
	t.Helper()
	tree := testutil.ParseTree(t, src)
	result := lint.NewAnalyzer(lint.NewConfig(), lint.WithRules(classes.ShadowedAttributes)).Analyze(tree)
	require.Empty(t, result.Failures())
	return result.Violations
}

func self(field string) string {
	return py.Attr(py.Name("self"), field)
}

var fieldNames = []string{"field1", "_field1", "__field1"}

func TestShadowedAttributes(t *testing.T) {
	tests := []struct {
		name     string
		src      func(field string) string
		wantDiag bool
	}{
		// Violations
		{
			name: "plain class attribute",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.Assign(py.Name(f), py.Const("0")),
					py.Method("__init__", py.Assign(self(f), py.Const("1"))),
				))
			},
			wantDiag: true,
		},
		{
			name: "annotated class attribute with value",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.AnnAssign(py.Name(f), py.Name("int"), py.Const("0")),
					py.Method("__init__", py.Assign(self(f), py.Const("1"))),
				))
			},
			wantDiag: true,
		},
		{
			name: "class attribute declared under if",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.If(py.Name("flag"), []string{py.Assign(py.Name(f), py.Const("0"))}),
					py.Method("__init__", py.Assign(self(f), py.Const("1"))),
				))
			},
			wantDiag: true,
		},
		{
			name: "assignment in a method other than the initializer",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.Assign(py.Name(f), py.Const("0")),
					py.Method("constructor", py.Assign(self(f), py.Const("1"))),
				))
			},
			wantDiag: true,
		},
		{
			name: "assignment nested in a method's control flow",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.Assign(py.Name(f), py.Const("0")),
					py.Func(methodDef("reset"), py.For(py.Name("_"), py.Name("items"), py.Assign(self(f), py.Const("1")))),
				))
			},
			wantDiag: true,
		},
		{
			name: "async method",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.Assign(py.Name(f), py.Const("0")),
					py.Func(py.Def{Name: "load", Async: true, Params: []string{"self"}}, py.Assign(self(f), py.Const("1"))),
				))
			},
			wantDiag: true,
		},
		{
			name: "unrelated decorator",
			src: func(f string) string {
				return py.Module(py.Class("Test", []string{py.Name("not_a_dataclass")},
					py.Assign(py.Name(f), py.Const("0")),
					py.Method("__post_init__", py.Assign(self(f), py.Const("1"))),
				))
			},
			wantDiag: true,
		},
		{
			name: "subscripted decorator",
			src: func(f string) string {
				return py.Module(py.Class("Test", []string{py.Subscript(py.Name("not_dataclasses"), py.Const("0"))},
					py.Assign(py.Name(f), py.Const("0")),
					py.Method("__post_init__", py.Assign(self(f), py.Const("1"))),
				))
			},
			wantDiag: true,
		},
		{
			name: "receiver is the first parameter whatever its name",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.Assign(py.Name(f), py.Const("0")),
					py.Func(py.Def{Name: "__init__", Params: []string{"this"}}, py.Assign(py.Attr(py.Name("this"), f), py.Const("1"))),
				))
			},
			wantDiag: true,
		},
		{
			name: "tuple unpacking at both levels",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.Assign(py.Tuple(py.Name(f), py.Name("other")), py.Tuple(py.Const("0"), py.Const("1"))),
					py.Method("__init__", py.Assign(py.Tuple(self(f), py.Name("local")), py.Name("pair"))),
				))
			},
			wantDiag: true,
		},

		// Safe
		{
			name: "bare annotation",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.AnnAssign(py.Name(f), py.Name("int"), ""),
					py.Method("__init__", py.Assign(self(f), py.Const("1"))),
				))
			},
		},
		{
			name: "attribute only read",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.Assign(py.Name(f), py.Const("0")),
					py.Method("print_field", py.Expr(py.Call(py.Name("print"), self(f)))),
				))
			},
		},
		{
			name: "local variable in method",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.Assign(py.Name(f), py.Const("0")),
					py.Method("__init__", py.Assign(py.Name(f), py.Const("1"))),
				))
			},
		},
		{
			name: "assignment on another object",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.Assign(py.Name(f), py.Const("0")),
					py.Method("__init__", py.Assign(py.Attr(py.Name("other"), f), py.Const("1"))),
				))
			},
		},
		{
			name: "dotted class-level target",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.Assign(py.Attr(py.Name("prefix"), f), py.Const("0")),
					py.Method("__init__", py.Assign(self(f), py.Const("1"))),
				))
			},
		},
		{
			name: "annotated dotted class-level target",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.AnnAssign(py.Attr(py.Name("prefix"), f), py.Name("int"), py.Const("0")),
					py.Method("__init__", py.Assign(self(f), py.Const("1"))),
				))
			},
		},
		{
			name: "dataclass",
			src: func(f string) string {
				return py.Module(py.Class("Test", []string{py.Name("dataclass")},
					py.Assign(py.Name(f), py.Const("0")),
					py.Method("__post_init__", py.Assign(self(f), py.Const("1"))),
				))
			},
		},
		{
			name: "dataclass called with arguments",
			src: func(f string) string {
				return py.Module(py.Class("Test", []string{py.Call(py.Name("dataclass"))},
					py.Assign(py.Name(f), py.Const("0")),
					py.Method("__post_init__", py.Assign(self(f), py.Const("1"))),
				))
			},
		},
		{
			name: "dataclass through its module",
			src: func(f string) string {
				return py.Module(py.Class("Test", []string{py.Call(py.Attr(py.Name("dataclasses"), "dataclass"))},
					py.Assign(py.Name(f), py.Const("0")),
					py.Method("__post_init__", py.Assign(self(f), py.Const("1"))),
				))
			},
		},
		{
			name: "module-level names",
			src: func(f string) string {
				return py.Module(
					py.Assign(py.Name(f), py.Const("0")),
					py.Func(py.Def{Name: "init", Params: []string{"self"}}, py.Assign(self(f), py.Const("1"))),
				)
			},
		},
		{
			name: "assignment in a nested function",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.Assign(py.Name(f), py.Const("0")),
					py.Method("__init__",
						py.Func(py.Def{Name: "helper", Params: []string{"self"}}, py.Assign(self(f), py.Const("1"))),
					),
				))
			},
		},
		{
			name: "method without parameters",
			src: func(f string) string {
				return py.Module(py.Class("Test", nil,
					py.Assign(py.Name(f), py.Const("0")),
					py.Func(py.Def{Name: "build"}, py.Assign(self(f), py.Const("1"))),
				))
			},
		},
	}

	for _, tt := range tests {
		for _, field := range fieldNames {
			t.Run(tt.name+"/"+field, func(t *testing.T) {
				violations := runRule(t, tt.src(field))
				if !tt.wantDiag {
					assert.Empty(t, violations)
					return
				}
				require.Len(t, violations, 1)
				assert.Equal(t, lint.Code(601), violations[0].Code)
				assert.Equal(t, "Found shadowed class attribute: "+field, violations[0].Message)
				assert.Equal(t, field, violations[0].Text)
			})
		}
	}
}

func methodDef(name string) py.Def {
	return py.Def{Name: name, Params: []string{"self"}}
}

func TestShadowedAttributes_OnePerName(t *testing.T) {
	src := py.Module(py.Class("Test", nil,
		py.Assign(py.Name("b"), py.Const("0")),
		py.Assign(py.Name("a"), py.Const("0")),
		py.AnnAssign(py.Name("c"), py.Name("int"), ""),
		py.Method("__init__",
			py.At(5, 8, py.Assign(py.At(5, 8, self("a")), py.Const("1"))),
			py.At(6, 8, py.Assign(py.At(6, 8, self("b")), py.Const("1"))),
			py.At(7, 8, py.Assign(py.At(7, 8, self("c")), py.Const("1"))),
		),
		py.Method("reset",
			py.At(10, 8, py.Assign(py.At(10, 8, self("a")), py.Const("2"))),
		),
	))

	violations := runRule(t, src)
	require.Len(t, violations, 2)

	assert.Equal(t, "a", violations[0].Text)
	assert.Equal(t, 5, violations[0].Pos.Line, "anchored at the first instance assignment")
	assert.Equal(t, "b", violations[1].Text)
	assert.Equal(t, 6, violations[1].Pos.Line)
}

func TestShadowedAttributes_NestedClasses(t *testing.T) {
	src := py.Module(py.Class("Outer", nil,
		py.Assign(py.Name("x"), py.Const("0")),
		py.Class("Inner", nil,
			py.Method("__init__", py.Assign(self("x"), py.Const("1"))),
		),
	))

	assert.Empty(t, runRule(t, src), "each class only sees its own attributes")
}

func TestShadowedAttributes_EndToEnd(t *testing.T) {
	// class Test:
	//     x = 0
	//     def __init__(self):
	//         self.x = 1
	src := `
kind: Module
body:
  - kind: ClassDef
    name: Test
    line: 1
    body:
      - kind: Assign
        line: 2
        col: 4
        targets: [{kind: Name, id: x, line: 2, col: 4}]
        value: {kind: Constant, value: 0}
      - kind: FunctionDef
        name: __init__
        line: 3
        col: 4
        params: [{kind: arg, arg: self}]
        body:
          - kind: Assign
            line: 4
            col: 8
            targets:
              - {kind: Attribute, attr: x, line: 4, col: 8, value: {kind: Name, id: self}}
            value: {kind: Constant, value: 1}
`
	tree := testutil.ParseTree(t, src)
	result := lint.NewAnalyzer(lint.NewConfig()).Analyze(tree)

	shadowed := result.ByCode(601)
	require.Len(t, shadowed, 1)
	assert.Equal(t, "Found shadowed class attribute: x", shadowed[0].Message)
	assert.Equal(t, 4, shadowed[0].Pos.Line)
	assert.Equal(t, 8, shadowed[0].Pos.Column)
	assert.Equal(t, "classes.shadowed_attributes", shadowed[0].RuleID)
}

func TestShadowedAttributes_AstDump(t *testing.T) {
	// The same class as above, in the shape Python's ast module dumps it.
	src := `
_type: Module
type_ignores: []
body:
  - _type: ClassDef
    name: Test
    lineno: 1
    col_offset: 0
    decorator_list: []
    body:
      - _type: Assign
        lineno: 2
        col_offset: 4
        targets: [{_type: Name, id: x, ctx: {_type: Store}}]
        value: {_type: Constant, value: 0, kind: null}
      - _type: FunctionDef
        name: __init__
        lineno: 3
        col_offset: 4
        decorator_list: []
        args:
          _type: arguments
          posonlyargs: []
          args: [{_type: arg, arg: self, annotation: null}]
          kwonlyargs: []
          kw_defaults: []
          defaults: []
        body:
          - _type: Assign
            lineno: 4
            col_offset: 8
            targets:
              - _type: Attribute
                attr: x
                lineno: 4
                col_offset: 8
                ctx: {_type: Store}
                value: {_type: Name, id: self, ctx: {_type: Load}}
            value: {_type: Constant, value: 2, kind: null}
`
	violations := runRule(t, src)
	require.Len(t, violations, 1)
	assert.Equal(t, "x", violations[0].Text)
	assert.Equal(t, 4, violations[0].Pos.Line)
}

func TestShadowedAttributes_OnlyAssignmentsBind(t *testing.T) {
	selfX := py.Attr(py.Name("self"), "x")
	tests := []struct {
		name string
		stmt string
	}{
		{name: "augmented assignment", stmt: "{kind: AugAssign, op: Add, target: " + selfX + ", value: " + py.Const("1") + "}"},
		{name: "for target", stmt: py.For(selfX, py.Name("items"), py.Pass())},
		{name: "with target", stmt: "{kind: With, items: [{context_expr: " + py.Call(py.Name("open")) + ", optional_vars: " + selfX + "}], body: [" + py.Pass() + "]}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := py.Module(py.Class("Test", nil,
				py.Assign(py.Name("x"), py.Const("0")),
				py.Method("update", tt.stmt),
			))
			assert.Empty(t, runRule(t, src))
		})
	}
}
