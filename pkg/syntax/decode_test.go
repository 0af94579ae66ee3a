package syntax_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MIXgleb/wemake-python-styleguide/pkg/syntax"
)

const classSource = `
kind: Module
body:
  - kind: ClassDef
    name: Point
    line: 1
    decorator_list:
      - {kind: Name, id: dataclass, line: 1, col: 1}
    body:
      - kind: AnnAssign
        line: 2
        col: 4
        target: {kind: Name, id: x}
        annotation: {kind: Name, id: int}
        value: {kind: Constant, value: 0}
      - kind: FunctionDef
        name: move
        line: 4
        col: 4
        params:
          - {kind: arg, arg: self}
        body:
          - kind: Return
            line: 5
            value: null
`

func TestDecode_Class(t *testing.T) {
	tree, err := syntax.Decode([]byte(classSource))
	require.NoError(t, err)

	root := tree.Node(tree.Root())
	require.Equal(t, syntax.KindModule, root.Kind)
	require.Len(t, root.Body, 1)

	cls := tree.Node(root.Body[0])
	assert.Equal(t, syntax.KindClassDef, cls.Kind)
	assert.Equal(t, "Point", cls.Name)
	assert.Equal(t, 1, cls.Pos.Line)
	require.Len(t, cls.Decorators, 1)
	assert.Equal(t, "dataclass", tree.NameOf(cls.Decorators[0]))
	require.Len(t, cls.Body, 2)

	ann := tree.Node(cls.Body[0])
	assert.Equal(t, syntax.KindAnnAssign, ann.Kind)
	assert.True(t, tree.IsName(ann.Target, "x"))
	assert.Equal(t, "0", tree.Node(ann.Value).Literal)
	assert.Equal(t, syntax.Position{Line: 2, Column: 4}, ann.Pos)

	fn := tree.Node(cls.Body[1])
	assert.Equal(t, syntax.KindFunctionDef, fn.Kind)
	require.Len(t, fn.Params, 1)
	assert.Equal(t, "self", tree.Node(fn.Params[0]).Name)

	ret := tree.Node(fn.Body[0])
	assert.Equal(t, syntax.KindReturn, ret.Kind)
	assert.False(t, ret.Value.IsValid(), "null value decodes as absent")

	assert.Equal(t, cls.Body[1], tree.Parent(fn.Body[0]))
	assert.Equal(t, root.Body[0], tree.Parent(cls.Body[1]))
	assert.Equal(t, syntax.NoNode, tree.Parent(tree.Root()))
}

func TestDecode_JSON(t *testing.T) {
	src := `{"kind": "Module", "body": [
    {"kind": "Expr", "lineno": 1, "col_offset": 0, "value":
          {"kind": "Compare", "left": {"kind": "Name", "id": "a"},
           "ops": ["==", "=="],
           "comparators": [{"kind": "Name", "id": "b"}, {"kind": "Name", "id": "c"}]}}
  ]}`

	tree, err := syntax.Decode([]byte(src))
	require.NoError(t, err)

	expr := tree.Node(tree.Node(tree.Root()).Body[0])
	cmp := tree.Node(expr.Value)
	assert.Equal(t, syntax.KindCompare, cmp.Kind)
	assert.Equal(t, []string{"==", "=="}, cmp.Ops)
	assert.Len(t, cmp.Comparators, 2)
}

// astDumpSource has the shape produced by walking Python's ast module:
// "_type" tags, an arguments record and operator records.
const astDumpSource = `
_type: Module
type_ignores: []
body:
  - _type: ClassDef
    name: Test
    lineno: 1
    col_offset: 0
    bases: []
    keywords: []
    decorator_list: []
    body:
      - _type: Assign
        lineno: 2
        col_offset: 4
        targets: [{_type: Name, id: x, ctx: {_type: Store}}]
        value: {_type: Constant, value: 0, kind: null}
      - _type: FunctionDef
        name: __init__
        lineno: 4
        col_offset: 4
        decorator_list: []
        returns: null
        args:
          _type: arguments
          posonlyargs: []
          args:
            - {_type: arg, arg: self, annotation: null}
            - {_type: arg, arg: y, annotation: null}
          vararg: {_type: arg, arg: rest}
          kwonlyargs: []
          kw_defaults: []
          kwarg: null
          defaults: []
        body:
          - _type: Expr
            lineno: 5
            col_offset: 8
            value:
              _type: Compare
              left: {_type: Name, id: a, ctx: {_type: Load}}
              ops: [{_type: Eq}, {_type: NotEq}, {_type: IsNot}]
              comparators:
                - {_type: Name, id: b}
                - {_type: Name, id: c}
                - {_type: Constant, value: null, kind: null}
          - _type: Expr
            value:
              _type: BoolOp
              op: {_type: And}
              values: [{_type: Name, id: a}, {_type: Name, id: b}]
`

func TestDecode_AstDump(t *testing.T) {
	tree, err := syntax.Decode([]byte(astDumpSource))
	require.NoError(t, err)

	cls := tree.Node(tree.Node(tree.Root()).Body[0])
	require.Equal(t, syntax.KindClassDef, cls.Kind)

	assign := tree.Node(cls.Body[0])
	value := tree.Node(assign.Value)
	assert.Equal(t, syntax.KindConstant, value.Kind, "_type wins over the Constant kind field")
	assert.Equal(t, "0", value.Literal)

	fn := tree.Node(cls.Body[1])
	require.Len(t, fn.Params, 3)
	assert.Equal(t, "self", tree.Node(fn.Params[0]).Name)
	assert.Equal(t, "y", tree.Node(fn.Params[1]).Name)
	assert.Equal(t, "rest", tree.Node(fn.Params[2]).Name)
	assert.Empty(t, fn.Args)

	cmp := tree.Node(tree.Node(fn.Body[0]).Value)
	assert.Equal(t, []string{"==", "!=", "is not"}, cmp.Ops)
	assert.Equal(t, syntax.KindConstant, tree.Kind(cmp.Comparators[2]))

	boolOp := tree.Node(tree.Node(fn.Body[1]).Value)
	assert.Equal(t, syntax.KindBoolOp, boolOp.Kind)
	assert.Equal(t, "and", boolOp.Op)
}

func TestDecode_KindThenType(t *testing.T) {
	src := `kind: Module
body:
  - {kind: null, _type: Pass}
  - {_type: Constant, kind: u, value: s}
`
	tree, err := syntax.Decode([]byte(src))
	require.NoError(t, err)

	body := tree.Node(tree.Root()).Body
	assert.Equal(t, syntax.KindPass, tree.Kind(body[0]))
	assert.Equal(t, syntax.KindConstant, tree.Kind(body[1]))
}

func TestDecode_Degrades(t *testing.T) {
	src := `
kind: Module
body:
  - kind: NamedExpr
    target: {kind: Name, id: y}
  - kind: With
    items:
      - context_expr: {kind: Call, func: {kind: Name, id: open}}
        optional_vars: {kind: Name, id: f}
    body:
      - {kind: Global, names: [a, b]}
`
	tree, err := syntax.Decode([]byte(src))
	require.NoError(t, err)

	body := tree.Node(tree.Root()).Body
	require.Len(t, body, 2)
	assert.Equal(t, syntax.KindUnknown, tree.Kind(body[0]))

	with := tree.Node(body[1])
	require.Len(t, with.Elts, 1)
	item := tree.Node(with.Elts[0])
	assert.Equal(t, syntax.KindUnknown, item.Kind)
	assert.True(t, tree.IsName(item.Target, "f"))
	assert.Empty(t, tree.Node(with.Body[0]).Elts)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		invalid bool
	}{
		{name: "empty", src: "", invalid: true},
		{name: "not a module", src: "kind: ClassDef\nname: A\n", invalid: true},
		{name: "scalar root", src: "42\n", invalid: true},
		{name: "scalar child", src: "kind: Module\nbody:\n  - kind: Return\n    value: {kind: Name}\n    test: 3\n", invalid: true},
		{name: "scalar ops", src: "kind: Module\nbody:\n  - kind: Compare\n    ops: \"==\"\n", invalid: true},
		{name: "malformed yaml", src: "kind: [Module\n", invalid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := syntax.Decode([]byte(tt.src))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, syntax.ErrInvalidTree)
			}
		})
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "module.yaml")
	require.NoError(t, os.WriteFile(path, []byte(classSource), 0o600))

	tree, err := syntax.DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, syntax.KindModule, tree.Kind(tree.Root()))

	_, err = syntax.DecodeFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
