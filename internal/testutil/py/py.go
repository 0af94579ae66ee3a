// Package py builds syntax tree documents for tests in flow-style YAML,
// so fixtures nest like the Python they describe without worrying about
// indentation:
//
//	py.Module(py.Class("Test", nil,
//		py.Assign(py.Name("x"), py.Const("0")),
//	))
package py

import (
	"fmt"
	"strings"
)

// Module wraps statements in a module document.
func Module(body ...string) string {
	return fmt.Sprintf("{kind: Module, body: [%s]}", join(body))
}

// Name is a bare name.
func Name(id string) string {
	return fmt.Sprintf("{kind: Name, id: %q}", id)
}

// Attr is the attribute access base.attr.
func Attr(base, attr string) string {
	return fmt.Sprintf("{kind: Attribute, attr: %q, value: %s}", attr, base)
}

// Const is a literal constant.
func Const(text string) string {
	return fmt.Sprintf("{kind: Constant, value: %q}", text)
}

// Call is a call of fn with positional args.
func Call(fn string, args ...string) string {
	return fmt.Sprintf("{kind: Call, func: %s, args: [%s]}", fn, join(args))
}

// Subscript is value[index].
func Subscript(value, index string) string {
	return fmt.Sprintf("{kind: Subscript, value: %s, slice: %s}", value, index)
}

// Tuple is a tuple display.
func Tuple(elts ...string) string {
	return fmt.Sprintf("{kind: Tuple, elts: [%s]}", join(elts))
}

// Names returns n distinct bare names a0..a(n-1).
func Names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = Name(fmt.Sprintf("a%d", i))
	}
	return out
}

// BoolOp combines values with "and" or "or".
func BoolOp(op string, values ...string) string {
	return fmt.Sprintf("{kind: BoolOp, op: %q, values: [%s]}", op, join(values))
}

// Compare is left op1 c1 op2 c2 ...; one comparator per operator.
func Compare(left string, ops ...string) string {
	quoted := make([]string, len(ops))
	comparators := make([]string, len(ops))
	for i, op := range ops {
		quoted[i] = fmt.Sprintf("%q", op)
		comparators[i] = Name(fmt.Sprintf("c%d", i))
	}
	return fmt.Sprintf("{kind: Compare, left: %s, ops: [%s], comparators: [%s]}",
		left, join(quoted), join(comparators))
}

// Expr is an expression statement.
func Expr(value string) string {
	return fmt.Sprintf("{kind: Expr, value: %s}", value)
}

// Assign is targets... = value.
func Assign(target, value string, more ...string) string {
	targets := append([]string{target}, more...)
	return fmt.Sprintf("{kind: Assign, targets: [%s], value: %s}", join(targets), value)
}

// AnnAssign is target: annotation = value; an empty value is a bare
// annotation.
func AnnAssign(target, annotation, value string) string {
	if value == "" {
		return fmt.Sprintf("{kind: AnnAssign, target: %s, annotation: %s}", target, annotation)
	}
	return fmt.Sprintf("{kind: AnnAssign, target: %s, annotation: %s, value: %s}", target, annotation, value)
}

// Pass is the pass statement.
func Pass() string {
	return "{kind: Pass}"
}

// Return returns value; an empty value is a bare return.
func Return(value string) string {
	if value == "" {
		return "{kind: Return}"
	}
	return fmt.Sprintf("{kind: Return, value: %s}", value)
}

// Yield yields value.
func Yield(value string) string {
	return Expr(fmt.Sprintf("{kind: Yield, value: %s}", value))
}

// If is an if statement; orelse holds the else branch, where a lone If
// is an elif.
func If(test string, body []string, orelse ...string) string {
	return fmt.Sprintf("{kind: If, test: %s, body: [%s], orelse: [%s]}", test, join(body), join(orelse))
}

// For is a for loop over iter.
func For(target, iter string, body ...string) string {
	return fmt.Sprintf("{kind: For, target: %s, iter: %s, body: [%s]}", target, iter, join(body))
}

// Def describes a function or class declaration.
type Def struct {
	Name       string
	Async      bool
	Params     []string
	Decorators []string
	TypeParams []string
}

// Func is a function declaration.
func Func(def Def, body ...string) string {
	kind := "FunctionDef"
	if def.Async {
		kind = "AsyncFunctionDef"
	}
	params := make([]string, len(def.Params))
	for i, p := range def.Params {
		params[i] = fmt.Sprintf("{kind: arg, arg: %q}", p)
	}
	return fmt.Sprintf("{kind: %s, name: %q, params: [%s], decorator_list: [%s], type_params: [%s], body: [%s]}",
		kind, def.Name, join(params), join(def.Decorators), join(def.TypeParams), join(body))
}

// Method is a function declaration taking self.
func Method(name string, body ...string) string {
	return Func(Def{Name: name, Params: []string{"self"}}, body...)
}

// Class is a class declaration.
func Class(name string, decorators []string, body ...string) string {
	return ClassDef(Def{Name: name, Decorators: decorators}, body...)
}

// ClassDef is a class declaration with every field under control.
func ClassDef(def Def, body ...string) string {
	return fmt.Sprintf("{kind: ClassDef, name: %q, decorator_list: [%s], type_params: [%s], body: [%s]}",
		def.Name, join(def.Decorators), join(def.TypeParams), join(body))
}

// TypeVar is a PEP 695 type parameter.
func TypeVar(name string) string {
	return fmt.Sprintf("{kind: TypeVar, name: %q}", name)
}

// TypeAlias is `type name[params] = value`.
func TypeAlias(name string, value string, params ...string) string {
	return fmt.Sprintf("{kind: TypeAlias, name: %q, type_params: [%s], value: %s}", name, join(params), value)
}

// Try is a try statement. Handlers are built with Handler.
func Try(body, handlers, orelse, finalbody []string) string {
	return fmt.Sprintf("{kind: Try, body: [%s], handlers: [%s], orelse: [%s], finalbody: [%s]}",
		join(body), join(handlers), join(orelse), join(finalbody))
}

// TryStar is a try statement with except* handlers.
func TryStar(body, handlers []string) string {
	return fmt.Sprintf("{kind: TryStar, body: [%s], handlers: [%s]}", join(body), join(handlers))
}

// Handler is an except clause; an empty typ catches everything.
func Handler(typ string, body ...string) string {
	if len(body) == 0 {
		body = []string{Pass()}
	}
	if typ == "" {
		return fmt.Sprintf("{kind: ExceptHandler, body: [%s]}", join(body))
	}
	return fmt.Sprintf("{kind: ExceptHandler, type: %s, body: [%s]}", typ, join(body))
}

// Repeat returns n copies of stmt.
func Repeat(n int, stmt string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = stmt
	}
	return out
}

// At sets the position of a node snippet.
func At(line, col int, node string) string {
	return strings.Replace(node, "{", fmt.Sprintf("{line: %d, col: %d, ", line, col), 1)
}

func join(items []string) string {
	return strings.Join(items, ", ")
}
