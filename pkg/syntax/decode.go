package syntax

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTree is returned when a document does not describe a module tree.
var ErrInvalidTree = errors.New("invalid syntax tree")

// DecodeFile reads and decodes a tree document from path.
func DecodeFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the caller's file discovery
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file: %w", err)
	}
	tree, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// Decode builds a Tree from a YAML or JSON interchange document.
//
// Every node is a mapping with a "kind" naming its ast class; field names
// follow the Python ast module (value, targets, body, orelse, handlers,
// finalbody, decorator_list, type_params, ...). Unknown kinds decode as
// KindUnknown, as do helper records without a kind such as withitem, and
// unknown keys are ignored.
//
// Dumps of the ast module itself are accepted too: "_type" names the class
// and takes precedence over a "kind" field (Constant has its own), a
// FunctionDef's arguments record is flattened into its parameters, and
// operator records such as {_type: Eq} decode to their symbols.
func Decode(data []byte) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tree document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidTree)
	}

	d := &decoder{b: NewBuilder()}
	root, err := d.node(doc.Content[0])
	if err != nil {
		return nil, err
	}
	if kind := d.b.Node(root).Kind; kind != KindModule {
		return nil, fmt.Errorf("%w: root is %s, want Module", ErrInvalidTree, kind)
	}
	return d.b.Build(root), nil
}

type decoder struct {
	b *Builder
}

func (d *decoder) node(y *yaml.Node) (NodeID, error) {
	if y.Kind != yaml.MappingNode {
		return NoNode, fmt.Errorf("%w: line %d: expected a node mapping", ErrInvalidTree, y.Line)
	}

	var n Node
	typed := false
	for i := 0; i+1 < len(y.Content); i += 2 {
		key, val := y.Content[i].Value, y.Content[i+1]
		var err error
		switch key {
		case "_type":
			n.Kind, _ = ParseKind(val.Value)
			typed = true
		case "kind":
			if !typed {
				n.Kind, _ = ParseKind(val.Value)
			}
		case "line", "lineno":
			err = val.Decode(&n.Pos.Line)
		case "col", "col_offset":
			err = val.Decode(&n.Pos.Column)
		case "end_line", "end_lineno":
			err = val.Decode(&n.Pos.EndLine)
		case "end_col", "end_col_offset":
			err = val.Decode(&n.Pos.EndColumn)
		case "name", "id", "attr", "arg":
			if val.Kind == yaml.ScalarNode && !isNull(val) {
				n.Name = val.Value
			}
		case "op":
			n.Op = operator(val)
		case "ops":
			n.Ops, err = operators(val)
		case "value":
			if val.Kind == yaml.ScalarNode {
				if !isNull(val) {
					n.Literal = val.Value
				}
			} else {
				n.Value, err = d.optional(val)
			}
		case "context_expr":
			n.Value, err = d.optional(val)
		case "target", "optional_vars":
			n.Target, err = d.optional(val)
		case "annotation", "returns":
			n.Annotation, err = d.optional(val)
		case "test":
			n.Test, err = d.optional(val)
		case "func":
			n.Func, err = d.optional(val)
		case "left":
			n.Left, err = d.optional(val)
		case "right":
			n.Right, err = d.optional(val)
		case "operand":
			n.Operand, err = d.optional(val)
		case "slice":
			n.Slice, err = d.optional(val)
		case "iter", "subject":
			n.Iter, err = d.optional(val)
		case "type":
			n.Type, err = d.optional(val)
		case "targets":
			n.Targets, err = d.list(val)
		case "elts", "items", "names":
			n.Elts, err = d.list(val)
		case "values":
			n.Values, err = d.list(val)
		case "comparators":
			n.Comparators, err = d.list(val)
		case "args":
			if val.Kind == yaml.MappingNode {
				n.Params, err = d.arguments(val)
			} else {
				n.Args, err = d.list(val)
			}
		case "keywords":
			n.Keywords, err = d.list(val)
		case "body", "cases":
			n.Body, err = d.list(val)
		case "handlers":
			n.Handlers, err = d.list(val)
		case "orelse":
			n.OrElse, err = d.list(val)
		case "finalbody":
			n.FinalBody, err = d.list(val)
		case "decorators", "decorator_list":
			n.Decorators, err = d.list(val)
		case "params":
			n.Params, err = d.list(val)
		case "type_params":
			n.TypeParams, err = d.list(val)
		case "bases":
			n.Bases, err = d.list(val)
		}
		if err != nil {
			return NoNode, fmt.Errorf("line %d: field %q: %w", val.Line, key, err)
		}
	}
	return d.b.Add(n), nil
}

// optional decodes a single child field; null means absent.
func (d *decoder) optional(y *yaml.Node) (NodeID, error) {
	if isNull(y) {
		return NoNode, nil
	}
	return d.node(y)
}

// list decodes a child list. A lone mapping is accepted as a one-element
// list (IfExp and Lambda bodies are single expressions); scalar entries,
// such as the identifiers of a Global statement, carry no structure and
// are skipped.
func (d *decoder) list(y *yaml.Node) ([]NodeID, error) {
	switch y.Kind {
	case yaml.MappingNode:
		id, err := d.node(y)
		if err != nil {
			return nil, err
		}
		return []NodeID{id}, nil
	case yaml.SequenceNode:
		ids := make([]NodeID, 0, len(y.Content))
		for _, item := range y.Content {
			if item.Kind != yaml.MappingNode {
				continue
			}
			id, err := d.node(item)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		return ids, nil
	default:
		return nil, nil
	}
}

// argumentFields are the parameter lists of an ast arguments record, in
// declaration order.
var argumentFields = []string{"posonlyargs", "args", "vararg", "kwonlyargs", "kwarg"}

// arguments flattens an ast arguments record into a parameter list.
func (d *decoder) arguments(y *yaml.Node) ([]NodeID, error) {
	fields := make(map[string]*yaml.Node, len(y.Content)/2)
	for i := 0; i+1 < len(y.Content); i += 2 {
		fields[y.Content[i].Value] = y.Content[i+1]
	}

	var params []NodeID
	for _, name := range argumentFields {
		val, ok := fields[name]
		if !ok || isNull(val) {
			continue
		}
		ids, err := d.list(val)
		if err != nil {
			return nil, fmt.Errorf("arguments %q: %w", name, err)
		}
		params = append(params, ids...)
	}
	return params, nil
}

// operatorSymbols maps ast operator classes onto the spelling used by
// native documents.
var operatorSymbols = map[string]string{
	"And":   "and",
	"Or":    "or",
	"Eq":    "==",
	"NotEq": "!=",
	"Lt":    "<",
	"LtE":   "<=",
	"Gt":    ">",
	"GtE":   ">=",
	"Is":    "is",
	"IsNot": "is not",
	"In":    "in",
	"NotIn": "not in",
}

// operator reads an operator given either as a symbol or as an ast record.
func operator(y *yaml.Node) string {
	name := y.Value
	if y.Kind == yaml.MappingNode {
		name = ""
		for i := 0; i+1 < len(y.Content); i += 2 {
			switch key := y.Content[i].Value; {
			case key == "_type":
				name = y.Content[i+1].Value
			case key == "kind" && name == "":
				name = y.Content[i+1].Value
			}
		}
	}
	if sym, ok := operatorSymbols[name]; ok {
		return sym
	}
	return name
}

func operators(y *yaml.Node) ([]string, error) {
	if y.Kind != yaml.SequenceNode {
		if isNull(y) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: line %d: expected an operator list", ErrInvalidTree, y.Line)
	}
	ops := make([]string, 0, len(y.Content))
	for _, item := range y.Content {
		ops = append(ops, operator(item))
	}
	return ops, nil
}

func isNull(y *yaml.Node) bool {
	return y.Kind == yaml.ScalarNode && y.ShortTag() == "!!null"
}
