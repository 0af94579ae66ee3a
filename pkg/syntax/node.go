package syntax

// NodeID addresses a node inside its Tree. The zero value means "no node",
// so an unset child field reads as absent without extra bookkeeping.
type NodeID int32

// NoNode is the absent-node sentinel.
const NoNode NodeID = 0

// IsValid returns true if the id refers to a node.
func (id NodeID) IsValid() bool {
	return id > NoNode
}

// Position represents a location in the source code.
type Position struct {
	Line      int // 1-based line number
	Column    int // 0-based column offset, as reported by the Python parser
	EndLine   int
	EndColumn int
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before reports whether p sorts before other in source order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Node is a single kind-tagged tree element.
//
// A node carries the union of the fields used by the kinds the analyzer
// understands; a kind only populates the fields it owns. Child references
// are NodeIDs into the owning Tree.
type Node struct {
	Kind Kind
	Pos  Position

	// Name is the identifier of Name, Attribute (attr), ClassDef,
	// FunctionDef, arg, keyword, TypeVar and alias-like nodes.
	Name string
	// Op is the operator of BoolOp, BinOp, UnaryOp and AugAssign.
	Op string
	// Ops holds the comparison operators of a Compare, in source order.
	Ops []string
	// Literal is the source text of a Constant.
	Literal string

	// Single children.
	Value      NodeID // Assign/AnnAssign/Return/Yield/Attribute/Subscript/keyword value
	Target     NodeID // AnnAssign/AugAssign/For target
	Annotation NodeID
	Test       NodeID
	Func       NodeID
	Left       NodeID
	Right      NodeID
	Operand    NodeID
	Slice      NodeID
	Iter       NodeID
	Type       NodeID // ExceptHandler type

	// Child lists.
	Decorators  []NodeID
	TypeParams  []NodeID
	Params      []NodeID
	Bases       []NodeID
	Targets     []NodeID
	Elts        []NodeID
	Values      []NodeID
	Comparators []NodeID
	Args        []NodeID
	Keywords    []NodeID
	Body        []NodeID
	Handlers    []NodeID
	OrElse      []NodeID
	FinalBody   []NodeID
}

// appendChildren appends the node's children in source order.
func (n *Node) appendChildren(dst []NodeID) []NodeID {
	one := func(id NodeID) {
		if id.IsValid() {
			dst = append(dst, id)
		}
	}
	many := func(ids []NodeID) {
		for _, id := range ids {
			one(id)
		}
	}

	many(n.Decorators)
	many(n.TypeParams)
	many(n.Params)
	many(n.Bases)
	many(n.Targets)
	one(n.Target)
	one(n.Annotation)
	one(n.Iter)
	one(n.Func)
	one(n.Left)
	one(n.Operand)
	one(n.Value)
	one(n.Test)
	one(n.Type)
	many(n.Elts)
	many(n.Values)
	many(n.Comparators)
	one(n.Right)
	one(n.Slice)
	many(n.Args)
	many(n.Keywords)
	many(n.Body)
	many(n.Handlers)
	many(n.OrElse)
	many(n.FinalBody)
	return dst
}

// Name returns a bare Name node for id.
func Name(id string) Node {
	return Node{Kind: KindName, Name: id}
}
