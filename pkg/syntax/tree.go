package syntax

// Tree is an immutable arena of nodes rooted at a Module.
// Trees are safe for concurrent reads once built.
type Tree struct {
	nodes   []Node // index 0 is the unused NoNode slot
	parents []NodeID
	root    NodeID
}

// Root returns the module node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

// Node returns the node for id. Invalid ids yield a KindUnknown zero node.
func (t *Tree) Node(id NodeID) *Node {
	if !t.Contains(id) {
		return &Node{}
	}
	return &t.nodes[id]
}

// Kind returns the kind of id, KindUnknown for invalid ids.
func (t *Tree) Kind(id NodeID) Kind {
	if !t.Contains(id) {
		return KindUnknown
	}
	return t.nodes[id].Kind
}

// Contains reports whether id addresses a node of this tree.
func (t *Tree) Contains(id NodeID) bool {
	return id.IsValid() && int(id) < len(t.nodes)
}

// Parent returns the parent of id, NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Contains(id) {
		return NoNode
	}
	return t.parents[id]
}

// Children returns the children of id in source order.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.Contains(id) {
		return nil
	}
	return t.nodes[id].appendChildren(nil)
}

// Walk traverses the subtree rooted at id depth-first in pre-order,
// calling fn for each node. If fn returns false, the children of that
// node are skipped.
func (t *Tree) Walk(id NodeID, fn func(id NodeID) bool) {
	if !t.Contains(id) {
		return
	}
	if !fn(id) {
		return
	}
	for _, child := range t.Children(id) {
		t.Walk(child, fn)
	}
}

// NameOf resolves the identifier a simple reference expression points at:
// the id of a Name, or the trailing attr of a dotted Attribute access.
// Any other shape resolves to "".
func (t *Tree) NameOf(id NodeID) string {
	switch n := t.Node(id); n.Kind {
	case KindName, KindAttribute:
		return n.Name
	default:
		return ""
	}
}

// IsName reports whether id is a bare Name with the given identifier.
func (t *Tree) IsName(id NodeID, name string) bool {
	n := t.Node(id)
	return n.Kind == KindName && n.Name == name
}

// =============================================================================
// Builder
// =============================================================================

// Builder appends nodes to an arena. Children must be added before the
// node referencing them; Build links parents and seals the tree.
type Builder struct {
	nodes []Node
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{nodes: make([]Node, 1, 64)}
}

// Add stores n and returns its id.
func (b *Builder) Add(n Node) NodeID {
	b.nodes = append(b.nodes, n)
	return NodeID(len(b.nodes) - 1)
}

// Node gives mutable access to a node that has already been added.
func (b *Builder) Node(id NodeID) *Node {
	return &b.nodes[id]
}

// Build seals the arena into a Tree rooted at root.
// The builder must not be used afterwards.
func (b *Builder) Build(root NodeID) *Tree {
	t := &Tree{
		nodes:   b.nodes,
		parents: make([]NodeID, len(b.nodes)),
		root:    root,
	}
	var kids []NodeID
	for i := 1; i < len(t.nodes); i++ {
		kids = t.nodes[i].appendChildren(kids[:0])
		for _, c := range kids {
			if t.Contains(c) {
				t.parents[c] = NodeID(i)
			}
		}
	}
	b.nodes = nil
	return t
}
