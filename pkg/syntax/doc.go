// Package syntax models a parsed Python module as an immutable arena of
// kind-tagged nodes.
//
// The tree is produced by an external parser and handed over in a YAML or
// JSON interchange document (see Decode). Nodes are addressed by NodeID;
// the zero NodeID means "absent", so rules can read optional fields
// without nil checks.
package syntax
