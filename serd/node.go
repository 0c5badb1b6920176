package serd

import "strings"

// NodeKind identifies the tagged variant of a Node. Per the node model's
// design, this is a flat enum rather than an interface hierarchy: every
// Node carries exactly one kind for its lifetime.
type NodeKind uint8

const (
	URI NodeKind = iota
	CURIE
	LiteralKind
	Blank
	Variable
)

// String renders the kind's symbolic name.
func (k NodeKind) String() string {
	switch k {
	case URI:
		return "URI"
	case CURIE:
		return "CURIE"
	case LiteralKind:
		return "Literal"
	case Blank:
		return "Blank"
	case Variable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// NodeFlags is a bitset describing notable properties of a Node's string
// body, computed once at construction time so writers don't need to rescan.
type NodeFlags uint8

const (
	HasNewline NodeFlags = 1 << iota
	HasQuote
	HasEscape
)

// Node is an immutable RDF term: a tagged variant over URI, CURIE, Literal,
// Blank and Variable kinds. Nodes are constructed through the New* family
// below, which validate kind/datatype/language mutual exclusion and refuse
// to construct an invalid value rather than panicking.
//
// A Node is a value type; copying a Node copies its string fields (Go
// strings are themselves immutable and share no mutable backing state).
// Plain assignment shares the datatype pointer, so Copy also clones the
// datatype node; Free is a no-op kept only to mirror the source material's
// explicit construct/destroy pairing at the API boundary documentation level.
type Node struct {
	kind     NodeKind
	value    string
	datatype *Node // only for LiteralKind; mutually exclusive with lang
	lang     string
	flags    NodeFlags
}

// Kind returns the node's tagged variant.
func (n Node) Kind() NodeKind { return n.kind }

// String returns the node's UTF-8 body. For a Literal this is the lexical
// form, not a quoted/escaped rendering (see Writer for that).
func (n Node) String() string { return n.value }

// Len reports the byte length of the node's string body.
func (n Node) Len() int { return len(n.value) }

// Flags returns the node's computed HasNewline/HasQuote/HasEscape bitset.
func (n Node) Flags() NodeFlags { return n.flags }

// Datatype returns the literal's datatype node, or nil if the literal is
// untyped or the node is not a Literal.
func (n Node) Datatype() *Node { return n.datatype }

// Lang returns the literal's language tag, or "" if absent or the node is
// not a Literal.
func (n Node) Lang() string { return n.lang }

// IsZero reports whether n is the zero Node (the value returned by a failed
// construction).
func (n Node) IsZero() bool {
	return n.value == "" && n.kind == URI && n.datatype == nil && n.lang == ""
}

// Equals reports deep equality: same kind, value, datatype and language.
func (n Node) Equals(other Node) bool {
	if n.kind != other.kind || n.value != other.value || n.lang != other.lang {
		return false
	}
	switch {
	case n.datatype == nil && other.datatype == nil:
		return true
	case n.datatype == nil || other.datatype == nil:
		return false
	default:
		return n.datatype.Equals(*other.datatype)
	}
}

// Copy returns an independent copy of n. Unlike plain assignment, it also
// clones the datatype node, so the copy does not share the datatype pointer
// with n.
func (n Node) Copy() Node {
	if n.datatype == nil {
		return n
	}
	dt := n.datatype.Copy()
	cp := n
	cp.datatype = &dt
	return cp
}

// Free is a documentation-only no-op: Node carries no unmanaged resources.
func (n Node) Free() {}

func computeFlags(s string) NodeFlags {
	var f NodeFlags
	if strings.IndexByte(s, '\n') >= 0 {
		f |= HasNewline
	}
	if strings.IndexByte(s, '"') >= 0 {
		f |= HasQuote
	}
	if strings.IndexByte(s, '\\') >= 0 {
		f |= HasEscape
	}
	return f
}
