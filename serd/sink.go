package serd

// SyntaxFlag selects the grammar a Reader or Writer speaks.
type SyntaxFlag int

const (
	Turtle   SyntaxFlag = 1
	NTriples SyntaxFlag = 2
	NQuads   SyntaxFlag = 3
	TriG     SyntaxFlag = 4
)

func (f SyntaxFlag) String() string {
	switch f {
	case Turtle:
		return "turtle"
	case NTriples:
		return "ntriples"
	case NQuads:
		return "nquads"
	case TriG:
		return "trig"
	default:
		return "unknown"
	}
}

// isQuadSyntax reports whether the syntax supports a fourth (graph) term.
func (f SyntaxFlag) isQuadSyntax() bool {
	return f == NQuads || f == TriG
}

// StatementFlags annotates a parsed statement with continuation context the
// writer needs to reproduce abbreviations (repeated subject/object lists,
// anonymous blank nodes, RDF collections).
type StatementFlags uint8

const (
	EmptyS StatementFlags = 1 << iota
	EmptyO
	AnonS
	AnonO
	ListS
	ListO
)

// Statement is a parsed or to-be-written RDF quad (or triple, when Graph is
// the zero Node) plus a cursor snapshot for diagnostics.
type Statement struct {
	Subject   Node
	Predicate Node
	Object    Node
	Graph     Node // zero Node (IsZero()) when the statement is a triple
	Cursor    Cursor
}

// HasGraph reports whether the statement carries a named graph.
func (st Statement) HasGraph() bool { return !st.Graph.IsZero() }

// BaseFunc is called when a reader encounters an @base/BASE directive; a
// Writer's Sink facade implements it by writing a base directive.
type BaseFunc func(node Node) Status

// PrefixFunc is called on each @prefix/PREFIX directive (reader); a
// Writer's Sink facade implements it by writing a prefix directive.
type PrefixFunc func(name string, uri Node) Status

// StatementFunc is called once per completed statement.
type StatementFunc func(flags StatementFlags, statement Statement) Status

// EndFunc signals that the statement about subject is now final and may be
// flushed (used by the writer to know when to emit the deferred terminal
// period).
type EndFunc func(subject Node) Status

// Sink bundles the four optional callbacks a Reader drives and a Writer's
// facade implements. Any nil callback is simply skipped; a non-Success
// return from any callback aborts the current read/write operation and
// that status is propagated to the caller.
type Sink struct {
	Base      BaseFunc
	Prefix    PrefixFunc
	Statement StatementFunc
	End       EndFunc
}

func (s Sink) callBase(n Node) Status {
	if s.Base == nil {
		return Success
	}
	return s.Base(n)
}

func (s Sink) callPrefix(name string, uri Node) Status {
	if s.Prefix == nil {
		return Success
	}
	return s.Prefix(name, uri)
}

func (s Sink) callStatement(flags StatementFlags, st Statement) Status {
	if s.Statement == nil {
		return Success
	}
	return s.Statement(flags, st)
}

func (s Sink) callEnd(n Node) Status {
	if s.End == nil {
		return Success
	}
	return s.End(n)
}
