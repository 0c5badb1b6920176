package serd

import (
	"fmt"
	"io"
	"strings"
)

// WriterOptions configures a Writer's output shape.
type WriterOptions struct {
	// Root, if non-empty, bounds IRI relativization: an absolute IRI is
	// only written relative to Env's base when it falls under Root (see
	// Relativize). Leave empty to relativize without a boundary.
	Root string

	// Indent is the string written before each continuation line in a
	// predicateObjectList (after ';'). Defaults to a single tab.
	Indent string
}

func normalizeWriterOptions(o WriterOptions) WriterOptions {
	if o.Indent == "" {
		o.Indent = "\t"
	}
	return o
}

// Writer serializes statements to an io.Writer in one of the four
// supported syntaxes, abbreviating repeated subjects/predicates the way
// Turtle/TriG allow and deferring the terminating '.' until the subject
// changes, End is called, or Finish flushes the trailer.
type Writer struct {
	out    io.Writer
	env    *Env
	syntax SyntaxFlag
	opts   WriterOptions

	wroteAny      bool
	lastSubject   *Node
	lastPredicate *Node
	currentGraph  *Node

	err Status
}

// NewWriter constructs a Writer over out speaking syntax, using env for
// prefix/base abbreviation (callers typically share the Env a Reader
// populated, or build one with the same prefixes/base they intend to use).
func NewWriter(out io.Writer, env *Env, syntax SyntaxFlag, opts ...WriterOptions) *Writer {
	var o WriterOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if env == nil {
		env = NewEnv()
	}
	return &Writer{out: out, env: env, syntax: syntax, opts: normalizeWriterOptions(o)}
}

// Err returns the status of the last failed Write/WriteBase/WritePrefix
// call, or Success if none has failed yet.
func (w *Writer) Err() Status { return w.err }

// Sink returns a Sink facade wired to this Writer's Write/WriteBase/
// WritePrefix/End methods, so a Writer can be driven directly by a Reader
// (e.g. to transcode between syntaxes).
func (w *Writer) Sink() Sink {
	return Sink{
		Base:      w.WriteBase,
		Prefix:    w.WritePrefix,
		Statement: w.Write,
		End:       w.End,
	}
}

// fail records status as the writer's last error and returns it. The
// message is accepted for call-site readability but not retained: unlike
// Reader, a Writer has no World to route diagnostics through, so BAD_ARG
// here is purely a return-value contract.
func (w *Writer) fail(status Status, _ string, _ ...interface{}) Status {
	w.err = status
	return status
}

// WriteBase emits an "@base" directive (Turtle/TriG) and records uri in the
// writer's environment for subsequent relative-IRI abbreviation. It is a
// no-op status-wise for NTriples/NQuads, which have no directive syntax,
// but the base is still recorded for internal relativization bookkeeping.
func (w *Writer) WriteBase(uri Node) Status {
	if uri.Kind() != URI {
		return w.fail(ErrBadArg, "base must be a URI node")
	}
	w.env.SetBase(uri)
	if w.syntax == NTriples || w.syntax == NQuads {
		return Success
	}
	if err := w.flushPending(); err != Success {
		return err
	}
	fmt.Fprintf(w.out, "@base <%s> .\n", escapeIRI(uri.String()))
	return Success
}

// WritePrefix emits an "@prefix" directive and records the binding.
func (w *Writer) WritePrefix(name string, uri Node) Status {
	if uri.Kind() != URI {
		return w.fail(ErrBadArg, "prefix %q must bind a URI node", name)
	}
	w.env.SetPrefix(name, uri)
	if w.syntax == NTriples || w.syntax == NQuads {
		return Success
	}
	if err := w.flushPending(); err != Success {
		return err
	}
	fmt.Fprintf(w.out, "@prefix %s: <%s> .\n", name, escapeIRI(uri.String()))
	return Success
}

// Write emits one statement. It validates st against the grammar's term
// placement rules before writing any bytes: BAD_ARG is returned, with
// nothing emitted, for a missing field, a Literal or Variable subject, a
// non-URI/CURIE predicate, or a Variable anywhere.
func (w *Writer) Write(flags StatementFlags, st Statement) Status {
	if err := validateStatementTerms(st); err != Success {
		return w.fail(err, "statement fails term placement rules")
	}

	if w.syntax == NTriples || w.syntax == NQuads {
		return w.writeLine(st)
	}
	return w.writeAbbreviated(flags, st)
}

func validateStatementTerms(st Statement) Status {
	if st.Subject.IsZero() || st.Predicate.IsZero() || st.Object.IsZero() {
		return ErrBadArg
	}
	switch st.Subject.Kind() {
	case URI, CURIE, Blank:
	default:
		return ErrBadArg
	}
	switch st.Predicate.Kind() {
	case URI, CURIE:
	default:
		return ErrBadArg
	}
	if st.Object.Kind() == Variable {
		return ErrBadArg
	}
	if st.HasGraph() {
		switch st.Graph.Kind() {
		case URI, CURIE, Blank:
		default:
			return ErrBadArg
		}
	}
	return Success
}

func (w *Writer) writeLine(st Statement) Status {
	w.writeTermPlain(st.Subject)
	io.WriteString(w.out, " ")
	w.writeTermPlain(st.Predicate)
	io.WriteString(w.out, " ")
	w.writeTermPlain(st.Object)
	if w.syntax == NQuads && st.HasGraph() {
		io.WriteString(w.out, " ")
		w.writeTermPlain(st.Graph)
	}
	io.WriteString(w.out, " .\n")
	return Success
}

// writeTermPlain renders a term with no CURIE/relative-IRI abbreviation,
// matching N-Triples/N-Quads' fully-expanded grammar.
func (w *Writer) writeTermPlain(n Node) {
	switch n.Kind() {
	case URI:
		fmt.Fprintf(w.out, "<%s>", escapeIRI(n.String()))
	case CURIE:
		if expanded, ok := w.env.Expand(n); ok {
			fmt.Fprintf(w.out, "<%s>", escapeIRI(expanded.String()))
			return
		}
		fmt.Fprintf(w.out, "<%s>", escapeIRI(n.String()))
	case Blank:
		fmt.Fprintf(w.out, "_:%s", n.String())
	case LiteralKind:
		w.writeLiteral(n)
	}
}

func (w *Writer) writeAbbreviated(flags StatementFlags, st Statement) Status {
	graphChanged := !graphsEqual(w.currentGraph, st.Graph, st.HasGraph())
	if graphChanged {
		if err := w.flushPending(); err != Success {
			return err
		}
		if w.currentGraph != nil {
			io.WriteString(w.out, "}\n")
			w.currentGraph = nil
		}
		if st.HasGraph() && w.syntax == TriG {
			w.writeTerm(st.Graph)
			io.WriteString(w.out, " {\n")
			g := st.Graph.Copy()
			w.currentGraph = &g
		}
		w.lastSubject = nil
		w.lastPredicate = nil
	}

	sameSubject := w.lastSubject != nil && w.lastSubject.Equals(st.Subject)
	if !sameSubject {
		if w.wroteAny {
			io.WriteString(w.out, " .\n")
			w.wroteAny = false
		}
		w.writeTerm(st.Subject)
		s := st.Subject.Copy()
		w.lastSubject = &s
		w.lastPredicate = nil
	}

	samePredicate := sameSubject && w.lastPredicate != nil && w.lastPredicate.Equals(st.Predicate)
	switch {
	case !sameSubject:
		io.WriteString(w.out, " ")
		w.writeTerm(st.Predicate)
		io.WriteString(w.out, " ")
	case !samePredicate:
		io.WriteString(w.out, " ;\n"+w.opts.Indent)
		w.writeTerm(st.Predicate)
		io.WriteString(w.out, " ")
	default:
		io.WriteString(w.out, " , ")
	}
	if !samePredicate {
		p := st.Predicate.Copy()
		w.lastPredicate = &p
	}

	w.writeObjectTerm(st.Object, flags)
	w.wroteAny = true
	return Success
}

func graphsEqual(current *Node, g Node, hasGraph bool) bool {
	if current == nil {
		return !hasGraph
	}
	return hasGraph && current.Equals(g)
}

// flushPending writes the deferred terminating '.' for the statement in
// progress, if any, leaving the writer ready to start a fresh subject.
func (w *Writer) flushPending() Status {
	if w.wroteAny {
		io.WriteString(w.out, " .\n")
		w.wroteAny = false
	}
	w.lastSubject = nil
	w.lastPredicate = nil
	return Success
}

// End signals that subject is now final. For this writer (which defers its
// terminating '.' only until the next Write call reveals whether the
// subject continues), End simply flushes that pending punctuation early so
// a caller can interleave writes for distinct subjects across multiple
// Writers, or force a flush before closing the underlying stream.
func (w *Writer) End(subject Node) Status {
	if w.lastSubject != nil && !w.lastSubject.Equals(subject) {
		return Success
	}
	return w.flushPending()
}

// Finish flushes any pending punctuation and closes an open TriG graph
// block. Callers should call Finish once after the last Write.
func (w *Writer) Finish() Status {
	if err := w.flushPending(); err != Success {
		return err
	}
	if w.currentGraph != nil {
		io.WriteString(w.out, "}\n")
		w.currentGraph = nil
	}
	return Success
}

// writeTerm renders a term using CURIE and relative-IRI abbreviation where
// the environment allows it; used by the Turtle/TriG path.
func (w *Writer) writeTerm(n Node) {
	switch n.Kind() {
	case URI:
		w.writeURI(n)
	case CURIE:
		io.WriteString(w.out, n.String())
	case Blank:
		fmt.Fprintf(w.out, "_:%s", n.String())
	case LiteralKind:
		w.writeLiteral(n)
	}
}

func (w *Writer) writeURI(n Node) {
	if n.Equals(rdfType) {
		io.WriteString(w.out, "a")
		return
	}
	if curie, ok := w.env.Qualify(n); ok {
		io.WriteString(w.out, curie.String())
		return
	}
	if base, ok := w.env.GetBase(); ok {
		if rel, ok2 := Relativize(n.String(), base.String(), w.opts.Root); ok2 {
			fmt.Fprintf(w.out, "<%s>", escapeIRI(rel))
			return
		}
	}
	fmt.Fprintf(w.out, "<%s>", escapeIRI(n.String()))
}

// writeObjectTerm renders an object term, special-casing the bare "[]" form
// for an anonymous blank node with no properties (EmptyO|AnonO). Other
// structural flags (a non-empty inline property list, or a collection) are
// rendered as an ordinary node reference: reconstructing the nested "[ ]"/
// "( )" syntax would require buffering the statements that describe them,
// which this Writer's one-statement-at-a-time contract does not do.
func (w *Writer) writeObjectTerm(n Node, flags StatementFlags) {
	if flags&EmptyO != 0 && flags&AnonO != 0 && n.Kind() == Blank {
		io.WriteString(w.out, "[]")
		return
	}
	w.writeTerm(n)
}

func (w *Writer) writeLiteral(n Node) {
	body := n.String()
	long := n.Flags()&(HasNewline|HasQuote) != 0
	if long {
		fmt.Fprintf(w.out, `"""%s"""`, escapeLongString(body))
	} else {
		fmt.Fprintf(w.out, `"%s"`, escapeShortString(body))
	}
	switch {
	case n.Lang() != "":
		fmt.Fprintf(w.out, "@%s", n.Lang())
	case n.Datatype() != nil && !n.Datatype().Equals(xsdStringImplicit):
		io.WriteString(w.out, "^^")
		w.writeTerm(*n.Datatype())
	}
}

var xsdStringImplicit = xsdURI("string")

func escapeShortString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeLongString(s string) string {
	var b strings.Builder
	quoteRun := 0
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
			quoteRun = 0
		case '"':
			quoteRun++
			if quoteRun >= 3 {
				b.WriteString(`\"`)
				quoteRun = 0
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
			quoteRun = 0
		}
	}
	return b.String()
}

// escapeIRI percent-encodes the handful of bytes the IRI-reference grammar
// forbids inside "<...>" (space and control characters, and the delimiters
// that would otherwise be ambiguous with Turtle/TriG syntax).
func escapeIRI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, "%%%02X", c)
		case c == '<' || c == '>' || c == '"' || c == '{' || c == '}' || c == '|' || c == '^' || c == '`' || c == '\\' || c == ' ':
			fmt.Fprintf(&b, "%%%02X", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
