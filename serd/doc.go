// Package serd is a streaming reader/writer for the Turtle family of RDF
// serializations: Turtle, TriG, N-Triples and N-Quads.
//
// The package is organized around four cooperating pieces:
//
//   - Node: an immutable, kind-tagged RDF term (URI, CURIE, Literal, Blank,
//     Variable) plus the URI and numeric helpers that construct them.
//   - Reader: a recursive-descent parser that pulls bytes from a ByteSource
//     and pushes parsed statements through a Sink.
//   - Writer: the inverse, rendering a stream of statements pushed through
//     its Sink facade back into conforming Turtle-family text.
//   - Env: the base URI and prefix map shared by both directions.
//
// A World owns the resources shared across a parse or serialize session: the
// blank node ID counter and the injected error sink.
//
// Example (decoding a small Turtle document):
//
//	w := serd.NewWorld()
//	var out []serd.Statement
//	sink := serd.Sink{
//	    Statement: func(flags serd.StatementFlags, st serd.Statement) serd.Status {
//	        out = append(out, st)
//	        return serd.Success
//	    },
//	}
//	file := serd.NewURI("file:///doc.ttl")
//	r := serd.NewReader(w, serd.ByteSourceFromReader(strings.NewReader(doc), file), serd.Turtle, sink)
//	status := r.ReadDocument()
package serd
