package serd

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// newString builds a plain, untyped, unlanguaged string-body node of the
// given kind. It is the common constructor underlying NewURI/NewBlank/
// NewCURIE/NewVariable; Literal bodies go through NewPlainLiteral or
// NewTypedLiteral instead, since a Literal always carries the
// datatype/language mutual-exclusion invariant.
func newString(kind NodeKind, s string) Node {
	return Node{kind: kind, value: s, flags: computeFlags(s)}
}

// NewURI constructs a URI node.
func NewURI(s string) Node { return newString(URI, s) }

// NewBlank constructs a blank node with the given local label (without the
// leading "_:").
func NewBlank(s string) Node { return newString(Blank, s) }

// NewCURIE constructs a CURIE node in "prefix:local" form.
func NewCURIE(s string) Node { return newString(CURIE, s) }

// NewVariable constructs a SPARQL-style variable node (without the leading
// "?"). Variable nodes are never legal as the object of a Statement handed
// to a Writer (see Writer.Write).
func NewVariable(s string) Node { return newString(Variable, s) }

// NewLiteral constructs a Literal node with an optional datatype XOR an
// optional language tag. Passing both datatype and lang fails construction
// (returns the zero Node and ok=false), as does passing a datatype node
// that is neither a URI nor a CURIE.
func NewLiteral(body string, datatype *Node, lang string) (Node, bool) {
	if datatype != nil && datatype.Kind() != URI && datatype.Kind() != CURIE {
		return Node{}, false
	}
	n := Node{kind: LiteralKind, value: body, lang: lang, flags: computeFlags(body)}
	if datatype != nil {
		dt := datatype.Copy()
		n.datatype = &dt
	}
	if err := validateKindInvariants(n); err != nil {
		return Node{}, false
	}
	return n, true
}

// NewTypedLiteral constructs a Literal with an explicit datatype node. It
// fails if typeNode is not a URI or CURIE.
func NewTypedLiteral(body string, typeNode Node) (Node, bool) {
	return NewLiteral(body, &typeNode, "")
}

// NewPlainLiteral constructs a language-tagged Literal. An empty lang is
// equivalent to an untyped plain literal with no language.
func NewPlainLiteral(body string, lang string) (Node, bool) {
	return NewLiteral(body, nil, lang)
}

// xsdURI builds the well-known XML Schema datatype IRIs used by the
// numeric/boolean constructors below.
func xsdURI(local string) Node { return NewURI("http://www.w3.org/2001/XMLSchema#" + local) }

var (
	xsdInteger = xsdURI("integer")
	xsdDecimal = xsdURI("decimal")
	xsdDouble  = xsdURI("double")
	xsdBoolean = xsdURI("boolean")
	xsdBase64  = xsdURI("base64Binary")
)

// NewInteger renders i in canonical base-10 form (leading "-" for negatives,
// bare "0" for zero) and tags it xsd:integer.
func NewInteger(i int64) Node {
	n, _ := NewTypedLiteral(strconv.FormatInt(i, 10), xsdInteger)
	return n
}

// NewBoolean tags the canonical "true"/"false" lexical form as xsd:boolean.
func NewBoolean(b bool) Node {
	lex := "false"
	if b {
		lex = "true"
	}
	n, _ := NewTypedLiteral(lex, xsdBoolean)
	return n
}

// NewDecimal formats d with at most precision fractional digits, stripping
// trailing zeros but keeping one digit after the point (so 2.0500 with
// precision 4 becomes "2.05", and 0.0 stays "0.0"). NaN and ±Inf are
// unrepresentable as xsd:decimal and yield the zero Node.
func NewDecimal(d float64, precision int) (Node, bool) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return Node{}, false
	}
	if precision < 0 {
		precision = 0
	}
	s := strconv.FormatFloat(d, 'f', precision, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		end := len(s)
		for end > i+2 && s[end-1] == '0' {
			end--
		}
		s = s[:end]
	} else {
		s += ".0"
	}
	n, _ := NewTypedLiteral(s, xsdDecimal)
	return n, true
}

// NewDouble formats f with Go's shortest round-tripping representation and
// tags it xsd:double. NaN/Inf format as the XSD tokens "NaN"/"INF"/"-INF".
func NewDouble(f float64) Node {
	var lex string
	switch {
	case math.IsNaN(f):
		lex = "NaN"
	case math.IsInf(f, 1):
		lex = "INF"
	case math.IsInf(f, -1):
		lex = "-INF"
	default:
		lex = strconv.FormatFloat(f, 'E', -1, 64)
	}
	n, _ := NewTypedLiteral(lex, xsdDouble)
	return n
}

// NewBlob base64-encodes bytes (optionally line-wrapped, see base64.go) and
// tags the result xsd:base64Binary.
func NewBlob(data []byte, wrap int) Node {
	n, _ := NewTypedLiteral(base64Encode(data, wrap), xsdBase64)
	return n
}

// NewFileURI encodes a filesystem path (optionally with an authority host)
// as a file:// URI per the grammar in file_uri_encode.
func NewFileURI(path string, host string) (Node, bool) {
	uri, ok := fileURIEncode(path, host)
	if !ok {
		return Node{}, false
	}
	return NewURI(uri), true
}

// validateKindInvariants reports whether a Node satisfies the mutual
// exclusion rules named in the node model: Blank/CURIE/Variable never carry
// datatype or language, and a Literal has at most one of
// {datatype, language}.
func validateKindInvariants(n Node) error {
	switch n.kind {
	case Blank, CURIE, Variable, URI:
		if n.datatype != nil || n.lang != "" {
			return fmt.Errorf("%s node must not carry datatype or language", n.kind)
		}
	case LiteralKind:
		if n.datatype != nil && n.lang != "" {
			return fmt.Errorf("literal must not carry both datatype and language")
		}
	}
	return nil
}
