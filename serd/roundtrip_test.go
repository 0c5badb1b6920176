package serd

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// parseAll drives a fresh World and Reader over doc and returns the
// statements it emitted. The World's random blank-label prefix is cleared so
// that both parses of a round trip number their blank nodes b1, b2, … in
// the same order and the labels can be compared directly.
func parseAll(t *testing.T, doc string, syntax SyntaxFlag) []Statement {
	t.Helper()
	var cap capturedSink
	world := NewWorld()
	world.SetBlankPrefix("")
	src := ByteSourceFromReader(strings.NewReader(doc), NewURI("file:///doc.ttl"))
	r := NewReader(world, src, syntax, cap.sink())
	if st := r.ReadDocument(); st != Failure {
		t.Fatalf("ReadDocument = %v, want Failure (clean EOF)", st)
	}
	return cap.statements
}

// nodeComparer lets go-cmp compare Nodes via their Equals method: Node's
// equality method is named Equals, not Equal, so go-cmp would otherwise
// try (and panic) diffing its unexported fields directly.
var nodeComparer = cmp.Comparer(func(a, b Node) bool { return a.Equals(b) })

func TestRoundTripTurtleStatementSetEqual(t *testing.T) {
	doc := `@prefix ex: <http://example.org/> .
ex:s ex:p "hello", "world" ;
     ex:hasProp [ ex:q "nested" ] .
ex:s2 ex:list ( "a" "b" ) .
`
	original := parseAll(t, doc, Turtle)

	env := NewEnv()
	var out strings.Builder
	w := NewWriter(&out, env, Turtle)
	for i, st := range original {
		if status := w.Write(0, st); status != Success {
			t.Fatalf("Write statement %d: %v", i, status)
		}
	}
	if status := w.Finish(); status != Success {
		t.Fatalf("Finish: %v", status)
	}

	roundTripped := parseAll(t, out.String(), Turtle)

	if len(original) != len(roundTripped) {
		t.Fatalf("statement count: original %d, round-tripped %d\n--- rewritten ---\n%s",
			len(original), len(roundTripped), out.String())
	}

	diff := cmp.Diff(original, roundTripped,
		nodeComparer,
		cmpopts.IgnoreFields(Statement{}, "Cursor"),
		cmpopts.SortSlices(func(a, b Statement) bool {
			return a.Subject.String()+a.Predicate.String()+a.Object.String() <
				b.Subject.String()+b.Predicate.String()+b.Object.String()
		}),
	)
	if diff != "" {
		t.Errorf("round-trip statement set mismatch (-original +round-tripped):\n%s\n--- rewritten ---\n%s", diff, out.String())
	}
}

func TestRoundTripNTriplesStatementSetEqual(t *testing.T) {
	doc := `<http://example.org/s> <http://example.org/p> "hello" .
<http://example.org/s> <http://example.org/p2> <http://example.org/o> .
_:b1 <http://example.org/q> "nested" .
`
	original := parseAll(t, doc, NTriples)

	var out strings.Builder
	w := NewWriter(&out, NewEnv(), NTriples)
	for _, st := range original {
		if status := w.Write(0, st); status != Success {
			t.Fatalf("Write: %v", status)
		}
	}
	if status := w.Finish(); status != Success {
		t.Fatalf("Finish: %v", status)
	}

	roundTripped := parseAll(t, out.String(), NTriples)

	diff := cmp.Diff(original, roundTripped,
		nodeComparer,
		cmpopts.IgnoreFields(Statement{}, "Cursor"),
	)
	if diff != "" {
		t.Errorf("round-trip statement set mismatch (-original +round-tripped):\n%s\n--- rewritten ---\n%s", diff, out.String())
	}
}
