package serd

import "testing"

func TestWorldGetBlankMonotonic(t *testing.T) {
	w := NewWorld()
	w.SetBlankPrefix("")

	first := w.GetBlank()
	second := w.GetBlank()
	if first.Equals(second) {
		t.Fatal("successive GetBlank calls must not repeat a label")
	}
	if first.String() != "b1" || second.String() != "b2" {
		t.Errorf("GetBlank sequence = %q, %q, want \"b1\", \"b2\"", first.String(), second.String())
	}
}

func TestWorldSetBlankPrefix(t *testing.T) {
	w := NewWorld()
	w.SetBlankPrefix("doc1")
	if got := w.GetBlank().String(); got != "doc1b1" {
		t.Errorf("GetBlank with prefix = %q, want \"doc1b1\"", got)
	}
}

func TestWorldReportErrorRoutesThroughSink(t *testing.T) {
	w := NewWorld()
	var got *Error
	w.SetErrorSink(func(e *Error) { got = e })

	cur := NewCursor(NewURI("file:///doc.ttl"))
	w.ReportError(newError(ErrBadSyntax, &cur, "unexpected %q", "@"))

	if got == nil {
		t.Fatal("custom error sink was not invoked")
	}
	if got.Status != ErrBadSyntax {
		t.Errorf("got.Status = %v, want ErrBadSyntax", got.Status)
	}
	if got.Cursor == nil || got.Cursor.Line != 1 {
		t.Errorf("got.Cursor = %+v", got.Cursor)
	}
}

func TestWorldReportErrorNilSinkIsNoop(t *testing.T) {
	w := NewWorld()
	w.SetErrorSink(nil)
	// Must not panic when no sink is installed.
	w.ReportError(newError(ErrInternal, nil, "boom"))
}

func TestWorldTwoWorldsDoNotShareBlankCounters(t *testing.T) {
	a := NewWorld()
	b := NewWorld()
	a.SetBlankPrefix("")
	b.SetBlankPrefix("")

	if a.GetBlank().String() != b.GetBlank().String() {
		t.Error("two fresh worlds with an empty prefix should produce the same first label independently")
	}
}
