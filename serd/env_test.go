package serd

import "testing"

func TestEnvSetPrefixRejectsNonURI(t *testing.T) {
	e := NewEnv()
	if st := e.SetPrefix("ex", NewBlank("b1")); st != ErrBadArg {
		t.Errorf("SetPrefix with non-URI = %v, want ErrBadArg", st)
	}
}

func TestEnvQualifyLongestPrefix(t *testing.T) {
	e := NewEnv()
	e.SetPrefix("ex", NewURI("http://example.org/"))
	e.SetPrefix("exns", NewURI("http://example.org/ns#"))

	curie, ok := e.Qualify(NewURI("http://example.org/ns#Thing"))
	if !ok {
		t.Fatal("Qualify should succeed")
	}
	if curie.String() != "exns:Thing" {
		t.Errorf("Qualify = %q, want \"exns:Thing\"", curie.String())
	}
}

func TestEnvQualifyTieBreaksToFirstInserted(t *testing.T) {
	e := NewEnv()
	e.SetPrefix("a", NewURI("http://example.org/"))
	e.SetPrefix("b", NewURI("http://example.org/"))

	curie, ok := e.Qualify(NewURI("http://example.org/x"))
	if !ok {
		t.Fatal("Qualify should succeed")
	}
	if curie.String() != "a:x" {
		t.Errorf("Qualify = %q, want \"a:x\" (first-inserted prefix wins ties)", curie.String())
	}
}

func TestEnvExpand(t *testing.T) {
	e := NewEnv()
	e.SetPrefix("ex", NewURI("http://example.org/"))
	uri, ok := e.Expand(NewCURIE("ex:Thing"))
	if !ok {
		t.Fatal("Expand should succeed")
	}
	if uri.String() != "http://example.org/Thing" {
		t.Errorf("Expand = %q", uri.String())
	}
	if _, ok := e.Expand(NewCURIE("unbound:Thing")); ok {
		t.Error("Expand of unbound prefix should fail")
	}
}

func TestEnvIterPrefixesOrder(t *testing.T) {
	e := NewEnv()
	e.SetPrefix("b", NewURI("http://example.org/b/"))
	e.SetPrefix("a", NewURI("http://example.org/a/"))
	e.SetPrefix("b", NewURI("http://example.org/b2/")) // rebind keeps position

	entries := e.IterPrefixes()
	if len(entries) != 2 {
		t.Fatalf("IterPrefixes returned %d entries, want 2", len(entries))
	}
	if entries[0].Name != "b" || entries[0].URI != "http://example.org/b2/" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Name != "a" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestEnvCopyIndependence(t *testing.T) {
	e := NewEnv()
	e.SetPrefix("ex", NewURI("http://example.org/"))
	e.SetBase(NewURI("http://example.org/base"))

	cp := e.Copy()
	cp.SetPrefix("new", NewURI("http://example.org/new/"))

	if len(e.IterPrefixes()) != 1 {
		t.Error("mutating the copy should not affect the original")
	}
	if !e.Equals(e.Copy()) {
		t.Error("an env should equal its own copy")
	}
}
