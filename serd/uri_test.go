package serd

import "testing"

func TestParseURIRoundTrip(t *testing.T) {
	tests := []string{
		"http://example.org/a/b?q=1#frag",
		"urn:isbn:0451450523",
		"//example.org/path",
		"relative/path",
	}
	for _, uri := range tests {
		parts := ParseURI(uri)
		if got := parts.String(); got != uri {
			t.Errorf("ParseURI(%q).String() = %q, want %q", uri, got, uri)
		}
	}
}

func TestResolveRFC3986Examples(t *testing.T) {
	const base = "http://a/b/c/d;p?q"
	tests := []struct {
		rel  string
		want string
	}{
		{"g", "http://a/b/c/g"},
		{"./g", "http://a/b/c/g"},
		{"g/", "http://a/b/c/g/"},
		{"/g", "http://a/g"},
		{"//g", "http://g"},
		{"?y", "http://a/b/c/d;p?y"},
		{"g?y", "http://a/b/c/g?y"},
		{"#s", "http://a/b/c/d;p?q#s"},
		{"g#s", "http://a/b/c/g#s"},
		{"", "http://a/b/c/d;p?q"},
		{"..", "http://a/b/"},
		{"../..", "http://a/"},
		{"../../g", "http://a/g"},
		{"../../../g", "http://a/g"},
	}
	for _, tt := range tests {
		got, ok := Resolve(tt.rel, base)
		if !ok {
			t.Errorf("Resolve(%q, %q) failed", tt.rel, base)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.rel, base, got, tt.want)
		}
	}
}

func TestResolveFailsWithoutSchemeBase(t *testing.T) {
	if _, ok := Resolve("g", "relative/base"); ok {
		t.Error("Resolve should fail when base has no scheme")
	}
}

func TestRelativizeAscendsToCommonAncestor(t *testing.T) {
	abs := "http://example.org/a/"
	base := "http://example.org/a/b/c/"
	rel, ok := Relativize(abs, base, "")
	if !ok {
		t.Fatal("Relativize should succeed")
	}
	if rel != "../../" {
		t.Errorf("Relativize(%q, %q) = %q, want \"../../\"", abs, base, rel)
	}
	// Resolving the relative form against base should reproduce abs.
	got, ok := Resolve(rel, base)
	if !ok || got != abs {
		t.Errorf("Resolve(%q, %q) = %q, %v, want %q", rel, base, got, ok, abs)
	}
}

func TestRelativizeFallsBackToAbsoluteAtRootBoundary(t *testing.T) {
	abs := "http://example.org/a/x"
	base := "http://example.org/a/b/c/d"
	root := "http://example.org/a/b/"

	result, relative := Relativize(abs, base, root)
	if relative {
		t.Errorf("Relativize should fall back to absolute form when ascent would cross root, got relative=%q", result)
	}
	if result != abs {
		t.Errorf("Relativize fallback = %q, want %q", result, abs)
	}
}

func TestRelativizeDifferentAuthority(t *testing.T) {
	result, relative := Relativize("http://other.org/x", "http://example.org/a/", "")
	if relative {
		t.Error("Relativize across differing authorities should not produce a relative form")
	}
	if result != "http://other.org/x" {
		t.Errorf("Relativize = %q", result)
	}
}

func TestFileURIEncodeDecodeRoundTrip(t *testing.T) {
	uri, ok := fileURIEncode("/tmp/a b.txt", "")
	if !ok {
		t.Fatal("fileURIEncode failed")
	}
	path, ok := fileURIDecode(uri)
	if !ok {
		t.Fatal("fileURIDecode failed")
	}
	if path != "/tmp/a b.txt" {
		t.Errorf("round trip = %q", path)
	}
}

func TestFileURIWindowsDriveLetter(t *testing.T) {
	uri, ok := fileURIEncode(`C:\My 100%`, "")
	if !ok {
		t.Fatal("fileURIEncode failed")
	}
	if uri != "file:///C:/My%20100%25" {
		t.Errorf("fileURIEncode = %q", uri)
	}
	path, ok := fileURIDecode(uri)
	if !ok {
		t.Fatal("fileURIDecode failed")
	}
	if path != "C:/My 100%" {
		t.Errorf("fileURIDecode round trip = %q", path)
	}
}
