package serd

import (
	"strings"

	"golang.org/x/net/idna"
)

// URIParts is the RFC3986 §3 grammar split of a URI reference:
// scheme ":" "//" authority path "?" query "#" fragment — each component
// present iff its separator was found (Scheme/Query/Fragment use the ok
// bools below rather than empty-string sentinels, since an empty query or
// fragment is a legal distinct value from an absent one).
type URIParts struct {
	Scheme       string
	HasScheme    bool
	Authority    string
	HasAuthority bool
	Path         string
	Query        string
	HasQuery     bool
	Fragment     string
	HasFragment  bool
}

// ParseURI splits uri into its RFC3986 components. It is tolerant of
// malformed percent-escapes: it never rejects input, only reports what it
// can recover by the grammar's separator characters.
func ParseURI(uri string) URIParts {
	var p URIParts
	rest := uri

	if i := strings.IndexByte(rest, ':'); i >= 0 && isValidScheme(rest[:i]) {
		p.Scheme = rest[:i]
		p.HasScheme = true
		rest = rest[i+1:]
	}

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		p.Fragment = rest[i+1:]
		p.HasFragment = true
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, '?'); i >= 0 {
		p.Query = rest[i+1:]
		p.HasQuery = true
		rest = rest[:i]
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		end := len(rest)
		for _, sep := range []byte{'/'} {
			if i := strings.IndexByte(rest, sep); i >= 0 && i < end {
				end = i
			}
		}
		p.Authority = rest[:end]
		p.HasAuthority = true
		rest = rest[end:]
	}

	p.Path = rest
	return p
}

func isValidScheme(s string) bool {
	if s == "" || !isASCIIAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isASCIIAlpha(c) && !isASCIIDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

func isASCIIAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// String reassembles the components back into a URI reference.
func (p URIParts) String() string {
	var b strings.Builder
	if p.HasScheme {
		b.WriteString(p.Scheme)
		b.WriteByte(':')
	}
	if p.HasAuthority {
		b.WriteString("//")
		b.WriteString(p.Authority)
	}
	b.WriteString(p.Path)
	if p.HasQuery {
		b.WriteByte('?')
		b.WriteString(p.Query)
	}
	if p.HasFragment {
		b.WriteByte('#')
		b.WriteString(p.Fragment)
	}
	return b.String()
}

// ValidateAuthorityHost normalizes an internationalized host label within a
// URI's authority component via IDNA, returning the ASCII (punycode) form.
// It is a no-op (returns host unchanged) for already-ASCII hosts or hosts
// that don't parse as a valid IDNA label — resolution/qualification still
// proceeds against the original text, since this is a normalization
// convenience, not a validation gate.
func ValidateAuthorityHost(host string) string {
	if host == "" || isASCII(host) {
		return host
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return host
	}
	return ascii
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// Resolve applies RFC3986 §5.2's transform-references algorithm to resolve
// rel against base. It fails (ok=false) if base has no scheme, since a
// relative reference needs an absolute base to resolve against.
func Resolve(rel, base string) (resolved string, ok bool) {
	baseParts := ParseURI(base)
	if !baseParts.HasScheme {
		return "", false
	}
	relParts := ParseURI(rel)

	var target URIParts
	switch {
	case relParts.HasScheme:
		target = relParts
		target.Path = removeDotSegments(target.Path)
	case relParts.HasAuthority:
		target.HasScheme, target.Scheme = true, baseParts.Scheme
		target.HasAuthority, target.Authority = true, relParts.Authority
		target.Path = removeDotSegments(relParts.Path)
		target.HasQuery, target.Query = relParts.HasQuery, relParts.Query
	case relParts.Path == "":
		target.HasScheme, target.Scheme = true, baseParts.Scheme
		target.HasAuthority, target.Authority = baseParts.HasAuthority, baseParts.Authority
		target.Path = baseParts.Path
		if relParts.HasQuery {
			target.HasQuery, target.Query = true, relParts.Query
		} else {
			target.HasQuery, target.Query = baseParts.HasQuery, baseParts.Query
		}
	default:
		target.HasScheme, target.Scheme = true, baseParts.Scheme
		target.HasAuthority, target.Authority = baseParts.HasAuthority, baseParts.Authority
		if strings.HasPrefix(relParts.Path, "/") {
			target.Path = removeDotSegments(relParts.Path)
		} else {
			target.Path = removeDotSegments(mergePaths(baseParts, relParts.Path))
		}
		target.HasQuery, target.Query = relParts.HasQuery, relParts.Query
	}
	target.HasFragment, target.Fragment = relParts.HasFragment, relParts.Fragment

	return target.String(), true
}

// mergePaths implements RFC3986 §5.3's merge routine.
func mergePaths(base URIParts, relPath string) string {
	if base.HasAuthority && base.Path == "" {
		return "/" + relPath
	}
	if i := strings.LastIndexByte(base.Path, '/'); i >= 0 {
		return base.Path[:i+1] + relPath
	}
	return relPath
}

// removeDotSegments implements RFC3986 §5.2.4.
func removeDotSegments(path string) string {
	var out []string
	in := path
	for in != "" {
		switch {
		case strings.HasPrefix(in, "../"):
			in = in[3:]
		case strings.HasPrefix(in, "./"):
			in = in[2:]
		case strings.HasPrefix(in, "/./"):
			in = "/" + in[3:]
		case in == "/.":
			in = "/"
		case strings.HasPrefix(in, "/../"):
			in = "/" + in[4:]
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == "/..":
			in = "/"
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case in == "." || in == "..":
			in = ""
		default:
			i := 0
			if strings.HasPrefix(in, "/") {
				i = 1
			}
			j := strings.IndexByte(in[i:], '/')
			var seg string
			if j < 0 {
				seg = in
				in = ""
			} else {
				seg = in[:i+j]
				in = in[i+j:]
			}
			out = append(out, seg)
		}
	}
	return strings.Join(out, "")
}

// Relativize returns the shortest relative reference result such that
// Resolve(result, base) == abs. If root is non-empty, the result never
// ascends (via "../") above root; when doing so would be required to
// express abs relative to base, Relativize falls back to returning abs
// unchanged.
func Relativize(abs, base, root string) (result string, relative bool) {
	if root != "" && !strings.HasPrefix(abs, root) {
		return abs, false
	}
	absParts := ParseURI(abs)
	baseParts := ParseURI(base)

	if !absParts.HasScheme || !baseParts.HasScheme ||
		!strings.EqualFold(absParts.Scheme, baseParts.Scheme) ||
		absParts.Authority != baseParts.Authority {
		return abs, false
	}

	absSegs := strings.Split(absParts.Path, "/")
	baseSegs := strings.Split(baseParts.Path, "/")
	// Base's final segment is the "current document", not a directory
	// component, so only its directory prefix participates in the common
	// ancestor computation.
	if len(baseSegs) > 0 {
		baseSegs = baseSegs[:len(baseSegs)-1]
	}

	common := 0
	for common < len(absSegs)-1 && common < len(baseSegs) && absSegs[common] == baseSegs[common] {
		common++
	}

	ups := len(baseSegs) - common
	if ups > 0 && root != "" {
		ancestor := strings.Join(baseSegs[:common], "/") + "/"
		rootParts := ParseURI(root)
		if len(strings.Split(strings.TrimSuffix(rootParts.Path, "/"), "/")) > len(strings.Split(strings.TrimSuffix(ancestor, "/"), "/")) {
			return abs, false
		}
	}

	var b strings.Builder
	for i := 0; i < ups; i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(absSegs[common:], "/"))
	rel := b.String()
	if rel == "" {
		rel = "./"
	}
	if absParts.HasQuery {
		rel += "?" + absParts.Query
	}
	if absParts.HasFragment {
		rel += "#" + absParts.Fragment
	}
	return rel, true
}

// fileUnreserved reports whether b needs no percent-encoding in a file URI
// path: RFC3986 unreserved characters plus "/" (path separator, preserved
// rather than encoded) and ":" per the file-URI grammar in EXTERNAL
// INTERFACES. fileURIEncode keeps ":" only after a drive letter.
func fileUnreserved(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '.' || b == '_' || b == '~' || b == '/' || b == ':':
		return true
	default:
		return false
	}
}

// fileURIEncode renders a filesystem path as a file:// URI. Backslashes
// become "/"; a leading Windows drive letter ("C:\...", "C:/...") is
// preserved as "/C:/..." in the path component; every byte outside the
// unreserved set is percent-encoded.
func fileURIEncode(path string, host string) (string, bool) {
	if path == "" {
		return "", false
	}
	normalized := strings.ReplaceAll(path, "\\", "/")

	isDriveLetter := len(normalized) >= 2 && isASCIIAlpha(normalized[0]) && normalized[1] == ':'
	if isDriveLetter && !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}

	var b strings.Builder
	b.WriteString("file://")
	b.WriteString(ValidateAuthorityHost(host))
	for i := 0; i < len(normalized); i++ {
		c := normalized[i]
		// Preserve the colon after a drive letter unescaped, matching the
		// "C:" example in the file-URI grammar, but percent-encode any
		// other colon (e.g. inside a path segment) for safety.
		if c == ':' && i == 2 && isDriveLetter {
			b.WriteByte(c)
			continue
		}
		if fileUnreserved(c) && c != ':' {
			b.WriteByte(c)
			continue
		}
		if c == ':' {
			b.WriteString("%3A")
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigitUpper(c >> 4))
		b.WriteByte(hexDigitUpper(c & 0x0f))
	}
	return b.String(), true
}

func hexDigitUpper(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'A' + (v - 10)
}

// fileURIDecode inverts fileURIEncode: percent-decodes the path component
// of a file:// URI, tolerating truncated or non-hex escapes by passing
// those bytes through unchanged rather than failing.
func fileURIDecode(uri string) (path string, ok bool) {
	const prefix = "file://"
	if !strings.HasPrefix(uri, prefix) {
		return "", false
	}
	rest := uri[len(prefix):]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[i:]
	}

	var b strings.Builder
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+2 >= len(rest) {
			b.WriteByte(c)
			continue
		}
		hi, okHi := parseHexDigit(rest[i+1])
		lo, okLo := parseHexDigit(rest[i+2])
		if !okHi || !okLo {
			b.WriteByte(c)
			continue
		}
		b.WriteByte(byte(hi<<4 | lo))
		i += 2
	}
	path = b.String()
	// Strip the synthetic leading "/" in front of a Windows drive letter.
	if len(path) >= 3 && path[0] == '/' && isASCIIAlpha(path[1]) && path[2] == ':' {
		path = path[1:]
	}
	return path, true
}

func parseHexDigit(h byte) (int, bool) {
	switch {
	case h >= '0' && h <= '9':
		return int(h - '0'), true
	case h >= 'a' && h <= 'f':
		return int(h-'a') + 10, true
	case h >= 'A' && h <= 'F':
		return int(h-'A') + 10, true
	default:
		return 0, false
	}
}
