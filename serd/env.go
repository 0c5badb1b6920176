package serd

import "strings"

// Env holds an optional base URI and an ordered prefix -> URI map. Order is
// insertion order, preserved so that re-serializing an Env's prefixes is
// reproducible across runs (Go maps alone don't guarantee that).
type Env struct {
	base  *Node
	names []string          // insertion-ordered prefix names
	uris  map[string]string // prefix -> URI string
}

// NewEnv returns an empty environment with no base URI and no prefixes.
func NewEnv() *Env {
	return &Env{uris: map[string]string{}}
}

// SetBase sets the environment's base URI. Passing a non-URI node is
// rejected.
func (e *Env) SetBase(n Node) Status {
	if n.Kind() != URI {
		return ErrBadArg
	}
	cp := n.Copy()
	e.base = &cp
	return Success
}

// GetBase returns the current base URI and true, or the zero Node and false
// if none is set.
func (e *Env) GetBase() (Node, bool) {
	if e.base == nil {
		return Node{}, false
	}
	return *e.base, true
}

// SetPrefix binds name to uri. uri must be a URI node; a CURIE, Literal,
// Blank or Variable value is rejected with ErrBadArg. Rebinding an existing
// name keeps its original position in iteration order.
func (e *Env) SetPrefix(name string, uri Node) Status {
	if uri.Kind() != URI {
		return ErrBadArg
	}
	if _, exists := e.uris[name]; !exists {
		e.names = append(e.names, name)
	}
	e.uris[name] = uri.String()
	return Success
}

// Qualify returns the CURIE form of uri under the longest matching bound
// prefix, choosing the first-inserted prefix to break ties among equally
// long matches. It returns false if no bound prefix is a textual prefix of
// uri's value.
func (e *Env) Qualify(uri Node) (Node, bool) {
	if uri.Kind() != URI {
		return Node{}, false
	}
	value := uri.String()
	bestName := ""
	bestLen := -1
	for _, name := range e.names {
		base := e.uris[name]
		if base == "" || !strings.HasPrefix(value, base) {
			continue
		}
		if len(base) > bestLen {
			bestLen = len(base)
			bestName = name
		}
	}
	if bestLen < 0 {
		return Node{}, false
	}
	local := value[bestLen:]
	return NewCURIE(bestName + ":" + local), true
}

// Expand resolves a CURIE to its full URI using the bound prefix map. It
// returns false if the CURIE's prefix is unbound or curie is not a CURIE
// node.
func (e *Env) Expand(curie Node) (Node, bool) {
	if curie.Kind() != CURIE {
		return Node{}, false
	}
	prefix, local, ok := strings.Cut(curie.String(), ":")
	if !ok {
		return Node{}, false
	}
	base, bound := e.uris[prefix]
	if !bound {
		return Node{}, false
	}
	return NewURI(base + local), true
}

// PrefixEntry is one (name, URI) pair yielded by IterPrefixes.
type PrefixEntry struct {
	Name string
	URI  string
}

// IterPrefixes returns all bound prefixes in insertion order.
func (e *Env) IterPrefixes() []PrefixEntry {
	out := make([]PrefixEntry, 0, len(e.names))
	for _, name := range e.names {
		out = append(out, PrefixEntry{Name: name, URI: e.uris[name]})
	}
	return out
}

// Copy returns an independent deep copy of e.
func (e *Env) Copy() *Env {
	cp := &Env{
		names: append([]string(nil), e.names...),
		uris:  make(map[string]string, len(e.uris)),
	}
	for k, v := range e.uris {
		cp.uris[k] = v
	}
	if e.base != nil {
		b := e.base.Copy()
		cp.base = &b
	}
	return cp
}

// Equals reports whether e and other have the same base URI and the same
// prefix bindings (order-independent for equality, though iteration order
// is preserved separately by each environment).
func (e *Env) Equals(other *Env) bool {
	if (e.base == nil) != (other.base == nil) {
		return false
	}
	if e.base != nil && !e.base.Equals(*other.base) {
		return false
	}
	if len(e.uris) != len(other.uris) {
		return false
	}
	for k, v := range e.uris {
		if other.uris[k] != v {
			return false
		}
	}
	return true
}
