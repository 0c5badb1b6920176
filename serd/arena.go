package serd

import "unicode/utf8"

// nodeArena is the reader's scratch buffer for node bytes accumulated
// during a single statement parse. It only grows within a statement; marks
// record offsets taken before starting to accumulate a sub-term so the
// arena can be reset (truncated) back to that mark once the sub-term has
// either been copied out to a Node or discarded.
type nodeArena struct {
	buf []byte
}

// mark returns the current write offset, stable until the next reset.
func (a *nodeArena) mark() int { return len(a.buf) }

// writeByte appends a single byte.
func (a *nodeArena) writeByte(b byte) { a.buf = append(a.buf, b) }

// writeRune appends the UTF-8 encoding of r.
func (a *nodeArena) writeRune(r rune) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	a.buf = append(a.buf, tmp[:n]...)
}

// sliceFrom returns the bytes written since mark, as a string copy (the
// returned string does not alias the arena, so resetting afterward is
// safe).
func (a *nodeArena) sliceFrom(mark int) string {
	return string(a.buf[mark:])
}

// reset truncates the arena back to mark, discarding everything written
// since. Capacity is retained, so the arena's backing array is reused
// across statements without reallocating on every parse.
func (a *nodeArena) reset(mark int) {
	a.buf = a.buf[:mark]
}
