package serd

import "fmt"

// Cursor pinpoints a position in a document for diagnostics: the file the
// position belongs to, and a 1-based line/column. A Reader's ByteSource
// advances the cursor per byte consumed; a Statement carries a snapshot of
// the cursor at the point the statement completed.
type Cursor struct {
	File Node
	Line uint32
	Col  uint32
}

// NewCursor builds a Cursor at line 1, column 1 of the given file URI node.
func NewCursor(file Node) Cursor {
	return Cursor{File: file, Line: 1, Col: 1}
}

// advance updates the cursor for having consumed byte b: a line feed
// increments Line and resets Col to 1, any other byte increments Col.
func (c *Cursor) advance(b byte) {
	if b == '\n' {
		c.Line++
		c.Col = 1
		return
	}
	c.Col++
}

// String renders "line:col", matching the positional half of Error.Error.
func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Col)
}
