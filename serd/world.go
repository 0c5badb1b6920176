package serd

import (
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

// ErrorSink receives every diagnostic a Reader produces (a Writer reports
// failures only through its return status, see Writer.fail). The
// default, installed by NewWorld, logs through logrus; callers may replace
// it with any func(*Error) to route diagnostics elsewhere (never a
// process-global logger, per the world's injectable-sink design).
type ErrorSink func(*Error)

// World owns the resources a Reader/Writer session shares: the blank node
// ID counter (so multiple readers merging into one graph don't collide)
// and the injected error sink. A World is not safe for concurrent use by
// multiple goroutines, matching the single-threaded, synchronous contract
// the rest of this package follows.
type World struct {
	blankCounter uint64
	blankPrefix  string
	errorSink    ErrorSink

	// DebugStatements, when set, makes ReportError additionally dump the
	// error's Cursor (when it has one) via alecthomas/repr for diagnostics.
	DebugStatements bool
}

// NewWorld returns a World with a fresh random blank-label prefix (so
// readers sharing this World by default generate non-colliding blank IDs
// when their outputs are later merged into one graph) and a logrus-backed
// default error sink.
func NewWorld() *World {
	return &World{
		blankPrefix: randomBlankPrefix(),
		errorSink:   defaultErrorSink,
	}
}

func randomBlankPrefix() string {
	id, err := uuid.NewV4()
	if err != nil {
		return "g"
	}
	// Eight hex characters is plenty of entropy to avoid collisions between
	// documents merged into one graph, and keeps generated IDs readable.
	return "g" + id.String()[:8]
}

// SetBlankPrefix overrides the prefix prepended to generated blank node
// labels (see GetBlank). Passing "" restores the unprefixed b<N> form.
func (w *World) SetBlankPrefix(prefix string) { w.blankPrefix = prefix }

// GetBlank returns the next blank node label in this world's monotonic
// sequence: "b1", "b2", … (optionally prefixed). Successive calls never
// repeat a label.
func (w *World) GetBlank() Node {
	w.blankCounter++
	label := fmt.Sprintf("b%d", w.blankCounter)
	if w.blankPrefix != "" {
		label = w.blankPrefix + label
	}
	return NewBlank(label)
}

// SetErrorSink installs fn as the world's diagnostic sink, replacing the
// default logrus-backed one.
func (w *World) SetErrorSink(fn ErrorSink) { w.errorSink = fn }

// ReportError routes err through the world's error sink. It is the single
// place Reader funnels diagnostics through, so no component ever
// writes directly to a process-global logger.
func (w *World) ReportError(err *Error) {
	if w.errorSink != nil {
		w.errorSink(err)
	}
	if w.DebugStatements && err.Cursor != nil {
		repr.Println(err.Cursor)
	}
}

func defaultErrorSink(err *Error) {
	entry := logrus.WithField("status", err.Status.String())
	if err.Cursor != nil {
		entry = entry.WithFields(logrus.Fields{
			"file": err.Cursor.File.String(),
			"line": err.Cursor.Line,
			"col":  err.Cursor.Col,
		})
	}
	entry.Error(err.Message)
}
