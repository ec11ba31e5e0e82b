// Package reader is the Compact Protocol decode engine: a stateful
// traversal over a fully-loaded byte buffer, driven by a root struct
// schema, that emits a nested value tree matching the schema.
package reader

import (
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/thriftcompact/codecerr"
	"github.com/batchcorp/thriftcompact/schema"
)

// IFieldLogger is the seam the reader logs skipped-field notices
// through. It is deliberately narrower than *logrus.Entry so tests can
// swap in a hand-written double and assert a skip happened.
type IFieldLogger interface {
	Debugf(format string, args ...interface{})
}

type logrusFieldLogger struct {
	entry *logrus.Entry
}

func (l *logrusFieldLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

// NewLogrusFieldLogger adapts a *logrus.Entry to IFieldLogger.
func NewLogrusFieldLogger(entry *logrus.Entry) IFieldLogger {
	return &logrusFieldLogger{entry: entry}
}

// discardLog is the default logger: every call is silenced, so
// skip-logging costs a function call, not an allocation or a write.
var discardLog = NewLogrusFieldLogger(logrus.NewEntry(func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}()))

// Reader holds the mutable state of one decode call: the buffer, the
// read cursor, and the field-id delta stack. A Reader is created per
// Decode call and discarded afterward; it is not safe to reuse after an
// error, since the cursor and delta stack are left in whatever state
// the failing read left them in.
type Reader struct {
	buf []byte
	pos int

	prevFieldID uint16
	stack       []uint16

	// prevStructID is bumped on every struct frame entered; nothing reads
	// it back, and it plays no part in decode correctness.
	prevStructID int

	log IFieldLogger
}

// Option configures a Reader at construction time.
type Option func(*Reader)

// WithLogger attaches a logger the reader uses to note skipped unknown
// fields at Debug level. Skipping is forward-compatibility working as
// intended, not a failure, so it is never logged above Debug.
func WithLogger(log IFieldLogger) Option {
	return func(r *Reader) {
		r.log = log
	}
}

// New builds a Reader over buf. buf is held by reference, not copied;
// decoded Binary values may alias directly into it.
func New(buf []byte, opts ...Option) *Reader {
	r := &Reader{buf: buf, log: discardLog}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Decode decodes buf under the given root struct schema and returns the
// resulting value tree: a map[string]interface{} keyed by the struct's
// in-memory field names, with nested lists/sets as []interface{}, maps
// as map[string]interface{}/map[int16]interface{}/map[int32]interface{}
// depending on key kind, and structs as nested map[string]interface{}.
func Decode(buf []byte, root *schema.Node, opts ...Option) (map[string]interface{}, error) {
	if root.Kind() != schema.Struct {
		return nil, codecerr.New(codecerr.TypeMismatch, "decode root schema must be a Struct")
	}
	if len(root.FieldOrder()) == 0 {
		return nil, codecerr.New(codecerr.EmptyStructRead, "struct schema has no declared fields")
	}
	r := New(buf, opts...)
	return r.decodeStruct(root)
}
