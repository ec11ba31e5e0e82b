// Package writer is the Compact Protocol encode engine: a stateful
// traversal over an in-memory value tree, driven by a root struct
// schema, that emits a byte buffer in Compact Protocol form.
package writer

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/batchcorp/thriftcompact/codecerr"
	"github.com/batchcorp/thriftcompact/schema"
)

var discardLog = logrus.NewEntry(func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}())

// Writer holds the mutable state of one encode call: the growable
// output buffer and the field-id delta stack. A Writer is created per
// Encode call and its buffer extracted by the caller when done.
type Writer struct {
	buf []byte

	prevFieldID uint16
	stack       []uint16

	log *logrus.Entry
}

// Option configures a Writer at construction time.
type Option func(*Writer)

// WithLogger attaches a logger the writer uses for diagnostic notices,
// all at Debug level, mirroring reader.WithLogger.
func WithLogger(log *logrus.Entry) Option {
	return func(w *Writer) {
		w.log = log
	}
}

// New builds a Writer with an empty output buffer.
func New(opts ...Option) *Writer {
	w := &Writer{log: discardLog}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Encode encodes v under the given root struct schema and returns the
// resulting Compact Protocol buffer. v's shape must match root the way
// reader.Decode's return value does: map[string]interface{} for struct
// fields, []interface{} for list/set items, map[string|int16|int32]interface{}
// for map entries, the Go scalar type matching each leaf's Kind.
func Encode(v map[string]interface{}, root *schema.Node, opts ...Option) ([]byte, error) {
	if root.Kind() != schema.Struct {
		return nil, codecerr.New(codecerr.TypeMismatch, "encode root schema must be a Struct")
	}
	w := New(opts...)
	if err := w.encodeStruct(v, root); err != nil {
		return nil, err
	}
	w.log.Debugf("encoded %d bytes", len(w.buf))
	return w.buf, nil
}
