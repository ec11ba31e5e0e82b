// Package thriftcompact is a bidirectional codec for the Apache Thrift
// Compact Protocol, including the Facebook extension for 32-bit floats.
// Callers declare a schema once with the schema package's factory
// functions, then use Encode and Decode to move between an in-memory
// value tree and a Compact Protocol buffer.
//
// There is no network transport, no RPC framing, and no schema
// evolution tooling beyond the forward compatibility that falls out of
// skipping fields a schema doesn't recognize.
package thriftcompact

import (
	"github.com/batchcorp/thriftcompact/reader"
	"github.com/batchcorp/thriftcompact/schema"
	"github.com/batchcorp/thriftcompact/writer"
)

// Encode turns v into a Compact Protocol buffer under root's shape.
// v must be a map[string]interface{} keyed by root's in-memory field
// names; fields absent from v are simply not written.
func Encode(v map[string]interface{}, root *schema.Node, opts ...writer.Option) ([]byte, error) {
	return writer.Encode(v, root, opts...)
}

// Decode turns a Compact Protocol buffer into a value tree shaped by
// root. Fields present on the wire but absent from root are skipped
// without error; this is the codec's forward-compatibility guarantee.
func Decode(buf []byte, root *schema.Node, opts ...reader.Option) (map[string]interface{}, error) {
	return reader.Decode(buf, root, opts...)
}
