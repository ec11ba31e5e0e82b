// Package prettyprint is an optional facility for producing a
// human-readable dump of a Compact Protocol buffer with no schema at
// all, useful for diagnosing on-wire corruption or inspecting a payload
// whose schema you don't have handy. It shares the reader's state
// machine (reader.DecodeAny) rather than reimplementing the framing
// rules, then renders the result by marshaling with jsoniter (map
// decoding here produces map[interface{}]interface{}, which
// encoding/json refuses to touch) and colorizing with go-prettyjson.
package prettyprint

import (
	"github.com/hokaccha/go-prettyjson"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/batchcorp/thriftcompact/reader"
)

// Dump decodes buf with no schema and renders it as colorized JSON.
// Struct fields are keyed by wire field number, since no in-memory
// field name exists without a schema to supply one.
func Dump(buf []byte, opts ...reader.Option) (string, error) {
	decoded, err := reader.DecodeAny(buf, opts...)
	if err != nil {
		return "", errors.Wrap(err, "unable to walk compact protocol buffer")
	}

	js, err := jsoniter.Marshal(decoded)
	if err != nil {
		return "", errors.Wrap(err, "unable to marshal decoded buffer to JSON")
	}

	colorized, err := prettyjson.Format(js)
	if err != nil {
		return "", errors.Wrap(err, "unable to colorize JSON")
	}

	return string(colorized), nil
}

// DumpJSON decodes buf with no schema and renders it as plain
// (uncolorized) JSON, for callers that pipe the result somewhere other
// than a terminal.
func DumpJSON(buf []byte, opts ...reader.Option) ([]byte, error) {
	decoded, err := reader.DecodeAny(buf, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to walk compact protocol buffer")
	}
	js, err := jsoniter.Marshal(decoded)
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal decoded buffer to JSON")
	}
	return js, nil
}
