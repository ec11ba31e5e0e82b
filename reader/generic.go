package reader

import (
	"fmt"

	"github.com/batchcorp/thriftcompact/codecerr"
	"github.com/batchcorp/thriftcompact/wire"
)

// DecodeAny walks buf as a Compact Protocol struct with no schema at
// all, the way a pretty-printer needs to: it returns whatever field
// headers, container envelopes, and scalars it finds,
// keyed by wire field number since no in-memory name exists without a
// schema. This is the same state machine as Decode, just driven without
// a lookup table - struct fields land in a map[int]interface{} and map
// entries land in a map[interface{}]interface{} (thrift map keys aren't
// restricted to strings when nothing is enforcing it, which is why this
// needs a non-comparable-safe marshaler like jsoniter downstream rather
// than encoding/json).
func DecodeAny(buf []byte, opts ...Option) (interface{}, error) {
	r := New(buf, opts...)
	return r.decodeStructAny()
}

func (r *Reader) decodeStructAny() (map[int]interface{}, error) {
	r.pushFrame()
	defer r.popFrame()

	result := make(map[int]interface{})
	for {
		tag, fieldID, err := r.readFieldHeader()
		if err != nil {
			return nil, errorsWrapf(err, "reading field header")
		}
		if tag == wire.Stop {
			return result, nil
		}
		val, err := r.decodeAny(tag)
		if err != nil {
			return nil, errorsWrapf(err, "field %d", fieldID)
		}
		result[fieldID] = val
	}
}

func (r *Reader) decodeAny(tag wire.TCompactType) (interface{}, error) {
	switch tag {
	case wire.BooleanTrue:
		return true, nil
	case wire.BooleanFalse:
		return false, nil
	case wire.Byte:
		return r.readInt8()
	case wire.I16, wire.I32, wire.I64:
		return r.readZigzag()
	case wire.Double:
		return r.readDouble()
	case wire.Float:
		return r.readFloat()
	case wire.Binary:
		return r.readBinaryValue()
	case wire.List, wire.Set:
		return r.decodeListLikeAny()
	case wire.Map:
		return r.decodeMapAny()
	case wire.Struct:
		return r.decodeStructAny()
	default:
		return nil, codecerr.New(codecerr.UnknownType, fmt.Sprintf("unrecognized type tag 0x%x", byte(tag)))
	}
}

func (r *Reader) decodeListLikeAny() ([]interface{}, error) {
	itemType, length, err := r.readListHeader()
	if err != nil {
		return nil, err
	}
	result := make([]interface{}, 0, length)
	for i := 0; i < length; i++ {
		v, err := r.decodeAny(itemType)
		if err != nil {
			return nil, errorsWrapf(err, "element %d", i)
		}
		result = append(result, v)
	}
	return result, nil
}

func (r *Reader) decodeMapAny() (map[interface{}]interface{}, error) {
	keyType, valueType, length, err := r.readMapHeader()
	if err != nil {
		return nil, err
	}
	result := make(map[interface{}]interface{}, length)
	for i := 0; i < length; i++ {
		k, err := r.decodeAny(keyType)
		if err != nil {
			return nil, errorsWrapf(err, "key %d", i)
		}
		v, err := r.decodeAny(valueType)
		if err != nil {
			return nil, errorsWrapf(err, "value %d", i)
		}
		result[k] = v
	}
	return result, nil
}
