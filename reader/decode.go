package reader

import (
	"fmt"

	"github.com/batchcorp/thriftcompact/codecerr"
	"github.com/batchcorp/thriftcompact/schema"
	"github.com/batchcorp/thriftcompact/wire"
)

// pushFrame saves the current field-id cursor and resets it to 0 for a
// new struct frame - every struct, whether decoded or skipped, gets one.
func (r *Reader) pushFrame() {
	r.stack = append(r.stack, r.prevFieldID)
	r.prevFieldID = 0
	r.prevStructID++
}

// popFrame restores the parent frame's field-id cursor.
func (r *Reader) popFrame() {
	n := len(r.stack)
	r.prevFieldID = r.stack[n-1]
	r.stack = r.stack[:n-1]
}

// decodeStruct reads struct fields until STOP, dispatching each known
// field to decodeValue and silently skipping unknown ones.
func (r *Reader) decodeStruct(node *schema.Node) (map[string]interface{}, error) {
	r.pushFrame()
	defer r.popFrame()

	result := make(map[string]interface{}, len(node.FieldOrder()))
	for {
		tag, fieldID, err := r.readFieldHeader()
		if err != nil {
			return nil, errorsWrapf(err, "reading field header")
		}
		if tag == wire.Stop {
			return result, nil
		}

		fd, ok := node.FieldByNumber(uint16(fieldID))
		if !ok {
			r.log.Debugf("skipping unknown field %d (tag %s)", fieldID, tag)
			if err := r.skipValue(tag); err != nil {
				return nil, errorsWrapf(err, "skipping unknown field %d", fieldID)
			}
			continue
		}

		if !fd.Type.Matches(tag) {
			return nil, codecerr.New(codecerr.TypeMismatch, fmt.Sprintf(
				"field %d: wire tag %s does not match schema type %s", fieldID, tag, fd.Type.Kind()))
		}

		var value interface{}
		if fd.Type.Kind() == schema.Bool {
			value = tag == wire.BooleanTrue
		} else {
			value, err = r.decodeValue(fd.Type, tag)
			if err != nil {
				return nil, errorsWrapf(err, "field %d", fieldID)
			}
		}

		name, _ := node.NameForNumber(uint16(fieldID))
		result[name] = value
	}
}

// decodeValue decodes one value whose declared type is node and whose
// observed wire tag is tag (already verified to match by the caller for
// struct fields; container callers must verify before calling this too).
func (r *Reader) decodeValue(node *schema.Node, tag wire.TCompactType) (interface{}, error) {
	switch node.Kind() {
	case schema.Bool:
		return tag == wire.BooleanTrue, nil
	case schema.Byte:
		v, err := r.readInt8()
		return v, err
	case schema.I16:
		return r.readI16()
	case schema.I32:
		return r.readI32()
	case schema.I64:
		return r.readI64()
	case schema.Double:
		return r.readDouble()
	case schema.Float:
		return r.readFloat()
	case schema.Binary:
		b, err := r.readBinaryValue()
		if err != nil {
			return nil, err
		}
		if node.BinaryKind() == schema.StringKind {
			return string(b), nil
		}
		return b, nil
	case schema.List, schema.Set:
		return r.decodeListLike(node)
	case schema.Map:
		return r.decodeMap(node)
	case schema.Struct:
		return r.decodeStruct(node)
	default:
		return nil, codecerr.New(codecerr.UnsupportedWrite, fmt.Sprintf("unsupported schema kind %v", node.Kind()))
	}
}

// decodeListLike decodes a List or Set: both use identical wire framing;
// the codec returns both as an ordered []interface{} and never
// deduplicates.
func (r *Reader) decodeListLike(node *schema.Node) ([]interface{}, error) {
	itemType, length, err := r.readListHeader()
	if err != nil {
		return nil, err
	}
	item := node.Item()
	if !item.Matches(itemType) {
		return nil, codecerr.New(codecerr.TypeMismatch, fmt.Sprintf(
			"list/set element: wire tag %s does not match schema type %s", itemType, item.Kind()))
	}
	result := make([]interface{}, 0, length)
	for i := 0; i < length; i++ {
		v, err := r.decodeValue(item, itemType)
		if err != nil {
			return nil, errorsWrapf(err, "element %d", i)
		}
		result = append(result, v)
	}
	return result, nil
}

// decodeMap decodes a Map into a concretely-typed Go map keyed by the
// schema's key kind, coerced to the key's natural Go type.
func (r *Reader) decodeMap(node *schema.Node) (interface{}, error) {
	keyType, valueType, length, err := r.readMapHeader()
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return emptyMapOf(node.Key()), nil
	}

	key := node.Key()
	elem := node.Elem()
	if !key.Matches(keyType) {
		return nil, codecerr.New(codecerr.TypeMismatch, fmt.Sprintf(
			"map key: wire tag %s does not match schema type %s", keyType, key.Kind()))
	}
	if !elem.Matches(valueType) {
		return nil, codecerr.New(codecerr.TypeMismatch, fmt.Sprintf(
			"map value: wire tag %s does not match schema type %s", valueType, elem.Kind()))
	}

	switch key.Kind() {
	case schema.I16:
		m := make(map[int16]interface{}, length)
		for i := 0; i < length; i++ {
			k, v, err := r.decodeMapPair(key, elem, keyType, valueType)
			if err != nil {
				return nil, errorsWrapf(err, "pair %d", i)
			}
			m[k.(int16)] = v
		}
		return m, nil
	case schema.I32:
		m := make(map[int32]interface{}, length)
		for i := 0; i < length; i++ {
			k, v, err := r.decodeMapPair(key, elem, keyType, valueType)
			if err != nil {
				return nil, errorsWrapf(err, "pair %d", i)
			}
			m[k.(int32)] = v
		}
		return m, nil
	default: // Binary(StringKind), the only remaining valid key kind
		m := make(map[string]interface{}, length)
		for i := 0; i < length; i++ {
			k, v, err := r.decodeMapPair(key, elem, keyType, valueType)
			if err != nil {
				return nil, errorsWrapf(err, "pair %d", i)
			}
			m[k.(string)] = v
		}
		return m, nil
	}
}

func (r *Reader) decodeMapPair(key, elem *schema.Node, keyType, valueType wire.TCompactType) (interface{}, interface{}, error) {
	k, err := r.decodeValue(key, keyType)
	if err != nil {
		return nil, nil, errorsWrapf(err, "key")
	}
	v, err := r.decodeValue(elem, valueType)
	if err != nil {
		return nil, nil, errorsWrapf(err, "value")
	}
	return k, v, nil
}

func emptyMapOf(key *schema.Node) interface{} {
	switch key.Kind() {
	case schema.I16:
		return map[int16]interface{}{}
	case schema.I32:
		return map[int32]interface{}{}
	default:
		return map[string]interface{}{}
	}
}
