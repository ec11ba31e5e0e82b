package writer

import (
	"fmt"

	"github.com/batchcorp/thriftcompact/codecerr"
	"github.com/batchcorp/thriftcompact/schema"
	"github.com/batchcorp/thriftcompact/wire"
)

// encodeStruct writes every field present in v, in the schema's
// declared order, terminated by STOP. Fields absent from v are simply
// not written - optionality is realized structurally, and the schema's
// Optional flag plays no role in what actually gets emitted.
func (w *Writer) encodeStruct(v map[string]interface{}, node *schema.Node) error {
	w.pushFrame()
	defer w.popFrame()

	for _, name := range node.FieldOrder() {
		val, present := v[name]
		if !present {
			continue
		}
		fd, _ := node.FieldByName(name)
		if err := w.encodeField(fd.Number, fd.Type, val, name); err != nil {
			return err
		}
	}
	w.writeStop()
	return nil
}

// encodeField writes one struct field's header and value. Bool fields
// fold their value into the header tag itself (TRUE/FALSE) rather than
// writing a separate value byte.
func (w *Writer) encodeField(number uint16, node *schema.Node, val interface{}, name string) error {
	if node.Kind() == schema.Bool {
		b, ok := asBool(val)
		if !ok {
			return unsupported(node, val, name)
		}
		tag := wire.BooleanFalse
		if b {
			tag = wire.BooleanTrue
		}
		w.writeFieldHeader(tag, number)
		return nil
	}

	w.writeFieldHeader(node.WireType(), number)

	switch node.Kind() {
	case schema.Struct:
		inner, ok := val.(map[string]interface{})
		if !ok {
			return unsupported(node, val, name)
		}
		return w.encodeStruct(inner, node)
	case schema.List, schema.Set:
		return w.encodeListLike(node, val, name)
	case schema.Map:
		return w.encodeMap(node, val, name)
	default:
		return w.encodeScalar(node, val, name)
	}
}

// encodeElement writes a single container element with no field header
// - list/set/map entries carry their type once, in the container
// header, not per element. A Bool item is always rejected here: the
// header-folding trick that makes Bool cheap inside a struct has no
// equivalent for a value with no header of its own.
// schema.ListType/SetType/MapType already refuse to construct a schema
// with a Bool item, so this is a second, defensive line for hand-built
// schema.Node values.
func (w *Writer) encodeElement(node *schema.Node, val interface{}, context string) error {
	if node.Kind() == schema.Bool {
		return codecerr.New(codecerr.InvalidBooleanContext, fmt.Sprintf(
			"bool cannot be encoded as a %s; booleans are only representable as struct fields", context))
	}
	switch node.Kind() {
	case schema.Struct:
		inner, ok := val.(map[string]interface{})
		if !ok {
			return unsupported(node, val, context)
		}
		return w.encodeStruct(inner, node)
	case schema.List, schema.Set:
		return w.encodeListLike(node, val, context)
	case schema.Map:
		return w.encodeMap(node, val, context)
	default:
		return w.encodeScalar(node, val, context)
	}
}

func (w *Writer) encodeScalar(node *schema.Node, val interface{}, name string) error {
	switch node.Kind() {
	case schema.Byte:
		v, ok := asInt64(val)
		if !ok {
			return unsupported(node, val, name)
		}
		w.writeInt8(int8(v))
	case schema.I16:
		v, ok := asInt64(val)
		if !ok {
			return unsupported(node, val, name)
		}
		w.writeI16(int16(v))
	case schema.I32:
		v, ok := asInt64(val)
		if !ok {
			return unsupported(node, val, name)
		}
		w.writeI32(int32(v))
	case schema.I64:
		v, ok := asInt64(val)
		if !ok {
			return unsupported(node, val, name)
		}
		w.writeI64(v)
	case schema.Double:
		v, ok := asFloat64(val)
		if !ok {
			return unsupported(node, val, name)
		}
		w.writeDouble(v)
	case schema.Float:
		v, ok := asFloat64(val)
		if !ok {
			return unsupported(node, val, name)
		}
		w.writeFloat(float32(v))
	case schema.Binary:
		b, ok := asBytes(val)
		if !ok {
			return unsupported(node, val, name)
		}
		w.writeBinaryValue(b)
	default:
		return codecerr.New(codecerr.UnsupportedWrite, fmt.Sprintf("%s: unsupported scalar kind %v", name, node.Kind()))
	}
	return nil
}

func (w *Writer) encodeListLike(node *schema.Node, val interface{}, name string) error {
	items, ok := asSlice(val)
	if !ok {
		return unsupported(node, val, name)
	}
	item := node.Item()
	w.writeListHeader(item.WireType(), len(items))
	for i, v := range items {
		if err := w.encodeElement(item, v, fmt.Sprintf("%s[%d]", name, i)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) encodeMap(node *schema.Node, val interface{}, name string) error {
	key := node.Key()
	elem := node.Elem()
	pairs, ok := asMapPairs(val)
	if !ok {
		return unsupported(node, val, name)
	}
	w.writeMapHeader(key.WireType(), elem.WireType(), len(pairs))
	for i, p := range pairs {
		if err := w.encodeElement(key, p.key, fmt.Sprintf("%s key %d", name, i)); err != nil {
			return err
		}
		if err := w.encodeElement(elem, p.value, fmt.Sprintf("%s value %d", name, i)); err != nil {
			return err
		}
	}
	return nil
}

func unsupported(node *schema.Node, val interface{}, name string) error {
	return codecerr.New(codecerr.UnsupportedWrite, fmt.Sprintf(
		"%s: cannot encode Go value of type %T as schema type %v", name, val, node.Kind()))
}
