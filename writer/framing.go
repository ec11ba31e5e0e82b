package writer

import "github.com/batchcorp/thriftcompact/wire"

func (w *Writer) pushFrame() {
	w.stack = append(w.stack, w.prevFieldID)
	w.prevFieldID = 0
}

func (w *Writer) popFrame() {
	n := len(w.stack)
	w.prevFieldID = w.stack[n-1]
	w.stack = w.stack[:n-1]
}

// writeFieldHeader packs the delta from the previous field id into the
// high nibble alongside the type tag when it fits in 0 < delta < 16,
// otherwise falls back to the type tag alone followed by the absolute
// field id as a zigzag-varint.
func (w *Writer) writeFieldHeader(tag wire.TCompactType, fieldID uint16) {
	delta := int(fieldID) - int(w.prevFieldID)
	if delta > 0 && delta <= int(wire.MaxInlineFieldDelta) {
		w.writeByte(byte(delta<<4) | byte(tag))
	} else {
		w.writeByte(byte(tag))
		w.writeZigzag(int64(int16(fieldID)))
	}
	w.prevFieldID = fieldID
}

// writeListHeader writes the framing shared by List and Set (identical
// on the wire).
func (w *Writer) writeListHeader(itemType wire.TCompactType, length int) {
	if length < 15 {
		w.writeByte(byte(length<<4) | byte(itemType))
		return
	}
	w.writeByte(0xF0 | byte(itemType))
	w.writeVarUint(uint64(length))
}

// writeMapHeader writes a single zero byte for an empty map, otherwise
// a varint length then one byte packing key type (high nibble) and
// value type (low nibble).
func (w *Writer) writeMapHeader(keyType, valueType wire.TCompactType, length int) {
	if length == 0 {
		w.writeByte(wire.EmptyMapSentinel)
		return
	}
	w.writeVarUint(uint64(length))
	w.writeByte(byte(keyType)<<4 | byte(valueType))
}
