package reader

import (
	"math"

	"github.com/batchcorp/thriftcompact/codecerr"
	"github.com/batchcorp/thriftcompact/wire"
)

// readByte consumes and returns the next byte in the buffer, or an
// error if the buffer is exhausted.
func (r *Reader) readByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, codecerr.New(codecerr.UnknownType, "unexpected end of buffer")
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// readBytes slices n raw bytes from the cursor without copying and
// advances past them.
func (r *Reader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, codecerr.New(codecerr.UnknownType, "unexpected end of buffer")
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// readInt8 reads one raw byte as a signed 8-bit integer.
func (r *Reader) readInt8() (int8, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}
	return int8(b), nil
}

// readVarUint accumulates 7-bit little-endian groups until a byte with
// the continuation (high) bit clear. The result is an unsigned 64-bit
// value; callers narrow and/or zigzag-decode it as needed.
func (r *Reader) readVarUint() (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 70 {
			return 0, codecerr.New(codecerr.UnknownType, "varint too long")
		}
	}
}

// zigzagDecode reverses the zigzag mapping: (n >> 1) ^ -(n & 1),
// widened to 64 bits. This is width-agnostic - the same formula
// recovers the original signed value regardless of how many bits the
// writer used while shifting during encode.
func zigzagDecode(u uint64) int64 {
	return int64(u>>1) ^ -(int64(u & 1))
}

func (r *Reader) readZigzag() (int64, error) {
	u, err := r.readVarUint()
	if err != nil {
		return 0, err
	}
	return zigzagDecode(u), nil
}

func (r *Reader) readI16() (int16, error) {
	v, err := r.readZigzag()
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

func (r *Reader) readI32() (int32, error) {
	v, err := r.readZigzag()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func (r *Reader) readI64() (int64, error) {
	return r.readZigzag()
}

func (r *Reader) readDouble() (float64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	bits := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
	return math.Float64frombits(bits), nil
}

// readFloat decodes the Facebook TCompactProtocol extension: 4 bytes
// little-endian IEEE-754.
func (r *Reader) readFloat() (float32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits), nil
}

// readBinaryValue reads a varint length followed by that many raw
// bytes, returned by reference into the underlying buffer.
func (r *Reader) readBinaryValue() ([]byte, error) {
	length, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	return r.readBytes(int(length))
}

// readFieldHeader reads one field header: a single byte carries both
// the field-id delta and the type tag, with an escape to an explicit
// zigzag-varint field id when the delta doesn't fit in 4 bits or resets
// to zero mid-struct. Returns fieldID -1 for STOP.
func (r *Reader) readFieldHeader() (tag wire.TCompactType, fieldID int, err error) {
	b, err := r.readByte()
	if err != nil {
		return 0, -1, err
	}
	if b == 0x00 {
		return wire.Stop, -1, nil
	}
	delta := (b >> 4) & 0x0F
	tag = wire.TCompactType(b & 0x0F)
	if delta == 0 {
		id, err := r.readZigzag()
		if err != nil {
			return 0, -1, err
		}
		r.prevFieldID = uint16(id)
	} else {
		r.prevFieldID += uint16(delta)
	}
	return tag, int(r.prevFieldID), nil
}

// readListHeader reads a list/set header: one byte packs the element
// type in the low nibble and the length in the high nibble, escaping
// to a trailing varint when the length doesn't fit in 4 bits.
func (r *Reader) readListHeader() (itemType wire.TCompactType, length int, err error) {
	b, err := r.readByte()
	if err != nil {
		return 0, 0, err
	}
	itemType = wire.TCompactType(b & 0x0F)
	n := int(b>>4) & 0x0F
	if n == wire.ContainerLengthEscape {
		v, err := r.readVarUint()
		if err != nil {
			return 0, 0, err
		}
		return itemType, int(v), nil
	}
	return itemType, n, nil
}

// readMapHeader reads a map header: a peeked zero byte means an empty
// map (no length, no key/value type byte at all); otherwise a varint
// length is followed by one byte packing key type (high nibble) and
// value type (low nibble).
func (r *Reader) readMapHeader() (keyType, valueType wire.TCompactType, length int, err error) {
	b, err := r.readByte()
	if err != nil {
		return 0, 0, 0, err
	}
	if b == wire.EmptyMapSentinel {
		return wire.Stop, wire.Stop, 0, nil
	}
	r.pos--
	v, err := r.readVarUint()
	if err != nil {
		return 0, 0, 0, err
	}
	typesByte, err := r.readByte()
	if err != nil {
		return 0, 0, 0, err
	}
	keyType = wire.TCompactType(typesByte >> 4 & 0x0F)
	valueType = wire.TCompactType(typesByte & 0x0F)
	return keyType, valueType, int(v), nil
}
