package reader

import (
	"fmt"

	"github.com/batchcorp/thriftcompact/codecerr"
	"github.com/batchcorp/thriftcompact/wire"
)

// skipValue reads and discards a value of the observed wire tag,
// without any schema guidance - this is how an unknown field (and,
// recursively, any value nested inside one) gets consumed without the
// reader needing to understand what it means. An unrecognized tag is a
// hard failure (UnknownType): we only know how to skip the tags this
// codec also knows how to decode.
func (r *Reader) skipValue(tag wire.TCompactType) error {
	switch tag {
	case wire.BooleanTrue, wire.BooleanFalse:
		// The boolean value is folded into the header byte that got us
		// here; nothing further to consume.
		return nil
	case wire.Byte:
		_, err := r.readInt8()
		return err
	case wire.I16, wire.I32, wire.I64:
		_, err := r.readVarUint()
		return err
	case wire.Double:
		_, err := r.readBytes(8)
		return err
	case wire.Float:
		_, err := r.readBytes(4)
		return err
	case wire.Binary:
		_, err := r.readBinaryValue()
		return err
	case wire.List, wire.Set:
		return r.skipListLike()
	case wire.Map:
		return r.skipMap()
	case wire.Struct:
		return r.skipStruct()
	default:
		return codecerr.New(codecerr.UnknownType, fmt.Sprintf("unrecognized type tag 0x%x", byte(tag)))
	}
}

func (r *Reader) skipListLike() error {
	itemType, length, err := r.readListHeader()
	if err != nil {
		return err
	}
	for i := 0; i < length; i++ {
		if err := r.skipValue(itemType); err != nil {
			return errorsWrapf(err, "skipping element %d", i)
		}
	}
	return nil
}

func (r *Reader) skipMap() error {
	keyType, valueType, length, err := r.readMapHeader()
	if err != nil {
		return err
	}
	for i := 0; i < length; i++ {
		if err := r.skipValue(keyType); err != nil {
			return errorsWrapf(err, "skipping key %d", i)
		}
		if err := r.skipValue(valueType); err != nil {
			return errorsWrapf(err, "skipping value %d", i)
		}
	}
	return nil
}

// skipStruct opens a fresh field-id frame and discards fields until
// STOP, the same push/pop discipline decodeStruct uses - a struct
// nested inside a skipped field still needs its own delta scope.
func (r *Reader) skipStruct() error {
	r.pushFrame()
	defer r.popFrame()

	for {
		tag, fieldID, err := r.readFieldHeader()
		if err != nil {
			return err
		}
		if tag == wire.Stop {
			return nil
		}
		if err := r.skipValue(tag); err != nil {
			return errorsWrapf(err, "skipping field %d", fieldID)
		}
	}
}
