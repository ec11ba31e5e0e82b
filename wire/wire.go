// Package wire defines the on-the-wire type tag enumeration and bit
// layout constants used by the Thrift Compact Protocol. It carries no
// behavior of its own; reader and writer drive it.
package wire

// TCompactType is the 4-bit type tag the Compact Protocol packs into
// field headers and container headers. It is distinct from the generic
// Apache Thrift TType enum (used by the binary protocol) - Compact
// assigns its own nibble values so common tags fit in 4 bits.
type TCompactType byte

const (
	Stop         TCompactType = 0x00
	BooleanTrue  TCompactType = 0x01
	BooleanFalse TCompactType = 0x02
	Byte         TCompactType = 0x03
	I16          TCompactType = 0x04
	I32          TCompactType = 0x05
	I64          TCompactType = 0x06
	Double       TCompactType = 0x07
	Binary       TCompactType = 0x08
	List         TCompactType = 0x09
	Set          TCompactType = 0x0A
	Map          TCompactType = 0x0B
	Struct       TCompactType = 0x0C
	// Float is the Facebook TCompactProtocol extension for 32-bit
	// IEEE-754 floats. Not part of upstream Apache Thrift.
	Float TCompactType = 0x0D
)

var names = map[TCompactType]string{
	Stop:         "STOP",
	BooleanTrue:  "TRUE",
	BooleanFalse: "FALSE",
	Byte:         "BYTE",
	I16:          "I16",
	I32:          "I32",
	I64:          "I64",
	Double:       "DOUBLE",
	Binary:       "BINARY",
	List:         "LIST",
	Set:          "SET",
	Map:          "MAP",
	Struct:       "STRUCT",
	Float:        "FLOAT",
}

func (t TCompactType) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Known reports whether t is one of the tags this codec recognizes.
// A tag outside this set encountered where a value must be decoded is
// an UnknownType error, and so is one attached to a field the schema
// doesn't know about: skip can only consume values of known tags.
func (t TCompactType) Known() bool {
	_, ok := names[t]
	return ok
}

// ContainerLengthEscape is the high-nibble value of a list/set header
// byte that signals "the real length follows as a varint" rather than
// being packed into the nibble itself.
const ContainerLengthEscape = 0x0F

// MaxInlineContainerLength is the largest length that fits directly in
// a list/set header's high nibble (0..14; 15 is reserved for the escape).
const MaxInlineContainerLength = 14

// MaxInlineFieldDelta is the largest field-id delta that fits in a
// struct field header's high nibble without falling back to an
// explicit zigzag-varint field id.
const MaxInlineFieldDelta = 15

// EmptyMapSentinel is the single byte a Map header collapses to when
// the map has zero entries.
const EmptyMapSentinel = 0x00
