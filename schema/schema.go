// Package schema is the closed algebra of Thrift types this codec knows
// how to put on the wire: scalars, binary/string, list/set/map containers,
// and named structs of numbered fields. Nodes are immutable once built and
// may be shared freely across concurrent readers and writers.
//
// The factory surface here is deliberately thin - schema.BoolType(), schema.I32Type(),
// schema.StructType(...) and friends only assemble *Node values, they don't do
// anything clever. The engineering is in reader and writer, which walk these
// nodes in lockstep with a byte stream.
package schema

import (
	"fmt"

	"github.com/batchcorp/thriftcompact/wire"
)

// Kind identifies which variant of the Thrift type algebra a Node is.
type Kind int

const (
	Bool Kind = iota
	Byte
	I16
	I32
	I64
	Double
	Float
	Binary
	List
	Set
	Map
	Struct
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "Bool"
	case Byte:
		return "Byte"
	case I16:
		return "I16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case Double:
		return "Double"
	case Float:
		return "Float"
	case Binary:
		return "Binary"
	case List:
		return "List"
	case Set:
		return "Set"
	case Map:
		return "Map"
	case Struct:
		return "Struct"
	default:
		return "Unknown"
	}
}

// BinaryKind distinguishes whether a Binary node decodes to a UTF-8
// string or a raw byte slice. On the wire the two are identical.
type BinaryKind int

const (
	StringKind BinaryKind = iota
	BytesKind
)

// FieldDescriptor is one numbered, optionally-optional field of a Struct.
// Number is the field's stable wire identity; optionality only affects
// whether the in-memory shape permits the field to be absent.
type FieldDescriptor struct {
	Number   uint16
	Type     *Node
	Optional bool
}

// Field builds a required field descriptor for the given wire number and type.
func Field(number uint16, typ *Node) *FieldDescriptor {
	return &FieldDescriptor{Number: number, Type: typ}
}

// AsOptional returns a copy of f marked optional, leaving f untouched -
// descriptors are immutable once handed to Struct.
func (f *FieldDescriptor) AsOptional() *FieldDescriptor {
	return &FieldDescriptor{Number: f.Number, Type: f.Type, Optional: true}
}

// Optional is sugar for schema.Field(n, t).AsOptional().
func Optional(number uint16, typ *Node) *FieldDescriptor {
	return Field(number, typ).AsOptional()
}

// NamedField pairs a Struct's in-memory field name with its descriptor.
// Struct shapes are ordered (field declaration order matters on the wire
// for delta-width purposes), which is why this is a slice of pairs rather
// than a plain map.
type NamedField struct {
	Name  string
	Field *FieldDescriptor
}

// F is sugar for constructing a NamedField inline in a Struct(...) call.
func F(name string, field *FieldDescriptor) NamedField {
	return NamedField{Name: name, Field: field}
}

// Node is one immutable node of the schema algebra: a tagged union
// realized as a plain struct, since Go has no sum types. Only the fields
// relevant to Kind are populated; callers go through the accessor
// methods rather than touching fields directly.
type Node struct {
	kind       Kind
	binaryKind BinaryKind

	item *Node // List, Set
	key  *Node // Map
	elem *Node // Map

	order    []string
	byName   map[string]*FieldDescriptor
	byNumber map[uint16]*FieldDescriptor
}

// Kind reports which algebra variant this node is.
func (n *Node) Kind() Kind { return n.kind }

// BinaryKind reports whether a Binary node is a string or raw bytes.
// Meaningless for any other Kind.
func (n *Node) BinaryKind() BinaryKind { return n.binaryKind }

// Item returns the element type of a List or Set node.
func (n *Node) Item() *Node { return n.item }

// Key returns the key type of a Map node.
func (n *Node) Key() *Node { return n.key }

// Elem returns the value type of a Map node.
func (n *Node) Elem() *Node { return n.elem }

// FieldOrder returns a Struct node's field names in declaration order.
func (n *Node) FieldOrder() []string {
	return n.order
}

// FieldByName looks up a Struct field by its in-memory name.
func (n *Node) FieldByName(name string) (*FieldDescriptor, bool) {
	f, ok := n.byName[name]
	return f, ok
}

// FieldByNumber looks up a Struct field by its wire identity.
func (n *Node) FieldByNumber(number uint16) (*FieldDescriptor, bool) {
	f, ok := n.byNumber[number]
	return f, ok
}

// NameForNumber reverse-looks-up a field's in-memory name from its wire
// number; used by the reader to key decoded struct fields by name.
func (n *Node) NameForNumber(number uint16) (string, bool) {
	for _, name := range n.order {
		if n.byName[name].Number == number {
			return name, true
		}
	}
	return "", false
}

// WireType reports the Compact Protocol type tag this node's values are
// framed with. For Bool this is the canonical BooleanTrue tag; callers
// that need to accept either boolean wire encoding use Matches instead.
func (n *Node) WireType() wire.TCompactType {
	switch n.kind {
	case Bool:
		return wire.BooleanTrue
	case Byte:
		return wire.Byte
	case I16:
		return wire.I16
	case I32:
		return wire.I32
	case I64:
		return wire.I64
	case Double:
		return wire.Double
	case Float:
		return wire.Float
	case Binary:
		return wire.Binary
	case List:
		return wire.List
	case Set:
		return wire.Set
	case Map:
		return wire.Map
	case Struct:
		return wire.Struct
	default:
		panic(fmt.Sprintf("schema: unhandled kind %v", n.kind))
	}
}

// Matches reports whether a wire type tag observed during decode is
// consistent with this node's declared type - treating the compact
// protocol's TRUE/FALSE tags as both matching a Bool node.
func (n *Node) Matches(tag wire.TCompactType) bool {
	if n.kind == Bool {
		return tag == wire.BooleanTrue || tag == wire.BooleanFalse
	}
	return tag == n.WireType()
}

func scalar(k Kind) *Node { return &Node{kind: k} }

func BoolType() *Node   { return scalar(Bool) }
func ByteType() *Node   { return scalar(Byte) }
func I16Type() *Node    { return scalar(I16) }
func I32Type() *Node    { return scalar(I32) }
func I64Type() *Node    { return scalar(I64) }
func DoubleType() *Node { return scalar(Double) }
func FloatType() *Node  { return scalar(Float) }

// BinaryType builds a Binary node of the given BinaryKind.
func BinaryType(kind BinaryKind) *Node {
	return &Node{kind: Binary, binaryKind: kind}
}

// StringType is sugar for BinaryType(StringKind).
func StringType() *Node { return BinaryType(StringKind) }

// BytesType is sugar for BinaryType(BytesKind).
func BytesType() *Node { return BinaryType(BytesKind) }

// ListType builds a List node. Panics if item is a Bool node: booleans
// are not representable as container elements under this protocol -
// see DESIGN.md decision 4.
func ListType(item *Node) *Node {
	mustNotBeBool(item, "list item")
	return &Node{kind: List, item: item}
}

// SetType builds a Set node. The wire form is identical to a List's;
// this codec exposes decoded sets as ordered slices and never
// deduplicates on encode or decode.
func SetType(item *Node) *Node {
	mustNotBeBool(item, "set item")
	return &Node{kind: Set, item: item}
}

// MapType builds a Map node. key must be a String binary, I16, or I32 -
// the subset of scalar types this codec treats as usable associative
// keys. Panics otherwise, since this is a schema authoring mistake, not
// a runtime condition any caller should be recovering from.
func MapType(key, value *Node) *Node {
	if !validMapKey(key) {
		panic(fmt.Sprintf("schema: map key must be string, i16, or i32, got %v", describeKey(key)))
	}
	mustNotBeBool(value, "map value")
	return &Node{kind: Map, key: key, elem: value}
}

func validMapKey(key *Node) bool {
	switch key.kind {
	case I16, I32:
		return true
	case Binary:
		return key.binaryKind == StringKind
	default:
		return false
	}
}

func describeKey(key *Node) string {
	if key.kind == Binary {
		return "binary(BYTES)"
	}
	return key.kind.String()
}

func mustNotBeBool(n *Node, context string) {
	if n.kind == Bool {
		panic(fmt.Sprintf("schema: bool is not permitted as a %s (InvalidBooleanContext)", context))
	}
}

// StructType builds a Struct node from an ordered list of named fields.
// Panics on a duplicate field name or a duplicate field number - both
// are schema authoring mistakes, and rejecting them is the caller's
// responsibility at construction time rather than something this
// package can silently paper over.
func StructType(fields ...NamedField) *Node {
	n := &Node{
		kind:     Struct,
		order:    make([]string, 0, len(fields)),
		byName:   make(map[string]*FieldDescriptor, len(fields)),
		byNumber: make(map[uint16]*FieldDescriptor, len(fields)),
	}
	for _, nf := range fields {
		if _, dup := n.byName[nf.Name]; dup {
			panic(fmt.Sprintf("schema: duplicate field name %q", nf.Name))
		}
		if _, dup := n.byNumber[nf.Field.Number]; dup {
			panic(fmt.Sprintf("schema: duplicate field number %d", nf.Field.Number))
		}
		n.order = append(n.order, nf.Name)
		n.byName[nf.Name] = nf.Field
		n.byNumber[nf.Field.Number] = nf.Field
	}
	return n
}

// Merge returns a new Struct node whose shape is the union of n and
// other's fields, with other's entries overriding n's on name collision.
// Field position for a shared name is preserved from n; other's unique
// fields are appended in its own declared order. n and other must both
// be Struct nodes; neither is modified.
func (n *Node) Merge(other *Node) *Node {
	if n.kind != Struct || other.kind != Struct {
		panic("schema: Merge is only defined for Struct nodes")
	}
	merged := &Node{
		kind:     Struct,
		order:    make([]string, 0, len(n.order)+len(other.order)),
		byName:   make(map[string]*FieldDescriptor, len(n.byName)+len(other.byName)),
		byNumber: make(map[uint16]*FieldDescriptor, len(n.byNumber)+len(other.byNumber)),
	}
	for _, name := range n.order {
		merged.order = append(merged.order, name)
		merged.byName[name] = n.byName[name]
	}
	for _, name := range other.order {
		if _, existed := merged.byName[name]; !existed {
			merged.order = append(merged.order, name)
		}
		merged.byName[name] = other.byName[name]
	}
	for _, name := range merged.order {
		merged.byNumber[merged.byName[name].Number] = merged.byName[name]
	}
	return merged
}
