package schema

import (
	"testing"

	"github.com/batchcorp/thriftcompact/wire"
)

func TestScalarWireTypes(t *testing.T) {
	cases := []struct {
		node *Node
		want wire.TCompactType
	}{
		{BoolType(), wire.BooleanTrue},
		{ByteType(), wire.Byte},
		{I16Type(), wire.I16},
		{I32Type(), wire.I32},
		{I64Type(), wire.I64},
		{DoubleType(), wire.Double},
		{FloatType(), wire.Float},
		{StringType(), wire.Binary},
		{BytesType(), wire.Binary},
	}
	for _, c := range cases {
		if got := c.node.WireType(); got != c.want {
			t.Errorf("%v.WireType() = %v, want %v", c.node.Kind(), got, c.want)
		}
	}
}

func TestBoolMatchesBothTags(t *testing.T) {
	b := BoolType()
	if !b.Matches(wire.BooleanTrue) {
		t.Error("Bool node should match BooleanTrue")
	}
	if !b.Matches(wire.BooleanFalse) {
		t.Error("Bool node should match BooleanFalse")
	}
	if b.Matches(wire.I32) {
		t.Error("Bool node should not match I32")
	}
}

func TestListTypePanicsOnBoolItem(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic constructing ListType(BoolType())")
		}
	}()
	ListType(BoolType())
}

func TestSetTypePanicsOnBoolItem(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic constructing SetType(BoolType())")
		}
	}()
	SetType(BoolType())
}

func TestMapTypePanicsOnBoolValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic constructing MapType with a bool value")
		}
	}()
	MapType(StringType(), BoolType())
}

func TestMapTypeRejectsBadKeyKinds(t *testing.T) {
	badKeys := []*Node{BoolType(), ByteType(), I64Type(), DoubleType(), BytesType(), ListType(I32Type())}
	for _, key := range badKeys {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic constructing MapType with key kind %v", key.Kind())
				}
			}()
			MapType(key, I32Type())
		}()
	}
}

func TestMapTypeAcceptsValidKeyKinds(t *testing.T) {
	for _, key := range []*Node{StringType(), I16Type(), I32Type()} {
		MapType(key, I32Type()) // must not panic
	}
}

func TestStructTypeFieldLookup(t *testing.T) {
	s := StructType(
		F("id", Field(1, I32Type())),
		F("name", Optional(2, StringType())),
	)

	if got := s.FieldOrder(); len(got) != 2 || got[0] != "id" || got[1] != "name" {
		t.Errorf("FieldOrder() = %v", got)
	}

	fd, ok := s.FieldByName("name")
	if !ok || !fd.Optional || fd.Number != 2 {
		t.Errorf("FieldByName(name) = %+v, %v", fd, ok)
	}

	fd2, ok := s.FieldByNumber(1)
	if !ok || fd2.Optional {
		t.Errorf("FieldByNumber(1) = %+v, %v", fd2, ok)
	}

	if name, ok := s.NameForNumber(2); !ok || name != "name" {
		t.Errorf("NameForNumber(2) = %q, %v", name, ok)
	}
	if _, ok := s.NameForNumber(99); ok {
		t.Error("NameForNumber(99) should not be found")
	}
}

func TestStructTypePanicsOnDuplicateName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate field name")
		}
	}()
	StructType(
		F("id", Field(1, I32Type())),
		F("id", Field(2, I32Type())),
	)
}

func TestStructTypePanicsOnDuplicateNumber(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate field number")
		}
	}()
	StructType(
		F("a", Field(1, I32Type())),
		F("b", Field(1, StringType())),
	)
}

func TestMerge(t *testing.T) {
	base := StructType(
		F("id", Field(1, I32Type())),
		F("name", Field(2, StringType())),
	)
	patch := StructType(
		F("name", Field(2, BytesType())), // overrides kind at same position
		F("extra", Field(3, I64Type())),  // appended
	)

	merged := base.Merge(patch)

	order := merged.FieldOrder()
	if len(order) != 3 || order[0] != "id" || order[1] != "name" || order[2] != "extra" {
		t.Fatalf("Merge() field order = %v", order)
	}

	nameField, _ := merged.FieldByName("name")
	if nameField.Type.BinaryKind() != BytesKind {
		t.Errorf("Merge() did not apply patch's override for %q", "name")
	}

	extraField, _ := merged.FieldByName("extra")
	if extraField.Number != 3 {
		t.Errorf("Merge() extra field number = %d, want 3", extraField.Number)
	}

	// base and patch must be untouched.
	if len(base.FieldOrder()) != 2 {
		t.Error("Merge() mutated its receiver")
	}
	if len(patch.FieldOrder()) != 2 {
		t.Error("Merge() mutated its argument")
	}
}

func TestMergePanicsOnNonStruct(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic merging a non-Struct node")
		}
	}()
	I32Type().Merge(I32Type())
}

func TestFieldDescriptorAsOptionalDoesNotMutate(t *testing.T) {
	f := Field(1, I32Type())
	opt := f.AsOptional()
	if f.Optional {
		t.Error("AsOptional mutated the receiver")
	}
	if !opt.Optional {
		t.Error("AsOptional did not mark the copy optional")
	}
}
