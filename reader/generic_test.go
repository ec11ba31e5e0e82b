package reader

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeAnyKeysByFieldNumber(t *testing.T) {
	// field 1 (I32, delta 1): zigzag(42)=84=0x54; field 3 (Binary,
	// delta 2): len 2, "hi"; STOP.
	buf := []byte{
		0x15, 0x54,
		0x28, 0x02, 'h', 'i',
		0x00,
	}
	got, err := DecodeAny(buf)
	if err != nil {
		t.Fatalf("DecodeAny returned error %v", err)
	}
	want := map[int]interface{}{
		1: int64(42),
		3: []byte("hi"),
	}
	gotMap, ok := got.(map[int]interface{})
	if !ok {
		t.Fatalf("DecodeAny() = %#v, want map[int]interface{}", got)
	}
	if gotMap[1] != want[1] {
		t.Errorf("field 1 = %#v, want %#v", gotMap[1], want[1])
	}
	if diff := cmp.Diff(want[3], gotMap[3]); diff != "" {
		t.Errorf("field 3 mismatch (-want, +got):\n%s", diff)
	}
}

func TestDecodeAnyMapWithNonStringKeys(t *testing.T) {
	// field 1 (Map, delta 1): length 1, key type I16 high nibble,
	// value type I32 low nibble; key zigzag(5)=10; value zigzag(9)=18; STOP.
	buf := []byte{
		0x1B,
		0x01, 0x45, 10, 18,
		0x00,
	}
	got, err := DecodeAny(buf)
	if err != nil {
		t.Fatalf("DecodeAny returned error %v", err)
	}
	gotMap := got.(map[int]interface{})
	inner, ok := gotMap[1].(map[interface{}]interface{})
	if !ok {
		t.Fatalf("field 1 = %#v, want map[interface{}]interface{}", gotMap[1])
	}
	if inner[int64(5)] != int64(9) {
		t.Errorf("inner map = %#v", inner)
	}
}
