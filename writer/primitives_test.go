package writer

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteVarUint(t *testing.T) {
	cases := []struct {
		u    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7F}},
		{128, []byte{0x80, 0x01}},
		{0xFFFFFFFF, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
	}
	for _, c := range cases {
		w := New()
		w.writeVarUint(c.u)
		if diff := cmp.Diff(c.want, w.buf); diff != "" {
			t.Errorf("writeVarUint(%d) mismatch (-want, +got):\n%s", c.u, diff)
		}
	}
}

func TestZigzagEncodeLaws(t *testing.T) {
	cases := []struct {
		n    int64
		want uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
	}
	for _, c := range cases {
		if got := zigzagEncode(c.n); got != c.want {
			t.Errorf("zigzagEncode(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestZigzagRoundTripsExtremes(t *testing.T) {
	for _, n := range []int64{math.MinInt64, math.MaxInt64, math.MinInt32, math.MaxInt32, 0, -1, 1} {
		u := zigzagEncode(n)
		if got := zigzagDecodeForTest(u); got != n {
			t.Errorf("round trip of %d through zigzagEncode/decode = %d", n, got)
		}
	}
}

// zigzagDecodeForTest mirrors reader.zigzagDecode so the round-trip law
// can be exercised from within the writer package without an import
// cycle.
func zigzagDecodeForTest(u uint64) int64 {
	return int64(u>>1) ^ -(int64(u & 1))
}

func TestWriteDoubleAndFloat(t *testing.T) {
	w := New()
	w.writeDouble(1.5)
	want := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF8, 0x3F}
	if diff := cmp.Diff(want, w.buf); diff != "" {
		t.Errorf("writeDouble(1.5) mismatch (-want, +got):\n%s", diff)
	}

	w2 := New()
	w2.writeFloat(1.5)
	want2 := []byte{0x00, 0x00, 0xC0, 0x3F}
	if diff := cmp.Diff(want2, w2.buf); diff != "" {
		t.Errorf("writeFloat(1.5) mismatch (-want, +got):\n%s", diff)
	}
}

func TestWriteBinaryValue(t *testing.T) {
	w := New()
	w.writeBinaryValue([]byte("foo"))
	want := []byte{0x03, 'f', 'o', 'o'}
	if diff := cmp.Diff(want, w.buf); diff != "" {
		t.Errorf("writeBinaryValue(\"foo\") mismatch (-want, +got):\n%s", diff)
	}
}
