package cmp5

import (
	"bytes"
	"testing"

	"github.com/HorstBaerbel/compress/cmp5/internal/testutil"
)

func TestZigzag(t *testing.T) {
	for delta := -128; delta <= 127; delta++ {
		z := zigzagEncode(int8(delta))
		got := zigzagDecode(z)
		if int(got) != delta {
			t.Errorf("delta %d: zigzag round trip got %d", delta, got)
		}
	}
}

func TestDelta(t *testing.T) {
	var vectors = []struct {
		input  []byte
		output []byte
	}{
		{input: nil, output: nil},
		{input: []byte{5}, output: []byte{5}},
		{input: []byte{5, 6}, output: []byte{5, zigzagEncode(-1)}},
		{input: []byte{6, 5}, output: []byte{6, zigzagEncode(1)}},
		{input: []byte{0, 255}, output: []byte{0, zigzagEncode(1)}},
		{input: []byte{0, 1, 2, 3, 4}, output: []byte{0, zigzagEncode(-1), zigzagEncode(-1), zigzagEncode(-1), zigzagEncode(-1)}},
	}

	var c Delta
	for i, v := range vectors {
		got := c.Encode(v.input)
		if !bytes.Equal(got, v.output) {
			t.Errorf("test %d, encode mismatch:\ngot  %v\nwant %v", i, got, v.output)
		}
		back := c.Decode(got)
		if !bytes.Equal(back, v.input) && len(v.input) > 0 {
			t.Errorf("test %d, round trip mismatch:\ngot  %v\nwant %v", i, back, v.input)
		}
	}
}

func TestDeltaRoundTrip(t *testing.T) {
	r := testutil.NewRand(11)
	var c Delta
	for _, n := range []int{0, 1, 2, 255, 256, 4099} {
		src := r.Bytes(n)
		enc := c.Encode(src)
		dec := c.Decode(enc)
		if !bytes.Equal(dec, src) && n > 0 {
			t.Errorf("round trip mismatch for n=%d", n)
		}
	}
}
