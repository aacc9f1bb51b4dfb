package cmp5

import (
	"bytes"
	"testing"

	"github.com/HorstBaerbel/compress/cmp5/internal/testutil"
)

func TestRGBPlanes(t *testing.T) {
	var vectors = []struct {
		input  []byte
		output []byte
	}{
		{input: nil, output: nil},
		{input: []byte{1, 2, 3}, output: []byte{1, 2, 3}},
		{
			input:  []byte{1, 2, 3, 4, 5, 6},
			output: []byte{1, 4, 2, 5, 3, 6},
		},
		{
			// length not a multiple of 3: passthrough
			input:  []byte{1, 2, 3, 4},
			output: []byte{1, 2, 3, 4},
		},
	}

	var c RGBPlanes
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

func TestRGBPlanesRoundTrip(t *testing.T) {
	r := testutil.NewRand(7)
	var c RGBPlanes
	for _, n := range []int{0, 3, 9, 300, 3001} {
		src := r.Bytes(n)
		enc := c.Encode(src)
		dec := c.Decode(enc)
		if !bytes.Equal(dec, src) && n > 0 {
			t.Errorf("round trip mismatch for n=%d", n)
		}
	}
}
