package cmp5

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/HorstBaerbel/compress/cmp5/internal/testutil"
)

func TestLZSSShortInputNoGrow(t *testing.T) {
	c := NewLZSS(12, 4)
	_, lookAheadSize, _, _, _, _ := c.params()
	src := testutil.NewRand(41).Bytes(lookAheadSize - 1)
	enc := c.Encode(src)
	want := 4 + 1 + 1 + len(src)
	if len(enc) != want {
		t.Fatalf("expected no-grow size %d, got %d", want, len(enc))
	}
	dec := c.Decode(enc)
	if !bytes.Equal(dec, src) {
		t.Fatalf("round trip mismatch for short input")
	}
}

func TestLZSSRoundTrip(t *testing.T) {
	for _, params := range [][2]uint8{{12, 4}, {15, 5}, {10, 3}, {20, 8}} {
		c := NewLZSS(params[0], params[1])
		for i, src := range testutil.PathologicalCases() {
			enc := c.Encode(src)
			dec := c.Decode(enc)
			if !bytes.Equal(dec, src) && len(src) > 0 {
				t.Errorf("D=%d M=%d, case %d: round trip mismatch", params[0], params[1], i)
			}
		}
	}
}

func TestLZSSCompressesRepetitiveText(t *testing.T) {
	c := NewLZSS(12, 4)
	src := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 100)
	enc := c.Encode(src)
	if float64(len(enc)) >= 0.3*float64(len(src)) {
		t.Errorf("expected compressed size < 0.3x input, got %d for input %d", len(enc), len(src))
	}
	dec := c.Decode(enc)
	if !bytes.Equal(dec, src) {
		t.Errorf("round trip mismatch for repetitive input")
	}
}

func TestLZSSHeaderFields(t *testing.T) {
	c := NewLZSS(12, 4)
	src := testutil.NewRand(5).Bytes(8192)
	enc := c.Encode(src)
	if got := binary.LittleEndian.Uint32(enc[0:4]); got != uint32(len(src)) {
		t.Errorf("expected length header %d, got %d", len(src), got)
	}
	if enc[4] != 12 || enc[5] != 4 {
		t.Errorf("expected D=12 M=4 header, got D=%d M=%d", enc[4], enc[5])
	}
}

func TestLZSSRoundTripRandom(t *testing.T) {
	r := testutil.NewRand(53)
	c := NewLZSS(12, 4)
	for _, n := range []int{0, 1, 4096, 65536} {
		src := r.Bytes(n)
		enc := c.Encode(src)
		dec := c.Decode(enc)
		if !bytes.Equal(dec, src) && n > 0 {
			t.Errorf("round trip mismatch for n=%d", n)
		}
	}
}
