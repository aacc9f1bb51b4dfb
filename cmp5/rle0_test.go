package cmp5

import (
	"bytes"
	"testing"

	"github.com/HorstBaerbel/compress/cmp5/internal/testutil"
)

func TestZeroRLEWheelerExact(t *testing.T) {
	var c ZeroRLE
	src := bytes.Repeat([]byte{0}, 8)
	enc := c.Encode(src)

	want := []byte{8, 0, 0, 0, rleModeWheeler, 1, 0, 0, 1}
	if !bytes.Equal(enc, want) {
		t.Fatalf("encode mismatch:\ngot  % x\nwant % x", enc, want)
	}

	dec := c.Decode(enc)
	if !bytes.Equal(dec, src) {
		t.Fatalf("round trip mismatch:\ngot  % x\nwant % x", dec, src)
	}
}

func TestZeroRLEWheeler2KiB(t *testing.T) {
	var c ZeroRLE
	src := bytes.Repeat([]byte{0}, 2048)
	enc := c.Encode(src)
	if enc[4] != rleModeWheeler {
		t.Fatalf("expected wheeler mode, got mode %d", enc[4])
	}
	dec := c.Decode(enc)
	if !bytes.Equal(dec, src) {
		t.Fatalf("round trip mismatch, len got %d want %d", len(dec), len(src))
	}
}

func TestZeroRLENaiveMode(t *testing.T) {
	var c ZeroRLE
	// every non-zero symbol value present forces naive mode (no spare border byte)
	src := make([]byte, 0, 256+10)
	for v := 0; v < 256; v++ {
		src = append(src, byte(v))
	}
	src = append(src, 0, 0, 0, 0, 0)

	enc := c.Encode(src)
	if enc[4] != rleModeNaive {
		t.Fatalf("expected naive mode, got mode %d", enc[4])
	}
	dec := c.Decode(enc)
	if !bytes.Equal(dec, src) {
		t.Fatalf("round trip mismatch")
	}
}

func TestZeroRLERoundTrip(t *testing.T) {
	var c ZeroRLE
	for i, src := range testutil.PathologicalCases() {
		enc := c.Encode(src)
		dec := c.Decode(enc)
		if !bytes.Equal(dec, src) && len(src) > 0 {
			t.Errorf("pathological case %d: round trip mismatch", i)
		}
	}

	r := testutil.NewRand(17)
	mixed := append(bytes.Repeat([]byte{0}, 500), r.Bytes(500)...)
	mixed = append(mixed, bytes.Repeat([]byte{0}, 1)...)
	enc := c.Encode(mixed)
	dec := c.Decode(enc)
	if !bytes.Equal(dec, mixed) {
		t.Errorf("mixed round trip mismatch")
	}
}
