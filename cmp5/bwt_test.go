package cmp5

import (
	"bytes"
	"testing"

	"github.com/HorstBaerbel/compress/cmp5/internal/testutil"
)

func TestBWTRoundTrip(t *testing.T) {
	var vectors = [][]byte{
		nil,
		[]byte("a"),
		[]byte("aba"),
		[]byte("abracadabra"),
		[]byte("SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES"),
	}
	for i, src := range vectors {
		c := NewBWT(16)
		enc := c.Encode(src)
		dec := c.Decode(enc)
		if !bytes.Equal(dec, src) && len(src) > 0 {
			t.Errorf("vector %d round trip mismatch:\ngot  %q\nwant %q", i, dec, src)
		}
	}
}

func TestBWTMultiBlock(t *testing.T) {
	r := testutil.NewRand(23)
	src := r.Bytes(10000)
	for _, blockSize := range []uint32{1, 7, 64, 4096} {
		c := NewBWT(blockSize)
		enc := c.Encode(src)
		dec := c.Decode(enc)
		if !bytes.Equal(dec, src) {
			t.Errorf("block size %d: round trip mismatch", blockSize)
		}
	}
}

func TestBWTClampsBlockSize(t *testing.T) {
	c := NewBWT(0)
	if c.BlockSize != 1 {
		t.Errorf("expected block size clamped to 1, got %d", c.BlockSize)
	}
	c = NewBWT(bwtMaxBlockSize + 100)
	if c.BlockSize != bwtMaxBlockSize {
		t.Errorf("expected block size clamped to %d, got %d", bwtMaxBlockSize, c.BlockSize)
	}
}

func TestBWTPathological(t *testing.T) {
	c := NewBWT(1024)
	for i, src := range testutil.PathologicalCases() {
		enc := c.Encode(src)
		dec := c.Decode(enc)
		if !bytes.Equal(dec, src) && len(src) > 0 {
			t.Errorf("pathological case %d: round trip mismatch", i)
		}
	}
}
