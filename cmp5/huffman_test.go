package cmp5

import (
	"bytes"
	"testing"

	"github.com/HorstBaerbel/compress/cmp5/internal/testutil"
)

var huffmanVariants = []int{DecodeVariant0, DecodeVariant1, DecodeVariant2, DecodeVariant3}

func TestHuffmanRoundTripAllVariants(t *testing.T) {
	for i, src := range testutil.PathologicalCases() {
		if len(src) == 0 {
			continue
		}
		enc := NewHuffman(DecodeVariant3).Encode(src)
		for _, variant := range huffmanVariants {
			dec := NewHuffman(variant).Decode(enc)
			if !bytes.Equal(dec, src) {
				t.Errorf("pathological case %d, variant %d: round trip mismatch", i, variant)
			}
		}
	}
}

func TestHuffmanDecoderConformance(t *testing.T) {
	r := testutil.NewRand(29)
	src := r.Bytes(8192)
	enc := NewHuffman(DecodeVariant3).Encode(src)

	var results [][]byte
	for _, variant := range huffmanVariants {
		results = append(results, NewHuffman(variant).Decode(enc))
	}
	for i := 1; i < len(results); i++ {
		if !bytes.Equal(results[0], results[i]) {
			t.Errorf("variant %d disagrees with variant 0", huffmanVariants[i])
		}
	}
	if !bytes.Equal(results[0], src) {
		t.Errorf("decoded output does not match source")
	}
}

func TestHuffmanSkewedFrequencies(t *testing.T) {
	// A heavily skewed, low-entropy input exercises the canonical
	// reordering across a wide range of lengths. Its minimum frequency is 1,
	// so frequency normalization leaves the counts unchanged.
	var src []byte
	for sym := 0; sym < 64; sym++ {
		count := 1
		if sym < 4 {
			count = 2000
		}
		for i := 0; i < count; i++ {
			src = append(src, byte(sym))
		}
	}
	enc := NewHuffman(DecodeVariant3).Encode(src)
	dec := NewHuffman(DecodeVariant3).Decode(enc)
	if !bytes.Equal(dec, src) {
		t.Errorf("round trip mismatch for skewed distribution")
	}
}

func TestHuffmanIncompressible(t *testing.T) {
	r := testutil.NewRand(3571)
	src := r.Bytes(256 * 1024)
	enc := NewHuffman(DecodeVariant3).Encode(src)
	if len(enc) > len(src)+256 {
		t.Errorf("incompressible input expanded too much: got %d, source %d", len(enc), len(src))
	}
	dec := NewHuffman(DecodeVariant3).Decode(enc)
	if !bytes.Equal(dec, src) {
		t.Errorf("round trip mismatch for incompressible input")
	}
}
