package cmp5

import (
	"encoding/binary"
	"sort"

	"github.com/HorstBaerbel/compress/cmp5/internal/bitio"
)

// Decode variant selectors. All four decode the same canonical bitstream;
// they differ only in how a decoder maps an accumulated bit pattern back
// to a symbol, a set of strategies kept from slowest-and-simplest to
// fastest-and-most-arithmetic so their outputs can be cross-checked
// against each other.
const (
	DecodeVariant0 = iota // linear scan over the full code table
	DecodeVariant1        // per-length first-code/first-index lookup
	DecodeVariant2        // per-length precomputed index offset
	DecodeVariant3        // cumulative count/prefix lookup (default)
)

const huffmanMaxCodeLength = 15

// Huffman is the static (single-pass, whole-block) canonical Huffman
// codec. The encoder always emits the same framing; Variant only selects
// which of the four equivalent decode strategies Decode uses.
type Huffman struct {
	Variant int
}

// NewHuffman returns a Huffman codec that decodes using the given variant.
func NewHuffman(variant int) *Huffman {
	return &Huffman{Variant: variant}
}

func (h *Huffman) ID() byte     { return IDHuffman }
func (h *Huffman) Name() string { return "Static Huffman" }

// Encode writes a 4-byte original length, a 128-byte header of 4-bit code
// lengths (two symbols per byte, high nibble first), then the MSB-first
// packed bitstream of canonical code words.
func (h *Huffman) Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	freq := frequenciesFromData(src)
	codes := codesFromFrequencies(freq)

	dst := make([]byte, 4+128, 4+128+n)
	binary.LittleEndian.PutUint32(dst[0:4], uint32(n))
	for sym := 0; sym < 256; sym += 2 {
		hi := codes[sym].length
		lo := codes[sym+1].length
		dst[4+sym/2] = (hi << 4) | (lo & 0x0F)
	}

	bw := bitio.NewWriter(n)
	for _, b := range src {
		c := codes[b]
		bw.PutBits(uint32(c.code), uint(c.length))
	}
	return append(dst, bw.Finish()...)
}

// canonicalEntry is one symbol's position in the decode-side canonical
// ordering: sorted by (length, symbol) ascending, matching the encoder's
// convertToCanonical assignment exactly.
type canonicalEntry struct {
	symbol uint8
	length uint8
}

func canonicalOrder(lengths [256]uint8) []canonicalEntry {
	entries := make([]canonicalEntry, 0, 256)
	for sym := 0; sym < 256; sym++ {
		if lengths[sym] > 0 {
			entries = append(entries, canonicalEntry{symbol: uint8(sym), length: lengths[sym]})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].length != entries[j].length {
			return entries[i].length < entries[j].length
		}
		return entries[i].symbol < entries[j].symbol
	})
	return entries
}

// decodeTables precomputes, per code length, the first code word assigned
// at that length, the index of the first symbol in entries assigned that
// length, and how many symbols share it. All three decode variants that
// avoid a linear scan derive their lookup from this single table.
type decodeTables struct {
	entries     []canonicalEntry
	firstCode   [huffmanMaxCodeLength + 1]uint16
	firstIndex  [huffmanMaxCodeLength + 1]int
	countOfLen  [huffmanMaxCodeLength + 1]int
	indexHelper [huffmanMaxCodeLength + 1]int // firstIndex - firstCode, variant 2 only
}

func buildDecodeTables(lengths [256]uint8) decodeTables {
	entries := canonicalOrder(lengths)
	var t decodeTables
	t.entries = entries

	var code uint16
	var curLen uint8
	for i, e := range entries {
		if curLen < e.length {
			code <<= e.length - curLen
		}
		if t.countOfLen[e.length] == 0 {
			t.firstCode[e.length] = code
			t.firstIndex[e.length] = i
		}
		t.countOfLen[e.length]++
		code++
		curLen = e.length
	}
	for l := 1; l <= huffmanMaxCodeLength; l++ {
		t.indexHelper[l] = t.firstIndex[l] - int(t.firstCode[l])
	}
	return t
}

func (h *Huffman) Decode(src []byte) []byte {
	if len(src) < 4+128 {
		return nil
	}
	n := int(binary.LittleEndian.Uint32(src[0:4]))
	var lengths [256]uint8
	for sym := 0; sym < 256; sym += 2 {
		b := src[4+sym/2]
		lengths[sym] = b >> 4
		lengths[sym+1] = b & 0x0F
	}
	if n == 0 {
		return nil
	}

	t := buildDecodeTables(lengths)
	if len(t.entries) == 0 {
		panic(Error("huffman: code length table is empty"))
	}
	br := bitio.NewReader(src[4+128:])

	switch h.Variant {
	case DecodeVariant0:
		return decodeLinear(t, br, n)
	case DecodeVariant1:
		return decodeFirstCode(t, br, n)
	case DecodeVariant2:
		return decodeIndexHelper(t, br, n)
	default:
		return decodeCountPrefix(t, br, n)
	}
}

// decodeLinear rebuilds each symbol's code word and scans the full table
// for a match at the current bit length. Every bit scans all codes, and
// every candidate of the current length rescans the table in codeOf; the
// simplest and slowest of the four, useful as a reference against which
// the others are checked.
func decodeLinear(t decodeTables, br *bitio.Reader, n int) []byte {
	dst := make([]byte, 0, n)
	for len(dst) < n {
		var acc uint16
		var length uint8
		for {
			acc = (acc << 1) | uint16(br.GetBits(1))
			length++
			for _, e := range t.entries {
				if e.length != length {
					continue
				}
				code := codeOf(t, e)
				if code == acc {
					dst = append(dst, e.symbol)
					goto next
				}
			}
		}
	next:
	}
	return dst
}

// codeOf recomputes entry e's canonical code word from its rank within
// its length (used only by the linear-scan variant, which does not keep
// a code field on the entry itself).
func codeOf(t decodeTables, e canonicalEntry) uint16 {
	rank := 0
	for _, other := range t.entries {
		if other.length == e.length {
			if other.symbol == e.symbol {
				break
			}
			rank++
		}
	}
	return t.firstCode[e.length] + uint16(rank)
}

// decodeFirstCode reads one bit at a time, and at each length checks
// whether the accumulated value falls within [firstCode[length],
// firstCode[length]+count[length]); if so the symbol is firstIndex[length]
// plus the offset within that range.
func decodeFirstCode(t decodeTables, br *bitio.Reader, n int) []byte {
	dst := make([]byte, 0, n)
	for len(dst) < n {
		var acc uint16
		for length := 1; length <= huffmanMaxCodeLength; length++ {
			acc = (acc << 1) | uint16(br.GetBits(1))
			count := t.countOfLen[length]
			if count == 0 {
				continue
			}
			offset := int(acc) - int(t.firstCode[length])
			if offset >= 0 && offset < count {
				dst = append(dst, t.entries[t.firstIndex[length]+offset].symbol)
				break
			}
		}
	}
	return dst
}

// decodeIndexHelper is decodeFirstCode with the index arithmetic folded
// into a single precomputed per-length offset, trading one subtraction
// at table-build time for one fewer at decode time.
func decodeIndexHelper(t decodeTables, br *bitio.Reader, n int) []byte {
	dst := make([]byte, 0, n)
	for len(dst) < n {
		var acc uint16
		for length := 1; length <= huffmanMaxCodeLength; length++ {
			acc = (acc << 1) | uint16(br.GetBits(1))
			count := t.countOfLen[length]
			if count == 0 {
				continue
			}
			offset := int(acc) - int(t.firstCode[length])
			if offset >= 0 && offset < count {
				dst = append(dst, t.entries[t.indexHelper[length]+int(acc)].symbol)
				break
			}
		}
	}
	return dst
}

// decodeCountPrefix is the default decoder: it walks lengths tracking a
// running cumulative symbol count and the first code of each length,
// which is arithmetically identical to decodeFirstCode but framed around
// the cumulative prefix used when the table was assembled.
func decodeCountPrefix(t decodeTables, br *bitio.Reader, n int) []byte {
	dst := make([]byte, 0, n)
	for len(dst) < n {
		var acc uint16
		prefix := 0
		for length := 1; length <= huffmanMaxCodeLength; length++ {
			acc = (acc << 1) | uint16(br.GetBits(1))
			count := t.countOfLen[length]
			offset := int(acc) - int(t.firstCode[length])
			if count > 0 && offset >= 0 && offset < count {
				dst = append(dst, t.entries[prefix+offset].symbol)
				break
			}
			prefix += count
		}
	}
	return dst
}
