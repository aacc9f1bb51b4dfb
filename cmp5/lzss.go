package cmp5

import (
	"encoding/binary"

	"github.com/HorstBaerbel/compress/cmp5/internal/bitio"
	"github.com/HorstBaerbel/compress/cmp5/internal/sais"
)

// LZSS is a sliding-dictionary match encoder. Instead of a hash chain it
// builds the suffix array of the current dictionary window at every
// advance and uses it to find the longest match for the look-ahead byte,
// the same structural trick the BWT codec uses for its block sort.
type LZSS struct {
	DictionaryBits  uint8
	MatchLengthBits uint8
}

// NewLZSS returns an LZSS codec with dictionaryBits clamped to [4, 20] and
// matchLengthBits clamped to [3, 8].
func NewLZSS(dictionaryBits, matchLengthBits uint8) *LZSS {
	if dictionaryBits < 4 {
		dictionaryBits = 4
	}
	if dictionaryBits > 20 {
		dictionaryBits = 20
	}
	if matchLengthBits < 3 {
		matchLengthBits = 3
	}
	if matchLengthBits > 8 {
		matchLengthBits = 8
	}
	return &LZSS{DictionaryBits: dictionaryBits, MatchLengthBits: matchLengthBits}
}

func (c *LZSS) ID() byte     { return IDLZSS }
func (c *LZSS) Name() string { return "LZSS" }

func (c *LZSS) params() (dictionarySize, lookAheadSize, minMatch, maxMatch int, d, m uint8) {
	d, m = c.DictionaryBits, c.MatchLengthBits
	if d == 0 {
		d = 15
	}
	if m == 0 {
		m = 5
	}
	dictionarySize = 1 << d
	lookAheadSize = 1 << (d - 3)
	minMatch = int(d+m+7)/8 + 1
	maxMatch = (1<<m - 1) + minMatch
	return
}

func (c *LZSS) Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}
	dictionarySize, lookAheadSize, minMatch, maxMatch, d, m := c.params()

	dst := make([]byte, 6, 6+n+n/8+4)
	binary.LittleEndian.PutUint32(dst[0:4], uint32(n))
	dst[4] = d
	dst[5] = m

	if n < lookAheadSize {
		return append(dst, src...)
	}

	dst = append(dst, src[:lookAheadSize]...)
	bw := bitio.NewWriter(n)

	pos := lookAheadSize
	var sa []int
	var LI, RI [256]int

	rebuild := func() {
		dictStart := pos - dictionarySize
		if dictStart < 0 {
			dictStart = 0
		}
		dictionary := src[dictStart:pos]
		sa = make([]int, len(dictionary))
		sais.ComputeSA(dictionary, sa)
		for i := range LI {
			LI[i] = -1
			RI[i] = -1
		}
		for i, p := range sa {
			ch := dictionary[p]
			if LI[ch] < 0 {
				LI[ch] = i
			}
			RI[ch] = i
		}
	}
	rebuild()

	for pos < n {
		dictStart := pos - dictionarySize
		if dictStart < 0 {
			dictStart = 0
		}
		dictionary := src[dictStart:pos]

		lookAheadEnd := pos + lookAheadSize
		if lookAheadEnd > n {
			lookAheadEnd = n
		}
		lookAhead := src[pos:lookAheadEnd]

		b := lookAhead[0]
		bestLen := 0
		bestOffset := 0
		if LI[b] >= 0 {
			for p := LI[b]; p <= RI[b]; p++ {
				cand := sa[p]
				maxLen := len(dictionary) - cand
				if maxLen > len(lookAhead) {
					maxLen = len(lookAhead)
				}
				if maxLen > maxMatch {
					maxLen = maxMatch
				}
				length := 0
				for length < maxLen && dictionary[cand+length] == lookAhead[length] {
					length++
				}
				if length > bestLen {
					bestLen = length
					bestOffset = cand
					if bestLen >= maxMatch {
						break
					}
				}
			}
		}

		var consumed int
		if bestLen >= minMatch {
			bw.PutBits(1, 1)
			bw.PutBits(uint32(bestOffset), uint(d))
			bw.PutBits(uint32(bestLen-minMatch), uint(m))
			consumed = bestLen
		} else {
			literals := bestLen
			if literals == 0 {
				literals = 1
			}
			for i := 0; i < literals; i++ {
				bw.PutBits(0, 1)
				bw.PutBits(uint32(lookAhead[i]), 8)
			}
			consumed = literals
		}

		pos += consumed
		rebuild()
	}

	return append(dst, bw.Finish()...)
}

func (c *LZSS) Decode(src []byte) []byte {
	if len(src) < 6 {
		return nil
	}
	destSize := int(binary.LittleEndian.Uint32(src[0:4]))
	d := src[4]
	m := src[5]
	codec := &LZSS{DictionaryBits: d, MatchLengthBits: m}
	dictionarySize, lookAheadSize, minMatch, _, _, _ := codec.params()

	if destSize < lookAheadSize {
		if len(src) < 6+destSize {
			return nil
		}
		return append([]byte(nil), src[6:6+destSize]...)
	}

	dst := make([]byte, 0, destSize)
	end := 6 + lookAheadSize
	if end > len(src) {
		end = len(src)
	}
	dst = append(dst, src[6:end]...)

	br := bitio.NewReader(src[end:])
	dm := int(d) + int(m)
	if dm > 8 {
		dm = 8
	}
	minRemaining := 1 + dm
	for len(dst) < destSize && br.Remaining() >= minRemaining {
		bit := br.GetBits(1)
		if bit == 0 {
			b := byte(br.GetBits(8))
			dst = append(dst, b)
			continue
		}
		offset := int(br.GetBits(uint(d)))
		lengthField := int(br.GetBits(uint(m)))
		length := lengthField + minMatch

		dictStart := len(dst) - dictionarySize
		if dictStart < 0 {
			dictStart = 0
		}
		start := dictStart + offset
		if start >= len(dst) {
			panic(Error("lzss: match offset out of range"))
		}
		for i := 0; i < length && len(dst) < destSize; i++ {
			dst = append(dst, dst[start+i])
		}
	}
	return dst
}
