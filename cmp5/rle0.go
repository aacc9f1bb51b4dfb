package cmp5

import (
	"encoding/binary"
	"math/bits"
)

const (
	rleModeNaive   = 0
	rleModeWheeler = 1
)

// ZeroRLE collapses runs of zero bytes, in one of two framings selected by
// the encoder: Wheeler's binary-count scheme when a spare non-zero byte
// value is available to reserve for run encoding, or a naive
// zero-plus-count scheme otherwise.
type ZeroRLE struct{}

func (ZeroRLE) ID() byte     { return IDZeroRLE }
func (ZeroRLE) Name() string { return "Zero run-length" }

func (ZeroRLE) Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	var freq [256]uint32
	for _, b := range src {
		freq[b]++
	}
	border := -1
	for v := 1; v < 256; v++ {
		if freq[v] == 0 {
			border = v
			break
		}
	}

	dst := make([]byte, 0, n+n/4+8)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(n))
	dst = append(dst, lenBuf[:]...)

	if border < 0 {
		dst = append(dst, rleModeNaive)
		i := 0
		for i < n {
			b := src[i]
			dst = append(dst, b)
			i++
			if b == 0 {
				run := 0
				for i < n && run < 255 && src[i] == 0 {
					run++
					i++
				}
				dst = append(dst, byte(run))
			}
		}
		return dst
	}

	B := byte(border)
	dst = append(dst, rleModeWheeler, B)
	i := 0
	for i < n {
		s := src[i]
		if s != 0 {
			if s <= B {
				dst = append(dst, s+1)
			} else {
				dst = append(dst, s)
			}
			i++
			continue
		}
		run := 0
		for i < n && src[i] == 0 {
			run++
			i++
		}
		v := uint32(run) + 1
		nbits := bits.Len32(v) - 1
		for b := nbits - 1; b >= 0; b-- {
			dst = append(dst, byte((v>>uint(b))&1))
		}
	}
	return dst
}

func (ZeroRLE) Decode(src []byte) []byte {
	if len(src) < 5 {
		return nil
	}
	n := int(binary.LittleEndian.Uint32(src[0:4]))
	mode := src[4]
	idx := 5
	dst := make([]byte, 0, n)

	if mode == rleModeNaive {
		for idx < len(src) && len(dst) < n {
			b := src[idx]
			idx++
			dst = append(dst, b)
			if b == 0 {
				if idx >= len(src) {
					break
				}
				run := int(src[idx])
				idx++
				for k := 0; k < run; k++ {
					dst = append(dst, 0)
				}
			}
		}
		return dst
	}

	if idx >= len(src) {
		return dst
	}
	B := src[idx]
	idx++
	for idx < len(src) && len(dst) < n {
		b := src[idx]
		idx++
		if b < 2 {
			acc := uint32(1)
			acc = (acc << 1) | uint32(b)
			for idx < len(src) && src[idx] < 2 {
				acc = (acc << 1) | uint32(src[idx])
				idx++
			}
			run := acc - 1
			for k := uint32(0); k < run; k++ {
				dst = append(dst, 0)
			}
			if idx < len(src) {
				term := src[idx]
				idx++
				if term <= B {
					dst = append(dst, term-1)
				} else {
					dst = append(dst, term)
				}
			}
			continue
		}
		if b <= B {
			dst = append(dst, b-1)
		} else {
			dst = append(dst, b)
		}
	}
	return dst
}
