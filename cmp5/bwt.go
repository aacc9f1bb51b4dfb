package cmp5

import (
	"encoding/binary"

	"github.com/HorstBaerbel/compress/cmp5/internal/sais"
)

// bwtMaxBlockSize is the largest configurable block size: 16 MiB minus 1,
// chosen so the doubled, reversed working buffer never overflows a 32-bit
// byte count.
const bwtMaxBlockSize = 16*1024*1024 - 1

// BWT implements the Burrows-Wheeler block-sorting transform. Each block
// is encoded independently via the reversed-duplicated-buffer trick: the
// suffix array of reverse(block)++reverse(block) gives the transform's
// last column directly, without a specialized cyclic suffix array.
type BWT struct {
	BlockSize uint32
}

// NewBWT returns a BWT codec with blockSize clamped to [1, 16*1024*1024-1].
func NewBWT(blockSize uint32) *BWT {
	if blockSize == 0 {
		blockSize = 1
	}
	if blockSize > bwtMaxBlockSize {
		blockSize = bwtMaxBlockSize
	}
	return &BWT{BlockSize: blockSize}
}

func (c *BWT) ID() byte     { return IDBWT }
func (c *BWT) Name() string { return "Burrows-Wheeler transform" }

func (c *BWT) Encode(src []byte) []byte {
	n := len(src)
	if n == 0 || c.BlockSize == 0 {
		return nil
	}
	blockSize := int(c.BlockSize)

	dst := make([]byte, 0, n+8+4*(n/blockSize+1))
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(n))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(blockSize))
	dst = append(dst, hdr[:]...)

	block := make([]byte, 2*blockSize)
	sa := make([]int, 2*blockSize)

	for srcIndex := 0; srcIndex < n; {
		size := blockSize
		if srcIndex+size > n {
			size = n - srcIndex
		}
		for i := 0; i < size; i++ {
			b := src[srcIndex+size-1-i]
			block[i] = b
			block[size+i] = b
		}

		sais.ComputeSA(block[:2*size], sa[:2*size])

		startIndexPos := len(dst)
		dst = append(dst, 0, 0, 0, 0)

		var startIndex uint32
		count := 0
		for _, idx := range sa[:2*size] {
			if idx >= size {
				continue
			}
			if idx == 0 {
				startIndex = uint32(count)
				idx = size
			}
			dst = append(dst, block[idx-1])
			count++
		}
		binary.LittleEndian.PutUint32(dst[startIndexPos:startIndexPos+4], startIndex)

		srcIndex += size
	}
	return dst
}

func (c *BWT) Decode(src []byte) []byte {
	if len(src) < 8 {
		return nil
	}
	destSize := binary.LittleEndian.Uint32(src[0:4])
	blockSize := int(binary.LittleEndian.Uint32(src[4:8]))
	if blockSize == 0 {
		return nil
	}

	dst := make([]byte, 0, destSize)
	var C [256]uint32
	T := make([]uint32, blockSize)

	srcIndex := 8
	for srcIndex+4 <= len(src) {
		startIndex := binary.LittleEndian.Uint32(src[srcIndex : srcIndex+4])
		srcIndex += 4

		size := blockSize
		if srcIndex+size > len(src) {
			size = len(src) - srcIndex
		}
		if size <= 0 {
			break
		}
		blockData := src[srcIndex : srcIndex+size]
		if int(startIndex) >= size {
			panic(Error("bwt: start index out of range"))
		}

		for i := range C {
			C[i] = 0
		}
		for i := 0; i < size; i++ {
			T[i] = C[blockData[i]]
			C[blockData[i]]++
		}
		var sum uint32
		for sym := 0; sym < 256; sym++ {
			sum += C[sym]
			C[sym] = sum - C[sym]
		}

		index := startIndex
		for i := 0; i < size; i++ {
			symbol := blockData[index]
			dst = append(dst, symbol)
			index = T[index] + C[symbol]
		}

		srcIndex += size
	}
	return dst
}
