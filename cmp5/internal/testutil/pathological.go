package testutil

// PathologicalCases returns a fixed set of inputs chosen to stress codec
// edge cases: empty input, single-byte input, runs long enough to force
// Huffman's frequency-normalization and length-cap retry, an all-zero run
// long enough to need multi-byte Wheeler run encoding, a full 0..255
// byte-value cycle (exercises every RGB-plane/MTF slot), and inputs whose
// length is and is not a multiple of 3.
func PathologicalCases() [][]byte {
	r := NewRand(1)
	cases := [][]byte{
		nil,
		{0},
		{0xFF},
		bytesOf(0, 1),
		bytesOf(0, 300),
		bytesOf(0, 1<<16),
		repeatByte(7, 2048),
		fibonacciWeighted(),
		fullCycle(),
		fullCycle()[:255],
		r.Bytes(4096),
		r.Bytes(4097),
	}
	return cases
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func repeatByte(b byte, n int) []byte {
	return bytesOf(b, n)
}

func fullCycle() []byte {
	out := make([]byte, 256)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}

// fibonacciWeighted builds a frequency distribution shaped like the
// Fibonacci sequence, the canonical pathological input for naive Huffman
// tree builders: it produces the deepest possible tree for a given symbol
// count and exercises the length-cap retry loop.
func fibonacciWeighted() []byte {
	counts := []int{1, 1}
	for len(counts) < 24 {
		counts = append(counts, counts[len(counts)-1]+counts[len(counts)-2])
	}
	var out []byte
	for sym, n := range counts {
		for i := 0; i < n; i++ {
			out = append(out, byte(sym))
		}
	}
	return out
}
