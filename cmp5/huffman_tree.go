package cmp5

import (
	"container/heap"
	"math/bits"
	"sort"
)

// huffCode is a single entry of a Huffman code table: a symbol, its code
// word, and the word's bit length. Length 0 marks "symbol absent" after
// canonicalization.
type huffCode struct {
	symbol uint8
	code   uint16
	length uint8
}

// frequenciesFromData counts byte occurrences and normalizes them: if the
// minimum non-zero frequency exceeds 2, every non-zero frequency is
// right-shifted by floor(log2(minimum)) and OR'd with 1 to stay non-zero.
// This caps the resulting tree's depth, a standard guard against
// pathological (e.g. Fibonacci-weighted) frequency distributions.
func frequenciesFromData(src []byte) [256]uint32 {
	var freq [256]uint32
	for _, b := range src {
		freq[b]++
	}
	var minimum uint32
	for _, f := range freq {
		if f > 0 && (minimum == 0 || f < minimum) {
			minimum = f
		}
	}
	if minimum > 2 {
		shift := uint(bits.Len32(minimum) - 1)
		if shift > 0 {
			for i, f := range freq {
				if f > 0 {
					freq[i] = (f >> shift) | 1
				}
			}
		}
	}
	return freq
}

type treeNode struct {
	weight      uint32
	symbol      uint8
	left, right *treeNode
}

func (n *treeNode) isLeaf() bool { return n.left == nil && n.right == nil }

type nodeHeap []*treeNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*treeNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// buildCodes walks the Huffman tree recursively, assigning each leaf its
// code word and depth. A zero-weight leaf (a symbol absent from the
// input) is marked with length 255, an invalid sentinel resolved to
// "absent" during canonicalization.
func buildCodes(codes *[256]huffCode, node *treeNode, code uint16, length uint8) {
	if node.isLeaf() {
		if node.weight > 0 {
			codes[node.symbol] = huffCode{symbol: node.symbol, code: code, length: length}
		} else {
			codes[node.symbol] = huffCode{symbol: node.symbol, code: 0, length: 255}
		}
		return
	}
	if node.left != nil {
		buildCodes(codes, node.left, code<<1, length+1)
	}
	if node.right != nil {
		buildCodes(codes, node.right, (code<<1)|1, length+1)
	}
}

// convertToCanonical reassigns code words in canonical order: sort
// (length ascending, symbol ascending), then walk assigning sequential
// codes, left-shifting by the length delta whenever length increases.
// Entries with the length-255 sentinel become length 0 ("absent").
func convertToCanonical(codes [256]huffCode) [256]huffCode {
	canon := codes
	sort.Slice(canon[:], func(i, j int) bool {
		a, b := canon[i], canon[j]
		if a.length != b.length {
			return a.length < b.length
		}
		return a.symbol < b.symbol
	})

	var currentCode uint16
	currentLength := canon[0].length
	for i := range canon {
		if canon[i].length < 255 {
			if currentLength < canon[i].length {
				currentCode <<= canon[i].length - currentLength
			}
			canon[i].code = currentCode
			currentCode++
			currentLength = canon[i].length
		} else {
			canon[i].code = 0
			canon[i].length = 0
		}
	}
	return canon
}

// codesFromFrequencies builds a canonical Huffman code table over all 256
// symbol slots (symbols absent from the input carry weight 0 and resolve
// to length 0). If the resulting maximum code length exceeds 15, every
// non-zero frequency is halved (OR'd with 1) and the tree is rebuilt; this
// terminates because repeated halving flattens all weights to 1, which
// yields a perfectly balanced tree of depth 8.
func codesFromFrequencies(freq [256]uint32) (bySymbol [256]huffCode) {
	const maxAllowedLength = 15
	for {
		h := make(nodeHeap, 0, 256)
		for i := 0; i < 256; i++ {
			h = append(h, &treeNode{weight: freq[i], symbol: uint8(i)})
		}
		heap.Init(&h)
		for h.Len() > 1 {
			left := heap.Pop(&h).(*treeNode)
			right := heap.Pop(&h).(*treeNode)
			heap.Push(&h, &treeNode{weight: left.weight + right.weight, left: left, right: right})
		}
		root := heap.Pop(&h).(*treeNode)

		var codes [256]huffCode
		buildCodes(&codes, root, 0, 0)
		canon := convertToCanonical(codes)

		var maxLen uint8
		for _, c := range canon {
			if c.length > maxLen {
				maxLen = c.length
			}
		}
		if maxLen <= maxAllowedLength {
			for _, c := range canon {
				bySymbol[c.symbol] = c
			}
			return bySymbol
		}

		for i, f := range freq {
			if f > 0 {
				freq[i] = (f >> 1) | 1
			}
		}
	}
}
