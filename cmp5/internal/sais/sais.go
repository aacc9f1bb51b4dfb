// Package sais computes suffix arrays over byte sequences for cmp5's BWT
// and LZSS codecs. The construction is prefix-doubling rank sort: O(n
// log^2 n) worst case, which the calling codecs accept in exchange for an
// implementation whose correctness follows directly from the well-known
// doubling invariant rather than from a hand-verified induced-sort proof.
package sais

import "sort"

// ComputeSA computes the suffix array of t into sa: sa[i] is the starting
// index of the i-th lexicographically smallest suffix of t. Both slices
// must have the same length.
func ComputeSA(t []byte, sa []int) {
	n := len(t)
	if len(sa) != n {
		panic("sais: mismatching sizes")
	}
	if n == 0 {
		return
	}

	rank := make([]int, n)
	next := make([]int, n)
	for i := 0; i < n; i++ {
		sa[i] = i
		rank[i] = int(t[i])
	}

	// rankAt returns the rank of the suffix starting at i shifted by k
	// positions, or -1 if that suffix has already ended (a virtual
	// end-of-string symbol smaller than every real rank).
	rankAt := func(i, k int) int {
		j := i + k
		if j >= n {
			return -1
		}
		return rank[j]
	}

	less := func(a, b, k int) bool {
		if rank[a] != rank[b] {
			return rank[a] < rank[b]
		}
		return rankAt(a, k) < rankAt(b, k)
	}

	for k := 1; ; k *= 2 {
		sort.Slice(sa, func(i, j int) bool {
			return less(sa[i], sa[j], k)
		})
		next[sa[0]] = 0
		for i := 1; i < n; i++ {
			next[sa[i]] = next[sa[i-1]]
			if less(sa[i-1], sa[i], k) {
				next[sa[i]]++
			}
		}
		copy(rank, next)
		if rank[sa[n-1]] == n-1 {
			break
		}
		if k >= n {
			break
		}
	}
}
