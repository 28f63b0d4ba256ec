// Package succinct holds the rank/select primitives used by the BOSS and
// SBWT index encodings (spec.md section 4.1, component A "Bit/character
// sequence primitives"). It is split out of the root package the same
// way the teacher splits its small, focused data concerns (e.g. the
// blosum alphabet table) into their own package.
package succinct

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// BitVector is a bit vector supporting rank1/select1, backed by
// github.com/bits-and-blooms/bitset's word-packed implementation. It
// models the delimiter vectors O and I (BOSS) and the per-character
// presence bitmaps SBWT[c] (spec.md section 3).
type BitVector struct {
	bits *bitset.BitSet
	n    int
}

// NewBitVector returns a zero-valued bit vector of length n.
func NewBitVector(n int) *BitVector {
	return &BitVector{bits: bitset.New(uint(n)), n: n}
}

// Len returns the number of bits in the vector.
func (b *BitVector) Len() int { return b.n }

// Set sets bit i to one. It panics if i is out of range, which would be a
// construction-time programming error, not a query-time one.
func (b *BitVector) Set(i int) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("succinct: Set index %d out of range [0,%d)", i, b.n))
	}
	b.bits.Set(uint(i))
}

// Clear clears bit i to zero. Used to remove minus-marked SBWT entries
// (spec.md section 4.4 "clears the corresponding bit").
func (b *BitVector) Clear(i int) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("succinct: Clear index %d out of range [0,%d)", i, b.n))
	}
	b.bits.Clear(uint(i))
}

// Get reports whether bit i is set.
func (b *BitVector) Get(i int) bool {
	return b.bits.Test(uint(i))
}

// Rank1 returns the number of one-bits in b[0:p] (spec.md section 4.1,
// rank with p exclusive of the upper bound). p must satisfy 0 <= p <= Len().
func (b *BitVector) Rank1(p int) int {
	if p <= 0 {
		return 0
	}
	// bitset's Rank(i) counts set bits in [0,i], inclusive of i, so the
	// exclusive-upper-bound rank(p) is Rank(p-1).
	return int(b.bits.Rank(uint(p - 1)))
}

// Select1 returns the smallest index i such that the count of one-bits in
// b[0:i+1] equals k (1-indexed occurrence count, spec.md section 4.1). It
// returns an error satisfying ErrSelectOutOfRange if fewer than k one-bits
// exist, rather than silently returning an invalid index.
func (b *BitVector) Select1(k int) (int, error) {
	if k <= 0 {
		return 0, fmt.Errorf("succinct: Select1 called with non-positive count %d", k)
	}
	if uint(k) > b.bits.Count() {
		return 0, ErrSelectOutOfRange
	}
	// bitset's Select(j) returns the position of the (j+1)-th set bit
	// (0-indexed j), matching our 1-indexed k via j = k-1.
	pos := b.bits.Select(uint(k - 1))
	if pos >= uint(b.n) {
		return 0, ErrSelectOutOfRange
	}
	return int(pos), nil
}

// Count returns the total number of one-bits.
func (b *BitVector) Count() int {
	return int(b.bits.Count())
}

// Select0 returns the smallest index i such that the count of zero-bits
// in b[0:i+1] equals k (1-indexed occurrence count). Used by BOSS
// backward search to convert a Wheeler edge position back to a node
// range (spec.md section 4.5 "BOSS step"). The underlying bitset library
// has no built-in zero-select, and the spec explicitly allows a naive
// scan here (section 4.1), so this one is a direct linear search rather
// than routed through bitset.
func (b *BitVector) Select0(k int) (int, error) {
	if k <= 0 {
		return 0, fmt.Errorf("succinct: Select0 called with non-positive count %d", k)
	}
	seen := 0
	for i := 0; i < b.n; i++ {
		if !b.bits.Test(uint(i)) {
			seen++
			if seen == k {
				return i, nil
			}
		}
	}
	return 0, ErrSelectOutOfRange
}
