package wheelerboss

import (
	"fmt"
	"io"
	"sort"

	"github.com/ndaniels/wheelerboss/internal/succinct"
)

// SBWTIndex is the select-free succinct index: one presence bit vector
// per DNA base over nodes, instead of BOSS's edge-labelled GBWT plus
// delimiter vectors (spec.md section 3 "Indexed graph (SBWT form)").
// Grounded on original_source/select_free_boss.cpp.
type SBWTIndex struct {
	sbwt   [4]*succinct.BitVector // indexed by Bases[0..3] = A,C,G,T
	c      [alphaSize]int
	k      int
	nNodes int
}

// NNodes returns the number of nodes in the graph, including dummies.
func (idx *SBWTIndex) NNodes() int { return idx.nNodes }

func baseSlot(c byte) int {
	switch c {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		panic("wheelerboss: SBWT indexed by non-base symbol " + string(c))
	}
}

// buildSBWT lowers an already colex-ordered kmerTable into the four SBWT
// bit vectors and the C array (spec.md section 4.4 "SBWT layout").
// Grounded directly on select_free_boss.cpp's SelectFreeBOSS constructor.
func buildSBWT(table *kmerTable, k int) (built *SBWTIndex, err error) {
	// The minus-mark pass panics if its select bookkeeping drifts out of
	// sync; report that as a corrupt index rather than crashing.
	defer func() {
		if r := recover(); r != nil {
			built, err = nil, corruptf("%v", r)
		}
	}()

	n := len(table.records)

	var sbwt [4]*succinct.BitVector
	for i := range sbwt {
		sbwt[i] = succinct.NewBitVector(n)
	}

	// F_column, in node order this time (not edge order): for each node,
	// append its out-set characters in canonical order. Unlike BOSS's
	// GBWT (whose positions correspond to edges), SBWT set-bits are
	// indexed by *node*, so the per-character bit vectors are built in
	// the same loop that derives F_column for the minus-mark pass below.
	// positions[slot] records, for each base, the ascending node indices
	// that set a bit for that base — equivalent to Select queries against
	// the not-yet-marked bit vector, computed once up front so that later
	// clears (which do mutate the bit vectors) can never perturb a select
	// result still to come, mirroring how select_free_boss.cpp selects
	// against a frozen local copy of SBWT before writing marks into the
	// member copy.
	var positions [4][]int
	fcol := make([]byte, 0, n*2)
	for p, rec := range table.records {
		chars := rec.out.sorted()
		if len(chars) == 0 {
			return nil, corruptf("node %q has no outgoing edge after dollar closure", rec.label)
		}
		for _, c := range chars {
			if c != Dollar {
				slot := baseSlot(c)
				sbwt[slot].Set(p)
				positions[slot] = append(positions[slot], p)
			}
			fcol = append(fcol, c)
		}
	}
	sort.Slice(fcol, func(a, b int) bool { return fcol[a] < fcol[b] })

	var counts [alphaSize]int
	for _, ch := range fcol {
		counts[charIndex(ch)]++
	}
	// Only the root's label ends in '$', so nodes ending in 'A' start at
	// position 1 however many '$' out-edges the closure added.
	counts[charIndex(Dollar)] = 1

	// Minus marks: walk F_column aligned with colex node order, clearing
	// all but the first in-edge's corresponding out-edge bit, exactly as
	// applyMinusMarks does for BOSS but operating on bit positions
	// instead of GBWT byte positions.
	labelsSeen := make(map[byte]int, alphaSize)
	fIndex := 0
	for p, rec := range table.records {
		indegree := rec.in.len()
		// The root (p == 0) has no incoming edge when no node needed the
		// outgoing-dollar closure.
		if indegree == 0 && p > 0 {
			return nil, corruptf("node %q has no incoming edge", rec.label)
		}
		c := fcol[fIndex]
		if c != Dollar {
			slot := baseSlot(c)
			for i := 1; i < indegree; i++ {
				idx := labelsSeen[c] + i // 0-indexed into positions[slot]
				if idx >= len(positions[slot]) {
					panic(fmt.Sprintf("wheelerboss: minus-mark select failed for %q: index %d out of range", c, idx))
				}
				sbwt[slot].Clear(positions[slot][idx])
				counts[charIndex(c)]--
			}
		}
		labelsSeen[c] += indegree
		fIndex += indegree
	}

	var c [alphaSize]int
	sum := 0
	for i := 0; i < alphaSize; i++ {
		c[i] = sum
		sum += counts[i]
	}

	return &SBWTIndex{sbwt: sbwt, c: c, k: k, nNodes: n}, nil
}

// Dump writes the final bit vectors and C array in a human-readable
// form, for inspection only (spec.md section 6).
func (idx *SBWTIndex) Dump(w io.Writer) {
	for i, base := range Bases {
		fmt.Fprintf(w, "SBWT[%c]: %s\n", base, bitString(idx.sbwt[i]))
	}
	fmt.Fprintf(w, "C: %v\n", idx.c)
	fmt.Fprintf(w, "n_nodes: %d\n", idx.nNodes)
}

// RawBits exposes the index's serialized form: the four per-base presence
// bit vectors (A, C, G, T order) as '0'/'1' strings, and the C array.
// Paired with NewSBWTIndexFromRaw this supports the round-trip property
// of spec.md section 8.
func (idx *SBWTIndex) RawBits() (sbwt [4]string, c [alphaSize]int) {
	for i := range idx.sbwt {
		sbwt[i] = bitString(idx.sbwt[i])
	}
	return sbwt, idx.c
}

// NewSBWTIndexFromRaw reconstructs an SBWTIndex directly from a
// previously serialized set of per-base bit vectors and C array (spec.md
// section 8, round-trip property).
func NewSBWTIndexFromRaw(sbwt [4]string, c [alphaSize]int, k int) *SBWTIndex {
	var bv [4]*succinct.BitVector
	for i, s := range sbwt {
		bv[i] = bitVectorFromBits(s)
	}
	return &SBWTIndex{sbwt: bv, c: c, k: k, nNodes: len(sbwt[0])}
}

func bitString(bv *succinct.BitVector) string {
	b := make([]byte, bv.Len())
	for i := range b {
		if bv.Get(i) {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}
