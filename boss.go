package wheelerboss

import (
	"fmt"
	"io"
	"sort"

	"github.com/ndaniels/wheelerboss/internal/succinct"
)

// BOSSIndex is the edge-labelled succinct index (spec.md section 3
// "Indexed graph (BOSS form)"). Once built it is immutable and safe to
// share across concurrent Search calls (spec.md section 5).
//
// O and I are delimiter bit vectors in the exact shape
// original_source/main.c's fixed WheelerBOSS example uses: one node per
// block, each block a leading '1' marking the start of the node followed
// by one zero per edge (out-degree zeros for O, in-degree zeros for I).
// Total length is n_nodes+n_edges, not n_edges — search.go's Select1/
// Select0 offset arithmetic is derived against this exact layout.
type BOSSIndex struct {
	gbwt []byte // GBWT, with minus-marked edges lowercased
	o    *succinct.BitVector
	i    *succinct.BitVector
	c    [alphaSize]int
	k    int

	nNodes int
	nEdges int
}

// NNodes returns the number of nodes in the graph, including dummies.
func (idx *BOSSIndex) NNodes() int { return idx.nNodes }

// NEdges returns the number of edges in the graph, including dummies.
func (idx *BOSSIndex) NEdges() int { return idx.nEdges }

// buildBOSS lowers an already colex-ordered kmerTable into the BOSS bit
// vectors and C array (spec.md section 4.4 "BOSS layout"). Grounded on
// original_source/main.c's WheelerBOSS struct shape and
// original_source/original_boss.cpp's construct/minus-mark loop.
func buildBOSS(table *kmerTable, k int) (built *BOSSIndex, err error) {
	// applyMinusMarks panics if its select bookkeeping drifts out of sync
	// with GBWT; report that as a corrupt index rather than crashing.
	defer func() {
		if r := recover(); r != nil {
			built, err = nil, corruptf("%v", r)
		}
	}()

	n := len(table.records)

	totalOut, totalIn := 0, 0
	for _, rec := range table.records {
		totalOut += rec.out.len()
		totalIn += rec.in.len()
	}

	gbwt := make([]byte, 0, totalOut)
	o := succinct.NewBitVector(n + totalOut)
	opos := 0
	for _, rec := range table.records {
		chars := rec.out.sorted()
		if len(chars) == 0 {
			return nil, corruptf("node %q has no outgoing edge after dollar closure", rec.label)
		}
		o.Set(opos) // leading '1' marks the start of this node's block
		opos++
		for _, c := range chars {
			gbwt = append(gbwt, c)
			opos++ // one zero per outgoing edge
		}
	}

	i := succinct.NewBitVector(n + totalIn)
	ipos := 0
	for p, rec := range table.records {
		d := rec.in.len()
		// The root (p == 0) has no incoming edge when no node needed the
		// outgoing-dollar closure; its block is then a lone '1'.
		if d == 0 && p > 0 {
			return nil, corruptf("node %q has no incoming edge", rec.label)
		}
		i.Set(ipos) // leading '1' marks the start of this node's block
		ipos += 1 + d
	}

	if totalOut != totalIn {
		return nil, corruptf("total out-degree %d does not match total in-degree %d", totalOut, totalIn)
	}

	applyMinusMarks(gbwt, table)

	// The C array must count every edge, marked or not: I's per-node
	// delimiter blocks are sized from each node's raw in-degree (above),
	// so wl/wr must walk the same raw edge space or Select0 lands on the
	// wrong block. Marking still lowercases the byte for Dump output and
	// for the invariant that a marked edge is redundant, but it must not
	// change which rank a query resolves to in this I/O-delimited layout
	// (unlike SBWT's bit-clearing, which physically removes the edge).
	var counts [alphaSize]int
	for _, ch := range gbwt {
		counts[charIndex(unmarkBase(ch))]++
	}
	var c [alphaSize]int
	sum := 0
	for idx := 0; idx < alphaSize; idx++ {
		c[idx] = sum
		sum += counts[idx]
	}

	return &BOSSIndex{
		gbwt:   gbwt,
		o:      o,
		i:      i,
		c:      c,
		k:      k,
		nNodes: n,
		nEdges: len(gbwt),
	}, nil
}

// applyMinusMarks lowercases every redundant out-edge in gbwt in place
// (spec.md section 4.4 "Minus marks"). table.records must already be in
// colex order and gbwt must be the freshly-built, unmarked GBWT for the
// same table.
//
// Grounded line-for-line on original_source/original_boss.cpp's "Add
// minus marks to GBWT" block.
func applyMinusMarks(gbwt []byte, table *kmerTable) {
	fcol := make([]byte, len(gbwt))
	copy(fcol, gbwt)
	sort.Slice(fcol, func(a, b int) bool { return fcol[a] < fcol[b] })

	marked := make([]bool, len(gbwt))
	labelsSeen := make(map[byte]int, alphaSize)
	fIndex := 0
	for _, rec := range table.records {
		indegree := rec.in.len()
		c := fcol[fIndex]
		if c != Dollar {
			for i := 1; i < indegree; i++ {
				pos, err := succinct.CharSelect(gbwt, c, labelsSeen[c]+i+1)
				if err != nil {
					// Can only happen if the F-column / in-degree
					// bookkeeping has drifted out of sync with GBWT:
					// a construction bug, not a user-facing condition.
					panic(fmt.Sprintf("wheelerboss: minus-mark select failed for %q: %v", c, err))
				}
				marked[pos] = true
			}
		}
		labelsSeen[c] += indegree
		fIndex += indegree
	}

	for idx, m := range marked {
		if m {
			gbwt[idx] = toLowerBase(gbwt[idx])
		}
	}
}

func toLowerBase(c byte) byte {
	switch c {
	case 'A':
		return 'a'
	case 'C':
		return 'c'
	case 'G':
		return 'g'
	case 'T':
		return 't'
	default:
		return c
	}
}

func isLowered(c byte) bool {
	return c == 'a' || c == 'c' || c == 'g' || c == 't'
}

func unmarkBase(c byte) byte {
	switch c {
	case 'a':
		return 'A'
	case 'c':
		return 'C'
	case 'g':
		return 'G'
	case 't':
		return 'T'
	default:
		return c
	}
}

// gbwtCharRank counts occurrences of c among gbwt[:p], treating a
// minus-marked (lowercased) byte as still matching its canonical
// uppercase symbol. search.go uses this instead of succinct.CharRank for
// BOSS backward search, for the same reason buildBOSS's C array counts
// every edge above: I's delimiter blocks are sized from raw in-degree,
// so marking must stay invisible to the rank arithmetic that walks them.
func gbwtCharRank(gbwt []byte, c byte, p int) int {
	n := 0
	for idx := 0; idx < p; idx++ {
		if unmarkBase(gbwt[idx]) == c {
			n++
		}
	}
	return n
}

// Dump writes GBWT, the I and O bit vectors, the C array and the node and
// edge counts in a human-readable form, for inspection only. The k-mer
// table is not kept after construction and is not printed. Per spec.md
// section 6 this output is not part of the contract and must never be
// parsed by tests.
func (idx *BOSSIndex) Dump(w io.Writer) {
	fmt.Fprintf(w, "GBWT: %s\n", idx.gbwt)
	fmt.Fprintf(w, "I: %s\n", bitString(idx.i))
	fmt.Fprintf(w, "O: %s\n", bitString(idx.o))
	fmt.Fprintf(w, "C: %v\n", idx.c)
	fmt.Fprintf(w, "n_nodes: %d n_edges: %d\n", idx.nNodes, idx.nEdges)
}

// RawBits exposes the index's serialized form: the I and O delimiter bit
// vectors as '0'/'1' strings, the raw GBWT bytes (with minus-marks still
// lowercased), the C array, and the node count. Paired with
// NewBOSSIndexFromRaw this supports the round-trip property of spec.md
// section 8 ("encoding then re-reading I, O, GBWT ... yields an index
// that answers the same query the same way"). nNodes must travel
// alongside I/O explicitly: since each node's block in I/O carries a
// leading delimiter bit plus one zero per edge, len(I) and len(O) are
// n_nodes+n_edges, not n_nodes, so the node count cannot be recovered
// from the bit vectors' lengths alone.
func (idx *BOSSIndex) RawBits() (i, o string, gbwt []byte, c [alphaSize]int, nNodes int) {
	return bitString(idx.i), bitString(idx.o), append([]byte(nil), idx.gbwt...), idx.c, idx.nNodes
}

// NewBOSSIndexFromRaw reconstructs a BOSSIndex directly from a previously
// serialized I, O, GBWT, C and node count, bypassing enumeration and
// minus-marking entirely (spec.md section 8, round-trip property and
// Scenario 1's fixed reference-harness example). nNodes is taken
// explicitly rather than derived from len(i): original_source/main.c's
// WheelerBOSS.n_nodes is an independent field from strlen(I), since I's
// encoding carries one delimiter bit plus one zero per edge, per node.
func NewBOSSIndexFromRaw(i, o string, gbwt []byte, c [alphaSize]int, nNodes, k int) *BOSSIndex {
	return &BOSSIndex{
		gbwt:   append([]byte(nil), gbwt...),
		o:      bitVectorFromBits(o),
		i:      bitVectorFromBits(i),
		c:      c,
		k:      k,
		nNodes: nNodes,
		nEdges: len(gbwt),
	}
}

func bitVectorFromBits(s string) *succinct.BitVector {
	bv := succinct.NewBitVector(len(s))
	for j := 0; j < len(s); j++ {
		if s[j] == '1' {
			bv.Set(j)
		}
	}
	return bv
}
