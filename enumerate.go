package wheelerboss

import "golang.org/x/exp/slices"

// kmerRecord is one row of the edge-centric k-mer table: a length-k label
// over Σ∪{$} plus the set of characters labelling its incoming and
// outgoing edges (spec.md section 3 "K-mer record").
type kmerRecord struct {
	label string
	in    charSet
	out   charSet
}

// kmerTable is the colex-ordered mapping produced by enumeration (spec.md
// section 4.3). Only the encoder ever sees this; it is dropped once
// construction finishes (spec.md section 5 "Ownership").
type kmerTable struct {
	records []kmerRecord
	index   map[string]int // label -> position in records, while building
}

func newKmerTable() *kmerTable {
	return &kmerTable{index: make(map[string]int)}
}

// getOrCreate returns the record for label, creating an empty one (no
// in/out symbols yet) if this is the first time label is seen.
func (t *kmerTable) getOrCreate(label string) *kmerRecord {
	if i, ok := t.index[label]; ok {
		return &t.records[i]
	}
	t.index[label] = len(t.records)
	t.records = append(t.records, kmerRecord{label: label})
	return &t.records[len(t.records)-1]
}

// enumerateKmers builds the edge-centric k-mer table for inputs at node
// length k (spec.md section 4.3). It requires k >= 1 and every input
// string to have length >= k.
//
// Translated from original_source/original_boss.cpp's construct: the
// dummy-prefix ladder, then interior k-mers, then the outgoing-dollar
// closure, built into a Go map keyed by label and then sorted into colex
// order (spec.md section 9 "an arena-backed sorted container keyed by a
// colex comparator, or a sort of an unordered map into a vector").
func enumerateKmers(inputs []string, k int) (*kmerTable, error) {
	if k < 1 {
		return nil, preconditionf("k must be >= 1, got %d", k)
	}
	if len(inputs) == 0 {
		return nil, preconditionf("inputs must be non-empty")
	}
	for idx, s := range inputs {
		if len(s) < k {
			return nil, preconditionf("input %d has length %d, shorter than k=%d", idx, len(s), k)
		}
		for i := 0; i < len(s); i++ {
			if !IsBase(s[i]) {
				return nil, preconditionf("input %d contains invalid symbol %q at position %d", idx, s[i], i)
			}
		}
	}

	table := newKmerTable()

	for _, s := range inputs {
		// Dummy prefixes: for i in 0..k, prefix = '$'*(k-i) ++ S[0:i].
		for i := 0; i <= k; i++ {
			prefix := dollarPad(k-i) + s[:i]
			rec := table.getOrCreate(prefix)
			if i > 0 {
				rec.in = rec.in.add(Dollar)
			}
			if i < k {
				rec.out = rec.out.add(s[i])
			}
		}

		// Interior k-mers: for i in 0..len(S)-k, kmer = S[i:i+k].
		for i := 0; i <= len(s)-k; i++ {
			kmer := s[i : i+k]
			rec := table.getOrCreate(kmer)
			if i > 0 {
				rec.in = rec.in.add(s[i-1])
			}
			if i+k < len(s) {
				rec.out = rec.out.add(s[i+k])
			}
		}
	}

	// Sort into colex order before the dollar closure, so "the
	// colex-minimum node" below is well defined (spec.md section 4.3
	// step 3, "the colex-minimum node (the 'root')").
	slices.SortFunc(table.records, func(a, b kmerRecord) int {
		if colexLess(a.label, b.label) {
			return -1
		}
		if colexLess(b.label, a.label) {
			return 1
		}
		return 0
	})
	for i, rec := range table.records {
		table.index[rec.label] = i
	}

	// Outgoing-dollar closure: every node with no outgoing edge gets one
	// to '$', and the colex-minimum node (the root, index 0 after
	// sorting) gets a matching incoming '$'. in/out are bitmasks, so
	// repeated insertion is naturally idempotent — the spec.md section 9
	// open question ("whether multiple such insertions should be
	// deduplicated") is resolved by construction, not by extra bookkeeping.
	for i := range table.records {
		if table.records[i].out.len() == 0 {
			table.records[i].out = table.records[i].out.add(Dollar)
			table.records[0].in = table.records[0].in.add(Dollar)
		}
	}

	return table, nil
}

func dollarPad(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = Dollar
	}
	return string(b)
}
