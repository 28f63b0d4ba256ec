package wheelerboss

// Package-level alphabet: the four DNA bases plus the dummy sentinel '$'
// used to pad prefixes shorter than k (spec.md section 3 "Alphabet").

// Bases holds the four DNA bases in ascending ASCII order. The dollar
// sentinel is excluded since it never appears in a search query and is
// handled separately wherever it matters (dummy nodes, minus-mark skip).
var Bases = [4]byte{'A', 'C', 'G', 'T'}

// Dollar is the dummy/absent sentinel symbol.
const Dollar = '$'

// IsBase reports whether c is one of the four DNA bases.
func IsBase(c byte) bool {
	switch c {
	case 'A', 'C', 'G', 'T':
		return true
	default:
		return false
	}
}

// charIndex maps a symbol in Σ∪{$} to a small dense index, ascending by
// ASCII value ('$' < 'A' < 'C' < 'G' < 'T'), used to index fixed-size
// per-character arrays (the C array, SBWT's four bit vectors).
func charIndex(c byte) int {
	switch c {
	case '$':
		return 0
	case 'A':
		return 1
	case 'C':
		return 2
	case 'G':
		return 3
	case 'T':
		return 4
	default:
		panic("wheelerboss: invalid alphabet symbol " + string(c))
	}
}

const alphaSize = 5 // '$', A, C, G, T

// charSet is a bitmask over Σ∪{$}, used for the in-set/out-set of a k-mer
// record (spec.md section 3 "K-mer record"). It plays the same role as
// seed_table.go's fixed small-alphabet index table, sized for 5 symbols
// instead of 20 amino acids.
type charSet uint8

func (s charSet) add(c byte) charSet {
	return s | (1 << uint(charIndex(c)))
}

func (s charSet) has(c byte) bool {
	return s&(1<<uint(charIndex(c))) != 0
}

// len returns the number of symbols present in the set.
func (s charSet) len() int {
	n := 0
	for i := 0; i < alphaSize; i++ {
		if s&(1<<uint(i)) != 0 {
			n++
		}
	}
	return n
}

// sortedChars are '$', A, C, G, T in the canonical ascending order used
// to emit set members deterministically (spec.md section 4.4: "an
// implementation MUST document and follow a single canonical order").
var sortedChars = [alphaSize]byte{'$', 'A', 'C', 'G', 'T'}

// sorted returns the symbols present in s in canonical ascending order.
func (s charSet) sorted() []byte {
	out := make([]byte, 0, s.len())
	for _, c := range sortedChars {
		if s.has(c) {
			out = append(out, c)
		}
	}
	return out
}
