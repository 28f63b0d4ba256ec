package succinct

import "errors"

// ErrSelectOutOfRange is returned by Select1/CharSelect when fewer than
// the requested number of occurrences exist. select_free_boss.cpp's
// Select throws std::range_error in the same situation (spec.md section
// 4.1: "a well-defined 'out of range' failure ... MUST NOT silently
// return an invalid index").
var ErrSelectOutOfRange = errors.New("succinct: select out of range")

// CharRank returns the number of positions i in [0,p) with s[i] == c
// (spec.md section 4.1). Translated directly from
// original_source/main.c's Rank: a naive linear scan, which the spec
// explicitly allows ("Naive linear-scan implementations satisfy section 8").
func CharRank(s []byte, c byte, p int) int {
	n := 0
	for i := 0; i < p; i++ {
		if s[i] == c {
			n++
		}
	}
	return n
}

// CharSelect returns the smallest index i such that c occurs k times in
// s[0:i+1] (1-indexed occurrence count). Translated from
// original_source/main.c's Select, with the out-of-range behaviour of
// select_free_boss.cpp's variant (an explicit error instead of running
// off the end of the array).
func CharSelect(s []byte, c byte, k int) (int, error) {
	if k <= 0 {
		return 0, errors.New("succinct: CharSelect called with non-positive count")
	}
	seen := 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			seen++
			if seen == k {
				return i, nil
			}
		}
	}
	return 0, ErrSelectOutOfRange
}
