package wheelerboss

// QueryResult pairs a query k-mer with its outcome: Rank is the colex
// rank if found, or Absent otherwise. Err is set when Search fails: a
// precondition violation on the query (wrong length, non-base symbol) or
// an index corruption failure (spec.md section 7); a non-nil Err means
// Rank is meaningless.
type QueryResult struct {
	Query string
	Rank  int
	Err   error
}

// RunQueries answers each query against idx in order and reports the
// rank or absence for each (spec.md section 4.6 "Query driver"). There
// is no concurrency or ordering requirement beyond determinism per
// query; this mirrors the flat "iterate over queries, report a result"
// shape of cmd/mica-xsearch/main.go's search loop, without any of its
// BLAST/diamond machinery, which spec.md section 1 places out of scope.
func RunQueries(idx Index, queries []string) []QueryResult {
	results := make([]QueryResult, len(queries))
	for i, q := range queries {
		rank, err := idx.Search(q)
		results[i] = QueryResult{Query: q, Rank: rank, Err: err}
	}
	return results
}
