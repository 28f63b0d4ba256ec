package wheelerboss

import "fmt"

// Error kinds per spec.md section 7. Precondition violations surface
// immediately from Build/Search; absence is a normal, non-error query
// result (Absent); only structural impossibilities escalate to
// CorruptIndexError.

// PreconditionError reports a violated precondition on Build or Search
// input (spec.md section 7, "Precondition violation").
type PreconditionError struct {
	msg string
}

func (e *PreconditionError) Error() string { return "wheelerboss: " + e.msg }

func preconditionf(format string, args ...interface{}) error {
	return &PreconditionError{msg: fmt.Sprintf(format, args...)}
}

// CorruptIndexError reports an internal consistency failure: a select
// past the end of a bit vector or character sequence, or a backward
// search that fails to converge to a single node after consuming the
// whole query (spec.md section 7, "Index corruption"). It indicates a
// corrupt index or a programming error, never a normal "not found".
type CorruptIndexError struct {
	msg string
}

func (e *CorruptIndexError) Error() string { return "wheelerboss: corrupt index: " + e.msg }

func corruptf(format string, args ...interface{}) error {
	return &CorruptIndexError{msg: fmt.Sprintf(format, args...)}
}

// Absent is the sentinel rank returned by Search when the query k-mer is
// not present in the graph. It is a defined outcome, not an error
// (spec.md section 7).
const Absent = -1
