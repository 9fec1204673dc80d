package dpalign

import (
	"fmt"
	"strings"

	"github.com/aria-lang/graphaligner-go/internal/seqgraph"
)

// ToCIGAR renders a padded reference/query pair as a CIGAR string:
// runs of match ('='), mismatch ('X'), insertion-to-query ('I') and
// deletion-from-reference ('D') are merged and length-prefixed, the
// way a SAM record would describe the same alignment. paddedRef and
// paddedQuery must have equal length, as any pair returned by Align
// does.
func ToCIGAR(paddedRef, paddedQuery seqgraph.Sequence) string {
	if paddedRef.Len() == 0 {
		return ""
	}

	var out strings.Builder
	var op byte
	count := 0

	flush := func() {
		if count > 0 {
			fmt.Fprintf(&out, "%d%c", count, op)
		}
	}

	for i := 0; i < paddedRef.Len(); i++ {
		r, q := paddedRef.At(i), paddedQuery.At(i)
		var next byte
		switch {
		case r == seqgraph.HYPHEN:
			next = 'I'
		case q == seqgraph.HYPHEN:
			next = 'D'
		case r == q:
			next = '='
		default:
			next = 'X'
		}

		if next == op {
			count++
			continue
		}
		flush()
		op, count = next, 1
	}
	flush()

	return out.String()
}
