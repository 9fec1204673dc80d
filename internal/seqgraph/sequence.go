package seqgraph

import (
	"fmt"
	"strings"
)

// Sequence is an ordered, finite run of Base values. It is immutable
// once constructed: Reverse and Concat return new Sequences rather than
// mutating the receiver.
type Sequence struct {
	bases []Base
}

// New builds a Sequence from an ASCII string, case-insensitive.
// Construction fails with UnrecognizedBaseError on the first character
// outside {A,T,G,C} (or '-', which New also accepts so that already-padded
// strings round-trip through it).
func New(s string) (Sequence, error) {
	up := strings.ToUpper(s)
	bases := make([]Base, 0, len(up))
	for _, ch := range up {
		b, ok := charToBase(ch)
		if !ok {
			return Sequence{}, &UnrecognizedBaseError{Char: ch}
		}
		bases = append(bases, b)
	}
	return Sequence{bases: bases}, nil
}

// FromBases wraps an already-validated slice of Base values. The slice
// is not copied defensively against the caller mutating it afterward;
// callers within this module always pass freshly built slices.
func FromBases(bases []Base) Sequence {
	return Sequence{bases: bases}
}

// Len returns the number of bases in the sequence.
func (s Sequence) Len() int {
	return len(s.bases)
}

// At returns the base at a signed position: non-negative indices count
// from the start, negative indices count from the end (-1 is the last
// base). An index outside [-Len(), Len()) is a programmer error and
// panics rather than returning an error — callers never pass one in
// practice because every caller index is itself range-checked by a DP
// loop bound.
func (s Sequence) At(i int) Base {
	idx := i
	if idx < 0 {
		idx = len(s.bases) + idx
	}
	if idx < 0 || idx >= len(s.bases) {
		panic(fmt.Sprintf("seqgraph: index %d out of range for sequence of length %d", i, len(s.bases)))
	}
	return s.bases[idx]
}

// Bases returns the underlying Base slice. Callers must not mutate it.
func (s Sequence) Bases() []Base {
	return s.bases
}

// Reverse returns a new Sequence with the bases in reverse order.
func (s Sequence) Reverse() Sequence {
	n := len(s.bases)
	out := make([]Base, n)
	for i, b := range s.bases {
		out[n-1-i] = b
	}
	return Sequence{bases: out}
}

// Concat returns a new Sequence that is the receiver followed by other.
func (s Sequence) Concat(other Sequence) Sequence {
	out := make([]Base, 0, len(s.bases)+len(other.bases))
	out = append(out, s.bases...)
	out = append(out, other.bases...)
	return Sequence{bases: out}
}

// Push appends a single base and returns the extended Sequence, used by
// the traceback to grow a fragment one symbol at a time.
func (s Sequence) Push(b Base) Sequence {
	out := make([]Base, len(s.bases)+1)
	copy(out, s.bases)
	out[len(s.bases)] = b
	return Sequence{bases: out}
}

// Equal reports whether two sequences hold the same bases in the same order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s.bases) != len(other.bases) {
		return false
	}
	for i, b := range s.bases {
		if b != other.bases[i] {
			return false
		}
	}
	return true
}

// String renders the sequence back to its ASCII representation using
// the base -> char table from base.go (A/T/G/C/-, X for anything else).
func (s Sequence) String() string {
	out := make([]byte, len(s.bases))
	for i, b := range s.bases {
		out[i] = baseToChar(b)
	}
	return string(out)
}
