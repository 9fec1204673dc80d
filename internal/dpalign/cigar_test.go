package dpalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCIGARMatchMismatchIndel(t *testing.T) {
	ref := mustSeq(t, "AT-GT")
	query := mustSeq(t, "ATCA-")

	assert.Equal(t, "2=1I1X1D", ToCIGAR(ref, query))
}

func TestToCIGARMismatchRun(t *testing.T) {
	ref := mustSeq(t, "AAGG")
	query := mustSeq(t, "AACC")

	assert.Equal(t, "2=2X", ToCIGAR(ref, query))
}

func TestToCIGAREmpty(t *testing.T) {
	ref := mustSeq(t, "")
	query := mustSeq(t, "")

	assert.Equal(t, "", ToCIGAR(ref, query))
}

func TestToCIGARAllMatch(t *testing.T) {
	ref := mustSeq(t, "ATGC")
	query := mustSeq(t, "ATGC")

	assert.Equal(t, "4=", ToCIGAR(ref, query))
}
