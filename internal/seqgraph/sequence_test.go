package seqgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		bases   string
		wantErr bool
	}{
		{name: "valid uppercase", bases: "ATGCATGC"},
		{name: "valid lowercase", bases: "atgcatgc"},
		{name: "empty sequence", bases: ""},
		{name: "invalid base Z", bases: "ATGCZ", wantErr: true},
		{name: "invalid base N", bases: "ATGCN", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := New(tt.bases)
			if tt.wantErr {
				require.Error(t, err)
				var ub *UnrecognizedBaseError
				assert.ErrorAs(t, err, &ub)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stringsToUpper(tt.bases), seq.String())
		})
	}
}

func stringsToUpper(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

func TestRoundTripFormat(t *testing.T) {
	s := "ATGCATGC"
	seq, err := New(s)
	require.NoError(t, err)
	assert.Equal(t, s, seq.String())
}

func TestReverse(t *testing.T) {
	seq, err := New("ATGC")
	require.NoError(t, err)

	rev := seq.Reverse()
	assert.Equal(t, "CGTA", rev.String())
	assert.Equal(t, seq.Len(), rev.Len())
	assert.True(t, seq.Equal(rev.Reverse()))
}

func TestConcat(t *testing.T) {
	a, err := New("AT")
	require.NoError(t, err)
	b, err := New("GC")
	require.NoError(t, err)

	got := a.Concat(b)
	assert.Equal(t, "ATGC", got.String())
	assert.Equal(t, 4, got.Len())
}

func TestAtSignedIndex(t *testing.T) {
	seq, err := New("ATGC")
	require.NoError(t, err)

	assert.Equal(t, A, seq.At(0))
	assert.Equal(t, C, seq.At(-1))
	assert.Equal(t, G, seq.At(-2))
}

func TestAtOutOfRangePanics(t *testing.T) {
	seq, err := New("ATGC")
	require.NoError(t, err)

	assert.Panics(t, func() {
		seq.At(4)
	})
	assert.Panics(t, func() {
		seq.At(-5)
	})
}

func TestEqual(t *testing.T) {
	a, err := New("ATGC")
	require.NoError(t, err)
	b, err := New("ATGC")
	require.NoError(t, err)
	c, err := New("ATGG")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestPaddedRendering(t *testing.T) {
	seq := FromBases([]Base{A, HYPHEN, T, G})
	assert.Equal(t, "A-TG", seq.String())
}
