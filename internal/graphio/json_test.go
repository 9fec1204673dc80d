package graphio

import (
	"testing"

	"github.com/aria-lang/graphaligner-go/internal/graphaln"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGraphFlatString(t *testing.T) {
	g, err := LoadGraph([]byte(`"ATGC"`))
	require.NoError(t, err)
	require.NotNil(t, g.Root)
	assert.Equal(t, 4, graphaln.MaxLen(g.Root))
}

func TestLoadGraphChainArray(t *testing.T) {
	g, err := LoadGraph([]byte(`["ATGC", "TTTT"]`))
	require.NoError(t, err)
	assert.Equal(t, 8, graphaln.MaxLen(g.Root))
}

func TestLoadGraphBranchingWorkedExample(t *testing.T) {
	raw := `[{"branch": [["ATCG",{"branch":["TTGG","AAAA"]}],  ["ATGC","TTTT"]]}]`
	g, err := LoadGraph([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, 8, graphaln.MaxLen(g.Root))
}

func TestLoadGraphIDAttribute(t *testing.T) {
	raw := `{"seq": "ATGC", "id": "exon1"}`
	g, err := LoadGraph([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "exon1", g.Names[g.Root.ID])
}

func TestLoadGraphAmbiguousFails(t *testing.T) {
	raw := `{"seq": "ATGC", "branch": ["ATGC"]}`
	_, err := LoadGraph([]byte(raw))
	require.Error(t, err)
	var ambig *Ambiguous
	assert.ErrorAs(t, err, &ambig)
}

func TestLoadGraphBadJsonElementFails(t *testing.T) {
	raw := `{"foo": "bar"}`
	_, err := LoadGraph([]byte(raw))
	require.Error(t, err)
	var bad *BadJsonElement
	assert.ErrorAs(t, err, &bad)
}

func TestLoadGraphUnsupportedDistFails(t *testing.T) {
	raw := `{"dist": [0.1, 0.2, 0.3, 0.4]}`
	_, err := LoadGraph([]byte(raw))
	require.Error(t, err)
	var unsupported *Unsupported
	assert.ErrorAs(t, err, &unsupported)
}

func TestLoadGraphStringExpectedFails(t *testing.T) {
	raw := `42`
	_, err := LoadGraph([]byte(raw))
	require.Error(t, err)
	var se *StringExpected
	assert.ErrorAs(t, err, &se)
}

func TestLoadGraphInvalidBasePropagates(t *testing.T) {
	_, err := LoadGraph([]byte(`"ATXG"`))
	require.Error(t, err)
}

func TestLoadGraphBranchMidArraySharesTail(t *testing.T) {
	raw := `[{"branch": ["AA", "CC"]}, "TT"]`
	g, err := LoadGraph([]byte(raw))
	require.NoError(t, err)

	require.True(t, g.Root.IsBranch)
	require.Len(t, g.Root.Members, 2)

	for _, m := range g.Root.Members {
		require.NotNil(t, m.Next, "branch member should carry the array's trailing element")
		assert.Equal(t, "TT", m.Next.Val.String())
	}
	assert.Same(t, g.Root.Members[0].Next, g.Root.Members[1].Next)
	assert.Equal(t, 4, graphaln.MaxLen(g.Root))
}
