package graphio

import (
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/aria-lang/graphaligner-go/internal/seqgraph"
)

// FastaRecord is one parsed query: its FASTA header and the sequence
// decoded into this engine's own Sequence type.
type FastaRecord struct {
	Name string
	Seq  seqgraph.Sequence
}

// ReadQueryFASTA scans every record out of r using biogo's DNA
// alphabet for validation, then re-decodes each residue string through
// seqgraph.New so downstream code only ever sees this package's own
// Sequence type.
func ReadQueryFASTA(r io.Reader) ([]FastaRecord, error) {
	template := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(fasta.NewReader(r, template))

	var records []FastaRecord
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		letters := s.Seq
		bases := make([]byte, len(letters))
		for i, l := range letters {
			bases[i] = byte(l)
		}
		seq, err := seqgraph.New(string(bases))
		if err != nil {
			return nil, err
		}
		records = append(records, FastaRecord{Name: s.Name(), Seq: seq})
	}
	if err := sc.Error(); err != nil && err != io.EOF {
		return nil, err
	}
	return records, nil
}
