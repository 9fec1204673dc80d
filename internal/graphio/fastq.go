package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aria-lang/graphaligner-go/internal/seqgraph"
)

// ReadQueryFASTQ scans r as FASTQ records, discarding the quality
// string: this engine has no quality-weighted scoring model, so only
// the header and base calls survive into a FastaRecord. The scan is a
// four-line state machine (header/sequence/plus-line/quality), the
// same shape a FASTA scanner would use with one extra line per record.
func ReadQueryFASTQ(r io.Reader) ([]FastaRecord, error) {
	scanner := bufio.NewScanner(r)

	var records []FastaRecord
	lineNum := 0
	var name, bases string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNum++

		switch (lineNum - 1) % 4 {
		case 0:
			if len(line) == 0 || line[0] != '@' {
				return nil, fmt.Errorf("line %d: expected header starting with @", lineNum)
			}
			name = line[1:]
		case 1:
			bases = line
		case 2:
			if len(line) == 0 || line[0] != '+' {
				return nil, fmt.Errorf("line %d: expected '+' line", lineNum)
			}
		case 3:
			if len(line) != len(bases) {
				return nil, fmt.Errorf("line %d: quality length does not match sequence length", lineNum)
			}
			seq, err := seqgraph.New(bases)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum-2, err)
			}
			records = append(records, FastaRecord{Name: name, Seq: seq})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading FASTQ: %w", err)
	}

	return records, nil
}
