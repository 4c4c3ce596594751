package dna

import (
	"bufio"
	"io"
	"strings"
)

// ReadSequences reads base strings from r, one sequence per line. Lines
// beginning with '>' start a FASTA record: the header is discarded and the
// record's body lines are concatenated into a single sequence. Blank lines
// and surrounding whitespace are ignored either way.
//
// The returned strings are not validated; validation happens when a caller
// encodes them, so a bad character is reported against the sequence it
// belongs to rather than against a file offset.
func ReadSequences(r io.Reader) ([]string, error) {
	var (
		sequences []string
		record    strings.Builder
		inRecord  bool
	)

	flush := func() {
		if inRecord && record.Len() > 0 {
			sequences = append(sequences, record.String())
		}
		record.Reset()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, ">"):
			flush()
			inRecord = true
		case inRecord:
			record.WriteString(line)
		default:
			sequences = append(sequences, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return sequences, nil
}
