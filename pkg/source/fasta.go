// Package source decodes the raw on-disk formats behind data-driven
// converters: FASTA nucleotide records, PCM WAV audio, chart-style price
// JSON and (optionally gzipped) strain amplitude text.
//
// Decoders produce plain in-memory series; all digit encoding lives in the
// convert package. Network fetching and cache layout are deliberately out
// of scope here — decoders read whatever bytes they are handed.
package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadFASTA concatenates the sequence lines of a FASTA stream, skipping
// header (">") and comment (";") lines. Returns an error only when the
// stream cannot be read; validation of the letters themselves is left to
// the genomic converter.
func ReadFASTA(r io.Reader) (string, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<22)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ">") || strings.HasPrefix(line, ";") {
			continue
		}
		b.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read fasta: %w", err)
	}
	return b.String(), nil
}
