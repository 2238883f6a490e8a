package source

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadStrain decodes a strain amplitude file: one float per line, with
// blank and "#" comment lines skipped. Gzip-compressed input is detected
// by magic bytes and decompressed transparently.
//
// A line that cannot be parsed as a number is an error — the file does not
// hold the primitive type this converter expects, and the source should be
// reported and skipped.
func ReadStrain(r io.Reader) ([]float64, error) {
	br := bufio.NewReader(r)

	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("read strain: %w", err)
		}
		defer gz.Close()
		return readStrainLines(gz)
	}

	return readStrainLines(br)
}

func readStrainLines(r io.Reader) ([]float64, error) {
	var out []float64
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<22)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("read strain: line %d: %q is not a number", lineNo, line)
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read strain: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("read strain: no samples")
	}
	return out, nil
}
