package pipeline

import (
	"bytes"
	"fmt"

	"github.com/sevenpixels/datawalk/pkg/convert"
	"github.com/sevenpixels/datawalk/pkg/digit"
	"github.com/sevenpixels/datawalk/pkg/source"
)

// File converter names accepted by the pipeline.
const (
	ConverterDNA     = "dna"
	ConverterAudio   = "audio"
	ConverterFinance = "finance"
	ConverterCosmos  = "cosmos"
)

// ConvertFile decodes raw source bytes and converts them to digits.
// base4 applies only to DNA and skips the base-12 repack.
func ConvertFile(converter string, data []byte, base4 bool) (digit.Sequence, error) {
	switch converter {
	case ConverterDNA:
		seq, err := source.ReadFASTA(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("convert dna: %w", err)
		}
		if base4 {
			return convert.DNABase4(seq)
		}
		return convert.DNA(seq)

	case ConverterAudio:
		samples, rate, err := source.ReadWAV(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("convert audio: %w", err)
		}
		return convert.Audio(samples, rate), nil

	case ConverterFinance:
		prices, err := source.ReadPrices(data)
		if err != nil {
			return nil, fmt.Errorf("convert finance: %w", err)
		}
		return convert.Finance(prices), nil

	case ConverterCosmos:
		strain, err := source.ReadStrain(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("convert cosmos: %w", err)
		}
		return convert.Cosmos(strain), nil
	}

	return nil, fmt.Errorf("converter %q: %w", converter, convert.ErrUnknownConverter)
}
