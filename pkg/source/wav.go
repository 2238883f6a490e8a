package source

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// WAV sample formats from the fmt chunk.
const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// ReadWAV decodes a RIFF/WAVE stream into mono float64 samples in [-1, 1]
// and the sample rate. Integer PCM (8/16/24/32-bit) and 32-bit IEEE float
// formats are supported; multi-channel audio is averaged down to mono.
func ReadWAV(r io.Reader) ([]float64, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("read wav: %w", err)
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, 0, fmt.Errorf("read wav: not a RIFF/WAVE stream")
	}

	var (
		format     uint16
		channels   int
		sampleRate int
		bits       int
		raw        []byte
	)

	// Chunk scan. Chunks are 2-byte aligned; unknown chunks are skipped.
	for pos := 12; pos+8 <= len(data); {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + 8
		if body+size > len(data) {
			size = len(data) - body
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, 0, fmt.Errorf("read wav: fmt chunk too short (%d bytes)", size)
			}
			format = binary.LittleEndian.Uint16(data[body : body+2])
			channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			bits = int(binary.LittleEndian.Uint16(data[body+14 : body+16]))
		case "data":
			raw = data[body : body+size]
		}

		pos = body + size
		if size%2 == 1 {
			pos++
		}
	}

	if raw == nil {
		return nil, 0, fmt.Errorf("read wav: no data chunk")
	}
	if channels < 1 || sampleRate <= 0 {
		return nil, 0, fmt.Errorf("read wav: malformed fmt chunk (channels=%d rate=%d)", channels, sampleRate)
	}

	samples, err := decodeSamples(raw, format, bits)
	if err != nil {
		return nil, 0, err
	}

	if channels > 1 {
		samples = downmix(samples, channels)
	}
	return samples, sampleRate, nil
}

func decodeSamples(raw []byte, format uint16, bits int) ([]float64, error) {
	switch {
	case format == wavFormatFloat && bits == 32:
		n := len(raw) / 4
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			u := binary.LittleEndian.Uint32(raw[i*4 : i*4+4])
			out[i] = float64(math.Float32frombits(u))
		}
		return out, nil

	case format == wavFormatPCM && bits == 8:
		// 8-bit PCM is unsigned with a 128 midpoint.
		out := make([]float64, len(raw))
		for i, b := range raw {
			out[i] = (float64(b) - 128) / 128
		}
		return out, nil

	case format == wavFormatPCM && bits == 16:
		n := len(raw) / 2
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			v := int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
			out[i] = float64(v) / 32768
		}
		return out, nil

	case format == wavFormatPCM && bits == 24:
		n := len(raw) / 3
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			b := raw[i*3 : i*3+3]
			v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
			if v&0x800000 != 0 {
				v |= ^int32(0xFFFFFF) // sign extend
			}
			out[i] = float64(v) / 8388608
		}
		return out, nil

	case format == wavFormatPCM && bits == 32:
		n := len(raw) / 4
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			v := int32(binary.LittleEndian.Uint32(raw[i*4 : i*4+4]))
			out[i] = float64(v) / 2147483648
		}
		return out, nil
	}

	return nil, fmt.Errorf("read wav: unsupported sample format (format=%d bits=%d)", format, bits)
}

// downmix averages interleaved channels into mono.
func downmix(samples []float64, channels int) []float64 {
	n := len(samples) / channels
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += samples[i*channels+c]
		}
		out[i] = sum / float64(channels)
	}
	return out
}
