package source

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFASTA(t *testing.T) {
	in := ">NC_045512.2 test record\nACGT\nacgtn\n; comment\n\nTTTT\n"
	got, err := ReadFASTA(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "ACGTacgtnTTTT", got)
}

func TestReadFASTAEmpty(t *testing.T) {
	got, err := ReadFASTA(strings.NewReader(">only a header\n"))
	require.NoError(t, err)
	assert.Empty(t, got, "zero usable bases is the converter's call, not the reader's")
}

// buildWAV assembles a minimal RIFF/WAVE stream with 16-bit PCM samples.
func buildWAV(t *testing.T, channels int, sampleRate int, samples []int16) []byte {
	t.Helper()

	var data bytes.Buffer
	for _, s := range samples {
		require.NoError(t, binary.Write(&data, binary.LittleEndian, s))
	}

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(36+data.Len())))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(16)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(1))) // PCM
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(channels)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(sampleRate)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*channels*2)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(channels*2)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(16)))

	buf.WriteString("data")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(data.Len())))
	buf.Write(data.Bytes())

	return buf.Bytes()
}

func TestReadWAVMono(t *testing.T) {
	wav := buildWAV(t, 1, 8000, []int16{0, 16384, -16384, 32767})
	samples, rate, err := ReadWAV(bytes.NewReader(wav))
	require.NoError(t, err)
	assert.Equal(t, 8000, rate)
	require.Len(t, samples, 4)
	assert.InDelta(t, 0.0, samples[0], 1e-9)
	assert.InDelta(t, 0.5, samples[1], 1e-9)
	assert.InDelta(t, -0.5, samples[2], 1e-9)
	assert.InDelta(t, 1.0, samples[3], 1e-4)
}

func TestReadWAVStereoDownmix(t *testing.T) {
	wav := buildWAV(t, 2, 44100, []int16{16384, -16384, 32767, 32767})
	samples, rate, err := ReadWAV(bytes.NewReader(wav))
	require.NoError(t, err)
	assert.Equal(t, 44100, rate)
	require.Len(t, samples, 2)
	assert.InDelta(t, 0.0, samples[0], 1e-9)
	assert.InDelta(t, 1.0, samples[1], 1e-4)
}

func TestReadWAVRejectsGarbage(t *testing.T) {
	_, _, err := ReadWAV(strings.NewReader("not a wav file at all"))
	assert.Error(t, err)
}

func TestReadWAVFloat32(t *testing.T) {
	var data bytes.Buffer
	for _, f := range []float32{0.25, -0.75} {
		require.NoError(t, binary.Write(&data, binary.LittleEndian, math.Float32bits(f)))
	}

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(36+data.Len())))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(16)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(3))) // IEEE float
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(1)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(48000)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(48000*4)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(4)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(32)))
	buf.WriteString("data")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(data.Len())))
	buf.Write(data.Bytes())

	samples, rate, err := ReadWAV(&buf)
	require.NoError(t, err)
	assert.Equal(t, 48000, rate)
	require.Len(t, samples, 2)
	assert.InDelta(t, 0.25, samples[0], 1e-7)
	assert.InDelta(t, -0.75, samples[1], 1e-7)
}

func TestReadPrices(t *testing.T) {
	doc := `{"chart":{"result":[{"indicators":{"quote":[{"close":[100.5,null,101.25,102.0]}]}}]}}`
	prices, err := ReadPrices([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []float64{100.5, 101.25, 102.0}, prices)
}

func TestReadPricesEmpty(t *testing.T) {
	_, err := ReadPrices([]byte(`{"chart":{"result":[]}}`))
	assert.Error(t, err)

	_, err = ReadPrices([]byte(`not json`))
	assert.Error(t, err)
}

func TestReadStrainPlain(t *testing.T) {
	in := "# GW150914 strain\n1.5e-21\n-2.5e-21\n\n3.0e-21\n"
	got, err := ReadStrain(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5e-21, -2.5e-21, 3.0e-21}, got)
}

func TestReadStrainGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("1.0\n2.0\n3.0\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	got, err := ReadStrain(&buf)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestReadStrainRejectsNonNumeric(t *testing.T) {
	_, err := ReadStrain(strings.NewReader("1.0\nhello\n2.0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
