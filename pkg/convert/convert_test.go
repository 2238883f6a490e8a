package convert

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevenpixels/datawalk/pkg/digit"
)

func TestDNA(t *testing.T) {
	seq, err := DNA("ACGT")
	require.NoError(t, err)
	assert.NotEmpty(t, seq)
	assert.True(t, seq.Valid(digit.Base12))
}

func TestDNASkipsUnknownSymbols(t *testing.T) {
	clean, err := DNA("ACGT")
	require.NoError(t, err)
	noisy, err := DNA("ACNNGT\n-")
	require.NoError(t, err)
	assert.Equal(t, clean, noisy, "unrecognized characters contribute no digits")
}

func TestDNALowercase(t *testing.T) {
	upper, err := DNA("ACGT")
	require.NoError(t, err)
	lower, err := DNA("acgt")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestDNANoUsableBases(t *testing.T) {
	_, err := DNA("NNNNXYZ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConversionFailed))

	_, err = DNABase4("")
	assert.True(t, errors.Is(err, ErrConversionFailed))
}

func TestDNABase4(t *testing.T) {
	seq, err := DNABase4("ACGTN")
	require.NoError(t, err)
	assert.Equal(t, digit.Sequence{0, 1, 2, 3}, seq)
}

func TestFinance(t *testing.T) {
	seq := Finance([]float64{100, 110, 105, 115})
	assert.Len(t, seq, 3, "n prices produce n-1 deltas")
	assert.True(t, seq.Valid(digit.Base12))
}

func TestFinanceTooFewPrices(t *testing.T) {
	assert.Equal(t, digit.Sequence{0}, Finance(nil))
	assert.Equal(t, digit.Sequence{0}, Finance([]float64{42}))
}

func TestFinanceZeroPrice(t *testing.T) {
	seq := Finance([]float64{0, 10, 20})
	assert.Len(t, seq, 2)
	assert.True(t, seq.Valid(digit.Base12))
}

func TestCosmos(t *testing.T) {
	strain := []float64{-1e-21, 0, 2e-21, 1e-21}
	seq := Cosmos(strain)
	require.Len(t, seq, len(strain))
	assert.Equal(t, uint8(0), seq[0])
	assert.Equal(t, uint8(11), seq[2])
}

func TestAudioSineWave(t *testing.T) {
	const (
		sampleRate = 44100
		freq       = 440.0
	)
	samples := make([]float64, sampleRate) // one second of A4
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}

	seq := Audio(samples, sampleRate)
	assert.NotEmpty(t, seq)
	assert.True(t, seq.Valid(digit.Base12))

	// A pure tone should map every frame to the same digit.
	for _, d := range seq[1:] {
		assert.Equal(t, seq[0], d)
	}
}

func TestAudioTooShort(t *testing.T) {
	assert.Equal(t, digit.Sequence{6}, Audio(make([]float64, 100), 44100))
	assert.Equal(t, digit.Sequence{6}, Audio(nil, 44100))
}

func TestGenerate(t *testing.T) {
	seq, err := Generate("math.constant.pi", 10)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), seq[0])

	_, err = Generate("math.constant.tau", 10)
	assert.True(t, errors.Is(err, ErrUnknownConverter))
}

func TestIsGenerated(t *testing.T) {
	assert.True(t, IsGenerated("math.fractal.dragon"))
	assert.False(t, IsGenerated("dna"))
}
