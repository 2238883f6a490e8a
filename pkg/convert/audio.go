package convert

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/sevenpixels/datawalk/pkg/digit"
)

// Spectrogram parameters: 2048-sample Hann-windowed frames with 50%
// overlap.
const (
	fftSize = 2048
	hopSize = 1024
)

// Audible frequency bounds for the log-scale digit mapping.
const (
	minFreqHz = 20.0
	maxFreqHz = 20000.0
)

// Audio converts mono audio samples into digits via spectrogram analysis:
// each frame's dominant frequency is mapped onto [0, 11] on a log scale
// over the audible range.
//
// Inputs shorter than one FFT frame carry no spectral signal and yield the
// fallback sequence [6] (the middle digit).
func Audio(samples []float64, sampleRate int) digit.Sequence {
	if len(samples) < fftSize || sampleRate <= 0 {
		return digit.Sequence{6}
	}

	fft := fourier.NewFFT(fftSize)
	window := hannWindow(fftSize)
	frame := make([]float64, fftSize)
	coeffs := make([]complex128, fftSize/2+1)

	logMax := math.Log(maxFreqHz / minFreqHz)

	out := make(digit.Sequence, 0, len(samples)/hopSize)
	for pos := 0; pos+fftSize <= len(samples); pos += hopSize {
		for i := 0; i < fftSize; i++ {
			frame[i] = samples[pos+i] * window[i]
		}
		coeffs = fft.Coefficients(coeffs, frame)

		// Dominant bin, DC excluded.
		maxBin, maxMag := 1, 0.0
		for bin := 1; bin < len(coeffs); bin++ {
			if mag := cmplx.Abs(coeffs[bin]); mag > maxMag {
				maxBin, maxMag = bin, mag
			}
		}

		freq := float64(maxBin) * float64(sampleRate) / fftSize
		if freq < minFreqHz {
			freq = minFreqHz
		}
		normalized := math.Log(freq/minFreqHz) / logMax
		if normalized < 0 {
			normalized = 0
		}
		if normalized > 1 {
			normalized = 1
		}

		d := uint8(normalized * 11.99)
		if d > 11 {
			d = 11
		}
		out = append(out, d)
	}

	if len(out) == 0 {
		out = append(out, 6)
	}
	return out
}

func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}
	return w
}
