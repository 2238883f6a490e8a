package convert

import "github.com/sevenpixels/datawalk/pkg/digit"

// Finance converts a price series into digits by normalizing the relative
// day-over-day deltas. Fewer than two prices carry no delta signal and
// yield the fallback sequence [0].
func Finance(prices []float64) digit.Sequence {
	if len(prices) < 2 {
		return digit.Sequence{0}
	}

	deltas := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		if prev == 0 {
			// A zero price makes the relative delta undefined; treat the
			// step as flat rather than dividing by zero.
			deltas = append(deltas, 0)
			continue
		}
		deltas = append(deltas, (prices[i]-prev)/prev)
	}

	return digit.Normalize(deltas, digit.Base12)
}

// Cosmos converts gravitational-wave strain amplitudes into digits via
// min-max normalization of the raw series.
func Cosmos(strain []float64) digit.Sequence {
	return digit.Normalize(strain, digit.Base12)
}
