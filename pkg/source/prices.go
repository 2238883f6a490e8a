package source

import (
	"encoding/json"
	"fmt"
)

// chartDocument mirrors the chart-API JSON layout price files are stored
// in: chart.result[0].indicators.quote[0].close.
type chartDocument struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

// ReadPrices extracts the closing-price series from a chart JSON document.
// Null entries (market holidays, missing ticks) are skipped. A document
// with no closing prices at all is an error.
func ReadPrices(data []byte) ([]float64, error) {
	var doc chartDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("read prices: %w", err)
	}

	var out []float64
	for _, res := range doc.Chart.Result {
		for _, q := range res.Indicators.Quote {
			for _, c := range q.Close {
				if c != nil {
					out = append(out, *c)
				}
			}
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("read prices: no closing prices in document")
	}
	return out, nil
}
