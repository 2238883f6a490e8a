package digit

// chunkSymbols is the number of base-4 symbols accumulated before emission.
// 4^5 = 1024 keeps the accumulator comfortably inside an int while giving
// each chunk enough entropy to spread across base-12 digits.
const chunkSymbols = 5

// Repack4To12 converts a base-4 symbol stream into base-12 digits.
//
// Symbols are accumulated in fixed chunks of five; each full chunk is then
// drained by repeated division, emitting digits least-significant first.
// A trailing partial chunk is flushed the same way. Input digits are reduced
// mod 4, so callers may pass unvalidated values.
//
// An input that drains to nothing (empty, or all-zero chunks) yields the
// single digit 0 so the result is always a usable Sequence.
func Repack4To12(base4 []uint8) Sequence {
	out := make(Sequence, 0, len(base4))

	acc := 0
	n := 0
	flush := func() {
		for acc > 0 {
			out = append(out, uint8(acc%Base12))
			acc /= Base12
		}
		n = 0
	}

	for _, s := range base4 {
		acc = acc*Base4 + int(s%Base4)
		n++
		if n == chunkSymbols {
			flush()
		}
	}
	if n > 0 {
		flush()
	}

	if len(out) == 0 {
		out = append(out, 0)
	}
	return out
}
