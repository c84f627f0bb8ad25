package features

// DefaultEMASpan is the default averaging window for EMA smoothing.
const DefaultEMASpan = 10

// EMA produces an exponential moving average sequence with smoothing factor
// alpha = 2/(span+1). Output has the same length and order as the input.
//
// The pass is stateful: the first valid value seeds the running average and
// each later valid value blends into it. A nil/NaN input yields nil at that
// position and neither advances nor resets the running average, so the next
// valid value continues from the last computed average across the gap.
func EMA(series []*float64, span int) []*float64 {
	if span < 1 {
		span = DefaultEMASpan
	}
	alpha := 2.0 / float64(span+1)

	out := make([]*float64, len(series))
	var ema float64
	seeded := false
	for i, v := range series {
		if !valid(v) {
			continue
		}
		if !seeded {
			ema = *v
			seeded = true
		} else {
			ema = alpha**v + (1-alpha)*ema
		}
		cur := ema
		out[i] = &cur
	}
	return out
}
