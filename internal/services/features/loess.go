package features

import "math"

// DefaultLOESSBandwidth is the default neighborhood size as a fraction of the
// series length.
const DefaultLOESSBandwidth = 0.3

// LOESS produces a locally-weighted smoothed sequence using a tricube kernel.
// Output has the same length and order as the input.
//
// Neighbors are weighted by absolute index distance rather than elapsed
// calendar time; records are assumed roughly evenly spaced after date
// sorting.
//
// Output at i is nil when the input at i is itself missing, or when no valid
// neighbor carries positive weight.
func LOESS(series []*float64, bandwidth float64) []*float64 {
	if bandwidth <= 0 || bandwidth > 1 {
		bandwidth = DefaultLOESSBandwidth
	}
	n := len(series)
	out := make([]*float64, n)
	if n == 0 {
		return out
	}

	windowSize := int(float64(n) * bandwidth)
	if windowSize < 3 {
		windowSize = 3
	}

	for i := range series {
		if !valid(series[i]) {
			continue
		}

		start := i - windowSize/2
		if start < 0 {
			start = 0
		}
		end := start + windowSize
		if end > n {
			end = n
		}

		var weightedSum, weightTotal float64
		for j := start; j < end; j++ {
			if !valid(series[j]) {
				continue
			}
			d := math.Abs(float64(i-j)) / float64(windowSize)
			w := math.Pow(1-math.Pow(d, 3), 3)
			if w <= 0 {
				continue
			}
			weightedSum += w * *series[j]
			weightTotal += w
		}
		if weightTotal <= 0 {
			continue
		}
		v := weightedSum / weightTotal
		out[i] = &v
	}
	return out
}
