package features

// DefaultForecastMonths is the default forward-projection horizon.
const DefaultForecastMonths = 3

// loessSlopeWindow bounds how many trailing valid values feed the LOESS slope.
const loessSlopeWindow = 5

// PredictEMA projects an EMA series forward by repeating its last value
// horizon times. EMA is a damped, no-trend estimator, so the projection is a
// random walk held flat. A nil last value projects nil throughout.
func PredictEMA(last *float64, horizon int) []*float64 {
	if horizon <= 0 {
		return nil
	}
	out := make([]*float64, horizon)
	if !valid(last) {
		return out
	}
	for k := range out {
		v := *last
		out[k] = &v
	}
	return out
}

// PredictLOESS projects a LOESS series forward by extending the local trend:
// the slope across up to the last 5 valid values, (last-first)/(count-1),
// applied per step. With fewer than 2 valid values the slope is zero and the
// projection is flat at the last valid value, or nil when none exists.
func PredictLOESS(series []*float64, horizon int) []*float64 {
	if horizon <= 0 {
		return nil
	}
	out := make([]*float64, horizon)

	tail := make([]float64, 0, loessSlopeWindow)
	for i := len(series) - 1; i >= 0 && len(tail) < loessSlopeWindow; i-- {
		if valid(series[i]) {
			tail = append(tail, *series[i])
		}
	}
	if len(tail) == 0 {
		return out
	}
	// tail is collected last-to-first
	last := tail[0]
	slope := 0.0
	if len(tail) >= 2 {
		first := tail[len(tail)-1]
		slope = (last - first) / float64(len(tail)-1)
	}

	for k := 1; k <= horizon; k++ {
		v := last + slope*float64(k)
		out[k-1] = &v
	}
	return out
}
