package models

import "encoding/json"

// Tracked numeric fields of a bid record. Names double as wire/JSON keys.
const (
	FieldEstimatedPrice       = "estimated_price"
	FieldBasePrice            = "base_price"
	FieldWinningPrice         = "winning_price"
	FieldBaseWinningRate      = "base_winning_rate"
	FieldEstimatedWinningRate = "estimated_winning_rate"
)

// AmountFields are the monetary fields plotted in amount mode.
var AmountFields = []string{FieldEstimatedPrice, FieldBasePrice, FieldWinningPrice}

// RatioFields are the fractional rate fields plotted in ratio mode.
var RatioFields = []string{FieldBaseWinningRate, FieldEstimatedWinningRate}

// AllFields lists every tracked field in display order.
var AllFields = []string{
	FieldEstimatedPrice,
	FieldBasePrice,
	FieldWinningPrice,
	FieldBaseWinningRate,
	FieldEstimatedWinningRate,
}

// BidRecord is one observed tender event from the bid-data service.
// All numeric fields are optional: a missing value excludes the record from
// that field's statistics and smoothing only, never from the whole series.
type BidRecord struct {
	BidDate              string   `json:"bid_date"`
	EstimatedPrice       *float64 `json:"estimated_price"`
	BasePrice            *float64 `json:"base_price"`
	WinningPrice         *float64 `json:"winning_price"`
	BaseWinningRate      *float64 `json:"base_winning_rate"`
	EstimatedWinningRate *float64 `json:"estimated_winning_rate"`
}

// Value returns the record's value for a tracked field.
func (r *BidRecord) Value(field string) *float64 {
	switch field {
	case FieldEstimatedPrice:
		return r.EstimatedPrice
	case FieldBasePrice:
		return r.BasePrice
	case FieldWinningPrice:
		return r.WinningPrice
	case FieldBaseWinningRate:
		return r.BaseWinningRate
	case FieldEstimatedWinningRate:
		return r.EstimatedWinningRate
	default:
		return nil
	}
}

// EMAKey returns the derived-series key for a field's EMA.
func EMAKey(field string) string { return field + "_ema" }

// LOESSKey returns the derived-series key for a field's LOESS.
func LOESSKey(field string) string { return field + "_loess" }

// ChartPoint is one row of the final chart series, keyed by ISO date.
// Values holds the (possibly percent-normalized) base field values; Derived
// holds smoothed and forecast series under <field>_ema / <field>_loess keys.
// Synthetic future points carry nil for every base field.
type ChartPoint struct {
	Date     string
	Values   map[string]*float64
	Derived  map[string]*float64
	Forecast bool
}

// MarshalJSON flattens the point into a single chart-ready object:
// {"bid_date": "...", "winning_price": 100, "winning_price_ema": 98.2, ...}.
func (p ChartPoint) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, 2+len(p.Values)+len(p.Derived))
	flat["bid_date"] = p.Date
	for k, v := range p.Values {
		flat[k] = v
	}
	for k, v := range p.Derived {
		flat[k] = v
	}
	if p.Forecast {
		flat["forecast"] = true
	}
	return json.Marshal(flat)
}

// FieldStats aggregates one field over the visible filtered series.
// All three are nil when the field has no valid values.
type FieldStats struct {
	Avg *float64 `json:"avg"`
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// TrendResult is the chart-ready output of one pipeline run.
type TrendResult struct {
	Points []ChartPoint          `json:"points"`
	Stats  map[string]FieldStats `json:"stats"`
	Total  int                   `json:"total"`
}
