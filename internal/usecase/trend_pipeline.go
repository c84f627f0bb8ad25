package usecase

import (
	"sort"

	"github.com/DevelopLee20/Nara-Chart/internal/domain/models"
	"github.com/DevelopLee20/Nara-Chart/internal/services/features"
	"github.com/DevelopLee20/Nara-Chart/pkg/util"
)

// PipelineInput is the full input snapshot of one trend computation.
type PipelineInput struct {
	Records  []models.BidRecord
	DateFrom string // inclusive ISO date bound; empty = unbounded
	DateTo   string // inclusive ISO date bound; empty = unbounded
	Mode     models.Mode
	// Visible restricts statistics to a subset of the active fields.
	// nil means every active field is visible.
	Visible   map[string]bool
	ShowEMA   bool
	ShowLOESS bool

	EMASpan        int
	LOESSBandwidth float64
	ForecastMonths int
}

// ComputeTrend turns raw bid records into the chart-ready series and
// statistics. It is a pure function of its input: identical inputs produce
// identical outputs, and no state survives between runs.
//
// Returned malformed is the number of records excluded for an unparseable
// bid date.
func ComputeTrend(in PipelineInput) (models.TrendResult, int) {
	span := in.EMASpan
	if span < 1 {
		span = features.DefaultEMASpan
	}
	bandwidth := in.LOESSBandwidth
	if bandwidth <= 0 || bandwidth > 1 {
		bandwidth = features.DefaultLOESSBandwidth
	}
	horizon := in.ForecastMonths
	if horizon <= 0 {
		horizon = features.DefaultForecastMonths
	}

	// Records with unparseable dates cannot be ordered or window-filtered;
	// they are excluded rather than sorted to an arbitrary position.
	records := make([]models.BidRecord, 0, len(in.Records))
	malformed := 0
	for _, r := range in.Records {
		t, ok := util.ParseISODate(r.BidDate)
		if !ok {
			malformed++
			continue
		}
		r.BidDate = util.FormatISODate(t)
		records = append(records, r)
	}

	// ISO date strings order lexicographically, which is chronological.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].BidDate < records[j].BidDate
	})

	filtered := make([]models.BidRecord, 0, len(records))
	for _, r := range records {
		if in.DateFrom != "" && r.BidDate < in.DateFrom {
			continue
		}
		if in.DateTo != "" && r.BidDate > in.DateTo {
			continue
		}
		filtered = append(filtered, r)
	}

	points := make([]models.ChartPoint, 0, len(filtered))
	for _, r := range filtered {
		values := make(map[string]*float64, len(models.AllFields))
		for _, field := range models.AllFields {
			values[field] = r.Value(field)
		}
		if in.Mode == models.ModeRatio {
			for _, field := range models.RatioFields {
				values[field] = features.ToPercent(values[field])
			}
		}
		points = append(points, models.ChartPoint{Date: r.BidDate, Values: values})
	}

	active := in.Mode.ActiveFields()

	var emaByField, loessByField map[string][]*float64
	if in.ShowEMA {
		emaByField = make(map[string][]*float64, len(active))
		for _, field := range active {
			seq := features.EMA(extract(points, field), span)
			emaByField[field] = seq
			attach(points, models.EMAKey(field), seq)
		}
	}
	if in.ShowLOESS {
		loessByField = make(map[string][]*float64, len(active))
		for _, field := range active {
			seq := features.LOESS(extract(points, field), bandwidth)
			loessByField[field] = seq
			attach(points, models.LOESSKey(field), seq)
		}
	}

	if (in.ShowEMA || in.ShowLOESS) && len(points) > 0 {
		lastDate, _ := util.ParseISODate(points[len(points)-1].Date)
		future := util.FutureDates(lastDate, horizon)

		emaForecast := make(map[string][]*float64, len(active))
		loessForecast := make(map[string][]*float64, len(active))
		for _, field := range active {
			if in.ShowEMA {
				emaForecast[field] = features.PredictEMA(lastValid(emaByField[field]), horizon)
			}
			if in.ShowLOESS {
				loessForecast[field] = features.PredictLOESS(loessByField[field], horizon)
			}
		}

		for k, d := range future {
			values := make(map[string]*float64, len(models.AllFields))
			for _, field := range models.AllFields {
				values[field] = nil
			}
			derived := make(map[string]*float64)
			for _, field := range active {
				if in.ShowEMA {
					derived[models.EMAKey(field)] = emaForecast[field][k]
				}
				if in.ShowLOESS {
					derived[models.LOESSKey(field)] = loessForecast[field][k]
				}
			}
			points = append(points, models.ChartPoint{
				Date:     util.FormatISODate(d),
				Values:   values,
				Derived:  derived,
				Forecast: true,
			})
		}
	}

	stats := make(map[string]models.FieldStats)
	historical := points[:len(filtered)]
	for _, field := range active {
		if in.Visible != nil && !in.Visible[field] {
			continue
		}
		stats[field] = features.Stats(extract(historical, field))
	}

	return models.TrendResult{Points: points, Stats: stats, Total: len(filtered)}, malformed
}

// extract pulls one field's column out of the point series.
func extract(points []models.ChartPoint, field string) []*float64 {
	out := make([]*float64, len(points))
	for i := range points {
		out[i] = points[i].Values[field]
	}
	return out
}

// attach stores a derived sequence on the point series under key.
func attach(points []models.ChartPoint, key string, seq []*float64) {
	for i := range points {
		if points[i].Derived == nil {
			points[i].Derived = make(map[string]*float64)
		}
		points[i].Derived[key] = seq[i]
	}
}

func lastValid(seq []*float64) *float64 {
	for i := len(seq) - 1; i >= 0; i-- {
		if seq[i] != nil {
			return seq[i]
		}
	}
	return nil
}
