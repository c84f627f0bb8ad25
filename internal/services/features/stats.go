package features

import (
	"math"

	"github.com/DevelopLee20/Nara-Chart/internal/domain/models"
)

// Stats computes avg/min/max over the valid values of a series. NaN and nil
// entries are ignored. A series with no valid value yields all-nil stats.
func Stats(series []*float64) models.FieldStats {
	var (
		sum   float64
		count int
		min   float64
		max   float64
	)
	for _, v := range series {
		if !valid(v) {
			continue
		}
		x := *v
		if count == 0 {
			min, max = x, x
		} else {
			if x < min {
				min = x
			}
			if x > max {
				max = x
			}
		}
		sum += x
		count++
	}
	if count == 0 {
		return models.FieldStats{}
	}
	avg := sum / float64(count)
	return models.FieldStats{Avg: &avg, Min: &min, Max: &max}
}

func valid(v *float64) bool {
	return v != nil && !math.IsNaN(*v)
}
