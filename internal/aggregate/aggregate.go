package aggregate

import (
	"github.com/murl-digital/throw-cruncher/internal/model"
)

// runningMean accumulates a streaming average without keeping the value
// history. n only advances when a value arrives, so the fold never divides
// by zero; with no observations the mean stays at the neutral 0.
type runningMean struct {
	n    int
	mean float64
}

func (m *runningMean) add(v float64) {
	m.n++
	m.mean = (v + m.mean*float64(m.n-1)) / float64(m.n)
}

// Aggregate folds normalized responses into per-item statistics. The
// would-throw flag is always present, so the two counts partition the rows
// exactly. Ratings that never parsed are skipped entirely and do not count
// toward the average's denominator.
func Aggregate(responses []model.Response) model.Report {
	report := make(model.Report, len(model.Items))

	for _, name := range model.Items {
		var stats model.ItemStats
		var expected, desired runningMean

		for _, resp := range responses {
			rec := resp[name]
			if rec.WouldThrow {
				stats.WouldThrowCount++
			} else {
				stats.WouldNotThrowCount++
			}
			if rec.ExpectedRancidness != nil {
				expected.add(*rec.ExpectedRancidness)
			}
			if rec.DesiredRancidness != nil {
				desired.add(*rec.DesiredRancidness)
			}
		}

		stats.AverageExpectedRancidness = expected.mean
		stats.AverageDesiredRancidness = desired.mean
		report[name] = stats
	}

	return report
}
