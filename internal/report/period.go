// Package report derives the date ranges behind periodic reports and rolls
// completed trips up into summary totals.
//
// All ranges are half-open: [Start, End). The end of a month is the first
// instant of the next month, which makes month and leap-year lengths fall
// out of time.Date's normalizing arithmetic instead of a day table.
package report

import (
	"time"

	"github.com/pkordes/drivelog/internal/domain"
)

// Monthly resolves the range covering one calendar month in UTC.
func Monthly(year int, month time.Month) domain.Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return domain.Period{
		Kind:  domain.PeriodMonthly,
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}
}

// Yearly resolves the range covering one calendar year in UTC.
func Yearly(year int) domain.Period {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return domain.Period{
		Kind:  domain.PeriodYearly,
		Start: start,
		End:   start.AddDate(1, 0, 0),
	}
}

// Custom resolves a caller-supplied range, used as given. An end before the
// start is clamped to the start (an empty single-instant range) rather than
// rejected. Callers that mean "the whole end day" must normalize to the
// following midnight themselves before calling.
func Custom(start, end time.Time) domain.Period {
	if end.Before(start) {
		end = start
	}
	return domain.Period{
		Kind:  domain.PeriodCustom,
		Start: start,
		End:   end,
	}
}
