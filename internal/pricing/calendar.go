package pricing

import (
	"time"

	"rentamaq-backend/internal/domain"
)

const (
	daysPerWeek  = 7
	daysPerMonth = 30 // commercial month used for proration
)

// DayCount returns the calendar-day difference between start and end,
// rounded up when the interval carries a partial day. Returns 0 when
// either date is missing or end is not after start.
func DayCount(start, end time.Time) int32 {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return 0
	}
	hours := end.Sub(start).Hours()
	days := int32(hours / 24)
	if hours > float64(days)*24 {
		days++
	}
	return days
}

// PeriodCount converts a day count into billing periods for the given rate
// plan. Rounding is always up: a started week or month bills whole.
// Custom plans bill by day here; the caller may override per line.
// The minimum of one period is enforced at the line level, not here.
func PeriodCount(days int32, plan domain.RatePlan) (int32, domain.PeriodUnit) {
	switch plan {
	case domain.RatePlanWeekly:
		return ceilDiv(days, daysPerWeek), domain.PeriodUnitWeek
	case domain.RatePlanMonthly:
		return ceilDiv(days, daysPerMonth), domain.PeriodUnitMonth
	default:
		return days, domain.PeriodUnitDay
	}
}

func ceilDiv(n, d int32) int32 {
	q := n / d
	if n%d > 0 {
		q++
	}
	return q
}
