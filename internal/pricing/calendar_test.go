package pricing

import (
	"testing"
	"time"

	"rentamaq-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDayCount(t *testing.T) {
	t.Run("CalendarDifference", func(t *testing.T) {
		assert.Equal(t, int32(9), DayCount(date("2025-01-01"), date("2025-01-10")))
		assert.Equal(t, int32(1), DayCount(date("2025-01-01"), date("2025-01-02")))
		assert.Equal(t, int32(31), DayCount(date("2025-01-01"), date("2025-02-01")))
	})

	t.Run("EndBeforeOrEqualStart", func(t *testing.T) {
		assert.Equal(t, int32(0), DayCount(date("2025-01-10"), date("2025-01-10")))
		assert.Equal(t, int32(0), DayCount(date("2025-01-10"), date("2025-01-01")))
	})

	t.Run("MissingDates", func(t *testing.T) {
		assert.Equal(t, int32(0), DayCount(time.Time{}, date("2025-01-10")))
		assert.Equal(t, int32(0), DayCount(date("2025-01-01"), time.Time{}))
	})

	t.Run("PartialDayRoundsUp", func(t *testing.T) {
		start := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
		end := time.Date(2025, 1, 3, 14, 0, 0, 0, time.UTC)
		assert.Equal(t, int32(3), DayCount(start, end))
	})
}

func TestPeriodCount(t *testing.T) {
	tests := []struct {
		name      string
		days      int32
		plan      domain.RatePlan
		wantCount int32
		wantUnit  domain.PeriodUnit
	}{
		{"DailyBillsPerDay", 9, domain.RatePlanDaily, 9, domain.PeriodUnitDay},
		{"WeeklyRoundsUp", 9, domain.RatePlanWeekly, 2, domain.PeriodUnitWeek},
		{"WeeklyExact", 14, domain.RatePlanWeekly, 2, domain.PeriodUnitWeek},
		{"MonthlyRoundsUp", 31, domain.RatePlanMonthly, 2, domain.PeriodUnitMonth},
		{"MonthlyWithinOne", 9, domain.RatePlanMonthly, 1, domain.PeriodUnitMonth},
		{"CustomDefaultsToDays", 12, domain.RatePlanCustom, 12, domain.PeriodUnitDay},
		{"ZeroDaysStaysZero", 0, domain.RatePlanWeekly, 0, domain.PeriodUnitWeek},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, unit := PeriodCount(tt.days, tt.plan)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantUnit, unit)
		})
	}
}
