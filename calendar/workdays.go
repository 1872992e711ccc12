package calendar

import (
	"time"

	"github.com/fridagar/fridagar/metrics"
)

// IsWorkday reports whether d is a working day: not a Saturday or Sunday and
// not a holiday. Half days count as working days only when includeHalfDays
// is set.
func (c *Calendar) IsWorkday(d Date, includeHalfDays bool) bool {
	if d.IsWeekend() {
		return false
	}
	return isWorkdayIn(c.year(d.Year), d, includeHalfDays)
}

func isWorkdayIn(set *yearSet, d Date, includeHalfDays bool) bool {
	if d.IsWeekend() {
		return false
	}
	i, ok := set.byDate[d]
	if !ok {
		return true
	}
	e := set.entries[i]
	return !e.Holiday || (includeHalfDays && e.HalfDay)
}

// AddWorkdays returns the date count working days away from ref.
//
// The value of count affects the direction of counting:
//
//	count > 0: walks forward from ref.
//	count == 0: ref is returned unchanged.
//	count < 0: walks backward from ref.
//
// ref itself is never counted. Half days count as working days only when
// includeHalfDays is set.
func (c *Calendar) AddWorkdays(count int, ref Date, includeHalfDays bool) Date {
	if count == 0 {
		return ref
	}

	delta := 1
	if count < 0 {
		delta = -1
		count = -count
	}

	date := ref
	set := c.year(date.Year)
	var worked, skipped int
	for count > 0 {
		date = date.AddDays(delta)
		if date.Year != set.year {
			set = c.year(date.Year)
		}
		if !isWorkdayIn(set, date, includeHalfDays) {
			skipped++
			continue
		}
		worked++
		count--
	}

	metrics.WorkdayStepsTotal.WithLabelValues("worked").Add(float64(worked))
	metrics.WorkdayStepsTotal.WithLabelValues("skipped").Add(float64(skipped))
	return date
}

// AddWorkdaysTime is AddWorkdays for a time.Time. The time-of-day of t is
// dropped and the result is midnight in t's location.
func (c *Calendar) AddWorkdaysTime(count int, t time.Time, includeHalfDays bool) time.Time {
	return c.AddWorkdays(count, DateOf(t), includeHalfDays).Time(t.Location())
}

// CountWorkdays returns the number of working days from start to end, both
// included. The result is negative when end is before start.
func (c *Calendar) CountWorkdays(start, end Date, includeHalfDays bool) int {
	factor := 1
	if end.Before(start) {
		factor = -1
		start, end = end, start
	}

	n := 0
	set := c.year(start.Year)
	for d := start; !d.After(end); d = d.AddDays(1) {
		if d.Year != set.year {
			set = c.year(d.Year)
		}
		if isWorkdayIn(set, d, includeHalfDays) {
			n++
		}
	}
	return factor * n
}
