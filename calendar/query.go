package calendar

import "time"

// Holidays returns the non-working days of year. A month of 0 selects the
// whole year.
func (c *Calendar) Holidays(year int, month time.Month) []Entry {
	return c.filter(year, month, func(e Entry) bool { return e.Holiday })
}

// OtherDays returns the notable days of year that are still working days.
// A month of 0 selects the whole year.
func (c *Calendar) OtherDays(year int, month time.Month) []Entry {
	return c.filter(year, month, func(e Entry) bool { return !e.Holiday })
}

// AllDays returns both holidays and other days of year. A month of 0
// selects the whole year.
func (c *Calendar) AllDays(year int, month time.Month) []Entry {
	return c.filter(year, month, func(Entry) bool { return true })
}

// SpecialDay returns the entry on d, holiday or not.
func (c *Calendar) SpecialDay(d Date) (Entry, bool) {
	return c.entryOn(d)
}

// IsHoliday returns the entry on d if d is a holiday.
func (c *Calendar) IsHoliday(d Date) (Entry, bool) {
	e, ok := c.entryOn(d)
	if !ok || !e.Holiday {
		return Entry{}, false
	}
	return e, true
}

func (c *Calendar) filter(year int, month time.Month, keep func(Entry) bool) []Entry {
	set := c.year(year)
	out := make([]Entry, 0, len(set.entries))
	for _, e := range set.entries {
		if month != 0 && e.Date.Month != month {
			continue
		}
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
