package calendar

import "time"

// Easter returns the date of Easter Sunday in the given Gregorian year.
//
// It uses the anonymous Gregorian algorithm (Meeus/Jones/Butcher), which
// needs integer arithmetic only. The result is always a Sunday between
// March 22 and April 25.
func Easter(year int) Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return Date{Year: year, Month: time.Month(month), Day: day}
}

// EasterTime returns midnight of Easter Sunday in loc.
func EasterTime(year int, loc *time.Location) time.Time {
	return Easter(year).Time(loc)
}
