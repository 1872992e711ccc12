package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEaster(t *testing.T) {
	t.Parallel()
	tests := []struct {
		year  int
		month time.Month
		day   int
	}{
		{1818, time.March, 22},
		{1943, time.April, 25},
		{2000, time.April, 23},
		{2008, time.March, 23},
		{2011, time.April, 24},
		{2016, time.March, 27},
		{2017, time.April, 16},
		{2019, time.April, 21},
		{2023, time.April, 9},
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2026, time.April, 5},
		{2038, time.April, 25},
	}

	for _, test := range tests {
		got := Easter(test.year)
		assert.Equal(t, Date{test.year, test.month, test.day}, got, "Easter(%d)", test.year)
	}
}

func TestEasterIsSundayInWindow(t *testing.T) {
	t.Parallel()
	for year := 1583; year <= 4099; year++ {
		e := Easter(year)
		if e.Weekday() != time.Sunday {
			t.Fatalf("Easter(%d) = %s is a %s", year, e, e.Weekday())
		}
		earliest := Date{year, time.March, 22}
		latest := Date{year, time.April, 25}
		if e.Before(earliest) || e.After(latest) {
			t.Fatalf("Easter(%d) = %s outside March 22 - April 25", year, e)
		}
	}
}

func TestEasterTime(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC-1", -60*60)
	got := EasterTime(2023, loc)
	assert.Equal(t, time.Date(2023, time.April, 9, 0, 0, 0, 0, loc), got)
}
