package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddWorkdays(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name            string
		count           int
		from            Date
		includeHalfDays bool
		want            Date
	}{
		{"zero", 0, Date{2023, time.August, 5}, false, Date{2023, time.August, 5}},
		{"next day", 1, Date{2023, time.May, 2}, false, Date{2023, time.May, 3}},
		{"over weekend", 1, Date{2023, time.May, 5}, false, Date{2023, time.May, 8}},
		// Friday, then Saturday, Sunday and Frídagur verslunarmanna
		{"weekend and holiday monday", 1, Date{2023, time.August, 4}, false, Date{2023, time.August, 8}},
		{"rest of the week after holiday monday", 4, Date{2023, time.August, 4}, false, Date{2023, time.August, 11}},
		{"into the next week", 5, Date{2023, time.August, 4}, false, Date{2023, time.August, 14}},
		{"backward over holiday monday", -1, Date{2023, time.August, 8}, false, Date{2023, time.August, 4}},
		{"easter", 1, Date{2023, time.April, 5}, false, Date{2023, time.April, 11}},
		{"easter backward", -1, Date{2023, time.April, 11}, false, Date{2023, time.April, 5}},
		{"half day skipped", 1, Date{2024, time.December, 23}, false, Date{2024, time.December, 27}},
		{"half day counted", 1, Date{2024, time.December, 23}, true, Date{2024, time.December, 24}},
		{"across new year", 2, Date{2024, time.December, 30}, false, Date{2025, time.January, 3}},
		{"across new year with half days", 2, Date{2024, time.December, 30}, true, Date{2025, time.January, 2}},
		{"backward across new year", -1, Date{2025, time.January, 2}, false, Date{2024, time.December, 30}},
		{"backward across new year with half days", -1, Date{2025, time.January, 2}, true, Date{2024, time.December, 31}},
		{"from a holiday", 1, Date{2023, time.December, 25}, false, Date{2023, time.December, 27}},
	}

	for _, test := range tests {
		got := Iceland.AddWorkdays(test.count, test.from, test.includeHalfDays)
		assert.Equal(t, test.want, got, test.name)
	}
}

func TestAddWorkdaysInverse(t *testing.T) {
	t.Parallel()
	for _, includeHalfDays := range []bool{false, true} {
		for d := (Date{2023, time.January, 1}); d.Before(Date{2025, time.January, 31}); d = d.AddDays(1) {
			if !Iceland.IsWorkday(d, includeHalfDays) {
				continue
			}
			for _, n := range []int{1, 2, 5, 17, 40, 260} {
				there := Iceland.AddWorkdays(n, d, includeHalfDays)
				back := Iceland.AddWorkdays(-n, there, includeHalfDays)
				if back != d {
					t.Fatalf("%s +%d = %s, -%d = %s (includeHalfDays=%t)", d, n, there, n, back, includeHalfDays)
				}
			}
		}
	}
}

func TestAddWorkdaysLandsOnWorkday(t *testing.T) {
	t.Parallel()
	from := Date{2023, time.December, 20}
	for n := -30; n <= 30; n++ {
		if n == 0 {
			continue
		}
		got := Iceland.AddWorkdays(n, from, false)
		assert.True(t, Iceland.IsWorkday(got, false), "%d from %s gave %s", n, from, got)
		assert.Equal(t, abs(n), abs(Iceland.CountWorkdays(from.AddDays(sign(n)), got, false)), "%d from %s", n, from)
	}
}

func TestAddWorkdaysTime(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC-3", -3*60*60)
	ref := time.Date(2023, time.May, 5, 15, 4, 5, 6, loc)

	assert.Equal(t, time.Date(2023, time.May, 5, 0, 0, 0, 0, loc), Iceland.AddWorkdaysTime(0, ref, false))
	assert.Equal(t, time.Date(2023, time.May, 8, 0, 0, 0, 0, loc), Iceland.AddWorkdaysTime(1, ref, false))
	assert.Equal(t, time.Date(2023, time.May, 4, 0, 0, 0, 0, loc), Iceland.AddWorkdaysTime(-1, ref, false))
}

func TestIsWorkday(t *testing.T) {
	t.Parallel()
	tests := []struct {
		date            Date
		includeHalfDays bool
		want            bool
	}{
		{Date{2023, time.May, 2}, false, true},
		{Date{2023, time.May, 6}, false, false},
		{Date{2023, time.May, 7}, true, false},
		{Date{2023, time.May, 1}, true, false},
		// observances are working days
		{Date{2023, time.February, 20}, false, true},
		{Date{2024, time.December, 24}, false, false},
		{Date{2024, time.December, 24}, true, true},
		{Date{2024, time.December, 31}, false, false},
		{Date{2024, time.December, 31}, true, true},
	}

	for _, test := range tests {
		got := Iceland.IsWorkday(test.date, test.includeHalfDays)
		assert.Equal(t, test.want, got, "%s includeHalfDays=%t", test.date, test.includeHalfDays)
	}
}

func TestCountWorkdays(t *testing.T) {
	t.Parallel()
	start := Date{2024, time.December, 23}
	end := Date{2024, time.December, 31}

	assert.Equal(t, 3, Iceland.CountWorkdays(start, end, false))
	assert.Equal(t, 5, Iceland.CountWorkdays(start, end, true))
	assert.Equal(t, -3, Iceland.CountWorkdays(end, start, false))
	assert.Equal(t, 1, Iceland.CountWorkdays(start, start, false))
	assert.Equal(t, 0, Iceland.CountWorkdays(Date{2024, time.December, 25}, Date{2024, time.December, 25}, false))
	// 2023 has 250 Icelandic working days
	assert.Equal(t, 250, Iceland.CountWorkdays(Date{2023, time.January, 1}, Date{2023, time.December, 31}, false))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
