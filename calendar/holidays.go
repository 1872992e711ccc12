// Package calendar computes the yearly set of holidays and observances of a
// rule table and does workday arithmetic on top of it.
//
// The built-in rule table is the Icelandic one, available through the
// package default Iceland. Other tables can be built with New or loaded from
// YAML with NewFromYAML.
package calendar

import (
	"sort"
	"sync"

	"github.com/fridagar/fridagar/metrics"
	"github.com/fridagar/fridagar/utils/log"
)

// Entry is the classification of one date within a year.
type Entry struct {
	Date    Date   `json:"date"`
	Name    string `json:"name"`
	Holiday bool   `json:"holiday"`
	HalfDay bool   `json:"halfDay,omitempty"`
}

// outranks reports whether e should replace kept when both fall on the same
// date. Full holidays win over observances and full days over half days;
// otherwise the entry seen first stays.
func (e Entry) outranks(kept Entry) bool {
	if e.Holiday != kept.Holiday {
		return e.Holiday
	}
	if e.HalfDay != kept.HalfDay {
		return !e.HalfDay
	}
	return false
}

// Iceland is the calendar of the Icelandic rule table.
var Iceland = New(IcelandRules())

// Calendar materializes a rule table into yearly sets of day entries.
// It is safe for concurrent use.
type Calendar struct {
	rules []Rule

	mu    sync.RWMutex
	years map[int]*yearSet
}

type yearSet struct {
	year    int
	entries []Entry
	byDate  map[Date]int
}

// New creates a Calendar for the given rules. Rules are used in order: on a
// date collision between equally ranked entries the earlier rule wins.
func New(rules []Rule) *Calendar {
	c := &Calendar{
		rules: make([]Rule, len(rules)),
		years: map[int]*yearSet{},
	}
	copy(c.rules, rules)
	return c
}

// NewFromYAML creates a Calendar from a YAML rule table. See ParseRules for
// the format.
func NewFromYAML(data []byte) (*Calendar, error) {
	rules, err := ParseRules(data)
	if err != nil {
		return nil, err
	}
	return New(rules), nil
}

// Rules returns a copy of the calendar's rule table.
func (c *Calendar) Rules() []Rule {
	rules := make([]Rule, len(c.rules))
	copy(rules, c.rules)
	return rules
}

// ForYear returns every day entry of year sorted by date. The result is a
// copy and may be modified by the caller.
func (c *Calendar) ForYear(year int) []Entry {
	set := c.year(year)
	entries := make([]Entry, len(set.entries))
	copy(entries, set.entries)
	return entries
}

// entryOn returns the entry on d, if any.
func (c *Calendar) entryOn(d Date) (Entry, bool) {
	set := c.year(d.Year)
	i, ok := set.byDate[d]
	if !ok {
		return Entry{}, false
	}
	return set.entries[i], true
}

// year returns the cached set for year, building it on first use. Sets are
// inserted once and never modified afterwards.
func (c *Calendar) year(year int) *yearSet {
	c.mu.RLock()
	set, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		metrics.YearCacheHitsTotal.Inc()
		return set
	}

	metrics.YearCacheMissesTotal.Inc()
	built := build(c.rules, year)

	c.mu.Lock()
	defer c.mu.Unlock()
	if set, ok = c.years[year]; ok {
		// lost a race with another builder; both results are identical
		return set
	}
	c.years[year] = built
	log.Debug("computed %d day entries for %d", len(built.entries), year)
	return built
}

func build(rules []Rule, year int) *yearSet {
	entries := make([]Entry, 0, len(rules))
	seen := make(map[Date]int, len(rules))

	for i := range rules {
		r := &rules[i]
		d, ok := r.Date(year)
		if !ok {
			continue
		}
		e := r.Entry(d)
		if j, dup := seen[d]; dup {
			kept := entries[j]
			if e.outranks(kept) {
				entries[j] = e
				kept, e = e, kept
			}
			metrics.RuleCollisionsTotal.Inc()
			log.Info("%s and %s both fall on %s, keeping %s", kept.Name, e.Name, d, kept.Name)
			continue
		}
		seen[d] = len(entries)
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	set := &yearSet{
		year:    year,
		entries: entries,
		byDate:  make(map[Date]int, len(entries)),
	}
	for i, e := range entries {
		set.byDate[e.Date] = i
	}
	return set
}
