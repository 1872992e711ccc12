package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ErrInvalidRule is the cause of every rule validation error.
var ErrInvalidRule = errors.New("invalid rule")

// Kind tells how a Rule places its day within a year.
type Kind int

// Rule kinds
const (
	Fixed    Kind = iota // same month and day every year
	Movable              // fixed offset in days from Easter Sunday
	Floating             // first weekday on or after a month and day
)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Movable:
		return "movable"
	case Floating:
		return "floating"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Class is the classification a Rule gives to its day.
type Class int

// Classes of days
const (
	Observance Class = iota // notable day, still a working day
	Holiday                 // full non-working day
	HalfDay                 // non-working from midday
)

func (c Class) String() string {
	switch c {
	case Observance:
		return "observance"
	case Holiday:
		return "holiday"
	case HalfDay:
		return "halfday"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// ParseClass parses the name of a Class as printed by String.
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "observance":
		return Observance, nil
	case "holiday":
		return Holiday, nil
	case "halfday", "half-day", "half_day":
		return HalfDay, nil
	default:
		return Observance, errors.Errorf("unknown class %q", s)
	}
}

// Rule describes the yearly occurrence of one day in a rule table.
//
// A valid Rule consists of one of the following:
//   - Month and Day (Fixed, such as June 17)
//   - Offset (Movable, such as -2 for Good Friday)
//   - Month, Day and Weekday (Floating, such as the first Thursday on or
//     after April 19). AvoidEaster lists Easter offsets the floating day
//     must not coincide with; on a match it moves one week later.
type Rule struct {
	Name        string
	Kind        Kind
	Month       time.Month
	Day         int
	Offset      int
	Weekday     time.Weekday
	AvoidEaster []int
	Class       Class
}

// NewFixed creates a Rule for a day at the same month and day every year.
func NewFixed(name string, month time.Month, day int, class Class) Rule {
	return Rule{Name: name, Kind: Fixed, Month: month, Day: day, Class: class}
}

// NewMovable creates a Rule for a day offset days away from Easter Sunday.
func NewMovable(name string, offset int, class Class) Rule {
	return Rule{Name: name, Kind: Movable, Offset: offset, Class: class}
}

// NewFloating creates a Rule for the first weekday on or after the given
// month and day.
func NewFloating(name string, month time.Month, day int, weekday time.Weekday, class Class, avoidEaster ...int) Rule {
	return Rule{
		Name:        name,
		Kind:        Floating,
		Month:       month,
		Day:         day,
		Weekday:     weekday,
		AvoidEaster: avoidEaster,
		Class:       class,
	}
}

// Date returns the day the rule falls on in year. The second result is
// false when the rule has no day in that year, as for February 29 outside
// leap years or offsets that leave the year.
func (r *Rule) Date(year int) (Date, bool) {
	var d Date
	switch r.Kind {
	case Fixed:
		d = NewDate(year, r.Month, r.Day)
		if d.Month != r.Month || d.Day != r.Day {
			return Date{}, false
		}
	case Movable:
		d = Easter(year).AddDays(r.Offset)
	case Floating:
		start := NewDate(year, r.Month, r.Day)
		d = start.AddDays((int(r.Weekday) - int(start.Weekday()) + 7) % 7)
		if len(r.AvoidEaster) > 0 {
			easter := Easter(year)
			for moved := true; moved; {
				moved = false
				for _, off := range r.AvoidEaster {
					if d == easter.AddDays(off) {
						d = d.AddDays(7)
						moved = true
					}
				}
			}
		}
	default:
		return Date{}, false
	}
	return d, d.Year == year
}

// Entry returns the Day Entry the rule produces on d.
func (r *Rule) Entry(d Date) Entry {
	return Entry{
		Date:    d,
		Name:    r.Name,
		Holiday: r.Class != Observance,
		HalfDay: r.Class == HalfDay,
	}
}

// Validate checks that the rule can be materialized in every year.
func (r *Rule) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.Wrap(ErrInvalidRule, "missing name")
	}
	if r.Class < Observance || r.Class > HalfDay {
		return errors.Wrapf(ErrInvalidRule, "%s: unknown class %d", r.Name, int(r.Class))
	}
	switch r.Kind {
	case Fixed, Floating:
		if r.Month < time.January || r.Month > time.December {
			return errors.Wrapf(ErrInvalidRule, "%s: month %d out of range", r.Name, int(r.Month))
		}
		// 2000 is a leap year, so February 29 passes here and is skipped
		// in other years by Date.
		if last := daysIn(2000, r.Month); r.Day < 1 || r.Day > last {
			return errors.Wrapf(ErrInvalidRule, "%s: day %d out of range for %s", r.Name, r.Day, r.Month)
		}
		if r.Kind == Floating && (r.Weekday < time.Sunday || r.Weekday > time.Saturday) {
			return errors.Wrapf(ErrInvalidRule, "%s: weekday %d out of range", r.Name, int(r.Weekday))
		}
	case Movable:
	default:
		return errors.Wrapf(ErrInvalidRule, "%s: unknown kind %d", r.Name, int(r.Kind))
	}
	return nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// ruleYAML is the on-disk form of a Rule. Exactly one of Date (optionally
// with Weekday) or Easter must be set.
type ruleYAML struct {
	Name        string `yaml:"name"`
	Date        string `yaml:"date"`
	Easter      *int   `yaml:"easter"`
	Weekday     string `yaml:"weekday"`
	AvoidEaster []int  `yaml:"avoid_easter"`
	Class       string `yaml:"class"`
}

// ParseRules parses a YAML rule table of the form
//
//	rules:
//	  - name: Jóladagur
//	    date: 12-25
//	    class: holiday
//	  - name: Föstudagurinn langi
//	    easter: -2
//	    class: holiday
//	  - name: Frídagur verslunarmanna
//	    date: 08-01
//	    weekday: monday
//	    class: holiday
//
// and validates every rule.
func ParseRules(data []byte) ([]Rule, error) {
	var aux struct {
		Rules []ruleYAML `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &aux); err != nil {
		return nil, errors.Wrap(err, "failed to parse rule table")
	}
	if len(aux.Rules) == 0 {
		return nil, errors.Wrap(ErrInvalidRule, "rule table is empty")
	}

	rules := make([]Rule, 0, len(aux.Rules))
	for i, ry := range aux.Rules {
		r, err := ry.rule()
		if err == nil {
			err = r.Validate()
		}
		if err != nil {
			return nil, errors.Wrapf(err, "rule %d", i)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func (ry *ruleYAML) rule() (Rule, error) {
	class, err := ParseClass(ry.Class)
	if err != nil {
		return Rule{}, errors.Wrapf(ErrInvalidRule, "%s: %v", ry.Name, err)
	}

	switch {
	case ry.Easter != nil && ry.Date != "":
		return Rule{}, errors.Wrapf(ErrInvalidRule, "%s: both date and easter set", ry.Name)
	case ry.Easter != nil:
		if ry.Weekday != "" || len(ry.AvoidEaster) > 0 {
			return Rule{}, errors.Wrapf(ErrInvalidRule, "%s: weekday requires a date", ry.Name)
		}
		return NewMovable(ry.Name, *ry.Easter, class), nil
	case ry.Date != "":
		var month, day int
		if _, err := fmt.Sscanf(ry.Date, "%d-%d", &month, &day); err != nil {
			return Rule{}, errors.Wrapf(ErrInvalidRule, "%s: date %q is not MM-DD", ry.Name, ry.Date)
		}
		if ry.Weekday == "" {
			if len(ry.AvoidEaster) > 0 {
				return Rule{}, errors.Wrapf(ErrInvalidRule, "%s: avoid_easter requires a weekday", ry.Name)
			}
			return NewFixed(ry.Name, time.Month(month), day, class), nil
		}
		wd, err := parseWeekday(ry.Weekday)
		if err != nil {
			return Rule{}, errors.Wrapf(ErrInvalidRule, "%s: %v", ry.Name, err)
		}
		return NewFloating(ry.Name, time.Month(month), day, wd, class, ry.AvoidEaster...), nil
	default:
		return Rule{}, errors.Wrapf(ErrInvalidRule, "%s: neither date nor easter set", ry.Name)
	}
}

func parseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if full := strings.ToLower(wd.String()); name == full || name == full[:3] {
			return wd, nil
		}
	}
	return time.Sunday, errors.Errorf("unknown weekday %q", s)
}
