// Package recur computes successor task lines for recurring tasks. A
// rec: annotation names a recurrence rule; Next applies the rule to the
// t: (start) and due: dates of a task line and produces the next
// occurrence's line.
package recur

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Unit is the calendar unit a rule advances by.
type Unit int

const (
	UnitDay Unit = iota
	UnitBusinessDay
	UnitWeek
	UnitMonth
	UnitYear
)

// unitLetters maps the grammar's single-letter unit codes to units.
var unitLetters = map[string]Unit{
	"":  UnitDay,
	"d": UnitDay,
	"b": UnitBusinessDay,
	"w": UnitWeek,
	"m": UnitMonth,
	"y": UnitYear,
}

// Rule is a parsed rec: value. Strict rules (leading +) advance dates
// from their recorded values; normal rules anchor the next occurrence
// to the reference date instead.
type Rule struct {
	Strict    bool
	Magnitude int
	Unit      Unit
}

// rulePattern is the rec: value grammar: optional +, digits, optional
// unit letter (absence means days).
var rulePattern = regexp.MustCompile(`^(\+?)([0-9]+)([dbwmy]?)$`)

// ParseRule parses a rec: value. Any value outside the grammar returns
// a *MalformedRuleError.
func ParseRule(s string) (Rule, error) {
	m := rulePattern.FindStringSubmatch(s)
	if m == nil {
		return Rule{}, &MalformedRuleError{Value: s}
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return Rule{}, &MalformedRuleError{Value: s}
	}
	return Rule{
		Strict:    m[1] == "+",
		Magnitude: n,
		Unit:      unitLetters[m[3]],
	}, nil
}

// Adjust returns date advanced by the rule's magnitude and unit. The
// polarity flag does not affect the arithmetic.
//
// Month arithmetic clamps the day to the length of the target month
// (Jan 31 + 1m is Feb 28, or Feb 29 in a leap year). Year arithmetic
// keeps month and day unchanged; landing on a day that does not exist
// in the target year (Feb 29 plus years onto a non-leap year) is fatal
// rather than silently clamped.
func (r Rule) Adjust(date time.Time) (time.Time, error) {
	switch r.Unit {
	case UnitDay:
		return date.AddDate(0, 0, r.Magnitude), nil
	case UnitBusinessDay:
		n := r.Magnitude
		for n > 0 {
			date = date.AddDate(0, 0, 1)
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
			n--
		}
		return date, nil
	case UnitWeek:
		return date.AddDate(0, 0, 7*r.Magnitude), nil
	case UnitMonth:
		month0 := int(date.Month()) - 1 + r.Magnitude
		year := date.Year() + month0/12
		month := time.Month(month0%12 + 1)
		day := date.Day()
		if last := daysIn(year, month); day > last {
			day = last
		}
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
	case UnitYear:
		year := date.Year() + r.Magnitude
		out := time.Date(year, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		if out.Month() != date.Month() {
			// time.Date normalized an impossible day (Feb 29 on a
			// non-leap year); refuse rather than shift the date.
			return time.Time{}, fmt.Errorf("no such date: %04d-%02d-%02d",
				year, date.Month(), date.Day())
		}
		return out, nil
	default:
		return time.Time{}, fmt.Errorf("unknown unit %d", r.Unit)
	}
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
