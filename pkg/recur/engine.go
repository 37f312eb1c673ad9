package recur

import (
	"time"

	"github.com/owenh000/todo.txt-cli-dorecur/pkg/task"
)

// presence enumerates which of the start and due dates a line carries.
// Together with the rule's polarity it selects the recurrence policy.
type presence int

const (
	noDates presence = iota
	startOnly
	dueOnly
	bothDates
)

// Next computes the successor of a task line. today is the reference
// date normal-recurrence rules anchor to; callers supply it explicitly
// so the engine stays deterministic.
//
// The second return is false when the line has no rec: key and no
// successor task is needed. A line whose rule carries no dates is
// returned unchanged: the rule is inert but the task still recurs.
// Failures (duplicate keys, malformed dates or rules) abort the whole
// operation; no partial rewrite is ever returned.
func Next(line string, today time.Time) (string, bool, error) {
	raw, ok, err := task.Value(line, task.KeyRec)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}

	start, hasStart, err := task.Date(line, task.KeyStart)
	if err != nil {
		return "", false, err
	}
	due, hasDue, err := task.Date(line, task.KeyDue)
	if err != nil {
		return "", false, err
	}

	// Without dates the rule is never applied, so its value is carried
	// verbatim into the successor even when it is outside the grammar.
	dates := datesPresent(hasStart, hasDue)
	if dates == noDates {
		return line, true, nil
	}

	rule, err := ParseRule(raw)
	if err != nil {
		return "", false, err
	}

	switch dates {
	case bothDates:
		if rule.Strict {
			if start, err = rule.Adjust(start); err != nil {
				return "", false, err
			}
			if due, err = rule.Adjust(due); err != nil {
				return "", false, err
			}
		} else {
			// Anchor to today and carry the start-to-due offset over.
			offset := daysBetween(start, due)
			if start, err = rule.Adjust(today); err != nil {
				return "", false, err
			}
			due = start.AddDate(0, 0, offset)
		}

	case startOnly:
		anchor := start
		if !rule.Strict {
			anchor = today
		}
		if start, err = rule.Adjust(anchor); err != nil {
			return "", false, err
		}

	case dueOnly:
		anchor := due
		if !rule.Strict {
			anchor = today
		}
		if due, err = rule.Adjust(anchor); err != nil {
			return "", false, err
		}
	}

	// Only keys that were present get rewritten; a date that was never
	// set is never introduced.
	if hasStart {
		line = task.SetValue(line, task.KeyStart, start.Format(time.DateOnly))
	}
	if hasDue {
		line = task.SetValue(line, task.KeyDue, due.Format(time.DateOnly))
	}
	return line, true, nil
}

func datesPresent(hasStart, hasDue bool) presence {
	switch {
	case hasStart && hasDue:
		return bothDates
	case hasStart:
		return startOnly
	case hasDue:
		return dueOnly
	default:
		return noDates
	}
}

// daysBetween returns the signed day count from a to b. Both values are
// UTC midnights, so the division is exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
