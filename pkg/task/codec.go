// Package task reads and writes key:value annotations embedded in
// todo.txt task lines. A task line is plain text; annotations such as
// t:2021-01-01, due:2021-02-01, and rec:1m are discovered by pattern,
// not by position, and the surrounding free text is never reformatted.
package task

import (
	"regexp"
	"time"
)

// Annotation keys recognized by the recurrence engine.
const (
	KeyStart = "t"
	KeyDue   = "due"
	KeyRec   = "rec"
)

// keyPattern matches a key:value token at the start of the line or
// immediately after a space. The value is the run of non-space
// characters after the colon, so values must not contain spaces.
func keyPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(^| )` + regexp.QuoteMeta(key) + `:([^ ]*)`)
}

// Value returns the value of key in line. The second return is false
// when the key does not appear. A key that appears more than once makes
// the line ambiguous and returns a *DuplicateKeyError.
func Value(line, key string) (string, bool, error) {
	matches := keyPattern(key).FindAllStringSubmatch(line, -1)
	switch len(matches) {
	case 0:
		return "", false, nil
	case 1:
		return matches[0][2], true, nil
	default:
		return "", false, &DuplicateKeyError{Key: key}
	}
}

// Date returns the value of key parsed as an ISO-8601 calendar date
// (YYYY-MM-DD) at UTC midnight. An absent key returns a zero time and
// false, not an error. A present but unparseable value returns a
// *MalformedDateError.
func Date(line, key string) (time.Time, bool, error) {
	v, ok, err := Value(line, key)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	d, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, false, &MalformedDateError{Key: key}
	}
	return d, true, nil
}

// SetValue replaces the first key:value token in line with key:value
// and returns the new line. When no token matches, key:value is
// appended as a trailing space-separated token. SetValue does not
// enforce key uniqueness; callers validate via Value first.
func SetValue(line, key, value string) string {
	token := key + ":" + value
	loc := keyPattern(key).FindStringSubmatchIndex(line)
	if loc == nil {
		return line + " " + token
	}
	// Keep the captured separator, swap out the token.
	return line[:loc[3]] + token + line[loc[1]:]
}

// Remove deletes the first key:value token from line along with its
// preceding separating space, and returns the new line. A line without
// the key is returned unchanged.
func Remove(line, key string) string {
	loc := keyPattern(key).FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[:loc[0]] + line[loc[1]:]
}
