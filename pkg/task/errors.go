// Error types for annotation parsing. Each carries the offending key so
// the CLI can print an actionable message.
package task

import "fmt"

// DuplicateKeyError reports a key that appears more than once on a
// line. No value can be trusted on such a line.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("task has multiple `%s:` keys", e.Key)
}

// MalformedDateError reports a key whose value is present but is not a
// valid YYYY-MM-DD calendar date.
type MalformedDateError struct {
	Key string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed `%s:` date", e.Key)
}
