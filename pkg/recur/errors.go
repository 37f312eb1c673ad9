package recur

import "fmt"

// MalformedRuleError reports a rec: value that does not match the
// [+]NUMBER[UNIT] grammar.
type MalformedRuleError struct {
	Value string
}

func (e *MalformedRuleError) Error() string {
	return fmt.Sprintf("malformed `rec:` value %q", e.Value)
}
