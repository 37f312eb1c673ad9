// Package todotxt provides task-store backends for the dorecur CLI: a
// native store operating directly on a todo.txt file and a delegating
// store that drives the todo-txt script when dorecur runs as an add-on.
package todotxt

import (
	"fmt"
	"time"
)

// Store is the task-store contract the do action runs against. Items
// are addressed by 1-based line number, the todo.txt convention.
type Store interface {
	// Get returns the exact text of item n, trailing newline stripped.
	// Returns *TaskNotFoundError if n exceeds the store's length.
	Get(n int) (string, error)

	// Complete marks item n done. today is the completion date recorded
	// on the line.
	Complete(n int, today time.Time) error

	// Append adds line as a new item at the next available number.
	Append(line string) error
}

// TaskNotFoundError reports a requested item number that does not exist
// in the store.
type TaskNotFoundError struct {
	Item int
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %d does not exist", e.Item)
}
