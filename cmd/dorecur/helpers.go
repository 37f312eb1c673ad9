// Shared helpers for dorecur CLI commands.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/owenh000/todo.txt-cli-dorecur/internal/paths"
	"github.com/owenh000/todo.txt-cli-dorecur/internal/todotxt"
	"github.com/owenh000/todo.txt-cli-dorecur/pkg/recur"
	"github.com/owenh000/todo.txt-cli-dorecur/pkg/task"
)

// newStore returns the task store for this invocation. When todo-txt's
// TODO_FULL_SH is set, dorecur is running as an add-on and completion
// and appends are delegated to the todo-txt script; otherwise the todo
// file is operated on directly.
func newStore() (todotxt.Store, error) {
	file, err := resolveTodoFile()
	if err != nil {
		return nil, fmt.Errorf("resolve todo file: %w", err)
	}

	if script := os.Getenv(paths.EnvTodoSh); script != "" {
		return todotxt.NewScriptStore(script, file, os.Stdout, os.Stderr), nil
	}
	return todotxt.NewFileStore(file), nil
}

// resolveToday returns the reference date for recurrence computation:
// the --today flag when given, otherwise the current local date at UTC
// midnight.
func resolveToday() (time.Time, error) {
	if flagToday == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(time.DateOnly, flagToday)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today value %q (want YYYY-MM-DD)", flagToday)
	}
	return t, nil
}

// isUserError reports whether err is one of the per-task error kinds
// caused by the task's own content or number, as opposed to a store or
// configuration failure.
func isUserError(err error) bool {
	var (
		dupKey  *task.DuplicateKeyError
		badDate *task.MalformedDateError
		badRule *recur.MalformedRuleError
		noTask  *todotxt.TaskNotFoundError
	)
	return errors.As(err, &dupKey) ||
		errors.As(err, &badDate) ||
		errors.As(err, &badRule) ||
		errors.As(err, &noTask)
}
