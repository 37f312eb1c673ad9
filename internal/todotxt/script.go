// Delegating backend that drives the todo-txt script.
package todotxt

import (
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"time"
)

// ScriptStore delegates completion and appends to the todo-txt script
// (TODO_FULL_SH) so the user's todo-txt configuration, auto-archiving
// included, still applies when dorecur runs as an add-on. Reads go
// straight to the todo file; todo-txt has no machine-readable output
// for single items.
type ScriptStore struct {
	script string
	file   string
	stdout io.Writer
	stderr io.Writer
}

// NewScriptStore returns a ScriptStore that runs script and reads task
// text from file. The script's output is forwarded to stdout/stderr.
func NewScriptStore(script, file string, stdout, stderr io.Writer) *ScriptStore {
	return &ScriptStore{script: script, file: file, stdout: stdout, stderr: stderr}
}

// Get returns item n from the todo file, trailing newline stripped.
func (s *ScriptStore) Get(n int) (string, error) {
	lines, err := readLines(s.file)
	if err != nil {
		return "", err
	}
	if n < 1 || n > len(lines) {
		return "", &TaskNotFoundError{Item: n}
	}
	return lines[n-1], nil
}

// Complete runs `todo.sh command do N`. The completion date is
// todo-txt's to record, so today is unused here.
func (s *ScriptStore) Complete(n int, _ time.Time) error {
	return s.run("do", strconv.Itoa(n))
}

// Append runs `todo.sh command add LINE`.
func (s *ScriptStore) Append(line string) error {
	return s.run("add", line)
}

// run invokes a todo-txt action through the `command` passthrough,
// which skips any user-defined action override of the same name.
func (s *ScriptStore) run(action string, args ...string) error {
	cmd := exec.Command(s.script, append([]string{"command", action}, args...)...)
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("todo-txt %s: %w", action, err)
	}
	return nil
}
