package todotxt

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTodoScript writes a shell script that records its arguments, one
// invocation per line, and returns its path and the recording file.
func fakeTodoScript(t *testing.T) (script, log string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture is unix-only")
	}

	dir := t.TempDir()
	log = filepath.Join(dir, "calls.log")
	script = filepath.Join(dir, "todo.sh")
	content := "#!/bin/sh\necho \"$@\" >> " + log + "\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0o755))
	return script, log
}

func TestScriptStoreGet(t *testing.T) {
	script, _ := fakeTodoScript(t)
	file := filepath.Join(t.TempDir(), "todo.txt")
	require.NoError(t, os.WriteFile(file, []byte("a task\nanother rec:1d\n"), 0o644))

	store := NewScriptStore(script, file, os.Stdout, os.Stderr)

	line, err := store.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "another rec:1d", line)

	_, err = store.Get(9)
	var notFound *TaskNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, 9, notFound.Item)
}

func TestScriptStoreDelegation(t *testing.T) {
	script, log := fakeTodoScript(t)
	var out, errOut bytes.Buffer
	store := NewScriptStore(script, "/nonexistent/todo.txt", &out, &errOut)

	today := time.Date(2021, 1, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Complete(4, today))
	require.NoError(t, store.Append("new task rec:1w"))

	data, err := os.ReadFile(log)
	require.NoError(t, err)
	assert.Equal(t, "command do 4\ncommand add new task rec:1w\n", string(data))
}

func TestScriptStoreRunFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture is unix-only")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "todo.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755))

	store := NewScriptStore(script, "/nonexistent/todo.txt", os.Stdout, os.Stderr)
	err := store.Complete(1, time.Now())
	assert.Error(t, err)
}
