package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owenh000/todo.txt-cli-dorecur/internal/todotxt"
	"github.com/owenh000/todo.txt-cli-dorecur/pkg/recur"
	"github.com/owenh000/todo.txt-cli-dorecur/pkg/task"
)

func tempStore(t *testing.T, content string) (*todotxt.FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return todotxt.NewFileStore(path), path
}

func fileContent(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestDoItem(t *testing.T) {
	today := time.Date(2021, 1, 3, 0, 0, 0, 0, time.UTC)

	t.Run("recurring task completed and successor appended", func(t *testing.T) {
		store, path := tempStore(t, "Water flowers t:2021-01-01 rec:5d\n")

		require.NoError(t, doItem(store, 1, today))
		assert.Equal(t,
			"x 2021-01-03 Water flowers t:2021-01-01 rec:5d\n"+
				"Water flowers t:2021-01-08 rec:5d\n",
			fileContent(t, path))
	})

	t.Run("plain task completed without successor", func(t *testing.T) {
		store, path := tempStore(t, "Fix lamp\n")

		require.NoError(t, doItem(store, 1, today))
		assert.Equal(t, "x 2021-01-03 Fix lamp\n", fileContent(t, path))
	})

	t.Run("inert rule still recurs", func(t *testing.T) {
		store, path := tempStore(t, "Meet friend for tea rec:1\n")

		require.NoError(t, doItem(store, 1, today))
		assert.Equal(t,
			"x 2021-01-03 Meet friend for tea rec:1\nMeet friend for tea rec:1\n",
			fileContent(t, path))
	})

	t.Run("bad line leaves store untouched", func(t *testing.T) {
		store, path := tempStore(t, "Broken t:nope rec:1d\n")

		err := doItem(store, 1, today)
		var malformed *task.MalformedDateError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "Broken t:nope rec:1d\n", fileContent(t, path))
	})

	t.Run("missing task reported with its number", func(t *testing.T) {
		store, _ := tempStore(t, "Only task\n")

		err := doItem(store, 7, today)
		var notFound *todotxt.TaskNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, 7, notFound.Item)
	})
}

func TestIsUserError(t *testing.T) {
	assert.True(t, isUserError(&task.DuplicateKeyError{Key: "rec"}))
	assert.True(t, isUserError(&task.MalformedDateError{Key: "t"}))
	assert.True(t, isUserError(&recur.MalformedRuleError{Value: "soon"}))
	assert.True(t, isUserError(&todotxt.TaskNotFoundError{Item: 3}))
	assert.False(t, isUserError(os.ErrPermission))
}

func TestUsageText(t *testing.T) {
	// todo-txt displays add-on usage verbatim; keep the two-space
	// action indent it expects.
	assert.Contains(t, usageText, "do ITEM#")
	assert.Contains(t, usageText, "rec:")
	assert.True(t, len(usageText) > 0 && usageText[0] == ' ')
}
