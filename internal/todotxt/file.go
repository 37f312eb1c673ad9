// Native todo.txt file backend with atomic rewrites.
package todotxt

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore reads and writes a todo.txt file directly. Every line,
// including blank ones, counts toward item numbering so numbers match
// what todo-txt and other tools display.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore over the todo file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get returns item n with its trailing newline stripped.
func (s *FileStore) Get(n int) (string, error) {
	lines, err := readLines(s.path)
	if err != nil {
		return "", err
	}
	if n < 1 || n > len(lines) {
		return "", &TaskNotFoundError{Item: n}
	}
	return lines[n-1], nil
}

// Complete marks item n done by prefixing it with "x YYYY-MM-DD ", the
// todo.txt completion convention. An already-completed line is left
// untouched.
func (s *FileStore) Complete(n int, today time.Time) error {
	lines, err := readLines(s.path)
	if err != nil {
		return err
	}
	if n < 1 || n > len(lines) {
		return &TaskNotFoundError{Item: n}
	}
	if strings.HasPrefix(lines[n-1], "x ") {
		return nil
	}
	lines[n-1] = "x " + today.Format(time.DateOnly) + " " + lines[n-1]
	return writeLines(s.path, lines)
}

// Append adds line as the last item in the file.
func (s *FileStore) Append(line string) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", s.path, err)
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", s.path, err)
	}
	return f.Close()
}

// readLines reads every line of the file, newlines stripped.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return lines, nil
}

// writeLines atomically replaces the file's contents using the
// temp-file, fsync, rename pattern.
func writeLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".todo-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing line: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
