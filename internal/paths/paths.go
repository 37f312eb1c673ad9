// Package paths resolves the configuration directory and todo file
// locations for the dorecur CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultTodoFileName is the CWD-relative todo file used when no
// override is active.
const DefaultTodoFileName = "todo.txt"

// Environment variable names. TODO_FILE and TODO_FULL_SH are todo-txt's
// own variables and are honored so dorecur works unchanged as a
// todo-txt add-on.
const (
	EnvConfigDir = "DORECUR_CONFIG_DIR"
	EnvTodoFile  = "TODO_FILE"
	EnvTodoSh    = "TODO_FULL_SH"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/dorecur (fallback ~/.config/dorecur)
// macOS:   ~/Library/Application Support/dorecur
// Windows: %APPDATA%/dorecur
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "dorecur"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "dorecur"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "dorecur"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > DORECUR_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveTodoFile returns the todo file path following the precedence
// chain: flag > config.yaml todo_file > TODO_FILE env > $(CWD)/todo.txt.
//
// The env step keeps dorecur usable from inside todo-txt, which exports
// TODO_FILE to its add-ons; the CWD-relative default serves standalone
// use.
func ResolveTodoFile(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvTodoFile); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultTodoFileName), nil
}
