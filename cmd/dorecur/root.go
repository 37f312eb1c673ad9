// Root command for the dorecur CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/owenh000/todo.txt-cli-dorecur/internal/paths"
	"github.com/owenh000/todo.txt-cli-dorecur/pkg/dorecur"
)

// Exit codes. User errors cover bad task lines, rules, dates, and
// missing tasks; system errors cover store I/O and configuration.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagFile      string
	flagToday     string
)

// configTodoFile holds the todo_file value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configTodoFile string

var rootCmd = &cobra.Command{
	Use:     "dorecur",
	Short:   "dorecur marks todo.txt tasks done and reschedules recurring ones",
	Version: dorecur.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configTodoFile = cfg.GetString(cfgKeyTodoFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "todo file (default: $TODO_FILE or $(CWD)/todo.txt)")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "reference date as YYYY-MM-DD (default: current date)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(doCmd)
}

// resolveTodoFile returns the todo file path following the precedence:
// --file flag > config.yaml todo_file > TODO_FILE env > $(CWD)/todo.txt.
func resolveTodoFile() (string, error) {
	return paths.ResolveTodoFile(flagFile, configTodoFile)
}
