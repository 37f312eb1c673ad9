// Package main provides the dorecur CLI, a todo.txt add-on for
// recurring tasks: marking a task done adds the next occurrence when
// the task carries a rec: annotation.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
