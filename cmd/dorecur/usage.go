// Usage command: static help text in the todo-txt add-on format.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// usageText follows the indentation todo-txt expects from add-on
// `usage` actions.
const usageText = `  do ITEM#[, ITEM#, ITEM#, ...]
    Mark ITEM# as complete. If rec: is set, add a new task, updating
    any start/due dates based on the value of rec:.
`

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Print todo-txt add-on usage text",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(usageText)
	},
}
