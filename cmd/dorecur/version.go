// Version command for the dorecur CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/owenh000/todo.txt-cli-dorecur/pkg/dorecur"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dorecur version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dorecur", dorecur.Version)
	},
}
