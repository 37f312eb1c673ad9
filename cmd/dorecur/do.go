// Do command: mark tasks done and add successors for recurring ones.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/owenh000/todo.txt-cli-dorecur/internal/todotxt"
	"github.com/owenh000/todo.txt-cli-dorecur/pkg/recur"
)

var doCmd = &cobra.Command{
	Use:   "do ITEM# [ITEM#...]",
	Short: "Mark tasks done, rescheduling recurring ones",
	Long: `Do marks each ITEM# as complete. If the task has a rec: key, a new
task is added with any t: (start) and due: dates updated according to
the value of rec:.

A failing item is reported and skipped; later items are still
processed. The exit status is non-zero if any item failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := make([]int, 0, len(args))
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 {
				fmt.Fprintf(os.Stderr, "do: %q is not a task number\n", arg)
				os.Exit(exitUserError)
			}
			items = append(items, n)
		}

		store, err := newStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "do:", err)
			os.Exit(exitSysError)
		}

		today, err := resolveToday()
		if err != nil {
			fmt.Fprintln(os.Stderr, "do:", err)
			os.Exit(exitUserError)
		}

		// One item's failure must not block the rest of the batch.
		exit := exitSuccess
		for _, n := range items {
			if err := doItem(store, n, today); err != nil {
				fmt.Fprintf(os.Stderr, "task %d: %v\n", n, err)
				if isUserError(err) {
					if exit == exitSuccess {
						exit = exitUserError
					}
				} else {
					exit = exitSysError
				}
			}
		}
		if exit != exitSuccess {
			os.Exit(exit)
		}
		return nil
	},
}

// doItem processes a single task: read the line, compute its successor,
// mark the task done, and append the successor if there is one. The
// successor is computed before anything is written, so a bad line
// leaves the store untouched.
func doItem(store todotxt.Store, n int, today time.Time) error {
	line, err := store.Get(n)
	if err != nil {
		return err
	}

	successor, ok, err := recur.Next(line, today)
	if err != nil {
		return err
	}

	if err := store.Complete(n, today); err != nil {
		return err
	}

	// The script store forwards todo-txt's own output; only the native
	// store needs the CLI to report what happened.
	native := false
	if _, isFile := store.(*todotxt.FileStore); isFile {
		native = true
		fmt.Printf("%d %s\n", n, line)
		fmt.Printf("TODO: %d marked as done.\n", n)
	}

	if !ok {
		return nil
	}
	if err := store.Append(successor); err != nil {
		return err
	}
	if native {
		fmt.Printf("TODO: %q added.\n", successor)
	}
	return nil
}
