package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/treewrite/jsondom"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-validate a JSON file on every change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			if err := watcher.Add(path); err != nil {
				return &exitError{code: exitIOError, err: err}
			}

			reportValidity(path)
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					slog.Debug("fs event", "op", ev.Op.String(), "name", ev.Name)
					if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
						reportValidity(path)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
				}
			}
		},
	}
}

func reportValidity(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("%s: %v\n", path, err)
		return
	}
	doc := jsondom.Parse(data)
	if msg, ok := doc.ErrorMessage(); ok {
		fmt.Printf("%s: invalid: %s\n", path, msg)
		return
	}
	fmt.Printf("%s: valid (%s)\n", path, doc.Type())
}
