// Command jsondom parses, inspects and rewrites JSON documents from the
// command line.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/treewrite/jsondom"
)

// Exit codes
const (
	exitInvalidArguments = 1
	exitIOError          = 2
	exitParseError       = 3
)

// exitError carries a process exit code alongside the error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(exitInvalidArguments)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "jsondom",
		Short:        "Parse, inspect and rewrite JSON documents",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable diagnostic logging")

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newWatchCmd())

	return rootCmd
}

// loadDocument reads and parses path, mapping failures to exit codes.
func loadDocument(path string) (jsondom.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return jsondom.Node{}, &exitError{code: exitIOError, err: err}
	}
	doc := jsondom.Parse(data)
	if msg, ok := doc.ErrorMessage(); ok {
		return jsondom.Node{}, &exitError{code: exitParseError, err: fmt.Errorf("%s: %s", path, msg)}
	}
	return doc, nil
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a file is parseable JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			switch doc.Type() {
			case jsondom.Object:
				fmt.Printf("%s: valid object, %d members\n", args[0], doc.ObjectLen())
			case jsondom.Array:
				fmt.Printf("%s: valid array, %d elements\n", args[0], doc.ArrayLen())
			default:
				fmt.Printf("%s: valid %s\n", args[0], doc.Type())
			}
			return nil
		},
	}
}

func newFormatCmd() *cobra.Command {
	var (
		sortKeys   bool
		output     string
		bufferSize int
		noExpand   bool
	)

	cmd := &cobra.Command{
		Use:   "format <file>",
		Short: "Re-serialize a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			if sortKeys {
				sortObjects(&doc)
			}

			var out []byte
			if bufferSize > 0 || noExpand {
				out, err = jsondom.SerializeWithSize(&doc, bufferSize, !noExpand)
			} else {
				out, err = jsondom.Serialize(&doc)
			}
			if err != nil {
				return err
			}

			out = append(out, '\n')
			if output == "" {
				_, err = os.Stdout.Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return &exitError{code: exitIOError, err: err}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sortKeys, "sort-keys", false, "Sort object members by key, recursively")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().IntVar(&bufferSize, "buffer-size", 0, "Initial serializer buffer size in bytes")
	cmd.Flags().BoolVar(&noExpand, "no-expand", false, "Fail instead of growing past the initial buffer size")

	return cmd
}

// sortObjects sorts every object in the subtree by key.
func sortObjects(n *jsondom.Node) {
	switch n.Type() {
	case jsondom.Object:
		n.ObjectSort()
		for i := 0; i < n.ObjectLen(); i++ {
			sortObjects(n.ObjectIndex(i).Value())
		}
	case jsondom.Array:
		for i := 0; i < n.ArrayLen(); i++ {
			sortObjects(n.ArrayIndex(i))
		}
	}
}
