package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/treewrite/jsondom"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a dotted path, e.g. users.3.name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			node, err := lookupPath(&doc, args[1])
			if err != nil {
				return err
			}
			out, err := jsondom.Serialize(node)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", out)
			return nil
		},
	}
}

// lookupPath walks a dotted path through objects (by key) and arrays
// (by index). Lookups are linear: documents keep insertion order and
// are not assumed sorted.
func lookupPath(doc *jsondom.Node, path string) (*jsondom.Node, error) {
	node := doc
	if path == "" || path == "." {
		return node, nil
	}
	for _, seg := range strings.Split(path, ".") {
		switch node.Type() {
		case jsondom.Object:
			tuple := node.ObjectIndexByKey(seg, false)
			if tuple == nil {
				if hint := closestKey(node, seg); hint != "" {
					return nil, fmt.Errorf("key %q not found (did you mean %q?)", seg, hint)
				}
				return nil, fmt.Errorf("key %q not found", seg)
			}
			node = tuple.Value()
		case jsondom.Array:
			index, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("%q is not an array index", seg)
			}
			child := node.ArrayIndex(index)
			if child == nil {
				return nil, fmt.Errorf("index %d out of range, array has %d elements", index, node.ArrayLen())
			}
			node = child
		default:
			return nil, fmt.Errorf("cannot descend into a %s value with %q", node.Type(), seg)
		}
	}
	return node, nil
}

// closestKey suggests the nearest existing key for a failed lookup.
func closestKey(obj *jsondom.Node, target string) string {
	candidates := make([]string, 0, obj.ObjectLen())
	for i := 0; i < obj.ObjectLen(); i++ {
		candidates = append(candidates, obj.ObjectIndex(i).Key())
	}

	// Use fuzzy ranking to find the best match
	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		return ranks[0].Target
	}

	return ""
}
