package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/edn-format/goedn/edn"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <file|-> <path>",
	Short: "Parse then navigate through a '/'-separated path of integer or string indices; a trailing '*' iterates the container's elements",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readSource(args[0])
		if err != nil {
			return err
		}

		v, err := edn.Parse(text)
		if err != nil {
			return err
		}

		segments := splitPath(args[1])
		cur := v
		for i, segment := range segments {
			if segment == "*" {
				items, err := edn.Iter(cur)
				if err != nil {
					return err
				}
				for _, item := range items {
					fmt.Println(item.String())
				}
				if i != len(segments)-1 {
					return fmt.Errorf("'*' must be the last path segment")
				}
				return nil
			}
			var ok bool
			if n, numErr := strconv.Atoi(segment); numErr == nil {
				cur, ok = edn.Index(cur, n)
			} else {
				cur, ok = edn.Key(cur, segment)
			}
			if !ok {
				fmt.Println("nil")
				return nil
			}
		}
		fmt.Println(cur.String())
		return nil
	},
}

// splitPath splits a "/"-separated navigation path, dropping a leading
// empty segment so both "a/b" and "/a/b" work the same way.
func splitPath(path string) []string {
	segments := strings.Split(path, "/")
	if len(segments) > 0 && segments[0] == "" {
		segments = segments[1:]
	}
	return segments
}

func init() {
	rootCmd.AddCommand(getCmd)
}
