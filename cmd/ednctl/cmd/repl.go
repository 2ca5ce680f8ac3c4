package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/edn-format/goedn/edn"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read EDN forms from stdin one line at a time, printing each Display form",
	RunE: func(cmd *cobra.Command, args []string) error {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			v, err := edn.Parse(line)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			fmt.Println(v.String())
		}
		if err := scanner.Err(); err != nil && err != io.EOF {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
