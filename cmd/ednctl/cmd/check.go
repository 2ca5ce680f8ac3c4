package cmd

import (
	"fmt"

	"github.com/edn-format/goedn/edn"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file|->",
	Short: "Parse-only; exits nonzero with the edn.Error message on failure",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readSource(args[0])
		if err != nil {
			return err
		}
		if _, err := edn.Parse(text); err != nil {
			logger.WithField("path", args[0]).Debug("invalid EDN")
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
