package cmd

import (
	"fmt"

	"github.com/edn-format/goedn/edn"
	"github.com/spf13/cobra"
)

var (
	parseDebug bool

	parseCmd = &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse EDN and print its canonical Display form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(args[0])
			if err != nil {
				return err
			}

			v, err := edn.Parse(text)
			if err != nil {
				return err
			}

			cfg, err := LoadConfig()
			if err != nil {
				return err
			}

			debug := parseDebug || cfg.DefaultFormat == "debug"
			if debug {
				fmt.Println(edn.Repr(v))
			} else {
				fmt.Println(v.String())
			}
			return nil
		},
	}
)

func init() {
	parseCmd.Flags().BoolVar(&parseDebug, "debug", false, "print an alecthomas/repr structural dump instead of Display text")
	rootCmd.AddCommand(parseCmd)
}
