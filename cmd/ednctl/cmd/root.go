// Package cmd implements ednctl's command tree, one file per subcommand.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "ednctl",
		Short:        "ednctl",
		SilenceUsage: true,
		Long:         `ednctl parses, navigates, and validates Extensible Data Notation (EDN) text.`,
	}

	verbose bool
	logger  = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose operational logging")
	cobra.OnInitialize(func() {
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
	})
	return rootCmd.Execute()
}
