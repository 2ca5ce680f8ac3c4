package cmd

import (
	"io"
	"os"
)

// readSource reads path's contents, or stdin when path is "-", the
// conventional Unix "dash means stdin" argument shared by the parse, get
// and check subcommands.
func readSource(path string) (string, error) {
	if path == "-" {
		logger.Debug("reading from stdin")
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	logger.WithField("path", path).Debug("reading file")
	b, err := os.ReadFile(path)
	return string(b), err
}
