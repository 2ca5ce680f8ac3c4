package main

import (
	"os"

	"github.com/edn-format/goedn/cmd/ednctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
