package main

import (
	"os"

	"github.com/celestiaorg/instawp-action/cmd/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
