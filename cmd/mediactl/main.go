package main

import (
	"os"

	"github.com/mediashelf/mediashelf/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
