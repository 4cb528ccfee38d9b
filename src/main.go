package main

import (
	"os"

	"github.com/eriklarko/markers/src/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
