package main

import (
	"os"

	"github.com/hyperborg/hyperborg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
