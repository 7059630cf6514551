package main

import (
	"os"

	"github.com/govalues/cash/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
