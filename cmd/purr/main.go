package main

import (
	"os"

	"github.com/purrlang/purr/cmd/purr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
