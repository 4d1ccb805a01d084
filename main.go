package main

import (
	"os"

	"github.com/asouza/lorito/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
