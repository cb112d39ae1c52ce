package main

import (
	"os"

	"github.com/Coder9204/sparklab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
