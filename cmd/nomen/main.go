package main

import (
	"os"

	"github.com/msto63/nomen/cmd/nomen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
