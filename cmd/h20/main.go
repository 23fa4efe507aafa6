package main

import (
	"os"

	"h20/cmd/h20/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
