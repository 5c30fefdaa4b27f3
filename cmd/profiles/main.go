package main

import (
	"os"

	"profiles/cmd/profiles/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
