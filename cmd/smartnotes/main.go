package main

import (
	"os"

	"smartnotes/cmd/smartnotes/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
