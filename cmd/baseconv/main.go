package main

import (
	"os"

	"baseconv/cmd/baseconv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
