package main

import (
	"os"

	"sealbox/cmd/sealbox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
