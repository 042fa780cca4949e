package main

import (
	"os"

	"prpcap/cmd/prpcap/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
