package main

import (
	"os"

	"github.com/umss/ingreso/cmd/ingreso/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
