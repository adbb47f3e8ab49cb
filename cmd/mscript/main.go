package main

import (
	"os"

	"github.com/msto63/mscript/cmd/mscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
