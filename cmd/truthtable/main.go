package main

import (
	"os"

	"github.com/nbugaenco/truthtable-go/cmd/truthtable/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
