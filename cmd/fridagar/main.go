package main

import (
	"os"

	"github.com/fridagar/fridagar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
