package main

import (
	"os"

	"github.com/ruslanv/mnemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
