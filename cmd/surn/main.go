package main

import (
	"os"

	"github.com/surn-lang/surn/cmd/surn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
