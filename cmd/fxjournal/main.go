package main

import (
	"os"

	"github.com/fxtrader/fxjournal/cmd/fxjournal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
