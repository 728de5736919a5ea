package main

import (
	"os"

	"github.com/unilease/unilease/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
