package main

import (
	"os"

	"github.com/beka-birhanu/mazeball/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
