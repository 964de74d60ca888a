package main

import (
	"os"

	"github.com/sile16/karaoke/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
