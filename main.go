package main

import (
	"os"

	"github.com/nkhanna/examind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
