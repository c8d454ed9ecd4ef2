package main

import (
	"os"

	"github.com/frherrer/adfsync/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
