package main

import (
	"os"

	"github.com/hdlman/hdlman/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
