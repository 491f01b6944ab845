package main

import (
	"os"

	"svw.info/minesweeper/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
