package main

import (
	"os"

	"github.com/dshills/checklint/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
