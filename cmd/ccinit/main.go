package main

import (
	"os"

	"github.com/ccinit-cli/ccinit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
