package main

import (
	"os"

	"github.com/smartcontractkit/ecrlp/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
