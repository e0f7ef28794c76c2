package main

import (
	"context"
	"os"

	"github.com/omni-tools/dashmover/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
