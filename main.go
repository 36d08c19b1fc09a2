package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonesrussell/north-cloud/sales-agent/internal/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "sales-agent: %v\n", err)
		os.Exit(1)
	}
}
