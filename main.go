package main

import (
	"fmt"
	"os"

	"github.com/jc141x/rres/internal/cli"
)

func main() {
	cmd := cli.InitCLI()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rres:", err)
		os.Exit(1)
	}
}
