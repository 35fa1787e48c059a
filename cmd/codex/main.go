// Package main is the entry point for the codex CLI
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/operator-codex/internal/errors"
)

func main() {
	if err := newRootCmd(buildService).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
