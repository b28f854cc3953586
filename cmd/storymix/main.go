// SPDX-License-Identifier: EPL-2.0

// Command storymix serves the storymix HTTP API and mixes audio stories
// from the command line.
//
// Usage:
//
//	storymix serve [--port 5000]
//	storymix mix [--format mp3|wav] <voice> <out>
//
// Configuration comes from STORYMIX_* environment variables and an optional
// .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/kalakriti/storymix/cmd/storymix/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
