// Command cool is the Cool-to-MIPS compiler's command-line entry point.
package main

import (
	"os"

	"github.com/coolc/coolc/cmd/cool/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
