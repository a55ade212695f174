// Command j2o parses Java sources into the translator tree, runs the
// configured passes and reports or renders the result.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
